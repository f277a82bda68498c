package grasp

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenChannel names the node property a motion animates. One motion at a
// time may run per (node, channel); starting a new one supersedes the old.
type TweenChannel uint8

const (
	ChannelPosition TweenChannel = iota
	ChannelScale
	ChannelRotation
)

// Motion animates the three components of one Vec3 field on a Node. Create
// motions through the TweenRunner; call sites never touch gween directly.
// If the target node is disposed mid-flight the motion stops immediately
// and its completion never fires; the press-button watchdog exists for
// exactly that kind of lost completion.
type Motion struct {
	tweens [3]*gween.Tween
	fields [3]*float32
	target *Node
	onDone func()
	Done   bool
}

// Update advances all three component tweens by dt seconds, writes values
// to the target fields, and marks the node dirty.
func (m *Motion) Update(dt float32) {
	if m.Done {
		return
	}

	if m.target != nil && m.target.IsDisposed() {
		m.Done = true
		m.onDone = nil
		return
	}

	allDone := true
	for i := 0; i < 3; i++ {
		val, finished := m.tweens[i].Update(dt)
		*m.fields[i] = val
		if !finished {
			allDone = false
		}
	}
	m.Done = allDone

	if m.target != nil {
		m.target.MarkDirty()
	}
}

func newMotion(n *Node, field *Vec3, to Vec3, duration float32, fn ease.TweenFunc, onDone func()) *Motion {
	if duration <= 0 {
		duration = 1e-4
	}
	m := &Motion{target: n, onDone: onDone}
	m.tweens[0] = gween.New(field.X, to.X, duration, fn)
	m.tweens[1] = gween.New(field.Y, to.Y, duration, fn)
	m.tweens[2] = gween.New(field.Z, to.Z, duration, fn)
	m.fields[0] = &field.X
	m.fields[1] = &field.Y
	m.fields[2] = &field.Z
	return m
}

// --- Runner ---

type motionKey struct {
	node    *Node
	channel TweenChannel
}

type finishedMotion struct {
	key motionKey
	m   *Motion
}

// TweenRunner is the visual-transition collaborator: state machines hand it
// "move this property to this value over this duration with this easing"
// requests and advance on its completion events. Requests are
// fire-and-forget; the runner completes them across future frames as the
// host ticks Update. Starting a new motion on a (node, channel) the runner
// is already animating supersedes the in-flight motion, whose completion
// never fires, so two tweens can never fight over one property.
type TweenRunner struct {
	active  map[motionKey]*Motion
	doneBuf []finishedMotion
}

// NewTweenRunner creates an empty runner.
func NewTweenRunner() *TweenRunner {
	return &TweenRunner{active: make(map[motionKey]*Motion)}
}

// MovePosition animates the node's local position to the target value.
// onDone (optional) fires once, after the final value has been applied.
func (r *TweenRunner) MovePosition(n *Node, to Vec3, duration float32, fn ease.TweenFunc, onDone func()) {
	r.start(n, ChannelPosition, newMotion(n, &n.Position, to, duration, fn, onDone))
}

// MoveScale animates the node's scale to the target value.
func (r *TweenRunner) MoveScale(n *Node, to Vec3, duration float32, fn ease.TweenFunc, onDone func()) {
	r.start(n, ChannelScale, newMotion(n, &n.Scale, to, duration, fn, onDone))
}

// MoveRotation animates the node's Euler rotation to the target value.
func (r *TweenRunner) MoveRotation(n *Node, to Vec3, duration float32, fn ease.TweenFunc, onDone func()) {
	r.start(n, ChannelRotation, newMotion(n, &n.Rotation, to, duration, fn, onDone))
}

func (r *TweenRunner) start(n *Node, ch TweenChannel, m *Motion) {
	if n == nil {
		return
	}
	r.active[motionKey{n, ch}] = m
}

// Kill cancels all in-flight motions for a node. Completions do not fire.
func (r *TweenRunner) Kill(n *Node) {
	delete(r.active, motionKey{n, ChannelPosition})
	delete(r.active, motionKey{n, ChannelScale})
	delete(r.active, motionKey{n, ChannelRotation})
}

// KillChannel cancels one channel's motion for a node.
func (r *TweenRunner) KillChannel(n *Node, ch TweenChannel) {
	delete(r.active, motionKey{n, ch})
}

// Update advances every motion by dt seconds. Completion callbacks run
// after the finished motion has been removed, so a callback may immediately
// start a new motion on the same channel. A key is only cleared while it
// still holds the finished motion: a callback that already restarted the
// channel keeps its fresh motion, and only the finished motion's own
// completion fires.
func (r *TweenRunner) Update(dt float32) {
	r.doneBuf = r.doneBuf[:0]
	for key, m := range r.active {
		m.Update(dt)
		if m.Done {
			r.doneBuf = append(r.doneBuf, finishedMotion{key, m})
		}
	}
	for _, f := range r.doneBuf {
		if r.active[f.key] == f.m {
			delete(r.active, f.key)
		}
		if f.m.onDone != nil {
			f.m.onDone()
		}
	}
}

// ActiveCount returns the number of in-flight motions.
func (r *TweenRunner) ActiveCount() int {
	return len(r.active)
}

// IsAnimating reports whether any channel on the node is in flight.
func (r *TweenRunner) IsAnimating(n *Node) bool {
	for ch := ChannelPosition; ch <= ChannelRotation; ch++ {
		if _, ok := r.active[motionKey{n, ch}]; ok {
			return true
		}
	}
	return false
}
