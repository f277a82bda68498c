package grasp

import (
	"time"

	"github.com/rs/zerolog"
)

// Engine owns the whole per-frame interaction pipeline and all shared
// mutable state: the joint sampler, per-hand pinch detectors and rotation
// trackers, the cooldown guard, registered affordances, and the tween
// runner. One Engine per scene; the host render loop calls [Engine.Update]
// once per tick. Everything runs synchronously inside that call, with no
// internal concurrency.
type Engine struct {
	// Now supplies the current time for cooldown checks and watchdogs.
	// Injectable for tests; defaults to time.Now.
	Now func() time.Time

	root     *Node
	sampler  *Sampler
	pinches  [numHands]*PinchDetector
	rotators [numHands]*RotationTracker
	guard    *Guard
	runner   *TweenRunner

	buttons    []*PressButton
	toggles    []*BinaryToggle
	selectors  []*SteppedSelector
	pickers    []*RadialPicker
	switches   []*PullSwitch
	draggables []*DragSession
	turntables []*Node

	states   [numHands]PinchState
	stateBuf []PinchState

	debug bool
	log   zerolog.Logger
}

// NewEngine creates an engine with default detectors, an empty cooldown
// guard, and a fresh tween runner.
func NewEngine() *Engine {
	e := &Engine{
		Now:     time.Now,
		sampler: NewSampler(),
		guard:   NewGuard(),
		runner:  NewTweenRunner(),
		log:     zerolog.Nop(),
	}
	for h := 0; h < numHands; h++ {
		e.pinches[h] = NewPinchDetector(HandID(h))
		e.rotators[h] = NewRotationTracker()
	}
	return e
}

// SetSceneRoot registers the node tree whose world transforms the engine
// refreshes at the start of every frame, before any position is read.
func (e *Engine) SetSceneRoot(root *Node) {
	e.root = root
}

// --- Affordance registration ---

// AddButton registers a press button.
func (e *Engine) AddButton(b *PressButton) {
	e.buttons = append(e.buttons, b)
}

// AddToggle registers a binary toggle.
func (e *Engine) AddToggle(t *BinaryToggle) {
	e.toggles = append(e.toggles, t)
}

// AddSelector registers a stepped selector.
func (e *Engine) AddSelector(s *SteppedSelector) {
	e.selectors = append(e.selectors, s)
}

// AddPicker registers a radial picker.
func (e *Engine) AddPicker(p *RadialPicker) {
	e.pickers = append(e.pickers, p)
}

// AddPullSwitch registers a pull switch.
func (e *Engine) AddPullSwitch(p *PullSwitch) {
	e.switches = append(e.switches, p)
}

// AddDraggable registers a bare drag session (free drag-and-drop handles
// with no toggle semantics).
func (e *Engine) AddDraggable(d *DragSession) {
	e.draggables = append(e.draggables, d)
}

// AddTurntable registers a node rotated about its local Y axis by
// horizontal pinch movement. Both hands drive it; their deltas are applied
// as separate increments in the same frame, so two-hand input compounds.
func (e *Engine) AddTurntable(n *Node) {
	e.turntables = append(e.turntables, n)
}

// --- Component access ---

// Guard returns the shared cooldown guard.
func (e *Engine) Guard() *Guard {
	return e.guard
}

// Tweens returns the engine's tween runner.
func (e *Engine) Tweens() *TweenRunner {
	return e.runner
}

// Detector returns a hand's pinch detector, for threshold tuning.
func (e *Engine) Detector(hand HandID) *PinchDetector {
	return e.pinches[hand]
}

// Rotator returns a hand's rotation tracker, for speed tuning.
func (e *Engine) Rotator(hand HandID) *RotationTracker {
	return e.rotators[hand]
}

// Pinch returns a hand's pinch state from the last Update.
func (e *Engine) Pinch(hand HandID) PinchState {
	return e.states[hand]
}

// --- Frame tick ---

// Update runs one frame of the pipeline in fixed order: transform refresh,
// joint sampling, pinch detection, touch hit-testing and machine
// transitions, drag sessions, rotation, then the tween runner tick. frames
// carries this frame's raw tracking data (absent hands omitted); dt is the
// frame delta in seconds, consumed only by the tween runner.
func (e *Engine) Update(frames []HandFrame, dt float32) {
	if e.root != nil {
		UpdateTransforms(e.root)
	}

	e.sampler.Sample(frames)
	for h := 0; h < numHands; h++ {
		e.states[h] = e.pinches[h].Update(e.sampler.Hand(HandID(h)))
		if e.debug {
			st := &e.states[h]
			if st.JustPinched {
				e.log.Debug().Str("hand", st.Hand.String()).Msg("pinch start")
			}
			if st.JustReleased {
				e.log.Debug().Str("hand", st.Hand.String()).Msg("pinch end")
			}
		}
	}

	now := e.Now()
	e.processTouches(now)
	e.processDrags()
	e.processRotation()

	e.runner.Update(dt)
}

// processTouches offers each present hand's index fingertip to every
// touch-driven machine. Hands are evaluated in fixed order (left first);
// within a frame the global touch cooldown keeps a single sweep from firing
// two unrelated controls.
func (e *Engine) processTouches(now time.Time) {
	for h := 0; h < numHands; h++ {
		sample := e.sampler.Hand(HandID(h))
		if !sample.Present {
			continue
		}
		tip := sample.Joint(JointIndexTip)
		if !tip.Valid {
			continue
		}
		point := tip.Position

		for _, b := range e.buttons {
			if b.Touch(point, now, e.guard, e.runner) && e.debug {
				e.log.Debug().Str("hand", HandID(h).String()).
					Str("target", b.target.ID).Msg("button pressed")
			}
		}
		for _, t := range e.toggles {
			if t.Touch(point, now, e.guard, e.runner) && e.debug {
				e.log.Debug().Str("hand", HandID(h).String()).
					Str("side", t.Side().String()).Msg("toggle flipped")
			}
		}
		for _, s := range e.selectors {
			if s.Touch(point, now, e.guard) && e.debug {
				e.log.Debug().Str("hand", HandID(h).String()).
					Int("index", s.Index()).Msg("selector stepped")
			}
		}
		for _, p := range e.pickers {
			if p.Touch(point, now, e.guard) && e.debug {
				e.log.Debug().Str("hand", HandID(h).String()).
					Int("index", p.Index()).Msg("picker selected")
			}
		}
	}

	for _, b := range e.buttons {
		b.Tick(now, e.runner)
	}
}

// processDrags advances every drag session with this frame's pinch states.
func (e *Engine) processDrags() {
	e.stateBuf = append(e.stateBuf[:0], e.states[:]...)

	for _, sw := range e.switches {
		sw.Update(e.stateBuf, e.runner)
		if e.debug {
			s := sw.Session()
			if s.JustAttached() {
				owner, _ := s.Owner()
				e.log.Debug().Str("hand", owner.String()).
					Str("target", s.Target.ID).Msg("handle captured")
			}
			if s.JustReleased() {
				e.log.Debug().Str("target", s.Target.ID).
					Bool("open", sw.Open()).Msg("pull switch released")
			}
		}
	}
	for _, d := range e.draggables {
		d.Update(e.stateBuf)
	}
}

// processRotation feeds each hand's tracker and applies the deltas to every
// registered turntable. A hand that currently holds a drag handle does not
// rotate; its tracker resets so releasing the handle starts a fresh
// baseline.
func (e *Engine) processRotation() {
	for h := 0; h < numHands; h++ {
		st := &e.states[h]
		driving := st.Active && !e.handOwnsDrag(HandID(h))
		delta := e.rotators[h].Update(driving, st.Anchor.X)
		if delta == 0 {
			continue
		}
		for _, n := range e.turntables {
			if n.IsDisposed() {
				continue
			}
			r := n.Rotation
			r.Y += delta
			n.SetRotation(r)
		}
	}
}

// handOwnsDrag reports whether the hand holds any attached session.
func (e *Engine) handOwnsDrag(h HandID) bool {
	for _, sw := range e.switches {
		if owner, ok := sw.Session().Owner(); ok && owner == h {
			return true
		}
	}
	for _, d := range e.draggables {
		if owner, ok := d.Owner(); ok && owner == h {
			return true
		}
	}
	return false
}
