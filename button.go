package grasp

import (
	"time"

	"github.com/tanema/gween/ease"
)

// ButtonPhase is the press-button state.
type ButtonPhase uint8

const (
	ButtonIdle      ButtonPhase = iota // accepting touches
	ButtonPressing                     // shrink animation running
	ButtonReleasing                    // action done, grow animation running
)

// String returns the phase name.
func (p ButtonPhase) String() string {
	switch p {
	case ButtonPressing:
		return "pressing"
	case ButtonReleasing:
		return "releasing"
	default:
		return "idle"
	}
}

// PressButtonConfig configures a PressButton. Node and Target are required;
// zero-valued fields fall back to defaults.
type PressButtonConfig struct {
	// Node is the button visual, scaled down and back up on press.
	Node *Node

	// Target is the touch region.
	Target *Target

	// CooldownKey is the per-target cooldown key. Defaults to Target.ID.
	CooldownKey string

	// Cooldown is the per-target refire window. Default 500ms.
	Cooldown time.Duration

	// PressScale is the shrink factor applied while pressed. Default 0.8.
	PressScale float32

	// PressDuration and ReleaseDuration are the shrink and grow tween
	// lengths in seconds. Defaults 0.15 and 0.3 (the grow-back matches
	// the visual reset delay).
	PressDuration   float32
	ReleaseDuration float32

	// MaxPressTime forces the button back to idle if a tween completion
	// never arrives within this window after the press. Zero disables
	// the watchdog, matching the original behavior of staying non-idle
	// until the completion event shows up.
	MaxPressTime time.Duration
}

// PressButton is the press-to-act machine: Idle -> Pressing -> Releasing ->
// Idle. A touch that passes the hit test and both cooldowns starts the
// shrink tween; when that completes the bound Action runs and the grow
// tween starts; when that completes the button is idle again. Touches while
// not idle are ignored, so a second touch during the press animation cannot
// re-enter the machine.
type PressButton struct {
	// Action runs once per press, after the shrink animation completes
	// and before the grow-back begins. Visual or material swaps belong
	// here.
	Action func()

	node      *Node
	target    *Target
	key       string
	cooldown  time.Duration
	pressMul  float32
	pressDur  float32
	growDur   float32
	maxPress  time.Duration
	phase     ButtonPhase
	restScale Vec3
	pressedAt time.Time
}

// NewPressButton creates an idle press button.
func NewPressButton(cfg PressButtonConfig) *PressButton {
	if cfg.CooldownKey == "" && cfg.Target != nil {
		cfg.CooldownKey = cfg.Target.ID
	}
	if cfg.Cooldown <= 0 {
		cfg.Cooldown = DefaultTouchCooldown
	}
	if cfg.PressScale <= 0 {
		cfg.PressScale = 0.8
	}
	if cfg.PressDuration <= 0 {
		cfg.PressDuration = 0.15
	}
	if cfg.ReleaseDuration <= 0 {
		cfg.ReleaseDuration = float32(DefaultVisualResetDelay.Seconds())
	}
	return &PressButton{
		node:     cfg.Node,
		target:   cfg.Target,
		key:      cfg.CooldownKey,
		cooldown: cfg.Cooldown,
		pressMul: cfg.PressScale,
		pressDur: cfg.PressDuration,
		growDur:  cfg.ReleaseDuration,
		maxPress: cfg.MaxPressTime,
	}
}

// Touch offers a touch point to the button and reports whether a press
// fired. The point must hit the target and both the global and per-target
// cooldowns must be ready; both are stamped together only when the press
// actually fires.
func (b *PressButton) Touch(point Vec3, now time.Time, guard *Guard, tw *TweenRunner) bool {
	if b.phase != ButtonIdle {
		return false
	}
	if b.node == nil || b.node.IsDisposed() || !b.target.Hit(point) {
		return false
	}
	if !guard.Ready(GlobalTouchKey, now, DefaultTouchCooldown) ||
		!guard.Ready(b.key, now, b.cooldown) {
		return false
	}
	guard.Stamp(GlobalTouchKey, now)
	guard.Stamp(b.key, now)

	b.phase = ButtonPressing
	b.pressedAt = now
	b.restScale = b.node.Scale
	pressed := b.restScale.MulScalar(b.pressMul)
	tw.MoveScale(b.node, pressed, b.pressDur, ease.OutQuad, func() {
		b.finishPress(tw)
	})
	return true
}

// finishPress is the shrink-complete event: run the action, start growing.
func (b *PressButton) finishPress(tw *TweenRunner) {
	if b.phase != ButtonPressing {
		return
	}
	if b.Action != nil {
		b.Action()
	}
	b.phase = ButtonReleasing
	tw.MoveScale(b.node, b.restScale, b.growDur, ease.OutQuad, func() {
		b.finishRelease()
	})
}

// finishRelease is the grow-complete event: back to idle.
func (b *PressButton) finishRelease() {
	if b.phase != ButtonReleasing {
		return
	}
	b.phase = ButtonIdle
}

// Tick runs the optional stuck-state watchdog. When a completion event is
// lost (the animated node was disposed, or the host dropped the tween) the
// button would otherwise stay non-idle forever; past MaxPressTime it kills
// the scale tween, restores the rest scale, and returns to idle.
func (b *PressButton) Tick(now time.Time, tw *TweenRunner) {
	if b.phase == ButtonIdle || b.maxPress <= 0 {
		return
	}
	if now.Sub(b.pressedAt) < b.maxPress {
		return
	}
	if tw != nil && b.node != nil {
		tw.KillChannel(b.node, ChannelScale)
	}
	if b.node != nil && !b.node.IsDisposed() {
		b.node.SetScale(b.restScale)
	}
	b.phase = ButtonIdle
}

// Phase returns the button's current state.
func (b *PressButton) Phase() ButtonPhase {
	return b.phase
}
