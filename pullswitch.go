package grasp

import "github.com/tanema/gween/ease"

// PullSwitchConfig configures a PullSwitch. Handle and Target are required;
// zero-valued fields fall back to defaults.
type PullSwitchConfig struct {
	// Handle is the draggable knob node.
	Handle *Node

	// Target is the capture region, usually a NodeTarget on the handle.
	Target *Target

	// RestPosition is the handle's local anchor to snap back to after a
	// release.
	RestPosition Vec3

	// ReturnDuration is the return tween length in seconds. Default 0.8.
	ReturnDuration float32

	// HidePullCount is how many completed pulls permanently hide the
	// one-time hint affordance. Default 2.
	HidePullCount int
}

// PullSwitch is a draggable handle whose release flips a binary open/closed
// state. Grab the handle with a pinch, pull it anywhere, let go: the bound
// state flips (a side effect of release, never of capture), the handle
// snaps back to its rest anchor with an elastic overshoot, and a pull
// counter advances. After the configured number of pulls the switch hides
// its usage hint for the rest of the session.
type PullSwitch struct {
	// OnToggle runs synchronously on every release with the new state.
	OnToggle func(open bool)

	// OnHideHint runs once, when the pull counter reaches HidePullCount.
	OnHideHint func()

	session    *DragSession
	rest       Vec3
	returnDur  float32
	hideCount  int
	open       bool
	pulls      int
	hintHidden bool
}

// NewPullSwitch creates a closed pull switch.
func NewPullSwitch(cfg PullSwitchConfig) *PullSwitch {
	if cfg.ReturnDuration <= 0 {
		cfg.ReturnDuration = 0.8
	}
	if cfg.HidePullCount <= 0 {
		cfg.HidePullCount = 2
	}
	return &PullSwitch{
		session:   NewDragSession(cfg.Handle, cfg.Target),
		rest:      cfg.RestPosition,
		returnDur: cfg.ReturnDuration,
		hideCount: cfg.HidePullCount,
	}
}

// Update advances the switch one frame. The toggle flips exactly once per
// release, even if the release condition would be observable on consecutive
// frames; the session's edge reporting guarantees that.
func (p *PullSwitch) Update(states []PinchState, tw *TweenRunner) {
	p.session.Update(states)
	if !p.session.JustReleased() {
		return
	}

	p.open = !p.open
	if p.OnToggle != nil {
		p.OnToggle(p.open)
	}

	p.pulls++
	if p.pulls >= p.hideCount && !p.hintHidden {
		p.hintHidden = true
		if p.OnHideHint != nil {
			p.OnHideHint()
		}
	}

	// Snap the handle back with elastic overshoot. The tween collaborator
	// owns the cosmetics; the state flip above never waits for it.
	if tw != nil && p.session.Handle != nil {
		tw.MovePosition(p.session.Handle, p.rest, p.returnDur, ease.OutElastic, nil)
	}
}

// Open returns the switch state.
func (p *PullSwitch) Open() bool {
	return p.open
}

// Pulls returns how many completed pulls the switch has seen.
func (p *PullSwitch) Pulls() int {
	return p.pulls
}

// HintHidden reports whether the one-time hint has been dismissed.
func (p *PullSwitch) HintHidden() bool {
	return p.hintHidden
}

// Session exposes the underlying drag session for inspection.
func (p *PullSwitch) Session() *DragSession {
	return p.session
}
