package grasp

import (
	"time"

	"github.com/tanema/gween/ease"
)

// ToggleSide is a binary toggle position.
type ToggleSide uint8

const (
	ToggleLeft ToggleSide = iota
	ToggleRight
)

// String returns "left" or "right".
func (s ToggleSide) String() string {
	if s == ToggleRight {
		return "right"
	}
	return "left"
}

// BinaryToggleConfig configures a BinaryToggle. The two side targets are
// required; the slider node is optional (a toggle can be purely logical).
type BinaryToggleConfig struct {
	// Slider is the visual knob that glides between the side anchors.
	Slider *Node

	// LeftTarget and RightTarget are the touch regions for each side.
	LeftTarget  *Target
	RightTarget *Target

	// LeftAnchor and RightAnchor are the slider's local rest positions.
	LeftAnchor  Vec3
	RightAnchor Vec3

	// CooldownKey is the per-toggle cooldown key. Defaults to the left
	// target's ID.
	CooldownKey string

	// Cooldown is the per-toggle refire window. Default 400ms.
	Cooldown time.Duration

	// SlideDuration is the slider tween length in seconds. Default 0.25.
	SlideDuration float32
}

// BinaryToggle is a two-position header switch. A qualifying touch near
// either side target moves the state to that side if it differs and the
// toggle's cooldown has elapsed. The slider animates to the side anchor,
// but dependent visuals (label emphasis, model visibility) refresh through
// OnChange synchronously with the flip, never deferred to the animation.
type BinaryToggle struct {
	// OnChange runs synchronously whenever the side flips.
	OnChange func(side ToggleSide)

	slider   *Node
	left     *Target
	right    *Target
	leftPos  Vec3
	rightPos Vec3
	key      string
	cooldown time.Duration
	slideDur float32
	side     ToggleSide
}

// NewBinaryToggle creates a toggle resting on the left side.
func NewBinaryToggle(cfg BinaryToggleConfig) *BinaryToggle {
	if cfg.CooldownKey == "" && cfg.LeftTarget != nil {
		cfg.CooldownKey = cfg.LeftTarget.ID
	}
	if cfg.Cooldown <= 0 {
		cfg.Cooldown = DefaultToggleCooldown
	}
	if cfg.SlideDuration <= 0 {
		cfg.SlideDuration = 0.25
	}
	return &BinaryToggle{
		slider:   cfg.Slider,
		left:     cfg.LeftTarget,
		right:    cfg.RightTarget,
		leftPos:  cfg.LeftAnchor,
		rightPos: cfg.RightAnchor,
		key:      cfg.CooldownKey,
		cooldown: cfg.Cooldown,
		slideDur: cfg.SlideDuration,
	}
}

// Touch offers a touch point to the toggle and reports whether it flipped.
// A touch on the side the toggle already rests on is a no-op and does not
// consume any cooldown window.
func (t *BinaryToggle) Touch(point Vec3, now time.Time, guard *Guard, tw *TweenRunner) bool {
	want := t.side
	switch {
	case t.left.Hit(point) && t.right.Hit(point):
		// Overlapping regions: the closer side wins.
		lp, _ := t.left.worldPosition()
		rp, _ := t.right.worldPosition()
		if point.Dist(lp) <= point.Dist(rp) {
			want = ToggleLeft
		} else {
			want = ToggleRight
		}
	case t.left.Hit(point):
		want = ToggleLeft
	case t.right.Hit(point):
		want = ToggleRight
	default:
		return false
	}
	if want == t.side {
		return false
	}
	// Header toggles sit outside the global touch group: only the
	// per-toggle window gates them, so the 400ms default is effective.
	if !guard.TryFire(t.key, now, t.cooldown) {
		return false
	}

	t.side = want
	if t.OnChange != nil {
		t.OnChange(t.side)
	}
	if tw != nil && t.slider != nil {
		anchor := t.leftPos
		if t.side == ToggleRight {
			anchor = t.rightPos
		}
		tw.MovePosition(t.slider, anchor, t.slideDur, ease.OutCubic, nil)
	}
	return true
}

// SetSide forces the toggle to a side without animation or cooldown.
// OnChange fires if the side differs.
func (t *BinaryToggle) SetSide(side ToggleSide) {
	if side == t.side {
		return
	}
	t.side = side
	if t.OnChange != nil {
		t.OnChange(t.side)
	}
	if t.slider != nil {
		anchor := t.leftPos
		if side == ToggleRight {
			anchor = t.rightPos
		}
		t.slider.SetPosition(anchor)
	}
}

// Side returns the toggle's current side.
func (t *BinaryToggle) Side() ToggleSide {
	return t.side
}
