package grasp

import (
	"math"
	"time"

	"github.com/chewxy/math32"
)

// SteppedSelectorConfig configures a SteppedSelector.
type SteppedSelectorConfig struct {
	// Options is the number of selectable entries. Required, >= 1.
	Options int

	// NextTarget and PrevTarget are the directional touch controls.
	NextTarget *Target
	PrevTarget *Target

	// Cooldown is the per-control refire window. Default 500ms.
	Cooldown time.Duration
}

// SteppedSelector is a discrete index into an ordered option list driven by
// next/previous touch controls. The index clamps at the bounds; touching
// "next" on the last option does nothing. Selection effects (scale factor,
// model swap) apply immediately through OnSelect; nothing waits for an
// animation.
type SteppedSelector struct {
	// OnSelect runs synchronously whenever the index changes.
	OnSelect func(index int)

	next     *Target
	prev     *Target
	count    int
	cooldown time.Duration
	index    int
}

// NewSteppedSelector creates a selector at index 0.
func NewSteppedSelector(cfg SteppedSelectorConfig) *SteppedSelector {
	if cfg.Options < 1 {
		cfg.Options = 1
	}
	if cfg.Cooldown <= 0 {
		cfg.Cooldown = DefaultTouchCooldown
	}
	return &SteppedSelector{
		next:     cfg.NextTarget,
		prev:     cfg.PrevTarget,
		count:    cfg.Options,
		cooldown: cfg.Cooldown,
	}
}

// Touch offers a touch point to the directional controls and reports
// whether the index changed. A touch that would step past a bound is a
// no-op and consumes no cooldown window.
func (s *SteppedSelector) Touch(point Vec3, now time.Time, guard *Guard) bool {
	var target *Target
	step := 0
	switch {
	case s.next.Hit(point):
		target, step = s.next, 1
	case s.prev.Hit(point):
		target, step = s.prev, -1
	default:
		return false
	}

	want := s.index + step
	if want < 0 || want >= s.count {
		return false
	}
	if !guard.Ready(GlobalTouchKey, now, DefaultTouchCooldown) ||
		!guard.Ready(target.ID, now, s.cooldown) {
		return false
	}
	guard.Stamp(GlobalTouchKey, now)
	guard.Stamp(target.ID, now)

	s.index = want
	if s.OnSelect != nil {
		s.OnSelect(s.index)
	}
	return true
}

// Select forces the index, clamped to the option bounds. OnSelect fires if
// the index changes.
func (s *SteppedSelector) Select(i int) {
	if i < 0 {
		i = 0
	}
	if i >= s.count {
		i = s.count - 1
	}
	if i == s.index {
		return
	}
	s.index = i
	if s.OnSelect != nil {
		s.OnSelect(s.index)
	}
}

// Index returns the current selection.
func (s *SteppedSelector) Index() int {
	return s.index
}

// --- Radial picker ---

// RadialPickerConfig configures a RadialPicker.
type RadialPickerConfig struct {
	// Dial is the picker's center node; touches are evaluated in its
	// local XY plane. A nil dial makes the picker inert until one is set.
	Dial *Node

	// Radius is the dial radius in the dial's local units.
	Radius float32

	// Options is the number of angular sectors. Required, >= 1.
	Options int

	// AngleOffset rotates sector 0's start, radians counter-clockwise
	// from local +X.
	AngleOffset float32

	// CooldownKey is the per-picker cooldown key. Defaults to "radial".
	CooldownKey string

	// Cooldown is the refire window. Default 500ms.
	Cooldown time.Duration
}

// RadialPicker maps a touch on a dial to a discrete option by angular
// sector. The angle is periodic, so the index wraps and there are no
// bounds to clamp. Selecting applies its effect immediately
// through OnSelect; any highlight animation is the host's business and
// runs independently.
type RadialPicker struct {
	// OnSelect runs synchronously whenever a new sector is picked.
	OnSelect func(index int)

	dial     *Node
	radius   float32
	count    int
	offset   float32
	key      string
	cooldown time.Duration
	index    int
}

// NewRadialPicker creates a picker at index 0.
func NewRadialPicker(cfg RadialPickerConfig) *RadialPicker {
	if cfg.Options < 1 {
		cfg.Options = 1
	}
	if cfg.CooldownKey == "" {
		cfg.CooldownKey = "radial"
	}
	if cfg.Cooldown <= 0 {
		cfg.Cooldown = DefaultTouchCooldown
	}
	return &RadialPicker{
		dial:     cfg.Dial,
		radius:   cfg.Radius,
		count:    cfg.Options,
		offset:   cfg.AngleOffset,
		key:      cfg.CooldownKey,
		cooldown: cfg.Cooldown,
	}
}

// SetDial binds the picker to a dial node, for affordances whose assets
// load after the picker is constructed.
func (p *RadialPicker) SetDial(dial *Node) {
	p.dial = dial
}

// Touch offers a touch point to the dial and reports whether the selection
// changed. A missing or disposed dial makes every touch a miss.
func (p *RadialPicker) Touch(point Vec3, now time.Time, guard *Guard) bool {
	if p.dial == nil || p.dial.IsDisposed() {
		return false
	}
	local := p.dial.WorldToLocal(point)
	planar := math32.Sqrt(local.X*local.X + local.Y*local.Y)
	if planar >= p.radius || planar < 1e-6 {
		return false
	}

	want := p.sectorAt(local)
	if want == p.index {
		return false
	}
	if !guard.Ready(GlobalTouchKey, now, DefaultTouchCooldown) ||
		!guard.Ready(p.key, now, p.cooldown) {
		return false
	}
	guard.Stamp(GlobalTouchKey, now)
	guard.Stamp(p.key, now)

	p.index = want
	if p.OnSelect != nil {
		p.OnSelect(p.index)
	}
	return true
}

// sectorAt converts a dial-local point to a sector index.
func (p *RadialPicker) sectorAt(local Vec3) int {
	const twoPi = 2 * math.Pi
	angle := math32.Atan2(local.Y, local.X) - p.offset
	angle = math32.Mod(angle, twoPi)
	if angle < 0 {
		angle += twoPi
	}
	idx := int(angle / (twoPi / float32(p.count)))
	if idx >= p.count { // guard against float rounding at exactly 2*pi
		idx = p.count - 1
	}
	return idx
}

// Select forces the index with wraparound. OnSelect fires if it changes.
func (p *RadialPicker) Select(i int) {
	i = ((i % p.count) + p.count) % p.count
	if i == p.index {
		return
	}
	p.index = i
	if p.OnSelect != nil {
		p.OnSelect(p.index)
	}
}

// Index returns the current selection.
func (p *RadialPicker) Index() int {
	return p.index
}
