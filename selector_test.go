package grasp

import (
	"math"
	"testing"
	"time"
)

func selectorFixture(t *testing.T) *SteppedSelector {
	t.Helper()
	return NewSteppedSelector(SteppedSelectorConfig{
		Options:    3,
		NextTarget: FixedTarget("next", Vec3{0.2, 0, 0}, 0.05),
		PrevTarget: FixedTarget("prev", Vec3{-0.2, 0, 0}, 0.05),
	})
}

func TestSteppedSelector_StepAndClamp(t *testing.T) {
	s := selectorFixture(t)
	guard := NewGuard()
	t0 := time.Unix(0, 0)

	var picks []int
	s.OnSelect = func(i int) { picks = append(picks, i) }

	next := Vec3{0.2, 0, 0}
	prev := Vec3{-0.2, 0, 0}

	if !s.Touch(next, t0, guard) || s.Index() != 1 {
		t.Fatalf("index = %d, want 1", s.Index())
	}
	if !s.Touch(next, t0.Add(time.Second), guard) || s.Index() != 2 {
		t.Fatalf("index = %d, want 2", s.Index())
	}
	// Already at the last option: stepping next is a no-op.
	if s.Touch(next, t0.Add(2*time.Second), guard) {
		t.Error("step past the upper bound must be a no-op")
	}
	if s.Index() != 2 {
		t.Errorf("index = %d, want 2 after clamped step", s.Index())
	}

	if !s.Touch(prev, t0.Add(3*time.Second), guard) || s.Index() != 1 {
		t.Fatalf("index = %d, want 1", s.Index())
	}
	if len(picks) != 3 {
		t.Errorf("OnSelect fired %d times, want 3", len(picks))
	}
}

func TestSteppedSelector_BoundNoOpBurnsNoWindow(t *testing.T) {
	s := selectorFixture(t)
	guard := NewGuard()
	t0 := time.Unix(0, 0)

	// At index 0, prev is a no-op; both windows must stay clear.
	if s.Touch(Vec3{-0.2, 0, 0}, t0, guard) {
		t.Fatal("step past the lower bound must be a no-op")
	}
	if !s.Touch(Vec3{0.2, 0, 0}, t0.Add(time.Millisecond), guard) {
		t.Error("the clamped no-op must not consume any cooldown window")
	}
}

func TestSteppedSelector_Cooldown(t *testing.T) {
	s := selectorFixture(t)
	guard := NewGuard()
	t0 := time.Unix(0, 0)

	s.Touch(Vec3{0.2, 0, 0}, t0, guard)
	if s.Touch(Vec3{0.2, 0, 0}, t0.Add(300*time.Millisecond), guard) {
		t.Error("step inside the window must be rejected")
	}
	if !s.Touch(Vec3{0.2, 0, 0}, t0.Add(500*time.Millisecond), guard) {
		t.Error("step at the window boundary must fire")
	}
}

func TestSteppedSelector_GlobalCooldownShared(t *testing.T) {
	s := selectorFixture(t)
	guard := NewGuard()
	t0 := time.Unix(0, 0)

	guard.Stamp(GlobalTouchKey, t0)
	if s.Touch(Vec3{0.2, 0, 0}, t0.Add(100*time.Millisecond), guard) {
		t.Error("selector inside the global touch window must be rejected")
	}
	if !s.Touch(Vec3{0.2, 0, 0}, t0.Add(500*time.Millisecond), guard) {
		t.Error("selector past the global window must fire")
	}
}

func TestSteppedSelector_SelectClamps(t *testing.T) {
	s := selectorFixture(t)

	s.Select(10)
	if s.Index() != 2 {
		t.Errorf("index = %d, want clamped to 2", s.Index())
	}
	s.Select(-4)
	if s.Index() != 0 {
		t.Errorf("index = %d, want clamped to 0", s.Index())
	}
}

// --- Radial picker ---

func pickerFixture(t *testing.T) (*RadialPicker, *Node) {
	t.Helper()
	dial := NewNode("dial")
	UpdateTransforms(dial)
	p := NewRadialPicker(RadialPickerConfig{
		Dial:    dial,
		Radius:  0.5,
		Options: 4,
	})
	return p, dial
}

func TestRadialPicker_SectorSelection(t *testing.T) {
	p, _ := pickerFixture(t)
	guard := NewGuard()
	t0 := time.Unix(0, 0)

	// Four sectors of 90 degrees starting at local +X. A touch just past
	// +Y falls in sector 1.
	if !p.Touch(Vec3{-0.01, 0.3, 0}, t0, guard) {
		t.Fatal("expected a pick")
	}
	if p.Index() != 1 {
		t.Errorf("index = %d, want 1", p.Index())
	}

	// Just past -X is sector 2, just past -Y is sector 3.
	if !p.Touch(Vec3{-0.3, -0.01, 0}, t0.Add(time.Second), guard) || p.Index() != 2 {
		t.Errorf("index = %d, want 2", p.Index())
	}
	if !p.Touch(Vec3{0.01, -0.3, 0}, t0.Add(2*time.Second), guard) || p.Index() != 3 {
		t.Errorf("index = %d, want 3", p.Index())
	}
}

func TestRadialPicker_SameSectorNoOp(t *testing.T) {
	p, _ := pickerFixture(t)
	guard := NewGuard()
	t0 := time.Unix(0, 0)

	fired := 0
	p.OnSelect = func(int) { fired++ }

	// Sector 0 is the initial index; touching it changes nothing.
	if p.Touch(Vec3{0.3, 0.05, 0}, t0, guard) {
		t.Error("touch in the current sector must be a no-op")
	}
	if fired != 0 {
		t.Error("no-op must not fire OnSelect")
	}
	// And it must not have burned the window.
	if !p.Touch(Vec3{-0.01, 0.3, 0}, t0.Add(time.Millisecond), guard) {
		t.Error("no-op must not consume the cooldown window")
	}
}

func TestRadialPicker_OutsideRadiusMisses(t *testing.T) {
	p, _ := pickerFixture(t)
	guard := NewGuard()

	if p.Touch(Vec3{0, 0.6, 0}, time.Unix(0, 0), guard) {
		t.Error("touch outside the dial radius must miss")
	}
	if p.Touch(Vec3{0, 0.5, 0}, time.Unix(0, 0), guard) {
		t.Error("touch exactly at the radius must miss")
	}
	if p.Touch(Vec3{}, time.Unix(0, 0), guard) {
		t.Error("touch at the exact center has no defined angle and must miss")
	}
}

func TestRadialPicker_DialSpaceFollowsNode(t *testing.T) {
	p, dial := pickerFixture(t)
	guard := NewGuard()
	t0 := time.Unix(0, 0)

	// Rotate the dial a quarter turn about Z: world +Y is now local +X,
	// so a world +Y touch lands in sector 0 and a world -X touch in
	// sector 1.
	dial.SetRotation(Vec3{0, 0, math.Pi / 2})
	UpdateTransforms(dial)

	if p.Touch(Vec3{-0.01, 0.3, 0}, t0, guard) {
		t.Error("world +Y on the rotated dial is local sector 0, the current index")
	}
	if !p.Touch(Vec3{-0.3, -0.01, 0}, t0.Add(time.Second), guard) || p.Index() != 1 {
		t.Errorf("index = %d, want 1 for world -X on the rotated dial", p.Index())
	}
}

func TestRadialPicker_AngleOffset(t *testing.T) {
	dial := NewNode("dial")
	UpdateTransforms(dial)
	p := NewRadialPicker(RadialPickerConfig{
		Dial:        dial,
		Radius:      0.5,
		Options:     4,
		AngleOffset: math.Pi / 2,
	})

	// With sector 0 starting at +Y, a touch just past +Y is sector 0 and
	// +X wraps to the last sector.
	if p.Touch(Vec3{-0.01, 0.3, 0}, time.Unix(0, 0), NewGuard()) {
		t.Error("just past +Y with a quarter-turn offset is sector 0, the current index")
	}
	if !p.Touch(Vec3{0.3, 0.01, 0}, time.Unix(0, 0), NewGuard()) || p.Index() != 3 {
		t.Errorf("index = %d, want 3", p.Index())
	}
}

func TestRadialPicker_NilDialInert(t *testing.T) {
	p := NewRadialPicker(RadialPickerConfig{Radius: 0.5, Options: 4})
	if p.Touch(Vec3{-0.01, 0.3, 0}, time.Unix(0, 0), NewGuard()) {
		t.Error("picker without a dial must be inert")
	}

	dial := NewNode("dial")
	UpdateTransforms(dial)
	p.SetDial(dial)
	if !p.Touch(Vec3{-0.01, 0.3, 0}, time.Unix(0, 0), NewGuard()) {
		t.Error("picker must come alive once a dial is bound")
	}
}

func TestRadialPicker_SelectWraps(t *testing.T) {
	p, _ := pickerFixture(t)

	p.Select(5)
	if p.Index() != 1 {
		t.Errorf("index = %d, want 1 (5 mod 4)", p.Index())
	}
	p.Select(-1)
	if p.Index() != 3 {
		t.Errorf("index = %d, want 3 (-1 wraps)", p.Index())
	}
}
