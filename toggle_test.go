package grasp

import (
	"testing"
	"time"
)

func toggleFixture(t *testing.T) (*BinaryToggle, *Node) {
	t.Helper()
	slider := NewNode("slider")
	tg := NewBinaryToggle(BinaryToggleConfig{
		Slider:      slider,
		LeftTarget:  FixedTarget("side-left", Vec3{-0.1, 0, 0}, 0.05),
		RightTarget: FixedTarget("side-right", Vec3{0.1, 0, 0}, 0.05),
		LeftAnchor:  Vec3{-0.1, 0, 0},
		RightAnchor: Vec3{0.1, 0, 0},
	})
	return tg, slider
}

func TestBinaryToggle_Flip(t *testing.T) {
	tg, slider := toggleFixture(t)
	guard := NewGuard()
	tw := NewTweenRunner()
	t0 := time.Unix(0, 0)

	var changes []ToggleSide
	tg.OnChange = func(s ToggleSide) { changes = append(changes, s) }

	if !tg.Touch(Vec3{0.1, 0, 0}, t0, guard, tw) {
		t.Fatal("touch on the opposite side must flip")
	}
	if tg.Side() != ToggleRight {
		t.Fatalf("side = %v, want right", tg.Side())
	}
	// OnChange is synchronous with the flip, not with the slide animation.
	if len(changes) != 1 || changes[0] != ToggleRight {
		t.Fatalf("changes = %v, want [right]", changes)
	}
	if !tw.IsAnimating(slider) {
		t.Error("flip must start the slider tween")
	}

	tw.Update(1)
	if !vecAlmostEqual(slider.Position, Vec3{0.1, 0, 0}) {
		t.Errorf("slider position = %v, want the right anchor", slider.Position)
	}
}

func TestBinaryToggle_SameSideNoOp(t *testing.T) {
	tg, _ := toggleFixture(t)
	guard := NewGuard()
	tw := NewTweenRunner()
	t0 := time.Unix(0, 0)

	fired := 0
	tg.OnChange = func(ToggleSide) { fired++ }

	if tg.Touch(Vec3{-0.1, 0, 0}, t0, guard, tw) {
		t.Error("touch on the resting side must be a no-op")
	}
	if fired != 0 {
		t.Error("no-op touch must not fire OnChange")
	}
	// The no-op must not have consumed the window: an immediate flip works.
	if !tg.Touch(Vec3{0.1, 0, 0}, t0.Add(time.Millisecond), guard, tw) {
		t.Error("same-side touch must not burn the cooldown window")
	}
}

func TestBinaryToggle_Cooldown(t *testing.T) {
	tg, _ := toggleFixture(t)
	guard := NewGuard()
	tw := NewTweenRunner()
	t0 := time.Unix(0, 0)

	tg.Touch(Vec3{0.1, 0, 0}, t0, guard, tw)
	if tg.Touch(Vec3{-0.1, 0, 0}, t0.Add(200*time.Millisecond), guard, tw) {
		t.Error("flip inside the 400ms window must be rejected")
	}
	if !tg.Touch(Vec3{-0.1, 0, 0}, t0.Add(400*time.Millisecond), guard, tw) {
		t.Error("flip at the window boundary must succeed")
	}
}

func TestBinaryToggle_OutsideGlobalTouchGroup(t *testing.T) {
	tg, _ := toggleFixture(t)
	guard := NewGuard()
	tw := NewTweenRunner()
	t0 := time.Unix(0, 0)

	// A button press just stamped the global key; the header toggle still
	// flips because it runs on its own window only.
	guard.Stamp(GlobalTouchKey, t0)
	if !tg.Touch(Vec3{0.1, 0, 0}, t0.Add(50*time.Millisecond), guard, tw) {
		t.Error("toggle must ignore the global touch cooldown")
	}
	// And the toggle's flip must not have stamped the global key either.
	if guard.Ready(GlobalTouchKey, t0.Add(100*time.Millisecond), DefaultTouchCooldown) {
		t.Error("global window should still be held by the earlier stamp")
	}
}

func TestBinaryToggle_OverlapCloserSideWins(t *testing.T) {
	tg := NewBinaryToggle(BinaryToggleConfig{
		LeftTarget:  FixedTarget("l", Vec3{-0.01, 0, 0}, 0.1),
		RightTarget: FixedTarget("r", Vec3{0.05, 0, 0}, 0.1),
	})
	guard := NewGuard()

	// Point hits both regions but sits nearer the right center.
	if !tg.Touch(Vec3{0.04, 0, 0}, time.Unix(0, 0), guard, nil) {
		t.Fatal("expected a flip")
	}
	if tg.Side() != ToggleRight {
		t.Errorf("side = %v, want right (closer center)", tg.Side())
	}
}

func TestBinaryToggle_Miss(t *testing.T) {
	tg, _ := toggleFixture(t)
	if tg.Touch(Vec3{0, 1, 0}, time.Unix(0, 0), NewGuard(), nil) {
		t.Error("touch outside both regions must not flip")
	}
}

func TestBinaryToggle_SetSide(t *testing.T) {
	tg, slider := toggleFixture(t)

	fired := 0
	tg.OnChange = func(ToggleSide) { fired++ }

	tg.SetSide(ToggleRight)
	if tg.Side() != ToggleRight || fired != 1 {
		t.Fatalf("side = %v, changes = %d", tg.Side(), fired)
	}
	if !vecAlmostEqual(slider.Position, Vec3{0.1, 0, 0}) {
		t.Errorf("slider position = %v, want snapped to the right anchor", slider.Position)
	}

	tg.SetSide(ToggleRight)
	if fired != 1 {
		t.Error("setting the current side must not fire OnChange")
	}
}
