package grasp

import "testing"

func TestRotationTracker_FirstFrameLatches(t *testing.T) {
	r := NewRotationTracker()
	if d := r.Update(true, 0.5); d != 0 {
		t.Errorf("first active frame delta = %v, want 0", d)
	}
}

func TestRotationTracker_DeltaScaledBySpeed(t *testing.T) {
	r := &RotationTracker{Speed: 3}
	r.Update(true, 0.1)

	if d := r.Update(true, 0.2); !almostEqual(d, 0.3) {
		t.Errorf("delta = %v, want 0.3", d)
	}
	// Moving back produces a negative delta from the re-latched baseline.
	if d := r.Update(true, 0.15); !almostEqual(d, -0.15) {
		t.Errorf("delta = %v, want -0.15", d)
	}
}

func TestRotationTracker_ReleaseResets(t *testing.T) {
	r := &RotationTracker{Speed: 1}
	r.Update(true, 0.1)
	r.Update(true, 0.2)

	if d := r.Update(false, 0.9); d != 0 {
		t.Errorf("released frame delta = %v, want 0", d)
	}
	// Re-pinch at a far position: the old baseline must not leak through.
	if d := r.Update(true, 5); d != 0 {
		t.Errorf("re-latch frame delta = %v, want 0", d)
	}
	if d := r.Update(true, 5.25); !almostEqual(d, 0.25) {
		t.Errorf("delta after re-latch = %v, want 0.25", d)
	}
}

func TestRotationTracker_IdleEmitsNothing(t *testing.T) {
	r := NewRotationTracker()
	for i := 0; i < 3; i++ {
		if d := r.Update(false, float32(i)); d != 0 {
			t.Fatalf("idle frame %d delta = %v, want 0", i, d)
		}
	}
}
