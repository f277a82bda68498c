package grasp

// RotationTracker converts horizontal pinch-point movement into continuous
// rotation input. The first frame a pinch becomes active latches the
// baseline and emits no rotation; each following active frame emits the
// lateral delta scaled by Speed and re-latches. Release resets the tracker;
// no momentum carries into the next pinch.
//
// Each hand gets its own tracker. When two hands drive the same object
// their outputs are applied as separate increments in the same frame, so
// simultaneous two-hand rotation compounds rather than averaging.
type RotationTracker struct {
	Speed float32

	active bool
	lastX  float32
}

// NewRotationTracker creates a tracker with the default speed.
func NewRotationTracker() *RotationTracker {
	return &RotationTracker{Speed: DefaultRotationSpeed}
}

// Update advances the tracker one frame and returns this frame's rotation
// delta in radians.
func (r *RotationTracker) Update(pinching bool, anchorX float32) float32 {
	if !pinching {
		r.active = false
		return 0
	}
	if !r.active {
		r.active = true
		r.lastX = anchorX
		return 0
	}
	delta := (anchorX - r.lastX) * r.Speed
	r.lastX = anchorX
	return delta
}
