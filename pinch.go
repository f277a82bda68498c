package grasp

// PinchState is one hand's pinch status for the current frame. The Just*
// flags are edge-triggered: true only on the frame the transition happened.
type PinchState struct {
	Hand   HandID
	Active bool

	// Anchor is the thumb-tip world position while active. All dependent
	// systems (hit testing, dragging, rotation) use it as the pinch point.
	Anchor Vec3

	JustPinched  bool
	JustReleased bool
}

// PinchDetector derives a binary pinch state per hand from the thumb-to-index
// distance. By default there is no hysteresis: the threshold crossing is
// instantaneous both ways, and a distance exactly at the threshold is
// inactive. Setting ReleaseEpsilon widens the exit threshold to reduce
// chatter at the boundary.
type PinchDetector struct {
	Hand           HandID
	Threshold      float32
	ReleaseEpsilon float32

	state PinchState
}

// NewPinchDetector creates a detector with the default threshold.
func NewPinchDetector(hand HandID) *PinchDetector {
	return &PinchDetector{
		Hand:      hand,
		Threshold: DefaultPinchThreshold,
		state:     PinchState{Hand: hand},
	}
}

// Update consumes this frame's hand sample and returns the new pinch state.
// A hand that is not present, or whose thumb or index joint has never been
// observed, reads as not pinching; if it was pinching, that is an observable
// release edge (the dangling-session rule depends on this).
func (d *PinchDetector) Update(sample *HandSample) PinchState {
	d.state.JustPinched = false
	d.state.JustReleased = false

	thumb := sample.Joint(JointThumbTip)
	index := sample.Joint(JointIndexTip)

	if !sample.Present || !thumb.Valid || !index.Valid {
		if d.state.Active {
			d.state.Active = false
			d.state.JustReleased = true
		}
		return d.state
	}

	dist := thumb.Position.Dist(index.Position)
	if d.state.Active {
		if dist >= d.Threshold+d.ReleaseEpsilon {
			d.state.Active = false
			d.state.JustReleased = true
		}
	} else {
		if dist < d.Threshold {
			d.state.Active = true
			d.state.JustPinched = true
		}
	}

	if d.state.Active {
		d.state.Anchor = thumb.Position
	}
	return d.state
}

// State returns the most recent pinch state without advancing it.
func (d *PinchDetector) State() PinchState {
	return d.state
}
