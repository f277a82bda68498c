package grasp

// DragPhase is the lifecycle state of a DragSession.
type DragPhase uint8

const (
	DragIdle     DragPhase = iota // no hand holds the handle
	DragAttached                  // one hand holds the handle and it follows
)

// String returns "idle" or "attached".
func (p DragPhase) String() string {
	if p == DragAttached {
		return "attached"
	}
	return "idle"
}

// DragSession tracks the capture/follow/release lifecycle for one draggable
// handle. The cycle is Idle -> Attached -> Idle with no terminal state.
//
// Capture: an active pinch anchor strictly within the target's capture
// radius attaches the session, provided no hand already holds it. When both
// hands qualify in the same frame the closer pinch point wins. A target
// already attached cannot be captured by the other hand; there is at most
// one session owner per handle at any time.
//
// Follow: every attached frame the handle's local position is set to the
// anchor converted into the handle parent's space, so the handle tracks the
// hand with zero lag even if the parent itself moves or rotates. The
// session holds exclusive write access to the handle transform while
// attached.
//
// Release: the owning hand's pinch going inactive detaches. Tracking loss
// counts as release too (the pinch detector reports a release edge on
// presence loss), so the session can never stay attached to a hand that no
// longer exists. Release side effects (toggle flips, return tweens) belong
// to the owning affordance; the session only reports the edge, exactly once.
type DragSession struct {
	Handle *Node
	Target *Target

	phase        DragPhase
	owner        HandID
	justAttached bool
	justReleased bool
	forced       bool
}

// NewDragSession creates an idle session for the given handle and capture
// target.
func NewDragSession(handle *Node, target *Target) *DragSession {
	return &DragSession{Handle: handle, Target: target}
}

// Update advances the session one frame given every hand's pinch state.
func (d *DragSession) Update(states []PinchState) {
	d.justAttached = false
	d.justReleased = false

	// A forced release between frames is re-reported here, once, so
	// owners that poll edges during their frame tick observe it. No
	// recapture on this frame, same as a normal release.
	if d.forced {
		d.forced = false
		d.justReleased = true
		return
	}

	if d.phase == DragAttached {
		var ownerState *PinchState
		for i := range states {
			if states[i].Hand == d.owner {
				ownerState = &states[i]
				break
			}
		}
		if ownerState == nil || !ownerState.Active {
			// Release. No recapture on the release frame; the other
			// hand may pick the handle up next frame.
			d.phase = DragIdle
			d.justReleased = true
			return
		}
		d.follow(ownerState.Anchor)
		return
	}

	pos, ok := d.Target.worldPosition()
	if !ok {
		return
	}
	hand, found := closestPinchingHand(pos, d.Target.CaptureRadius, states)
	if !found {
		return
	}
	d.phase = DragAttached
	d.owner = hand
	d.justAttached = true
	for i := range states {
		if states[i].Hand == hand {
			d.follow(states[i].Anchor)
			break
		}
	}
}

// follow moves the handle to the anchor, expressed in the parent's space.
func (d *DragSession) follow(anchor Vec3) {
	if d.Handle == nil || d.Handle.IsDisposed() {
		return
	}
	local := anchor
	if d.Handle.Parent != nil {
		local = d.Handle.Parent.WorldToLocal(anchor)
	}
	d.Handle.SetPosition(local)
}

// ForceRelease detaches the session immediately, reporting a release edge
// on the current frame and again on the next Update, so owners that read
// edges during their frame tick (pull switches) run their release side
// effects. Hosts use this when an affordance is torn down mid-hold.
func (d *DragSession) ForceRelease() {
	if d.phase != DragAttached {
		return
	}
	d.phase = DragIdle
	d.justReleased = true
	d.forced = true
}

// Phase returns the session's current lifecycle state.
func (d *DragSession) Phase() DragPhase {
	return d.phase
}

// Owner returns the holding hand. The second return is false while idle.
func (d *DragSession) Owner() (HandID, bool) {
	return d.owner, d.phase == DragAttached
}

// JustAttached reports whether the session attached this frame.
func (d *DragSession) JustAttached() bool {
	return d.justAttached
}

// JustReleased reports whether the session released this frame.
func (d *DragSession) JustReleased() bool {
	return d.justReleased
}
