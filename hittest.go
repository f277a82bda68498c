package grasp

// Target is a registered interactive region: an ID, a world-position
// provider, and a capture radius. The engine only ever reads the position;
// the mesh stays with the UI owner. A nil or not-ready provider makes every
// hit test against the target negative, so affordances whose assets have not
// loaded yet degrade to "never fires" instead of crashing.
type Target struct {
	ID string

	// Position reports the target's current world position. The second
	// return is false while the position is unavailable (asset not yet
	// loaded, node disposed). May be nil.
	Position func() (Vec3, bool)

	// CaptureRadius is the hit distance. A point hits when strictly
	// closer than this.
	CaptureRadius float32

	// ReleaseRadius optionally widens the region a point must leave
	// before the target counts as exited (hysteresis). Zero means no
	// hysteresis: ReleaseRadius is treated as CaptureRadius.
	ReleaseRadius float32

	// entered tracks containment between Hit calls for the hysteresis.
	entered bool
}

// worldPosition is the nil-safe provider read.
func (t *Target) worldPosition() (Vec3, bool) {
	if t == nil || t.Position == nil {
		return Vec3{}, false
	}
	return t.Position()
}

// Hit reports whether point is strictly within the target's capture region.
// With ReleaseRadius set wider than CaptureRadius the target is sticky: once
// a point has hit, it keeps hitting until it moves out to ReleaseRadius or
// beyond. The hysteresis tracks one probing point stream per target; hosts
// that probe a single target with several independent points should give
// each its own Target.
func (t *Target) Hit(point Vec3) bool {
	pos, ok := t.worldPosition()
	if !ok {
		return false
	}
	d := point.Dist(pos)
	if t.entered {
		if d < t.releaseRadius() {
			return true
		}
		t.entered = false
		return false
	}
	if d < t.CaptureRadius {
		t.entered = true
		return true
	}
	return false
}

// releaseRadius is the exit threshold: ReleaseRadius when it widens the
// capture region, CaptureRadius otherwise.
func (t *Target) releaseRadius() float32 {
	if t.ReleaseRadius > t.CaptureRadius {
		return t.ReleaseRadius
	}
	return t.CaptureRadius
}

// NodeTarget builds a Target whose position follows a scene node. The
// provider reports unavailable when the node is nil, disposed, or hidden.
func NodeTarget(id string, n *Node, captureRadius float32) *Target {
	return &Target{
		ID: id,
		Position: func() (Vec3, bool) {
			if n == nil || n.IsDisposed() || !n.Visible {
				return Vec3{}, false
			}
			return n.WorldPosition(), true
		},
		CaptureRadius: captureRadius,
	}
}

// FixedTarget builds a Target at a constant world position.
func FixedTarget(id string, pos Vec3, captureRadius float32) *Target {
	return &Target{
		ID:            id,
		Position:      func() (Vec3, bool) { return pos, true },
		CaptureRadius: captureRadius,
	}
}

// Nearest returns the hit target closest to point, or nil if no target is
// hit. When two targets qualify at the same distance the earlier-registered
// one wins, so exclusive groups have a deterministic evaluation order.
func Nearest(point Vec3, targets []*Target) *Target {
	var best *Target
	var bestDist float32
	for _, t := range targets {
		pos, ok := t.worldPosition()
		if !ok {
			continue
		}
		d := point.Dist(pos)
		if d >= t.CaptureRadius {
			continue
		}
		if best == nil || d < bestDist {
			best = t
			bestDist = d
		}
	}
	return best
}

// All appends every hit target to buf and returns it. Used when multiple
// simultaneous hits are valid (independent target sets). The buf parameter
// allows reuse across frames.
func All(point Vec3, targets []*Target, buf []*Target) []*Target {
	for _, t := range targets {
		if t.Hit(point) {
			buf = append(buf, t)
		}
	}
	return buf
}

// closestPinchingHand picks, among the given per-hand pinch states, the
// active hand whose anchor is nearest to pos and strictly within radius.
// This is the tie-break for exclusive actions wanted by both hands: the
// closer hand wins, re-evaluated every frame by callers.
func closestPinchingHand(pos Vec3, radius float32, states []PinchState) (HandID, bool) {
	var winner HandID
	var winnerDist float32
	found := false
	for i := range states {
		st := &states[i]
		if !st.Active {
			continue
		}
		d := st.Anchor.Dist(pos)
		if d >= radius {
			continue
		}
		if !found || d < winnerDist {
			winner = st.Hand
			winnerDist = d
			found = true
		}
	}
	return winner, found
}
