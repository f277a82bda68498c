package grasp

import (
	"time"

	"github.com/chewxy/math32"
)

// Vec3 is a 3D vector in world units (meters, matching real hand scale).
// Used for joint positions, target anchors, and node transforms.
type Vec3 struct {
	X, Y, Z float32
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// MulScalar returns v scaled by s.
func (v Vec3) MulScalar(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Length returns the Euclidean length of v.
func (v Vec3) Length() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Dist returns the Euclidean distance between v and o.
func (v Vec3) Dist(o Vec3) float32 {
	dx := v.X - o.X
	dy := v.Y - o.Y
	dz := v.Z - o.Z
	return math32.Sqrt(dx*dx + dy*dy + dz*dz)
}

// HandID identifies a tracked hand.
type HandID uint8

const (
	HandLeft HandID = iota
	HandRight

	numHands = 2
)

// String returns "left" or "right".
func (h HandID) String() string {
	if h == HandLeft {
		return "left"
	}
	return "right"
}

// --- Design constants ---

const (
	// DefaultPinchThreshold is the thumb-to-index distance below which a
	// pinch is active (strictly below; at the threshold it is inactive).
	DefaultPinchThreshold float32 = 0.02

	// DefaultCaptureRadius is the distance at which a pinch anchor can
	// pick up a draggable handle.
	DefaultCaptureRadius float32 = 0.08

	// DefaultRotationSpeed converts lateral pinch travel (world units)
	// into rotation (radians).
	DefaultRotationSpeed float32 = 3.0
)

const (
	// DefaultTouchCooldown is the per-target refire window, and also the
	// global window shared by all touch-driven controls.
	DefaultTouchCooldown = 500 * time.Millisecond

	// DefaultToggleCooldown is the refire window for header-style binary
	// toggles.
	DefaultToggleCooldown = 400 * time.Millisecond

	// DefaultVisualResetDelay governs when a pressed visual returns to
	// rest. It is separate from the refire cooldown.
	DefaultVisualResetDelay = 300 * time.Millisecond
)

// GlobalTouchKey is the cooldown key shared by all touch-driven controls.
// It prevents two unrelated controls from firing in rapid succession from a
// single sweeping gesture.
const GlobalTouchKey = "touch"
