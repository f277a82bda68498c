package grasp

// Joint names follow the WebXR hand-input convention so host trackers can
// pass their joint maps through unchanged.
const (
	JointThumbTip = "thumb-tip"
	JointIndexTip = "index-finger-tip"
	JointWrist    = "wrist"
)

// Joint is a named joint observation. Valid is false until the joint has
// been seen at least once; consumers must check it before using Position.
type Joint struct {
	Position Vec3
	Valid    bool
}

// HandFrame is one hand's raw tracking data for a single frame, as delivered
// by the host tracking source. Absent hands simply have no frame.
type HandFrame struct {
	Hand   HandID
	Joints map[string]Vec3
}

// HandSample is the stable per-hand view produced by the Sampler. When a
// hand drops out of tracking its last joint positions are retained but
// Present reports false; consumers must check Present before acting so
// stale positions are never mistaken for live ones.
type HandSample struct {
	Hand    HandID
	Present bool

	joints map[string]Joint
}

// Joint returns the named joint. The zero Joint (Valid false) is returned
// for joints that have never been observed.
func (s *HandSample) Joint(name string) Joint {
	return s.joints[name]
}

// Sampler copies raw tracking data into stable per-hand samples, once per
// frame. Samples persist across frames so edge detection downstream can
// compare against the previous state.
type Sampler struct {
	samples [numHands]*HandSample
}

// NewSampler creates a sampler with empty samples for both hands.
func NewSampler() *Sampler {
	s := &Sampler{}
	for i := range s.samples {
		s.samples[i] = &HandSample{
			Hand:   HandID(i),
			joints: make(map[string]Joint),
		}
	}
	return s
}

// Sample ingests this frame's tracking data. Hands without a frame are
// marked not present; their previous joint positions are retained. Joints
// missing from a present hand's frame keep their previous observation.
func (s *Sampler) Sample(frames []HandFrame) {
	var seen [numHands]bool
	for i := range frames {
		f := &frames[i]
		if int(f.Hand) >= numHands {
			continue
		}
		seen[f.Hand] = true
		sample := s.samples[f.Hand]
		sample.Present = true
		for name, pos := range f.Joints {
			sample.joints[name] = Joint{Position: pos, Valid: true}
		}
	}
	for i := range s.samples {
		if !seen[i] {
			s.samples[i].Present = false
		}
	}
}

// Hand returns the stable sample for the given hand.
func (s *Sampler) Hand(id HandID) *HandSample {
	return s.samples[id]
}
