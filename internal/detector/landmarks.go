// Package detector provides hand landmark detection interfaces and types.
package detector

// Hand landmark indices following the MediaPipe convention.
// See: https://developers.google.com/mediapipe/solutions/vision/hand_landmarker
const (
	Wrist        = 0
	ThumbCMC     = 1
	ThumbMCP     = 2
	ThumbIP      = 3
	ThumbTip     = 4
	IndexMCP     = 5
	IndexPIP     = 6
	IndexDIP     = 7
	IndexTip     = 8
	MiddleMCP    = 9
	MiddlePIP    = 10
	MiddleDIP    = 11
	MiddleTip    = 12
	RingMCP      = 13
	RingPIP      = 14
	RingDIP      = 15
	RingTip      = 16
	PinkyMCP     = 17
	PinkyPIP     = 18
	PinkyDIP     = 19
	PinkyTip     = 20
	NumLandmarks = 21
)

// Handedness labels passed through from the estimator.
const (
	HandednessLeft    = "Left"
	HandednessRight   = "Right"
	HandednessUnknown = ""
)

// Point3D represents a 3D point with coordinates normalized to the frame.
// X and Y are in [0,1]; Z is a relative, unitless depth.
type Point3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// HandLandmarks is one hand snapshot as reported by the estimator: the
// tracked landmark points plus handedness and a confidence score, passed
// through unmodified. A snapshot with fewer than NumLandmarks points is
// treated as absent rather than as an error.
type HandLandmarks struct {
	Points     []Point3D `json:"points"`
	Handedness string    `json:"handedness"`
	Score      float64   `json:"score"`
}

// Valid reports whether the snapshot carries the full set of landmarks.
func (h *HandLandmarks) Valid() bool {
	return h != nil && len(h.Points) >= NumLandmarks
}
