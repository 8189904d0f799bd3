package detector

import (
	"gocv.io/x/gocv"
)

// MockDetector is a test implementation of the Detector interface.
// It allows tests to control the detection results.
type MockDetector struct {
	hands []HandLandmarks
	err   error
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetHands sets the hands that will be returned by Detect.
func (m *MockDetector) SetHands(hands []HandLandmarks) {
	m.hands = hands
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.err = err
}

// Detect returns the pre-configured hands or error.
func (m *MockDetector) Detect(frame *gocv.Mat) ([]HandLandmarks, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.hands, nil
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}

// Translate returns a copy of the snapshot with every landmark shifted by
// (dx, dy). Useful for simulating hand movement between frames.
func Translate(h HandLandmarks, dx, dy float64) HandLandmarks {
	out := HandLandmarks{
		Points:     make([]Point3D, len(h.Points)),
		Handedness: h.Handedness,
		Score:      h.Score,
	}
	for i, p := range h.Points {
		out.Points[i] = Point3D{X: p.X + dx, Y: p.Y + dy, Z: p.Z}
	}
	return out
}

// OpenHandLandmarks returns a preset snapshot with all five fingers
// extended: each finger forms a straight column with the tip well above
// its MCP, and the thumb tip is far from the wrist.
func OpenHandLandmarks() HandLandmarks {
	h := HandLandmarks{
		Points:     make([]Point3D, NumLandmarks),
		Handedness: HandednessRight,
		Score:      0.95,
	}

	h.Points[Wrist] = Point3D{X: 0.50, Y: 0.90}

	// Thumb angled out to the side, roughly collinear
	h.Points[ThumbCMC] = Point3D{X: 0.56, Y: 0.83}
	h.Points[ThumbMCP] = Point3D{X: 0.62, Y: 0.76}
	h.Points[ThumbIP] = Point3D{X: 0.68, Y: 0.68}
	h.Points[ThumbTip] = Point3D{X: 0.75, Y: 0.60}

	// Index finger straight up
	h.Points[IndexMCP] = Point3D{X: 0.55, Y: 0.65}
	h.Points[IndexPIP] = Point3D{X: 0.55, Y: 0.55}
	h.Points[IndexDIP] = Point3D{X: 0.55, Y: 0.45}
	h.Points[IndexTip] = Point3D{X: 0.55, Y: 0.35}

	// Middle finger straight up, slightly longer
	h.Points[MiddleMCP] = Point3D{X: 0.50, Y: 0.64}
	h.Points[MiddlePIP] = Point3D{X: 0.50, Y: 0.52}
	h.Points[MiddleDIP] = Point3D{X: 0.50, Y: 0.40}
	h.Points[MiddleTip] = Point3D{X: 0.50, Y: 0.28}

	// Ring finger straight up
	h.Points[RingMCP] = Point3D{X: 0.45, Y: 0.65}
	h.Points[RingPIP] = Point3D{X: 0.45, Y: 0.55}
	h.Points[RingDIP] = Point3D{X: 0.45, Y: 0.45}
	h.Points[RingTip] = Point3D{X: 0.45, Y: 0.35}

	// Pinky straight up
	h.Points[PinkyMCP] = Point3D{X: 0.40, Y: 0.68}
	h.Points[PinkyPIP] = Point3D{X: 0.40, Y: 0.60}
	h.Points[PinkyDIP] = Point3D{X: 0.40, Y: 0.51}
	h.Points[PinkyTip] = Point3D{X: 0.40, Y: 0.42}

	return h
}

// FistLandmarks returns a preset snapshot with all fingers curled so every
// fingertip sits close to the wrist. The thumb tip is kept away from the
// index tip so the pose does not read as a pinch.
func FistLandmarks() HandLandmarks {
	h := HandLandmarks{
		Points:     make([]Point3D, NumLandmarks),
		Handedness: HandednessRight,
		Score:      0.95,
	}

	h.Points[Wrist] = Point3D{X: 0.50, Y: 0.80}

	// Thumb curled across the fingers
	h.Points[ThumbCMC] = Point3D{X: 0.54, Y: 0.76}
	h.Points[ThumbMCP] = Point3D{X: 0.57, Y: 0.73}
	h.Points[ThumbIP] = Point3D{X: 0.58, Y: 0.75}
	h.Points[ThumbTip] = Point3D{X: 0.56, Y: 0.78}

	// Index curled back toward the palm
	h.Points[IndexMCP] = Point3D{X: 0.47, Y: 0.70}
	h.Points[IndexPIP] = Point3D{X: 0.46, Y: 0.66}
	h.Points[IndexDIP] = Point3D{X: 0.45, Y: 0.70}
	h.Points[IndexTip] = Point3D{X: 0.46, Y: 0.76}

	// Middle curled
	h.Points[MiddleMCP] = Point3D{X: 0.49, Y: 0.69}
	h.Points[MiddlePIP] = Point3D{X: 0.48, Y: 0.65}
	h.Points[MiddleDIP] = Point3D{X: 0.48, Y: 0.69}
	h.Points[MiddleTip] = Point3D{X: 0.48, Y: 0.75}

	// Ring curled
	h.Points[RingMCP] = Point3D{X: 0.51, Y: 0.69}
	h.Points[RingPIP] = Point3D{X: 0.51, Y: 0.65}
	h.Points[RingDIP] = Point3D{X: 0.50, Y: 0.69}
	h.Points[RingTip] = Point3D{X: 0.50, Y: 0.74}

	// Pinky curled
	h.Points[PinkyMCP] = Point3D{X: 0.53, Y: 0.70}
	h.Points[PinkyPIP] = Point3D{X: 0.53, Y: 0.67}
	h.Points[PinkyDIP] = Point3D{X: 0.53, Y: 0.70}
	h.Points[PinkyTip] = Point3D{X: 0.53, Y: 0.75}

	return h
}

// PinchLandmarks returns a preset snapshot with the thumb tip touching the
// index tip. The remaining fingers are extended, which also makes this the
// fixture for verifying that pinch pre-empts finger counting.
func PinchLandmarks() HandLandmarks {
	h := OpenHandLandmarks()

	// Bring thumb and index tips together above the palm
	h.Points[ThumbIP] = Point3D{X: 0.54, Y: 0.60}
	h.Points[ThumbTip] = Point3D{X: 0.51, Y: 0.51}
	h.Points[IndexDIP] = Point3D{X: 0.54, Y: 0.58}
	h.Points[IndexTip] = Point3D{X: 0.52, Y: 0.52}

	return h
}

// PointingLandmarks returns a preset snapshot with only the index finger
// extended, reading as a count of one.
func PointingLandmarks() HandLandmarks {
	h := FistLandmarks()

	// Straighten the index into a vertical column
	h.Points[IndexMCP] = Point3D{X: 0.52, Y: 0.65}
	h.Points[IndexPIP] = Point3D{X: 0.52, Y: 0.55}
	h.Points[IndexDIP] = Point3D{X: 0.52, Y: 0.47}
	h.Points[IndexTip] = Point3D{X: 0.52, Y: 0.38}

	return h
}

// TwoFingersLandmarks returns a preset snapshot with the index and middle
// fingers extended, reading as a count of two.
func TwoFingersLandmarks() HandLandmarks {
	h := PointingLandmarks()

	// Straighten the middle finger alongside the index
	h.Points[MiddleMCP] = Point3D{X: 0.46, Y: 0.64}
	h.Points[MiddlePIP] = Point3D{X: 0.46, Y: 0.53}
	h.Points[MiddleDIP] = Point3D{X: 0.46, Y: 0.43}
	h.Points[MiddleTip] = Point3D{X: 0.46, Y: 0.33}

	return h
}
