package detector

import "gocv.io/x/gocv"

// Detector turns video frames into hand landmark snapshots. The pipeline
// holds one detector for its lifetime and swaps implementations only in
// tests.
type Detector interface {
	// Detect analyzes a frame and returns one HandLandmarks per detected
	// hand, empty when no hand is visible.
	Detect(frame *gocv.Mat) ([]HandLandmarks, error)

	// Close releases the estimator and any subprocess behind it.
	Close() error
}

// Config tunes the hand-pose estimator. The confidence values are passed
// through to the estimator unchanged.
type Config struct {
	// MaxHands caps how many hands a single frame may report.
	MaxHands int

	// MinConfidence is the minimum detection confidence, 0.0-1.0.
	MinConfidence float64

	// MinTrackingConf is the minimum inter-frame tracking confidence,
	// 0.0-1.0.
	MinTrackingConf float64
}

// DefaultConfig returns the estimator defaults. The config loader seeds
// its detector defaults from here so the values live in one place.
func DefaultConfig() Config {
	return Config{
		MaxHands:        2,
		MinConfidence:   0.5,
		MinTrackingConf: 0.5,
	}
}
