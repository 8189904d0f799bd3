package gesture

import "github.com/anupamd/mudra/internal/detector"

// PoseMetrics are the raw measurements the shape predicates threshold
// against, exposed for calibration reporting.
type PoseMetrics struct {
	PinchDistance   float64
	MeanTipDistance float64
	ExtendedFingers int
}

// Measure computes the pose metrics for one snapshot. Returns false for
// invalid snapshots.
func (t Thresholds) Measure(hand *detector.HandLandmarks) (PoseMetrics, bool) {
	if !hand.Valid() {
		return PoseMetrics{}, false
	}

	return PoseMetrics{
		PinchDistance:   Distance2D(hand.Points[detector.ThumbTip], hand.Points[detector.IndexTip]),
		MeanTipDistance: meanTipDistance(hand),
		ExtendedFingers: t.CountExtendedFingers(hand),
	}, true
}
