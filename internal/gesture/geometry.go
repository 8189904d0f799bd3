// Package gesture classifies hand landmark snapshots into symbolic gestures.
package gesture

import (
	"math"

	"github.com/anupamd/mudra/internal/detector"
)

// Distance2D returns the planar Euclidean distance between two landmarks,
// ignoring depth. Proximity checks use this so that depth noise from the
// estimator does not affect them.
func Distance2D(a, b detector.Point3D) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// AngleAt returns the angle in degrees at vertex b between the vectors
// (a-b) and (c-b), computed in full 3D. When either vector has zero
// length the angle is reported as 180 (maximally straight); returning a
// sentinel here keeps NaN out of every downstream threshold comparison.
func AngleAt(a, b, c detector.Point3D) float64 {
	v1x, v1y, v1z := a.X-b.X, a.Y-b.Y, a.Z-b.Z
	v2x, v2y, v2z := c.X-b.X, c.Y-b.Y, c.Z-b.Z

	n1 := math.Sqrt(v1x*v1x + v1y*v1y + v1z*v1z)
	n2 := math.Sqrt(v2x*v2x + v2y*v2y + v2z*v2z)
	if n1 == 0 || n2 == 0 {
		return 180.0
	}

	cos := (v1x*v2x + v1y*v2y + v1z*v2z) / (n1 * n2)
	cos = math.Max(-1.0, math.Min(1.0, cos))
	return math.Acos(cos) * 180.0 / math.Pi
}

// HandCenter returns the arithmetic mean of all landmark x and y
// coordinates. Returns (0, 0, false) for invalid snapshots.
func HandCenter(hand *detector.HandLandmarks) (x, y float64, ok bool) {
	if !hand.Valid() {
		return 0, 0, false
	}

	var sumX, sumY float64
	for i := 0; i < detector.NumLandmarks; i++ {
		sumX += hand.Points[i].X
		sumY += hand.Points[i].Y
	}
	n := float64(detector.NumLandmarks)
	return sumX / n, sumY / n, true
}
