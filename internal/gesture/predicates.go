package gesture

import "github.com/anupamd/mudra/internal/detector"

// Thresholds holds the tunable constants for the shape predicates. All of
// them were calibrated against MediaPipe output on 640x480 frames and can
// be overridden through configuration for recalibration.
type Thresholds struct {
	// Pinch is the maximum planar thumb-tip/index-tip distance for a pinch.
	Pinch float64 `mapstructure:"pinch"`

	// Fist is the maximum mean wrist-to-fingertip distance for a fist.
	Fist float64 `mapstructure:"fist"`

	// OpenHand is the minimum mean wrist-to-fingertip distance for an
	// open hand.
	OpenHand float64 `mapstructure:"open_hand"`

	// Pointing is how much farther the index tip must be from the wrist
	// than the other fingertips on average.
	Pointing float64 `mapstructure:"pointing"`

	// ExtendedAngle is the minimum joint angle in degrees for a finger to
	// count as straight.
	ExtendedAngle float64 `mapstructure:"extended_angle"`

	// TipRise is the vertical tolerance when requiring a fingertip to sit
	// at or above its own MCP. Tolerates slight hand tilt.
	TipRise float64 `mapstructure:"tip_rise"`

	// ThumbReach is the minimum wrist-to-thumb-tip distance that counts
	// the thumb as extended independent of its joint angle.
	ThumbReach float64 `mapstructure:"thumb_reach"`

	// Movement is the minimum hand-center displacement between frames to
	// register a swipe direction.
	Movement float64 `mapstructure:"movement"`
}

// DefaultThresholds returns the calibrated default thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Pinch:         0.05,
		Fist:          0.08,
		OpenHand:      0.12,
		Pointing:      0.06,
		ExtendedAngle: 140.0,
		TipRise:       0.05,
		ThumbReach:    0.15,
		Movement:      0.05,
	}
}

// fingertips are the landmark indices of the five fingertips.
var fingertips = [5]int{
	detector.ThumbTip,
	detector.IndexTip,
	detector.MiddleTip,
	detector.RingTip,
	detector.PinkyTip,
}

// fingerJoints lists, per finger, the MCP, the joint the angle is measured
// at (PIP, or IP for the thumb), and the tip.
var fingerJoints = [5][3]int{
	{detector.ThumbMCP, detector.ThumbIP, detector.ThumbTip},
	{detector.IndexMCP, detector.IndexPIP, detector.IndexTip},
	{detector.MiddleMCP, detector.MiddlePIP, detector.MiddleTip},
	{detector.RingMCP, detector.RingPIP, detector.RingTip},
	{detector.PinkyMCP, detector.PinkyPIP, detector.PinkyTip},
}

// meanTipDistance returns the mean planar distance from the wrist to the
// five fingertips.
func meanTipDistance(hand *detector.HandLandmarks) float64 {
	wrist := hand.Points[detector.Wrist]
	var sum float64
	for _, tip := range fingertips {
		sum += Distance2D(wrist, hand.Points[tip])
	}
	return sum / float64(len(fingertips))
}

// IsPinch reports whether the thumb tip and index tip are close enough to
// form a pinch. Invalid snapshots are never a pinch.
func (t Thresholds) IsPinch(hand *detector.HandLandmarks) bool {
	if !hand.Valid() {
		return false
	}
	return Distance2D(hand.Points[detector.ThumbTip], hand.Points[detector.IndexTip]) < t.Pinch
}

// IsFist reports whether all fingertips sit close to the wrist on average.
func (t Thresholds) IsFist(hand *detector.HandLandmarks) bool {
	if !hand.Valid() {
		return false
	}
	return meanTipDistance(hand) < t.Fist
}

// IsOpenHand reports whether the fingertips are spread far from the wrist
// on average.
func (t Thresholds) IsOpenHand(hand *detector.HandLandmarks) bool {
	if !hand.Valid() {
		return false
	}
	return meanTipDistance(hand) > t.OpenHand
}

// IsPointingIndex reports whether the index tip reaches clearly farther
// from the wrist than the remaining fingertips do on average.
func (t Thresholds) IsPointingIndex(hand *detector.HandLandmarks) bool {
	if !hand.Valid() {
		return false
	}

	wrist := hand.Points[detector.Wrist]
	indexDist := Distance2D(wrist, hand.Points[detector.IndexTip])

	others := [4]int{detector.ThumbTip, detector.MiddleTip, detector.RingTip, detector.PinkyTip}
	var sum float64
	for _, tip := range others {
		sum += Distance2D(wrist, hand.Points[tip])
	}

	return indexDist > sum/float64(len(others))+t.Pointing
}

// CountExtendedFingers returns how many fingers are extended, 0-5.
//
// A non-thumb finger counts as extended when the joint angle at its PIP is
// above ExtendedAngle AND its tip sits at or above its own MCP (within
// TipRise). The vertical check catches bent-but-not-curled fingers that
// still read as straight by angle alone when the hand is tilted. The thumb
// qualifies by angle OR by wrist distance, since its joint angle is the
// least reliable of the five.
func (t Thresholds) CountExtendedFingers(hand *detector.HandLandmarks) int {
	if !hand.Valid() {
		return 0
	}

	extended := 0
	for finger, joints := range fingerJoints {
		mcp, pip, tip := hand.Points[joints[0]], hand.Points[joints[1]], hand.Points[joints[2]]
		angle := AngleAt(mcp, pip, tip)

		if finger == 0 {
			reach := Distance2D(hand.Points[detector.Wrist], tip)
			if angle > t.ExtendedAngle || reach > t.ThumbReach {
				extended++
			}
			continue
		}

		// Image coordinates grow downward, so "above" means smaller Y.
		if angle > t.ExtendedAngle && tip.Y < mcp.Y+t.TipRise {
			extended++
		}
	}

	return extended
}
