package gesture

import (
	"testing"

	"github.com/anupamd/mudra/internal/detector"
)

func TestPredicates_InvalidHand(t *testing.T) {
	th := DefaultThresholds()

	hands := map[string]*detector.HandLandmarks{
		"nil":       nil,
		"empty":     {},
		"truncated": {Points: make([]detector.Point3D, 12)},
	}

	for name, hand := range hands {
		t.Run(name, func(t *testing.T) {
			if th.IsPinch(hand) {
				t.Error("IsPinch() = true for invalid hand")
			}
			if th.IsFist(hand) {
				t.Error("IsFist() = true for invalid hand")
			}
			if th.IsOpenHand(hand) {
				t.Error("IsOpenHand() = true for invalid hand")
			}
			if th.IsPointingIndex(hand) {
				t.Error("IsPointingIndex() = true for invalid hand")
			}
			if n := th.CountExtendedFingers(hand); n != 0 {
				t.Errorf("CountExtendedFingers() = %d, want 0", n)
			}
		})
	}
}

func TestIsPinch(t *testing.T) {
	th := DefaultThresholds()

	pinch := detector.PinchLandmarks()
	if !th.IsPinch(&pinch) {
		t.Error("expected pinch preset to read as pinch")
	}

	open := detector.OpenHandLandmarks()
	if th.IsPinch(&open) {
		t.Error("open hand should not read as pinch")
	}

	// Exactly at the threshold is not a pinch (strict less-than)
	hand := detector.HandLandmarks{Points: make([]detector.Point3D, detector.NumLandmarks)}
	hand.Points[detector.IndexTip] = detector.Point3D{X: th.Pinch}
	if th.IsPinch(&hand) {
		t.Error("distance equal to threshold should not read as pinch")
	}
}

func TestIsFistAndOpenHand(t *testing.T) {
	th := DefaultThresholds()

	fist := detector.FistLandmarks()
	if !th.IsFist(&fist) {
		t.Error("expected fist preset to read as fist")
	}
	if th.IsOpenHand(&fist) {
		t.Error("fist should not read as open hand")
	}

	open := detector.OpenHandLandmarks()
	if th.IsFist(&open) {
		t.Error("open hand should not read as fist")
	}
	if !th.IsOpenHand(&open) {
		t.Error("expected open preset to read as open hand")
	}
}

func TestIsPointingIndex(t *testing.T) {
	th := DefaultThresholds()

	pointing := detector.PointingLandmarks()
	if !th.IsPointingIndex(&pointing) {
		t.Error("expected pointing preset to read as pointing")
	}

	fist := detector.FistLandmarks()
	if th.IsPointingIndex(&fist) {
		t.Error("fist should not read as pointing")
	}
}

func TestCountExtendedFingers(t *testing.T) {
	th := DefaultThresholds()

	tests := []struct {
		name string
		hand detector.HandLandmarks
		want int
	}{
		{"fist", detector.FistLandmarks(), 0},
		{"pointing", detector.PointingLandmarks(), 1},
		{"two fingers", detector.TwoFingersLandmarks(), 2},
		{"open hand", detector.OpenHandLandmarks(), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := th.CountExtendedFingers(&tt.hand); got != tt.want {
				t.Errorf("CountExtendedFingers() = %d, want %d", got, tt.want)
			}
		})
	}
}

// straighten replaces one finger's landmarks with a straight vertical
// column so that both the angle and tip-position checks pass.
func straighten(hand *detector.HandLandmarks, mcpIdx int, x float64) {
	ys := [4]float64{0.65, 0.55, 0.45, 0.35}
	for i := 0; i < 4; i++ {
		hand.Points[mcpIdx+i] = detector.Point3D{X: x, Y: ys[i]}
	}
}

func TestCountExtendedFingers_Monotonic(t *testing.T) {
	th := DefaultThresholds()
	hand := detector.FistLandmarks()

	// Straighten one finger at a time; the count must never decrease.
	steps := []struct {
		mcp int
		x   float64
	}{
		{detector.IndexMCP, 0.55},
		{detector.MiddleMCP, 0.50},
		{detector.RingMCP, 0.45},
		{detector.PinkyMCP, 0.40},
	}

	prev := th.CountExtendedFingers(&hand)
	for i, step := range steps {
		straighten(&hand, step.mcp, step.x)
		got := th.CountExtendedFingers(&hand)
		if got < prev {
			t.Fatalf("count decreased from %d to %d after straightening finger %d", prev, got, i+1)
		}
		if got != i+1 {
			t.Errorf("after straightening %d fingers: count = %d, want %d", i+1, got, i+1)
		}
		prev = got
	}

	// Finally the thumb, which qualifies by wrist reach alone
	hand.Points[detector.ThumbTip] = detector.Point3D{X: 0.75, Y: 0.60}
	if got := th.CountExtendedFingers(&hand); got != 5 {
		t.Errorf("count with thumb extended = %d, want 5", got)
	}
}

func TestCountExtendedFingers_TipBelowMCP(t *testing.T) {
	th := DefaultThresholds()
	hand := detector.FistLandmarks()

	// A straight-by-angle finger pointing downward must not count:
	// the tip sits below its MCP beyond the TipRise tolerance.
	hand.Points[detector.IndexMCP] = detector.Point3D{X: 0.52, Y: 0.60}
	hand.Points[detector.IndexPIP] = detector.Point3D{X: 0.52, Y: 0.70}
	hand.Points[detector.IndexDIP] = detector.Point3D{X: 0.52, Y: 0.80}
	hand.Points[detector.IndexTip] = detector.Point3D{X: 0.52, Y: 0.90}

	if got := th.CountExtendedFingers(&hand); got != 0 {
		t.Errorf("downward-pointing finger counted as extended, count = %d", got)
	}
}
