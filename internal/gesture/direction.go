package gesture

import (
	"math"

	"github.com/anupamd/mudra/internal/detector"
)

// Direction is a discrete swipe direction derived from hand-center
// movement between consecutive frames.
type Direction string

const (
	DirectionNone  Direction = "none"
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
	DirectionUp    Direction = "up"
	DirectionDown  Direction = "down"
)

// Tracker detects swipe directions by comparing the current hand center
// against the previous frame's. It holds the single piece of cross-frame
// state in the classification path; each session owns its own Tracker and
// is expected to call Reset whenever a frame has no hand, so a reappearing
// hand cannot pick up a stale direction.
//
// Tracker is not safe for concurrent use; confine it to the goroutine
// running the frame loop.
type Tracker struct {
	movement float64
	prevX    float64
	prevY    float64
	primed   bool
}

// NewTracker creates a Tracker with the given minimum displacement for a
// movement to register as a direction.
func NewTracker(movement float64) *Tracker {
	return &Tracker{movement: movement}
}

// Update compares the snapshot's hand center to the previous one and
// returns the dominant movement direction, or DirectionNone when this is
// the first observation, the snapshot is invalid, or the displacement is
// below the movement threshold.
//
// The stored center is advanced on every call, including sub-threshold
// ones. Directions therefore measure movement against the last position,
// not the last significant position, and slow sustained drift does not
// accumulate into a swipe.
func (t *Tracker) Update(hand *detector.HandLandmarks) Direction {
	x, y, ok := HandCenter(hand)
	if !ok {
		return DirectionNone
	}

	if !t.primed {
		t.prevX, t.prevY = x, y
		t.primed = true
		return DirectionNone
	}

	dx := x - t.prevX
	dy := y - t.prevY
	t.prevX, t.prevY = x, y

	if math.Hypot(dx, dy) < t.movement {
		return DirectionNone
	}

	// Dominant axis wins; ties resolve to the vertical branch.
	if math.Abs(dx) > math.Abs(dy) {
		if dx > 0 {
			return DirectionRight
		}
		return DirectionLeft
	}
	if dy > 0 {
		return DirectionDown
	}
	return DirectionUp
}

// Reset clears the stored center. The next Update primes the tracker
// again and reports DirectionNone.
func (t *Tracker) Reset() {
	t.primed = false
	t.prevX, t.prevY = 0, 0
}
