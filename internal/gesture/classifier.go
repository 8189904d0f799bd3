package gesture

import "github.com/anupamd/mudra/internal/detector"

// Label is one symbolic gesture out of a fixed, closed set.
type Label string

const (
	LabelNone  Label = "none"
	LabelPinch Label = "pinch"
	LabelFist  Label = "fist"
	LabelOne   Label = "one"
	LabelTwo   Label = "two"
	LabelThree Label = "three"
	LabelFour  Label = "four"
	LabelFive  Label = "five"
	LabelPoint Label = "point"
	LabelOpen  Label = "open"
)

// countLabels maps an extended-finger count to its gesture label.
var countLabels = [6]Label{LabelFist, LabelOne, LabelTwo, LabelThree, LabelFour, LabelFive}

// rule is one entry of the classification decision table.
type rule struct {
	name  string
	apply func(Thresholds, *detector.HandLandmarks) (Label, bool)
}

// rules is the priority-ordered decision table. Earlier rules pre-empt
// later ones: pinch wins over finger counting even when the pose would
// also read as a valid count.
var rules = []rule{
	{
		name: "pinch",
		apply: func(t Thresholds, hand *detector.HandLandmarks) (Label, bool) {
			if t.IsPinch(hand) {
				return LabelPinch, true
			}
			return LabelNone, false
		},
	},
	{
		name: "finger-count",
		apply: func(t Thresholds, hand *detector.HandLandmarks) (Label, bool) {
			n := t.CountExtendedFingers(hand)
			if n < 0 || n >= len(countLabels) {
				return LabelNone, false
			}
			return countLabels[n], true
		},
	},
}

// Result is the outcome of classifying one frame.
type Result struct {
	Label     Label
	Direction Direction
	Combined  string
}

// Classifier turns hand snapshots into gesture labels, optionally combined
// with a swipe direction from its Tracker. A Classifier owns its tracker
// state and is not safe for concurrent use.
type Classifier struct {
	thresholds Thresholds
	tracker    *Tracker
}

// NewClassifier creates a Classifier with the given thresholds.
func NewClassifier(t Thresholds) *Classifier {
	return &Classifier{
		thresholds: t,
		tracker:    NewTracker(t.Movement),
	}
}

// Thresholds returns the thresholds in use.
func (c *Classifier) Thresholds() Thresholds {
	return c.thresholds
}

// Classify runs the decision table against a single snapshot and returns
// the winning label. Invalid snapshots classify as LabelNone.
func (c *Classifier) Classify(hand *detector.HandLandmarks) Label {
	if !hand.Valid() {
		return LabelNone
	}

	for _, r := range rules {
		if label, ok := r.apply(c.thresholds, hand); ok {
			return label
		}
	}
	return LabelNone
}

// ClassifyWithDirection classifies the snapshot and updates direction
// tracking in the same step. Direction detection always runs, whatever
// the label turns out to be, so the tracker stays current even during
// unrecognized poses.
func (c *Classifier) ClassifyWithDirection(hand *detector.HandLandmarks) Result {
	label := c.Classify(hand)
	dir := c.tracker.Update(hand)

	return Result{
		Label:     label,
		Direction: dir,
		Combined:  Combined(label, dir),
	}
}

// ResetTracking clears the direction tracker. Callers invoke this on
// frames with no detected hand so a reappearing hand starts fresh.
func (c *Classifier) ResetTracking() {
	c.tracker.Reset()
}

// Combined joins a label and a direction into the emitted token, e.g.
// "two" + "left" -> "two_left". An absent gesture never gets a direction
// suffix; a missing direction leaves the label unchanged.
func Combined(label Label, dir Direction) string {
	if label == LabelNone {
		return string(LabelNone)
	}
	if dir == DirectionNone {
		return string(label)
	}
	return string(label) + "_" + string(dir)
}
