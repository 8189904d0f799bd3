// Package dispatch decides when a classified gesture becomes a command on
// the wire and delivers it to the actuator.
package dispatch

import (
	"time"

	"github.com/anupamd/mudra/internal/gesture"
)

// DefaultMinInterval is the minimum time between any two emissions.
const DefaultMinInterval = 500 * time.Millisecond

// Debouncer suppresses repeated and rapid-fire emissions. A combined
// gesture passes when it is not "none", differs from the last emitted
// value (or nothing was emitted yet), and the minimum interval has passed
// since the last emission. The interval gate applies uniformly: a rapid
// switch to a distinct gesture is held back just like a repeat.
type Debouncer struct {
	minInterval time.Duration
	lastEmitted string
	emitted     bool
	lastEmitAt  time.Time
}

// NewDebouncer creates a Debouncer with the given minimum interval.
// An interval of 0 falls back to DefaultMinInterval.
func NewDebouncer(minInterval time.Duration) *Debouncer {
	if minInterval <= 0 {
		minInterval = DefaultMinInterval
	}
	return &Debouncer{minInterval: minInterval}
}

// ShouldEmit reports whether the combined gesture should be emitted at
// the given time. It does not change state; pair it with MarkEmitted
// after the emission actually succeeded.
func (d *Debouncer) ShouldEmit(combined string, now time.Time) bool {
	if combined == string(gesture.LabelNone) {
		return false
	}
	if d.emitted && combined == d.lastEmitted {
		return false
	}
	if d.emitted && now.Sub(d.lastEmitAt) < d.minInterval {
		return false
	}
	return true
}

// MarkEmitted records a successful emission. "none" frames never reach
// this point, so the last-emitted value survives hand absence: a gesture
// that disappears and returns unchanged stays suppressed until a
// different gesture is emitted in between.
func (d *Debouncer) MarkEmitted(combined string, now time.Time) {
	d.lastEmitted = combined
	d.emitted = true
	d.lastEmitAt = now
}

// LastEmitted returns the most recently emitted combined gesture and
// whether anything has been emitted yet.
func (d *Debouncer) LastEmitted() (string, bool) {
	return d.lastEmitted, d.emitted
}
