package dispatch

import (
	"testing"
	"time"
)

func TestDebouncer_FirstEmission(t *testing.T) {
	d := NewDebouncer(500 * time.Millisecond)
	now := time.Now()

	if !d.ShouldEmit("two", now) {
		t.Error("first non-none gesture should emit")
	}
}

func TestDebouncer_NoneNeverEmits(t *testing.T) {
	d := NewDebouncer(500 * time.Millisecond)
	now := time.Now()

	if d.ShouldEmit("none", now) {
		t.Error("none should never emit")
	}
	if d.ShouldEmit("none", now.Add(time.Hour)) {
		t.Error("none should never emit, regardless of elapsed time")
	}
}

func TestDebouncer_SuppressesRepeats(t *testing.T) {
	d := NewDebouncer(100 * time.Millisecond)
	now := time.Now()

	if !d.ShouldEmit("two", now) {
		t.Fatal("expected first emission")
	}
	d.MarkEmitted("two", now)

	// Rapid repeats within the window are suppressed
	for _, dt := range []time.Duration{10 * time.Millisecond, 50 * time.Millisecond, 90 * time.Millisecond} {
		if d.ShouldEmit("two", now.Add(dt)) {
			t.Errorf("repeat at +%v should be suppressed", dt)
		}
	}

	// A repeat of the same gesture stays suppressed even after the
	// interval; only a transition re-arms it.
	if d.ShouldEmit("two", now.Add(time.Second)) {
		t.Error("unchanged gesture should not re-emit after the interval")
	}
}

func TestDebouncer_IntervalGatesDistinctValues(t *testing.T) {
	d := NewDebouncer(500 * time.Millisecond)
	now := time.Now()

	d.MarkEmitted("two", now)

	// A distinct gesture arriving 100ms later is still rate-limited:
	// the interval gate applies to any emission, not just repeats.
	if d.ShouldEmit("three", now.Add(100*time.Millisecond)) {
		t.Error("distinct gesture inside the interval should be suppressed")
	}

	if !d.ShouldEmit("three", now.Add(600*time.Millisecond)) {
		t.Error("distinct gesture after the interval should emit")
	}
}

func TestDebouncer_ReappearanceStaysSuppressed(t *testing.T) {
	d := NewDebouncer(100 * time.Millisecond)
	now := time.Now()

	d.MarkEmitted("fist", now)

	// Frames with no hand do not touch the last-emitted value, so the
	// same gesture coming back after an absence is still a repeat.
	if d.ShouldEmit("none", now.Add(200*time.Millisecond)) {
		t.Fatal("none must not emit")
	}

	if d.ShouldEmit("fist", now.Add(300*time.Millisecond)) {
		t.Error("fist is still the last emitted value; it should not re-emit without a transition")
	}

	// After a different gesture it becomes a transition again
	d.MarkEmitted("open", now.Add(400*time.Millisecond))
	if !d.ShouldEmit("fist", now.Add(600*time.Millisecond)) {
		t.Error("fist after a transition should emit again")
	}
}

func TestDebouncer_LastEmitted(t *testing.T) {
	d := NewDebouncer(0)

	if _, ok := d.LastEmitted(); ok {
		t.Error("fresh debouncer should report nothing emitted")
	}

	d.MarkEmitted("two_left", time.Now())
	last, ok := d.LastEmitted()
	if !ok || last != "two_left" {
		t.Errorf("LastEmitted() = %q, %v; want %q, true", last, ok, "two_left")
	}
}
