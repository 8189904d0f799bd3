package dispatch

import (
	"errors"
	"testing"
	"time"

	"github.com/anupamd/mudra/internal/actuator"
)

func newTestDispatcher(t *testing.T, commands map[string]string) (*Dispatcher, *actuator.Mock) {
	t.Helper()
	mock := actuator.NewMock()
	mock.Quiet = true
	return NewDispatcher(mock, 100*time.Millisecond, commands), mock
}

func TestDispatcher_EmitsOncePerTransition(t *testing.T) {
	d, mock := newTestDispatcher(t, nil)
	now := time.Now()

	// Three identical frames in quick succession: exactly one emission
	for i, dt := range []time.Duration{0, 30 * time.Millisecond, 60 * time.Millisecond} {
		emitted, err := d.Offer("two", now.Add(dt))
		if err != nil {
			t.Fatalf("Offer() error = %v", err)
		}
		if want := i == 0; emitted != want {
			t.Errorf("frame %d emitted = %v, want %v", i, emitted, want)
		}
	}

	sent := mock.Sent()
	if len(sent) != 1 || sent[0] != "two" {
		t.Errorf("sent = %v, want [two]", sent)
	}
}

func TestDispatcher_MapsCommands(t *testing.T) {
	d, mock := newTestDispatcher(t, map[string]string{
		"two_left": "ROTATE_CCW",
		"fist":     "STOP",
	})
	now := time.Now()

	if _, err := d.Offer("two_left", now); err != nil {
		t.Fatalf("Offer() error = %v", err)
	}
	if _, err := d.Offer("fist", now.Add(200*time.Millisecond)); err != nil {
		t.Fatalf("Offer() error = %v", err)
	}
	// No mapping: raw token goes out
	if _, err := d.Offer("pinch", now.Add(400*time.Millisecond)); err != nil {
		t.Fatalf("Offer() error = %v", err)
	}

	want := []string{"ROTATE_CCW", "STOP", "pinch"}
	sent := mock.Sent()
	if len(sent) != len(want) {
		t.Fatalf("sent %d commands, want %d", len(sent), len(want))
	}
	for i := range want {
		if sent[i] != want[i] {
			t.Errorf("sent[%d] = %q, want %q", i, sent[i], want[i])
		}
	}
}

func TestDispatcher_NoneDoesNothing(t *testing.T) {
	d, mock := newTestDispatcher(t, nil)
	now := time.Now()

	if _, err := d.Offer("fist", now); err != nil {
		t.Fatalf("Offer() error = %v", err)
	}

	emitted, err := d.Offer("none", now.Add(200*time.Millisecond))
	if err != nil || emitted {
		t.Errorf("Offer(none) = %v, %v; want false, nil", emitted, err)
	}

	// The none frame must not have become the last-emitted value
	if last, ok := d.LastEmitted(); !ok || last != "fist" {
		t.Errorf("LastEmitted() = %q, %v; want %q, true", last, ok, "fist")
	}

	if len(mock.Sent()) != 1 {
		t.Errorf("sent %d commands, want 1", len(mock.Sent()))
	}
}

func TestDispatcher_SendFailureKeepsTransition(t *testing.T) {
	d, mock := newTestDispatcher(t, nil)
	now := time.Now()

	sendErr := errors.New("port gone")
	mock.SetError(sendErr)

	emitted, err := d.Offer("open", now)
	if emitted {
		t.Error("failed send must not count as emitted")
	}
	if !errors.Is(err, sendErr) {
		t.Errorf("Offer() error = %v, want %v", err, sendErr)
	}
	if _, ok := d.LastEmitted(); ok {
		t.Error("failed send must not advance debounce state")
	}

	// Once the transport recovers the same gesture goes out
	mock.SetError(nil)
	emitted, err = d.Offer("open", now.Add(10*time.Millisecond))
	if err != nil || !emitted {
		t.Errorf("Offer() after recovery = %v, %v; want true, nil", emitted, err)
	}
}

func TestDispatcher_OnEmit(t *testing.T) {
	d, _ := newTestDispatcher(t, map[string]string{"pinch": "GRAB"})
	now := time.Now()

	var got Emission
	d.OnEmit = func(e Emission) { got = e }

	if _, err := d.Offer("pinch", now); err != nil {
		t.Fatalf("Offer() error = %v", err)
	}

	if got.Combined != "pinch" || got.Command != "GRAB" || !got.At.Equal(now) {
		t.Errorf("emission = %+v, want pinch/GRAB at %v", got, now)
	}
}
