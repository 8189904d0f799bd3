package dispatch

import (
	"fmt"
	"time"

	"github.com/anupamd/mudra/internal/actuator"
)

// Emission describes one command that went out to the actuator.
type Emission struct {
	Combined string    `json:"combined"`
	Command  string    `json:"command"`
	At       time.Time `json:"at"`
}

// Dispatcher runs classified gestures through the debouncer, maps them to
// command strings and sends them to the actuator. Debounce state advances
// only on successful sends, so a transport failure leaves the gesture
// eligible for the next frame.
//
// Dispatcher is single-caller by design; it lives on the pipeline
// goroutine next to the classifier.
type Dispatcher struct {
	debouncer *Debouncer
	commands  map[string]string
	act       actuator.Actuator

	// OnEmit, when set, is invoked after each successful emission.
	OnEmit func(Emission)
}

// NewDispatcher creates a Dispatcher sending through act. The commands
// table maps combined gesture tokens to device command strings; gestures
// without a mapping are sent as the raw token.
func NewDispatcher(act actuator.Actuator, minInterval time.Duration, commands map[string]string) *Dispatcher {
	return &Dispatcher{
		debouncer: NewDebouncer(minInterval),
		commands:  commands,
		act:       act,
	}
}

// Command returns the device command for a combined gesture token.
func (d *Dispatcher) Command(combined string) string {
	if cmd, ok := d.commands[combined]; ok {
		return cmd
	}
	return combined
}

// Offer presents one frame's combined gesture to the dispatcher. It
// returns whether a command was emitted. A failed send reports the
// transport error without consuming the gesture transition.
func (d *Dispatcher) Offer(combined string, now time.Time) (bool, error) {
	if !d.debouncer.ShouldEmit(combined, now) {
		return false, nil
	}

	command := d.Command(combined)
	if err := d.act.Send(command); err != nil {
		return false, fmt.Errorf("send %q: %w", command, err)
	}

	d.debouncer.MarkEmitted(combined, now)

	if d.OnEmit != nil {
		d.OnEmit(Emission{Combined: combined, Command: command, At: now})
	}
	return true, nil
}

// LastEmitted exposes the debouncer's last emitted gesture.
func (d *Dispatcher) LastEmitted() (string, bool) {
	return d.debouncer.LastEmitted()
}
