// Package actuator delivers gesture commands to a downstream device.
package actuator

import "errors"

// ErrNotOpen is returned when sending through a closed output channel.
var ErrNotOpen = errors.New("actuator: output channel not open")

// Actuator is the single output contract of the pipeline: a plain-text
// command goes out, a transport-level error comes back. Implementations do
// not interpret the command and do not retry on their own.
type Actuator interface {
	// Send delivers one command to the device.
	Send(command string) error

	// Close releases the underlying output channel.
	Close() error
}
