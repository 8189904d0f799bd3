package actuator

import (
	"fmt"
	"sync"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// DefaultPulse is how long the GPIO pin stays high per command.
const DefaultPulse = 100 * time.Millisecond

// hostInit runs host.Init once and caches its result, so a failed init
// keeps failing on later calls instead of being silently skipped.
var hostInit = sync.OnceValue(func() error {
	_, err := host.Init()
	return err
})

// GPIO is an Actuator that signals commands by pulsing a single output
// pin. The receiving controller distinguishes commands on its own bus;
// this side only provides the trigger edge.
type GPIO struct {
	mu    sync.Mutex
	pin   gpio.PinIO
	pulse time.Duration
}

// NewGPIO resolves the named pin (e.g. "GPIO17") and returns a GPIO
// actuator. A pulse of 0 falls back to DefaultPulse.
func NewGPIO(pinName string, pulse time.Duration) (*GPIO, error) {
	if err := hostInit(); err != nil {
		return nil, fmt.Errorf("init gpio host: %w", err)
	}

	pin := gpioreg.ByName(pinName)
	if pin == nil {
		return nil, fmt.Errorf("gpio pin %q not found", pinName)
	}

	if pulse <= 0 {
		pulse = DefaultPulse
	}

	if err := pin.Out(gpio.Low); err != nil {
		return nil, fmt.Errorf("drive pin %s low: %w", pinName, err)
	}

	return &GPIO{pin: pin, pulse: pulse}, nil
}

// Send pulses the pin high for the configured duration.
func (g *GPIO) Send(command string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.pin == nil {
		return ErrNotOpen
	}

	if err := g.pin.Out(gpio.High); err != nil {
		return fmt.Errorf("drive pin high: %w", err)
	}
	time.Sleep(g.pulse)
	if err := g.pin.Out(gpio.Low); err != nil {
		return fmt.Errorf("drive pin low: %w", err)
	}
	return nil
}

// Close drives the pin low and releases it.
func (g *GPIO) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.pin == nil {
		return nil
	}
	err := g.pin.Out(gpio.Low)
	g.pin = nil
	return err
}
