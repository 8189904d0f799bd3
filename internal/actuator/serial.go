package actuator

import (
	"fmt"
	"sync"

	"go.bug.st/serial"
)

// Default serial line settings matching the usual robot firmware setup.
const (
	DefaultBaudRate = 115200
)

// Serial is an Actuator that writes newline-delimited commands to a
// serial port.
type Serial struct {
	mu   sync.Mutex
	port serial.Port
	name string
}

// NewSerial opens the named serial port (8N1) and returns a Serial
// actuator. A baud rate of 0 falls back to DefaultBaudRate.
func NewSerial(portName string, baudRate int) (*Serial, error) {
	if baudRate <= 0 {
		baudRate = DefaultBaudRate
	}

	mode := &serial.Mode{
		BaudRate: baudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}

	port, err := serial.Open(portName, mode)
	if err != nil {
		return nil, fmt.Errorf("open serial port %s: %w", portName, err)
	}

	return &Serial{port: port, name: portName}, nil
}

// Send writes the command followed by a newline delimiter.
func (s *Serial) Send(command string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.port == nil {
		return ErrNotOpen
	}

	if _, err := s.port.Write([]byte(command + "\n")); err != nil {
		return fmt.Errorf("write to %s: %w", s.name, err)
	}
	return nil
}

// Close closes the serial port.
func (s *Serial) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.port == nil {
		return nil
	}
	err := s.port.Close()
	s.port = nil
	return err
}

// ListPorts returns the serial port names available on this machine.
func ListPorts() ([]string, error) {
	ports, err := serial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("list serial ports: %w", err)
	}
	return ports, nil
}
