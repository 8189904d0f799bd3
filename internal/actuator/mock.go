package actuator

import (
	"log"
	"sync"
)

// Mock is an Actuator that records every command it receives. It backs
// tests and the dry-run mode of the CLI.
type Mock struct {
	mu     sync.Mutex
	sent   []string
	err    error
	closed bool
	Quiet  bool
}

// NewMock creates a new Mock actuator.
func NewMock() *Mock {
	return &Mock{}
}

// Send records the command. If SetError configured a failure, that error
// is returned instead.
func (m *Mock) Send(command string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return m.err
	}
	if m.closed {
		return ErrNotOpen
	}

	if !m.Quiet {
		log.Printf("[mock actuator] send: %s", command)
	}
	m.sent = append(m.sent, command)
	return nil
}

// Close marks the mock as closed; subsequent sends fail with ErrNotOpen.
func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// SetError makes every subsequent Send return err.
func (m *Mock) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Sent returns a copy of all recorded commands.
func (m *Mock) Sent() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.sent))
	copy(out, m.sent)
	return out
}
