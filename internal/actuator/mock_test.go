package actuator

import (
	"errors"
	"testing"
)

func TestMock_RecordsCommands(t *testing.T) {
	m := NewMock()
	m.Quiet = true

	commands := []string{"two_left", "fist", "pinch"}
	for _, cmd := range commands {
		if err := m.Send(cmd); err != nil {
			t.Fatalf("Send(%q) error = %v", cmd, err)
		}
	}

	sent := m.Sent()
	if len(sent) != len(commands) {
		t.Fatalf("recorded %d commands, want %d", len(sent), len(commands))
	}
	for i, cmd := range commands {
		if sent[i] != cmd {
			t.Errorf("sent[%d] = %q, want %q", i, sent[i], cmd)
		}
	}
}

func TestMock_SendAfterClose(t *testing.T) {
	m := NewMock()
	m.Quiet = true

	if err := m.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	if err := m.Send("fist"); !errors.Is(err, ErrNotOpen) {
		t.Errorf("Send() after close error = %v, want ErrNotOpen", err)
	}
	if len(m.Sent()) != 0 {
		t.Error("closed mock should not record commands")
	}
}

func TestMock_SetError(t *testing.T) {
	m := NewMock()
	m.Quiet = true

	wantErr := errors.New("device unplugged")
	m.SetError(wantErr)

	if err := m.Send("open"); !errors.Is(err, wantErr) {
		t.Errorf("Send() error = %v, want %v", err, wantErr)
	}
}

func TestMock_SentReturnsCopy(t *testing.T) {
	m := NewMock()
	m.Quiet = true

	if err := m.Send("one"); err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	sent := m.Sent()
	sent[0] = "mutated"

	if got := m.Sent()[0]; got != "one" {
		t.Errorf("internal record mutated through returned slice: %q", got)
	}
}
