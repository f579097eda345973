package fsmhook

import (
	"testing"
)

// RecordingLogger is a mock logger for testing that captures every Log and
// Warn call in order
type RecordingLogger struct {
	Logs  []string
	Warns []string
}

// Log captures a routine message
func (l *RecordingLogger) Log(msg string) {
	l.Logs = append(l.Logs, msg)
}

// Warn captures a warning message
func (l *RecordingLogger) Warn(msg string) {
	l.Warns = append(l.Warns, msg)
}

// Reset discards all captured messages
func (l *RecordingLogger) Reset() {
	l.Logs = nil
	l.Warns = nil
}

// NewFormTable creates the form-editing workflow table used throughout the
// tests: idle, typing, submitting and fail states
func NewFormTable() *TransitionTable {
	return NewTable().
		State("idle").
		Permit("typing", "typing").
		State("typing").
		Permit("submitting", "submitting").
		Permit("canceling", "idle").
		State("submitting").
		Permit("success", "idle").
		Permit("failure", "fail").
		State("fail").
		Permit("restart", "idle").
		MustBuild()
}

// CreateFormMachine creates a machine over NewFormTable starting at idle
func CreateFormMachine(opts ...Option) *Machine {
	return New("idle", NewFormTable(), opts...)
}

// AssertState fails the test if the machine is not in the expected state
func AssertState(t *testing.T, m *Machine, expected string) {
	t.Helper()
	if m.CurrentState() != expected {
		t.Errorf("Expected state '%s', got '%s'", expected, m.CurrentState())
	}
}

// AssertHistory fails the test if the machine's history, oldest first, does
// not equal the expected sequence
func AssertHistory(t *testing.T, m *Machine, expected ...string) {
	t.Helper()
	history := m.History()
	if len(history) != len(expected) {
		t.Errorf("Expected history %v, got %v", expected, history)
		return
	}
	for i := range expected {
		if history[i] != expected[i] {
			t.Errorf("Expected history %v, got %v", expected, history)
			return
		}
	}
}
