package fsmhook

import (
	"fmt"

	"github.com/google/uuid"
)

// Machine tracks the current state of a finite state machine, validates
// attempted transitions against its TransitionTable, and keeps a bounded
// history of prior states for undo.
//
// A Machine performs no internal locking. Its mutating operations are
// read-then-write sequences over shared fields, so an instance must be owned
// by a single goroutine or serialized externally.
type Machine struct {
	id      string
	current string
	history []string
	table   *TransitionTable
	cfg     Config
}

// New creates a Machine positioned at the given initial state.
//
// The initial state is not checked against the table: a machine constructed
// in an undeclared state simply permits no transitions until the caller
// moves it. Supplying a declared state is the caller's responsibility.
//
// Options are applied on top of DefaultConfig; see Option for precedence.
func New(initial string, table *TransitionTable, opts ...Option) *Machine {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Machine{
		id:      uuid.New().String(),
		current: initial,
		table:   table,
		cfg:     cfg,
	}
}

// ID returns the unique identifier of this machine instance, for
// caller-side correlation of logs and diagnostics
func (m *Machine) ID() string {
	return m.id
}

// CurrentState returns the state the machine currently occupies
func (m *Machine) CurrentState() string {
	return m.current
}

// Table returns the transition table the machine validates against
func (m *Machine) Table() *TransitionTable {
	return m.table
}

// Config returns the resolved configuration of this machine
func (m *Machine) Config() Config {
	return m.cfg
}

// Transition attempts the named transition from the current state.
//
// If the table permits it, the pre-transition state is appended to the
// history, the history is trimmed to the configured bound, and the machine
// moves to the declared destination. If it does not, nothing changes and a
// warning is reported when the log level allows.
//
// Transition never returns an error; a caller that needs to know whether
// the transition was taken compares CurrentState before and after.
func (m *Machine) Transition(name string) {
	dest, ok := m.table.Destination(m.current, name)
	if !ok {
		if m.cfg.LogLevel != LogNone {
			m.cfg.Logger.Warn(fmt.Sprintf("Invalid transition from %s to %s", m.current, name))
		}
		return
	}
	if m.cfg.LogLevel == LogDebug {
		// The "to" label is the transition name the caller supplied, not the
		// resolved destination. The two may legitimately differ; keep the
		// message showing exactly what was requested.
		m.cfg.Logger.Log(fmt.Sprintf("Transitioning from %s to %s", m.current, name))
	}
	m.history = append(m.history, m.current)
	m.trimHistory()
	m.current = dest
}

// trimHistory keeps only the most recent MaxHistory entries. A bound of
// zero or less clears the history entirely, which disables undo.
func (m *Machine) trimHistory() {
	max := m.cfg.MaxHistory
	if max <= 0 {
		m.history = nil
		return
	}
	if len(m.history) > max {
		trimmed := make([]string, max)
		copy(trimmed, m.history[len(m.history)-max:])
		m.history = trimmed
	}
}

// Undo moves the machine back to the most recently recorded prior state and
// removes that entry from the history. With an empty history, Undo changes
// nothing and warns when the log level allows. Under a MaxHistory of zero
// or less the history is always empty, so Undo is permanently a no-op.
func (m *Machine) Undo() {
	if len(m.history) == 0 {
		if m.cfg.LogLevel != LogNone {
			m.cfg.Logger.Warn("No history to undo")
		}
		return
	}
	prev := m.history[len(m.history)-1]
	if m.cfg.LogLevel == LogDebug {
		m.cfg.Logger.Log(fmt.Sprintf("Undoing from %s to %s", m.current, prev))
	}
	m.history = m.history[:len(m.history)-1]
	m.current = prev
}

// AvailableTransitions returns the transition names the table permits from
// the current state, in declaration order. A state with no outgoing
// transitions, or an undeclared current state, yields nil.
func (m *Machine) AvailableTransitions() []string {
	return m.table.TransitionsFrom(m.current)
}

// History returns a copy of the recorded prior states, oldest first
func (m *Machine) History() []string {
	if len(m.history) == 0 {
		return nil
	}
	out := make([]string, len(m.history))
	copy(out, m.history)
	return out
}
