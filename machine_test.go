package fsmhook

import (
	"strings"
	"testing"
)

func TestMachine_InitialState(t *testing.T) {
	m := CreateFormMachine()

	AssertState(t, m, "idle")

	if len(m.History()) != 0 {
		t.Errorf("Expected empty history at construction, got %v", m.History())
	}
}

func TestMachine_ID(t *testing.T) {
	a := CreateFormMachine()
	b := CreateFormMachine()

	if a.ID() == "" {
		t.Error("Expected non-empty machine ID")
	}
	if a.ID() == b.ID() {
		t.Error("Expected distinct IDs for distinct machines")
	}
}

func TestMachine_ValidTransition(t *testing.T) {
	m := CreateFormMachine()

	m.Transition("typing")

	AssertState(t, m, "typing")
	AssertHistory(t, m, "idle")
}

func TestMachine_TransitionSequence(t *testing.T) {
	m := CreateFormMachine()

	m.Transition("typing")
	m.Transition("submitting")

	AssertState(t, m, "submitting")
	AssertHistory(t, m, "idle", "typing")
}

func TestMachine_InvalidTransition(t *testing.T) {
	logger := &RecordingLogger{}
	m := CreateFormMachine(WithLogLevel(LogInfo), WithLogger(logger))

	m.Transition("submitting") // not permitted from idle

	AssertState(t, m, "idle")
	AssertHistory(t, m)

	if len(logger.Warns) != 1 {
		t.Fatalf("Expected one warning, got %v", logger.Warns)
	}
	if logger.Warns[0] != "Invalid transition from idle to submitting" {
		t.Errorf("Unexpected warning: %q", logger.Warns[0])
	}
}

func TestMachine_InvalidTransitionSilentWhenLevelNone(t *testing.T) {
	logger := &RecordingLogger{}
	m := CreateFormMachine(WithLogger(logger))

	m.Transition("nope")

	AssertState(t, m, "idle")
	if len(logger.Warns) != 0 || len(logger.Logs) != 0 {
		t.Errorf("Expected silence at LogNone, got logs %v warns %v", logger.Logs, logger.Warns)
	}
}

func TestMachine_Undo(t *testing.T) {
	m := CreateFormMachine()

	m.Transition("typing")
	m.Transition("submitting")
	m.Undo()

	AssertState(t, m, "typing")
	AssertHistory(t, m, "idle")
}

func TestMachine_UndoPeelsInReverseOrder(t *testing.T) {
	m := CreateFormMachine()

	m.Transition("typing")
	m.Transition("submitting")
	m.Transition("failure")
	AssertState(t, m, "fail")

	m.Undo()
	AssertState(t, m, "submitting")
	m.Undo()
	AssertState(t, m, "typing")
	m.Undo()
	AssertState(t, m, "idle")
	AssertHistory(t, m)
}

func TestMachine_UndoEmptyHistory(t *testing.T) {
	logger := &RecordingLogger{}
	m := CreateFormMachine(WithLogLevel(LogInfo), WithLogger(logger))

	m.Undo()
	m.Undo()

	AssertState(t, m, "idle")
	if len(logger.Warns) != 2 {
		t.Fatalf("Expected a warning per empty undo, got %v", logger.Warns)
	}
	for _, w := range logger.Warns {
		if w != "No history to undo" {
			t.Errorf("Unexpected warning: %q", w)
		}
	}
}

func TestMachine_UndoEmptyHistorySilentWhenLevelNone(t *testing.T) {
	logger := &RecordingLogger{}
	m := CreateFormMachine(WithLogger(logger))

	m.Undo()

	if len(logger.Warns) != 0 {
		t.Errorf("Expected no warning at LogNone, got %v", logger.Warns)
	}
}

func TestMachine_HistoryBounded(t *testing.T) {
	m := CreateFormMachine(WithMaxHistory(2))

	m.Transition("typing")
	m.Transition("submitting")
	m.Transition("success")

	AssertState(t, m, "idle")
	AssertHistory(t, m, "typing", "submitting")
}

func TestMachine_HistoryBoundNeverExceeded(t *testing.T) {
	m := CreateFormMachine(WithMaxHistory(3))

	for i := 0; i < 5; i++ {
		m.Transition("typing")
		m.Transition("canceling")
	}

	if len(m.History()) != 3 {
		t.Errorf("Expected history capped at 3, got %v", m.History())
	}
	AssertHistory(t, m, "typing", "idle", "typing")
}

func TestMachine_ZeroMaxHistoryDisablesUndo(t *testing.T) {
	logger := &RecordingLogger{}
	m := CreateFormMachine(WithMaxHistory(0), WithLogLevel(LogInfo), WithLogger(logger))

	m.Transition("typing")
	AssertState(t, m, "typing")
	AssertHistory(t, m)

	m.Undo()
	AssertState(t, m, "typing")
	if len(logger.Warns) != 1 || logger.Warns[0] != "No history to undo" {
		t.Errorf("Expected empty-history warning, got %v", logger.Warns)
	}
}

func TestMachine_NegativeMaxHistoryDisablesUndo(t *testing.T) {
	m := CreateFormMachine(WithMaxHistory(-1))

	m.Transition("typing")
	m.Transition("submitting")

	AssertHistory(t, m)
	m.Undo()
	AssertState(t, m, "submitting")
}

func TestMachine_AvailableTransitions(t *testing.T) {
	m := CreateFormMachine()

	assertStrings(t, m.AvailableTransitions(), "typing")

	m.Transition("typing")
	assertStrings(t, m.AvailableTransitions(), "submitting", "canceling")

	m.Transition("canceling")
	assertStrings(t, m.AvailableTransitions(), "typing")
}

func TestMachine_AvailableTransitionsTerminalState(t *testing.T) {
	table := NewTable().
		State("start").Permit("finish", "done").
		State("done").
		MustBuild()
	m := New("start", table)

	m.Transition("finish")

	if got := m.AvailableTransitions(); len(got) != 0 {
		t.Errorf("Expected no transitions from terminal state, got %v", got)
	}
}

func TestMachine_UndeclaredInitialState(t *testing.T) {
	logger := &RecordingLogger{}
	m := New("limbo", NewFormTable(), WithLogLevel(LogInfo), WithLogger(logger))

	AssertState(t, m, "limbo")
	if got := m.AvailableTransitions(); len(got) != 0 {
		t.Errorf("Expected no transitions from undeclared state, got %v", got)
	}

	m.Transition("typing")
	AssertState(t, m, "limbo")
	if len(logger.Warns) != 1 {
		t.Errorf("Expected warning for transition from undeclared state, got %v", logger.Warns)
	}
}

func TestMachine_HistoryReturnsCopy(t *testing.T) {
	m := CreateFormMachine()
	m.Transition("typing")

	history := m.History()
	history[0] = "mutated"

	AssertHistory(t, m, "idle")
}

// Successful transitions log the transition name the caller supplied, not
// the resolved destination state. This is long-standing observable behavior
// that callers grep for; it must not be "fixed" to log the destination.
func TestMachine_TransitionLogsRequestedName(t *testing.T) {
	logger := &RecordingLogger{}
	m := CreateFormMachine(WithLogLevel(LogDebug), WithLogger(logger))

	m.Transition("typing")
	m.Transition("canceling") // resolves to destination "idle"

	if len(logger.Logs) != 2 {
		t.Fatalf("Expected two debug messages, got %v", logger.Logs)
	}
	if logger.Logs[1] != "Transitioning from typing to canceling" {
		t.Errorf("Expected the requested transition name in the message, got %q", logger.Logs[1])
	}
}

// Undo, by contrast, logs resolved states on both sides.
func TestMachine_UndoLogsResolvedStates(t *testing.T) {
	logger := &RecordingLogger{}
	m := CreateFormMachine(WithLogLevel(LogDebug), WithLogger(logger))

	m.Transition("typing")
	logger.Reset()
	m.Undo()

	if len(logger.Logs) != 1 || logger.Logs[0] != "Undoing from typing to idle" {
		t.Errorf("Expected resolved states in undo message, got %v", logger.Logs)
	}
}

func TestMachine_InfoLevelDoesNotLogSuccess(t *testing.T) {
	logger := &RecordingLogger{}
	m := CreateFormMachine(WithLogLevel(LogInfo), WithLogger(logger))

	m.Transition("typing")

	if len(logger.Logs) != 0 {
		t.Errorf("Expected no debug messages at LogInfo, got %v", logger.Logs)
	}
}

func TestMachine_ScenarioWalkthrough(t *testing.T) {
	m := CreateFormMachine()

	m.Transition("typing")
	AssertState(t, m, "typing")
	assertStrings(t, m.AvailableTransitions(), "submitting", "canceling")
	AssertHistory(t, m, "idle")

	m.Transition("submitting")
	AssertState(t, m, "submitting")
	AssertHistory(t, m, "idle", "typing")

	m.Undo()
	AssertState(t, m, "typing")
	AssertHistory(t, m, "idle")
}

func assertStrings(t *testing.T, got []string, expected ...string) {
	t.Helper()
	if len(got) != len(expected) {
		t.Errorf("Expected %v, got %v", expected, got)
		return
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Expected %v, got %v", expected, got)
			return
		}
	}
}

func TestMachine_ConfigAccessor(t *testing.T) {
	m := CreateFormMachine(WithLogLevel(LogDebug), WithMaxHistory(7))

	cfg := m.Config()
	if cfg.LogLevel != LogDebug || cfg.MaxHistory != 7 {
		t.Errorf("Unexpected resolved config: %+v", cfg)
	}
	if !strings.Contains(cfg.LogLevel.String(), "debug") {
		t.Errorf("Unexpected level string: %s", cfg.LogLevel)
	}
}
