package fsmhook

import "testing"

func TestRecordingLogger(t *testing.T) {
	logger := &RecordingLogger{}

	logger.Log("a")
	logger.Warn("b")
	logger.Log("c")

	if len(logger.Logs) != 2 || logger.Logs[0] != "a" || logger.Logs[1] != "c" {
		t.Errorf("Unexpected logs: %v", logger.Logs)
	}
	if len(logger.Warns) != 1 || logger.Warns[0] != "b" {
		t.Errorf("Unexpected warns: %v", logger.Warns)
	}

	logger.Reset()
	if len(logger.Logs) != 0 || len(logger.Warns) != 0 {
		t.Error("Expected Reset to discard captured messages")
	}
}

func TestNewFormTable(t *testing.T) {
	table := NewFormTable()

	if table.Len() != 4 {
		t.Errorf("Expected 4 states, got %d", table.Len())
	}
	if table.EdgeCount() != 6 {
		t.Errorf("Expected 6 edges, got %d", table.EdgeCount())
	}
}

func TestCreateFormMachine(t *testing.T) {
	m := CreateFormMachine()
	AssertState(t, m, "idle")
}
