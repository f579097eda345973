package fsmhook

import (
	"io"
	"log"
	"os"
)

// Logger is the capability a Machine uses to report what it is doing.
// Implementations must tolerate being called zero or many times per
// operation. The machine does not recover from a panicking logger; it
// propagates to the caller of the operation that triggered it.
type Logger interface {
	// Log reports routine activity, such as a successful transition
	Log(msg string)

	// Warn reports a rejected operation, such as an invalid transition
	Warn(msg string)
}

// DefaultLogger returns a Logger that writes to standard error
func DefaultLogger() Logger {
	return &stdLogger{l: log.New(os.Stderr, "", log.LstdFlags)}
}

// NewWriterLogger returns a Logger that writes to the given writer
func NewWriterLogger(w io.Writer) Logger {
	return &stdLogger{l: log.New(w, "", log.LstdFlags)}
}

type stdLogger struct {
	l *log.Logger
}

func (s *stdLogger) Log(msg string) {
	s.l.Printf("[INFO] %s", msg)
}

func (s *stdLogger) Warn(msg string) {
	s.l.Printf("[WARN] %s", msg)
}

// NopLogger returns a Logger that discards all messages
func NopLogger() Logger {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) Log(string)  {}
func (nopLogger) Warn(string) {}
