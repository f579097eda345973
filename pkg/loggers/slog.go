package loggers

import "log/slog"

// SlogLogger adapts a log/slog logger to the fsmhook Logger interface
type SlogLogger struct {
	l *slog.Logger
}

// NewSlogLogger creates a SlogLogger backed by the given slog logger.
// A nil logger falls back to slog.Default.
func NewSlogLogger(l *slog.Logger) *SlogLogger {
	if l == nil {
		l = slog.Default()
	}
	return &SlogLogger{l: l}
}

// Log reports routine machine activity at Info level
func (s *SlogLogger) Log(msg string) {
	s.l.Info(msg)
}

// Warn reports a rejected machine operation at Warn level
func (s *SlogLogger) Warn(msg string) {
	s.l.Warn(msg)
}
