// Package loggers provides adapters that satisfy the fsmhook Logger
// interface on top of common logging backends.
package loggers

import "go.uber.org/zap"

// ZapLogger adapts a zap logger to the fsmhook Logger interface.
// Log maps to Info and Warn maps to Warn; the machine's own log level
// already gates what reaches the adapter.
type ZapLogger struct {
	l *zap.Logger
}

// NewZapLogger creates a ZapLogger backed by the given zap logger
func NewZapLogger(l *zap.Logger) *ZapLogger {
	return &ZapLogger{l: l}
}

// Log reports routine machine activity at Info level
func (z *ZapLogger) Log(msg string) {
	z.l.Info(msg)
}

// Warn reports a rejected machine operation at Warn level
func (z *ZapLogger) Warn(msg string) {
	z.l.Warn(msg)
}
