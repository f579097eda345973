package fsmhook

import (
	"context"
	"math"
)

// LogLevel controls how much a Machine reports through its Logger
type LogLevel int

const (
	// LogNone disables all reporting
	LogNone LogLevel = iota
	// LogInfo reports rejected operations via Warn
	LogInfo
	// LogDebug additionally reports successful transitions and undos via Log
	LogDebug
)

// String returns the textual form of the level
func (l LogLevel) String() string {
	switch l {
	case LogNone:
		return "none"
	case LogInfo:
		return "info"
	case LogDebug:
		return "debug"
	}
	return "unknown"
}

// HistoryUnbounded disables history trimming. A MaxHistory of zero or less
// disables history entirely instead.
const HistoryUnbounded = math.MaxInt

// Config holds the resolved settings of a Machine. All fields of a Config
// passed to WithConfig are meaningful, including zero values: a zero
// MaxHistory disables history, and a nil Logger falls back to DefaultLogger.
type Config struct {
	LogLevel   LogLevel
	MaxHistory int
	Logger     Logger
}

// DefaultConfig returns the hard defaults: no logging, unbounded history,
// and a standard-error logger
func DefaultConfig() Config {
	return Config{
		LogLevel:   LogNone,
		MaxHistory: HistoryUnbounded,
		Logger:     DefaultLogger(),
	}
}

// Option overrides one or more settings at Machine construction. Options are
// applied in order on top of DefaultConfig, later options winning, so an
// ambient WithConfig or WithContextConfig should come before field-level
// overrides.
type Option func(*Config)

// WithLogLevel sets the reporting level
func WithLogLevel(level LogLevel) Option {
	return func(c *Config) {
		c.LogLevel = level
	}
}

// WithMaxHistory bounds the undo history to the n most recent entries.
// Zero or negative disables history, making Undo a permanent no-op.
func WithMaxHistory(n int) Option {
	return func(c *Config) {
		c.MaxHistory = n
	}
}

// WithLogger sets the Logger the machine reports through
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		if logger != nil {
			c.Logger = logger
		}
	}
}

// WithConfig replaces every setting with the given config. The config is
// taken whole; it is not merged field-by-field against earlier options.
func WithConfig(cfg Config) Option {
	return func(c *Config) {
		*c = cfg
		if c.Logger == nil {
			c.Logger = DefaultLogger()
		}
	}
}

// WithContextConfig applies the ambient config carried by ctx, if any.
// The config is read once, at construction; changing the context value
// afterwards does not affect machines already built from it.
func WithContextConfig(ctx context.Context) Option {
	return func(c *Config) {
		if cfg, ok := ConfigFromContext(ctx); ok {
			WithConfig(cfg)(c)
		}
	}
}

type configContextKey struct{}

// NewContext returns a copy of ctx carrying cfg as the ambient machine
// config, for use with WithContextConfig
func NewContext(ctx context.Context, cfg Config) context.Context {
	return context.WithValue(ctx, configContextKey{}, cfg)
}

// ConfigFromContext returns the ambient config carried by ctx, if present
func ConfigFromContext(ctx context.Context) (Config, bool) {
	cfg, ok := ctx.Value(configContextKey{}).(Config)
	return cfg, ok
}
