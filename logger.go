package addmul

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with addmul-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithScalar adds a scalar field to the logger.
func (l *Logger) WithScalar(c int64) *Logger {
	return &Logger{
		Logger: l.Logger.With("scalar", c),
	}
}

// WithLength adds a row length field to the logger.
func (l *Logger) WithLength(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("length", n),
	}
}

// WithDepth adds a reduction depth field to the logger.
func (l *Logger) WithDepth(depth int) *Logger {
	return &Logger{
		Logger: l.Logger.With("depth", depth),
	}
}

// LogScalarMultiply logs a scalar-vector multiplication.
func (l *Logger) LogScalarMultiply(c int64, length, depth int, err error) {
	if err != nil {
		l.Error("scalar multiply failed",
			"scalar", c,
			"length", length,
			"error", err,
		)
	} else {
		l.Debug("scalar multiply completed",
			"scalar", c,
			"length", length,
			"depth", depth,
		)
	}
}

// LogOuterProduct logs an outer-product construction.
func (l *Logger) LogOuterProduct(rows, cols, cacheHits int, err error) {
	if err != nil {
		l.Error("outer product failed",
			"rows", rows,
			"cols", cols,
			"error", err,
		)
	} else {
		l.Debug("outer product completed",
			"rows", rows,
			"cols", cols,
			"cache_hits", cacheHits,
		)
	}
}
