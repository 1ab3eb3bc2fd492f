package biglist

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with biglist-specific context.
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
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithPolicy adds a policy field to the logger.
func (l *Logger) WithPolicy(p Policy) *Logger {
	return &Logger{
		Logger: l.Logger.With("policy", p.String()),
	}
}

// LogCreated logs the construction of a list.
func (l *Logger) LogCreated(ctx context.Context, policy Policy, maxSegmentCapacity int) {
	l.DebugContext(ctx, "list created",
		"policy", policy.String(),
		"max_segment_capacity", maxSegmentCapacity,
	)
}

// LogBulk logs a bulk operation that touched count elements.
func (l *Logger) LogBulk(ctx context.Context, op string, count int64, err error) {
	if err != nil {
		l.WarnContext(ctx, op+" failed",
			"count", count,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, op+" completed",
			"count", count,
		)
	}
}

// LogConfig logs where the process default configuration came from.
func (l *Logger) LogConfig(ctx context.Context, source string, cfg Config, err error) {
	if err != nil {
		l.WarnContext(ctx, "configuration ignored",
			"source", source,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "configuration loaded",
			"source", source,
			"policy", cfg.Policy.String(),
			"default_max_segment_capacity", cfg.DefaultMaxSegmentCapacity,
		)
	}
}
