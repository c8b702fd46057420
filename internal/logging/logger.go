// Package logging wraps log/slog with the fields the CLI and server log.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Logger wraps slog.Logger so every solve is logged with the same field names.
type Logger struct {
	*slog.Logger
}

// New creates a Logger writing to w. format is "text" or "json".
func New(w io.Writer, format string, level slog.Level) (*Logger, error) {
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch format {
	case "text", "":
		handler = slog.NewTextHandler(w, opts)
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		return nil, errors.Errorf("unknown log format %q", format)
	}
	return &Logger{Logger: slog.New(handler)}, nil
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// ParseLevel accepts debug, info, warn and error, case insensitively.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, errors.Wrapf(err, "invalid log level %q", s)
	}
	return level, nil
}

// WithRun tags every record with a run name.
func (l *Logger) WithRun(name string) *Logger {
	return &Logger{Logger: l.Logger.With("run", name)}
}

// LogSolve logs a completed solve. A missing pair is not an error, just less
// interesting, so it is logged at the same level.
func (l *Logger) LogSolve(ctx context.Context, algorithm string, n int, distance float64, found bool, elapsed time.Duration) {
	if found {
		l.InfoContext(ctx, "solve completed",
			"algorithm", algorithm,
			"points", n,
			"distance", distance,
			"elapsed", elapsed,
		)
	} else {
		l.InfoContext(ctx, "solve completed without a pair",
			"algorithm", algorithm,
			"points", n,
			"elapsed", elapsed,
		)
	}
}

// LogRequest logs a served HTTP request.
func (l *Logger) LogRequest(ctx context.Context, method, path string, status int, elapsed time.Duration, err error) {
	if err != nil {
		l.WarnContext(ctx, "request failed",
			"method", method,
			"path", path,
			"status", status,
			"elapsed", elapsed,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "request completed",
			"method", method,
			"path", path,
			"status", status,
			"elapsed", elapsed,
		)
	}
}
