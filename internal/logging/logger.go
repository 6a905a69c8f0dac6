package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
)

// Logger wraps slog.Logger with generator-specific helpers.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// Format selects the log output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// New creates a Logger writing to w in the given format at the given level.
func New(w io.Writer, format Format, level slog.Level) (*Logger, error) {
	opts := &slog.HandlerOptions{Level: level}

	switch format {
	case FormatText, "":
		return &Logger{Logger: slog.New(slog.NewTextHandler(w, opts))}, nil
	case FormatJSON:
		return &Logger{Logger: slog.New(slog.NewJSONHandler(w, opts))}, nil
	default:
		return nil, fmt.Errorf("unknown log format %q (want text or json)", format)
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// ParseLevel maps debug, info, warn and error to their slog levels.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level

	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("unknown log level %q: %w", s, err)
	}

	return level, nil
}

// WithTarget adds the declaration target to the logger.
func (l *Logger) WithTarget(target string) *Logger {
	return &Logger{Logger: l.Logger.With("target", target)}
}

// LogGenerate logs the outcome of generating one declaration. Call it on a
// logger returned by WithTarget.
func (l *Logger) LogGenerate(ctx context.Context, impls int, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "generation failed",
			"error", err,
		)

		return
	}

	l.DebugContext(ctx, "generation completed",
		"impls", impls,
		"elapsed", elapsed,
	)
}

// LogRun logs the summary of a whole run.
func (l *Logger) LogRun(ctx context.Context, declarations, rejected, files int) {
	if rejected > 0 {
		l.WarnContext(ctx, "run completed with rejected declarations",
			"declarations", declarations,
			"rejected", rejected,
			"files", files,
		)

		return
	}

	l.InfoContext(ctx, "run completed",
		"declarations", declarations,
		"files", files,
	)
}
