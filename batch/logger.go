package batch

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/jonlawlor/cartesian"
)

// Logger wraps slog.Logger with the field names used for batch runs.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses a text handler to stderr at info level.
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

// NewJSONLogger creates a Logger that writes JSON-formatted logs to w.
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that writes human-readable logs to w.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // unreachable
	}))
}

// WithCase adds a case id field to the logger.
func (l *Logger) WithCase(id string) *Logger {
	return &Logger{
		Logger: l.Logger.With("case", id),
	}
}

// LogCase logs the outcome of a single case.
func (l *Logger) LogCase(ctx context.Context, rows int, sol cartesian.Solution, err error) {
	if err != nil {
		l.WarnContext(ctx, "case failed",
			"rows", rows,
			"kind", KindOf(err).String(),
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "case solved",
		"rows", rows,
		"distinct", sol.Rows.Card(),
		"size", sol.Size,
		"examined", sol.Examined,
	)
}

// LogBatch logs the summary of a batch run.
func (l *Logger) LogBatch(ctx context.Context, r Report) {
	if len(r.Failures) > 0 {
		l.WarnContext(ctx, "batch completed with failures",
			"total", r.Total(),
			"failed", len(r.Failures),
			"passed", len(r.Passed),
		)
		return
	}
	l.InfoContext(ctx, "batch completed",
		"total", r.Total(),
	)
}
