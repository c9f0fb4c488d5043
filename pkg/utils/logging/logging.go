package logging

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/m-mizutani/clog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/masq"
)

// Format specifies the output format of the logger
type Format int

const (
	FormatConsole Format = iota
	FormatJSON
)

var defaultLogger = New(os.Stdout, slog.LevelInfo, FormatConsole)

// Default returns the process-wide default logger
func Default() *slog.Logger {
	return defaultLogger
}

// SetDefault replaces the process-wide default logger
func SetDefault(logger *slog.Logger) {
	defaultLogger = logger
	slog.SetDefault(logger)
}

// New creates a new slog.Logger with the given output, level and format.
// Sensitive fields tagged with `masq:"secret"` are redacted.
func New(w io.Writer, level slog.Level, format Format) *slog.Logger {
	filter := masq.New(
		masq.WithTag("secret"),
		masq.WithFieldPrefix("secret_"),
	)

	var handler slog.Handler
	switch format {
	case FormatJSON:
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			AddSource:   true,
			Level:       level,
			ReplaceAttr: filter,
		})

	default:
		handler = clog.New(
			clog.WithWriter(w),
			clog.WithLevel(level),
			clog.WithReplaceAttr(filter),
			clog.WithSource(true),
		)
	}

	return slog.New(handler)
}

// ParseLevel converts a level name into a slog.Level
func ParseLevel(s string) (slog.Level, error) {
	switch s {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, goerr.New("invalid log level", goerr.V("level", s))
	}
}

type ctxLoggerKey struct{}

// With embeds a logger into the context
func With(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxLoggerKey{}, logger)
}

// From extracts the logger from the context, falling back to the default
func From(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(ctxLoggerKey{}).(*slog.Logger); ok {
		return logger
	}
	return defaultLogger
}
