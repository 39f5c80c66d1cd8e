package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/haskel/statkit/internal/config"
)

// New writes to stderr so that stdout stays clean for command output.
// verbose forces debug level regardless of cfg.
func New(cfg config.LoggingConfig, verbose bool) *slog.Logger {
	level := cfg.Level
	if verbose {
		level = "debug"
	}
	return NewWithWriter(os.Stderr, level, cfg.Format)
}

func NewWithWriter(w io.Writer, level string, format string) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
