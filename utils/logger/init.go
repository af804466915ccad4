package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

var Logger *slog.Logger

func init() {
	// Usable default until InitLogger runs, so packages can log from tests.
	Logger = slog.New(NewTraceContextHandler(slog.NewJSONHandler(io.Discard, nil)))
}

// Options controls how the process logger is built.
type Options struct {
	Level       string
	Format      string // "json" or "text"
	OTelEnabled bool
	ServiceName string
	Output      io.Writer
}

// InitLogger builds the process logger from opts, installs it as the slog
// default and returns it.
func InitLogger(opts Options) *slog.Logger {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	level := parseLevel(opts.Level)

	var handler slog.Handler
	if opts.OTelEnabled {
		handler = NewMultiHandler(opts.Output, level, opts.Format, opts.ServiceName)
	} else {
		handler = NewTraceContextHandler(newStdoutHandler(opts.Output, level, opts.Format))
	}

	Logger = slog.New(handler)
	slog.SetDefault(Logger)

	Logger.Info("Logger initialized", "otel_enabled", opts.OTelEnabled, "level", level.String())

	return Logger
}

func newStdoutHandler(w io.Writer, level slog.Level, format string) slog.Handler {
	handlerOpts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(format, "text") {
		return slog.NewTextHandler(w, handlerOpts)
	}
	return slog.NewJSONHandler(w, handlerOpts)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
