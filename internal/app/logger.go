package app

import (
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/bconv/internal/fsutil"
)

const (
	defaultLogLevel  = "warn"
	defaultLogFormat = "auto"
)

// newLogger creates and configures a new slog.Logger instance. It does not
// set the global logger, allowing for isolated logger instances. The "auto"
// format writes text to a terminal and JSON everywhere else.
func newLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	if formatStr == "auto" {
		formatStr = "json"
		if fsutil.IsTerminal(outW) {
			formatStr = "text"
		}
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler

	if formatStr == "json" {
		handler = slog.NewJSONHandler(outW, handlerOpts)
	} else {
		handler = slog.NewTextHandler(outW, handlerOpts)
	}

	return slog.New(handler)
}

// validateLogSettings checks the optional log level and format values.
func validateLogSettings(level, format *string) error {
	if level != nil {
		switch strings.ToLower(*level) {
		case "debug", "info", "warn", "error":
		default:
			return errors.New("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
		}
	}
	if format != nil {
		switch strings.ToLower(*format) {
		case "auto", "text", "json":
		default:
			return errors.New("invalid log-format: must be 'auto', 'text' or 'json'")
		}
	}
	return nil
}
