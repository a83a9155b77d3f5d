// Package logging builds the slog logger used for diagnostics.
package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/fatih/color"
	"github.com/lmittmann/tint"

	"github.com/sandrolain/greeter/src/config"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"
	FormatText    = "text"
)

// ParseLevel maps a configured level name to a slog level, defaulting to warn.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// New returns a logger writing to w. It does not touch the global logger.
func New(w io.Writer, cfg config.LogConfig) *slog.Logger {
	level := ParseLevel(cfg.Level)

	var handler slog.Handler
	switch cfg.Format {
	case FormatJSON:
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	case FormatText:
		handler = slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	default:
		handler = tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: cfg.TimeFormat,
			NoColor:    cfg.NoColor || color.NoColor,
		})
	}

	return slog.New(handler)
}
