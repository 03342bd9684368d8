package config

import (
	"io"
	"log/slog"
	"os"
)

// SetupLogger installs the default slog logger on stdout using LogLevel and
// LogFormat.
func SetupLogger(cfg *Config) {
	slog.SetDefault(NewLogger(cfg, os.Stdout))
}

// NewLogger builds a logger writing to w.
func NewLogger(cfg *Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{}

	switch cfg.LogLevel {
	case "debug":
		opts.Level = slog.LevelDebug
	case "warn":
		opts.Level = slog.LevelWarn
	case "error":
		opts.Level = slog.LevelError
	default:
		opts.Level = slog.LevelInfo
	}

	var h slog.Handler
	switch cfg.LogFormat {
	case "json":
		h = slog.NewJSONHandler(w, opts)
	default:
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h)
}
