package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pairlog/pairlog-backend/internal/config"
)

// NewLogger builds the process logger from LogConfig and installs it
// as the slog default, so code without an injected logger still ends
// up in the same stream. Format "json" is what deployments run; "text"
// adds source locations for local work. An unknown level falls back to
// info instead of failing startup.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(os.Stderr, cfg)
	slog.SetDefault(logger)
	return logger
}

func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(cfg.Level))); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: strings.EqualFold(cfg.Format, "text"),
	}

	if strings.EqualFold(cfg.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
