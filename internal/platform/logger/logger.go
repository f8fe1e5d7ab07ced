package logger

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/sdmc-web/envsettings/internal/config"
	"github.com/sdmc-web/envsettings/internal/environ"
)

// ParseLevel converts a configured level name (case-insensitive) to a
// slog.Level. ok is false for unknown names, in which case info is returned.
func ParseLevel(name string) (level slog.Level, ok bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// Setup initializes the logging system from cfg, writing to out.
//
// An invalid level falls back to info and logs a warning through the new
// logger; an unknown format is an error. When env looks like a CI run the
// handler is wrapped in a CIHandler. The returned logger is also installed as
// the slog default.
func Setup(cfg config.LogConfig, out io.Writer, env environ.Snapshot) (*slog.Logger, error) {
	level, validLevel := ParseLevel(cfg.Level)

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "", "json":
		if info, isCI := environ.DetectCI(env); isCI {
			handler = NewCIHandler(out, opts, info)
		} else {
			handler = slog.NewJSONHandler(out, opts)
		}
	case "text":
		handler = slog.NewTextHandler(out, opts)
		if info, isCI := environ.DetectCI(env); isCI {
			handler = handler.WithAttrs(ciAttrs(info))
		}
	default:
		return nil, fmt.Errorf("unsupported log format %q", cfg.Format)
	}

	logger := slog.New(handler)

	if !validLevel {
		logger.Warn("invalid log level configured, using default level",
			"configured_level", cfg.Level,
			"default_level", "info")
	}

	slog.SetDefault(logger)

	return logger, nil
}
