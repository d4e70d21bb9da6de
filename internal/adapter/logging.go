package adapter

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// SetupLogger opens the configured log file and returns a JSON logger writing
// to it. The returned close func flushes and releases the file.
func SetupLogger(cfg *LoggingConfig) (*slog.Logger, func() error, error) {
	path := expandHome(cfg.File)
	if path == "" {
		return nil, nil, fmt.Errorf("no log file configured")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file %s: %w", path, err)
	}

	level := parseLogLevel(cfg.Level)
	handler := slog.NewJSONHandler(f, &slog.HandlerOptions{
		Level:     level,
		AddSource: level <= slog.LevelDebug,
	})
	return slog.New(handler).With("app", "popcorn"), f.Close, nil
}

// parseLogLevel maps a config level name to slog.Level, INFO when unknown
func parseLogLevel(name string) slog.Level {
	name = strings.ToUpper(strings.TrimSpace(name))
	if name == "WARNING" {
		name = "WARN"
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// NullLogger returns a logger that discards all output
func NullLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
