package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/matrix-org/synapse-username-from-threepid/internal/hook"
	"github.com/matrix-org/synapse-username-from-threepid/internal/probe"
)

// NewObserver creates a hook observer from configuration.
// This is a convenience wrapper that creates its own logger from cfg.
func NewObserver(cfg *ObservabilityConfig) (hook.Observer, error) {
	return NewObserverWithLogger(cfg, NewLogger(cfg))
}

// NewObserverWithLogger creates a hook observer using the provided logger.
// Use this when the observer should share a logger with other components.
func NewObserverWithLogger(cfg *ObservabilityConfig, logger *slog.Logger) (hook.Observer, error) {
	if cfg == nil {
		// Default to no-op observer if not configured
		return &hook.NoOpObserver{}, nil
	}

	switch cfg.Type {
	case "logging":
		return probe.NewLoggingObserver(logger), nil
	case "noop", "":
		return &hook.NoOpObserver{}, nil
	default:
		return nil, fmt.Errorf("unknown observability type: %s (supported: logging, noop)", cfg.Type)
	}
}

// NewLogger creates a structured logger from the observability configuration.
// Returns slog.Default() if cfg is nil.
func NewLogger(cfg *ObservabilityConfig) *slog.Logger {
	if cfg == nil {
		return slog.Default()
	}

	level := parseLogLevel(cfg.LogLevel)
	return slog.New(createHandler(cfg.LogFormat, level))
}

// createHandler creates a slog handler for the given format and level
func createHandler(format string, level slog.Level) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(format) {
	case "json":
		return slog.NewJSONHandler(os.Stderr, opts)
	default:
		return slog.NewTextHandler(os.Stderr, opts)
	}
}

// parseLogLevel maps a config string to a slog level, defaulting to info
func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
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
