package config

import (
	"fmt"

	"github.com/matrix-org/synapse-username-from-threepid/internal/hook"
)

// NewHook creates the registration hook from validated configuration
func NewHook(cfg *Config, observer hook.Observer) (*hook.ThreepidHook, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	h, err := hook.NewThreepidHook(hook.ThreepidHookConfig{
		Medium:         cfg.Medium(),
		FailIfNotFound: cfg.FailIfNotFound,
		Observer:       observer,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create registration hook: %w", err)
	}

	return h, nil
}
