// Package module is the plugin entry point: it parses the host-supplied
// configuration, builds the username-derivation hook, and registers it
// against the host's before-registration extension point.
package module

import (
	"fmt"
	"log/slog"

	"github.com/matrix-org/synapse-username-from-threepid/internal/config"
	"github.com/matrix-org/synapse-username-from-threepid/internal/hook"
	"github.com/matrix-org/synapse-username-from-threepid/internal/host"
)

// Module is one loaded instance of the username-from-threepid plugin.
// It holds only immutable configuration; concurrent registration attempts
// need no coordination.
type Module struct {
	cfg    *config.Config
	hook   *hook.ThreepidHook
	logger *slog.Logger
}

// New parses the raw configuration mapping the host supplies at module load,
// builds the hook, and registers it with the host. A configuration error here
// is fatal: the module does not load.
func New(raw map[string]any, registrar host.Registrar) (*Module, error) {
	cfg, err := config.FromMap(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse module config: %w", err)
	}

	logger := config.NewLogger(cfg.Observability)

	observer, err := config.NewObserverWithLogger(cfg.Observability, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create observer: %w", err)
	}

	h, err := config.NewHook(cfg, observer)
	if err != nil {
		return nil, err
	}

	registrar.RegisterRegistrationHook(h)

	logger.Info("registered username-from-threepid hook",
		"threepid_to_use", cfg.ThreepidToUse,
		"fail_if_not_found", cfg.FailIfNotFound,
	)

	return &Module{
		cfg:    cfg,
		hook:   h,
		logger: logger,
	}, nil
}

// Config returns the parsed module configuration.
func (m *Module) Config() *config.Config {
	return m.cfg
}

// Hook returns the registered registration hook.
func (m *Module) Hook() *hook.ThreepidHook {
	return m.hook
}
