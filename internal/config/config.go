// Package config loads and validates the module configuration, and provides
// factory functions that build wired components from it.
package config

import (
	"fmt"

	"github.com/matrix-org/synapse-username-from-threepid/internal/threepid"
)

// Config is the module configuration. It is immutable after load; the module
// holds it for the lifetime of the host process.
type Config struct {
	// ThreepidToUse selects which identifier kind usernames are derived
	// from. Required; must be "email" or "msisdn".
	ThreepidToUse string `koanf:"threepid_to_use" json:"threepid_to_use" yaml:"threepid_to_use"`

	// FailIfNotFound rejects registration attempts that carry no
	// identifier of the configured kind. Defaults to false, which lets the
	// host fall back to its own username flow.
	FailIfNotFound bool `koanf:"fail_if_not_found" json:"fail_if_not_found" yaml:"fail_if_not_found"`

	// Observability configures decision logging.
	Observability *ObservabilityConfig `koanf:"observability" json:"observability,omitempty" yaml:"observability,omitempty"`
}

// ObservabilityConfig configures how hook decisions are observed.
type ObservabilityConfig struct {
	// Type selects the observer implementation: "logging" or "noop".
	Type string `koanf:"type" json:"type" yaml:"type"`

	// LogLevel sets the minimum level for the logging observer
	// (debug, info, warn, error). Defaults to info.
	LogLevel string `koanf:"log_level" json:"log_level,omitempty" yaml:"log_level,omitempty"`

	// LogFormat selects the slog handler: "text" or "json". Defaults to text.
	LogFormat string `koanf:"log_format" json:"log_format,omitempty" yaml:"log_format,omitempty"`
}

// Validate checks that required fields are present and at legal values.
// A Config that fails validation must not be used to build a hook; the module
// refuses to load on it.
func (c *Config) Validate() error {
	if c.ThreepidToUse == "" {
		return fmt.Errorf(`missing required configuration key: "threepid_to_use"`)
	}

	if _, err := threepid.ParseMedium(c.ThreepidToUse); err != nil {
		return fmt.Errorf(`"threepid_to_use" can only be either "email" or "msisdn", got %q`, c.ThreepidToUse)
	}

	return nil
}

// Medium returns the configured identifier kind. Call only after Validate.
func (c *Config) Medium() threepid.Medium {
	return threepid.Medium(c.ThreepidToUse)
}
