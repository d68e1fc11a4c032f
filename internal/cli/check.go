package cli

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/matrix-org/synapse-username-from-threepid/internal/config"
)

// NewCheckCmd creates the check command
func NewCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the module configuration",
		Long: `Validate the module configuration and print the effective values.

Loads configuration the same way the module does (file, environment
variables, flags, defaults) and fails if it would prevent the module from
loading.

Examples:
  # Validate a config file
  usernamehook check --config config.yaml

  # Validate environment-only configuration
  USERNAMEHOOK_THREEPID_TO_USE=email usernamehook check`,
		RunE: runCheck,
	}

	config.RegisterFlags(cmd.Flags())

	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	loader, err := config.NewLoaderWithFlags(resolveConfigPath(), cmd.Flags())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cfg, err := loader.Get()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Echo the effective configuration so operators can see what the
	// module would actually run with
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to render config: %w", err)
	}

	cmd.Printf("configuration is valid\n---\n%s", out)
	return nil
}
