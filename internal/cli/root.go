// Package cli implements the usernamehook command-line tool: operator
// utilities for validating module configuration and dry-running username
// derivations outside a host homeserver.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// configFile holds the --config flag value shared by all commands
var configFile string

// NewRootCmd creates the root usernamehook command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "usernamehook",
		Short: "Tools for the username-from-threepid registration module",
		Long: `Operator tools for the username-from-threepid registration module.

The module itself runs inside a host homeserver; this tool validates its
configuration and dry-runs username derivations without a host.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to the module configuration file")

	cmd.AddCommand(NewCheckCmd())
	cmd.AddCommand(NewDeriveCmd())

	return cmd
}

// resolveConfigPath determines the config file path from the flag or the
// USERNAMEHOOK_CONFIG environment variable. May be empty; the loader then
// falls back to environment variables, flags, and defaults.
func resolveConfigPath() string {
	if configFile != "" {
		return configFile
	}
	return os.Getenv("USERNAMEHOOK_CONFIG")
}
