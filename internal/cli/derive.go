package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matrix-org/synapse-username-from-threepid/internal/config"
	"github.com/matrix-org/synapse-username-from-threepid/internal/hook"
	"github.com/matrix-org/synapse-username-from-threepid/internal/host"
	"github.com/matrix-org/synapse-username-from-threepid/internal/threepid"
)

// NewDeriveCmd creates the derive command
func NewDeriveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "derive medium:address [medium:address...]",
		Short: "Dry-run a username derivation",
		Long: `Dry-run a registration attempt against the configured hook.

Identifiers are given as medium:address pairs in the order the host would
supply them. The command prints the hook's decision; a rejection makes the
command fail, mirroring a failed registration.

Examples:
  # Derive from an email address
  usernamehook derive --config config.yaml email:alice@example.com

  # Multiple identifiers, first match wins
  usernamehook derive --threepid-to-use msisdn email:a@b.c msisdn:+15551234567`,
		Args: cobra.MinimumNArgs(1),
		RunE: runDerive,
	}

	config.RegisterFlags(cmd.Flags())

	return cmd
}

func runDerive(cmd *cobra.Command, args []string) error {
	loader, err := config.NewLoaderWithFlags(resolveConfigPath(), cmd.Flags())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cfg, err := loader.Get()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	identifiers, err := parseIdentifierArgs(args)
	if err != nil {
		return err
	}

	observer, err := config.NewObserver(cfg.Observability)
	if err != nil {
		return fmt.Errorf("failed to create observer: %w", err)
	}

	h, err := config.NewHook(cfg, observer)
	if err != nil {
		return err
	}

	// Drive the hook through a stub host, the way a homeserver would
	stub := host.NewStubHost()
	stub.RegisterRegistrationHook(h)

	decision, err := stub.RunBeforeRegistration(cmd.Context(), identifiers)
	if err != nil {
		return fmt.Errorf("derivation failed: %w", err)
	}

	switch decision.Kind {
	case hook.KindProposed:
		cmd.Printf("proposed username: %s\n", decision.Username)
		return nil
	case hook.KindRejected:
		return &host.RejectedError{Message: decision.Message}
	default:
		cmd.Println("no opinion: the host would fall back to its default username flow")
		return nil
	}
}

// parseIdentifierArgs parses medium:address arguments into identifiers
func parseIdentifierArgs(args []string) ([]threepid.Identifier, error) {
	identifiers := make([]threepid.Identifier, 0, len(args))

	for _, arg := range args {
		rawMedium, address, ok := strings.Cut(arg, ":")
		if !ok || address == "" {
			return nil, fmt.Errorf("invalid identifier %q (expected medium:address)", arg)
		}

		medium, err := threepid.ParseMedium(rawMedium)
		if err != nil {
			return nil, fmt.Errorf("invalid identifier %q: %w", arg, err)
		}

		identifiers = append(identifiers, threepid.Identifier{
			Medium:  medium,
			Address: address,
		})
	}

	return identifiers, nil
}
