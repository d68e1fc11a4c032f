package config

import "github.com/spf13/pflag"

// flagMapping maps command-line flag names to configuration keys.
// Every entry here gets a flag registered by RegisterFlags and is honored by
// the posflag provider in the loader.
var flagMapping = map[string]string{
	"threepid-to-use":   "threepid_to_use",
	"fail-if-not-found": "fail_if_not_found",
	"observer":          "observability.type",
	"log-level":         "observability.log_level",
	"log-format":        "observability.log_format",
}

// RegisterFlags registers all configuration flags on the given flag set
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String("threepid-to-use", "", "Identifier kind to derive usernames from (email or msisdn)")
	flags.Bool("fail-if-not-found", false, "Reject registration when no matching identifier is supplied")
	flags.String("observer", "", "Decision observer type (logging or noop)")
	flags.String("log-level", "", "Log level for the logging observer (debug, info, warn, error)")
	flags.String("log-format", "", "Log format (text or json)")
}

// GetFlagMapping returns the mapping from flag names to config keys
func GetFlagMapping() map[string]string {
	return flagMapping
}
