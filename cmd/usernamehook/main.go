package main

import (
	"os"

	"github.com/matrix-org/synapse-username-from-threepid/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
