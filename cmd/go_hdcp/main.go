package main

import (
	"os"

	"github.com/andrei-cloud/go_hdcp/internal/commands/cli"
	"github.com/rs/zerolog/log"
)

// main builds the command tree and runs the requested command.
func main() {
	rootCmd, err := cli.NewRootCommand()
	if err != nil {
		log.Error().Err(err).Msg("failed to build command tree")
		os.Exit(1)
	}

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
