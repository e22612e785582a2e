// Package cli provides the CLI command structure for go_hdcp.
package cli

import (
	"fmt"
	"os"

	"github.com/andrei-cloud/go_hdcp/internal/config"
	"github.com/andrei-cloud/go_hdcp/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// Version is the application version reported by --version.
const Version = "1.0.0"

// NewRootCommand creates and returns the root command with all subcommands.
func NewRootCommand() (*cobra.Command, error) {
	rootCmd := &cobra.Command{
		Use:   "go_hdcp",
		Short: "HDCP 1.x key generation utilities",
		Long: `A tool for deriving HDCP (versions 1.0-1.4) source and sink device keys
from a Key Selection Vector and a shared Master Key Matrix.`,
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			// Initialize configuration before running any command.
			if err := config.Initialize(); err != nil {
				return fmt.Errorf("failed to initialize configuration: %w", err)
			}

			logging.InitLogger(
				viper.GetString("log.level"),
				viper.GetString("log.format") != "json",
			)

			return nil
		},
	}

	// Rendered results belong on stdout; logs go to stderr.
	rootCmd.SetOut(os.Stdout)

	// Add persistent flags that affect all commands.
	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file (default is $HOME/.go_hdcp/config.yaml)")

	// Add global flags that can override config file settings.
	rootCmd.PersistentFlags().
		String("log-level", "info", "logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "", "logging format (human, json)")
	rootCmd.PersistentFlags().
		String("matrix", "", "path to the Master Key Matrix file (1600 hex cells, row-major)")

	// Bind flags to viper.
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("matrix.path", rootCmd.PersistentFlags().Lookup("matrix"))

	// Register all commands.
	if err := RegisterCommands(rootCmd); err != nil {
		return nil, fmt.Errorf("failed to register commands: %w", err)
	}

	return rootCmd, nil
}
