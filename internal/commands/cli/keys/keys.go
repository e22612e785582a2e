// Package keys provides HDCP key derivation commands.
package keys

import (
	"fmt"
	"os"

	"github.com/andrei-cloud/go_hdcp/internal/config"
	"github.com/andrei-cloud/go_hdcp/pkg/hdcp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewKeysCommand creates the keys command group.
func NewKeysCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "HDCP key derivation operations",
		Long: `HDCP key derivation operations.
This command provides subcommands for deriving source and sink device keys
from a Key Selection Vector (KSV) and the Master Key Matrix, generating
random valid KSVs, and checking KSV structural validity.`,
	}

	// Add subcommands.
	cmd.AddCommand(newGenerateKeysCommand())
	cmd.AddCommand(newBatchKeysCommand())
	cmd.AddCommand(newCheckKSVCommand())
	cmd.AddCommand(newRandomKSVCommand())

	return cmd
}

// loadMatrix opens and parses the Master Key Matrix named by the --matrix
// flag or the matrix.path config key.
func loadMatrix() (*hdcp.MasterMatrix, error) {
	path := viper.GetString("matrix.path")
	if path == "" {
		path = config.Get().Matrix.Path
	}
	if path == "" {
		return nil, fmt.Errorf("no master key matrix configured; use --matrix or set matrix.path")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open master key matrix: %w", err)
	}
	defer f.Close()

	m, err := hdcp.ParseMasterMatrix(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse master key matrix %s: %w", path, err)
	}

	return m, nil
}
