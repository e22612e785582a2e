// Package cli provides centralized command registration.
package cli

import (
	"github.com/andrei-cloud/go_hdcp/internal/commands/cli/formats"
	"github.com/andrei-cloud/go_hdcp/internal/commands/cli/keys"
	"github.com/spf13/cobra"
)

// RegisterCommands registers all root commands.
func RegisterCommands(root *cobra.Command) error {
	// Root commands.
	root.AddCommand(keys.NewKeysCommand())
	root.AddCommand(formats.NewFormatsCommand())

	return nil
}
