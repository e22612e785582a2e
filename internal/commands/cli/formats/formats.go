// Package formats provides the output format listing command.
package formats

import (
	"github.com/andrei-cloud/go_hdcp/internal/cli"
	"github.com/spf13/cobra"
)

// NewFormatsCommand creates the formats command.
func NewFormatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List supported output formats",
		Long: `List the output formats accepted by the --out flag.
Plain-text formats render human-readable tables or single lines; the
structured formats render JSON, YAML, XML, or TOML, each with a _full
variant that additionally includes the Master Key Matrix.`,
		RunE: runFormats,
	}
}

func runFormats(cmd *cobra.Command, _ []string) error {
	cli.PrintSupportedFormats(cmd.OutOrStdout())

	return nil
}
