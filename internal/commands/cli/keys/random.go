package keys

import (
	"fmt"

	"github.com/andrei-cloud/go_hdcp/pkg/hdcp"
	"github.com/spf13/cobra"
)

func newRandomKSVCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Generate random valid KSVs",
		Long: `Generate random structurally valid Key Selection Vectors.
Each KSV has exactly twenty of its forty bits set, drawn uniformly over all
such patterns, and is printed as ten hexadecimal characters, one per line.`,
		RunE: runRandomKSV,
	}

	// Add flags.
	cmd.Flags().Int("count", 1, "Number of KSVs to generate")

	return cmd
}

func runRandomKSV(cmd *cobra.Command, _ []string) error {
	count, _ := cmd.Flags().GetInt("count")
	if count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", count)
	}

	for i := 0; i < count; i++ {
		ksv, err := hdcp.RandomKSV()
		if err != nil {
			return fmt.Errorf("failed to generate random ksv: %w", err)
		}

		cmd.Println(ksv.Hex())
	}

	return nil
}
