package keys

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/andrei-cloud/go_hdcp/pkg/hdcp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newBatchKeysCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Derive keys for many random KSVs",
		Long: `Derive source and sink device keys for a batch of random valid KSVs.
Each derivation is an independent pure function of its KSV and the shared
read-only Master Key Matrix, so the batch runs concurrently. Results are
printed in batch order.`,
		RunE: runBatchKeys,
	}

	// Add flags.
	cmd.Flags().Int("count", 10, "Number of derivations to run")
	cmd.Flags().String("out", "text_line_source", "Output format per derivation")

	return cmd
}

func runBatchKeys(cmd *cobra.Command, _ []string) error {
	count, _ := cmd.Flags().GetInt("count")
	outName, _ := cmd.Flags().GetString("out")

	if count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", count)
	}

	// Reject an unknown format before any derivation work.
	format, err := hdcp.ParseOutputFormat(outName)
	if err != nil {
		return fmt.Errorf("invalid output format: %w", err)
	}

	matrix, err := loadMatrix()
	if err != nil {
		return err
	}

	// The matrix is never mutated, so concurrent derivations need no
	// coordination beyond collecting results in order.
	rendered := make([]string, count)

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < count; i++ {
		g.Go(func() error {
			ksv, err := hdcp.RandomKSV()
			if err != nil {
				return fmt.Errorf("failed to generate random ksv: %w", err)
			}

			rendered[i] = hdcp.Derive(ksv, matrix).Render(format)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, out := range rendered {
		cmd.Print(out)
		if !strings.HasSuffix(out, "\n") {
			cmd.Println()
		}
	}

	return nil
}
