package keys

import (
	"errors"

	"github.com/andrei-cloud/go_hdcp/pkg/hdcp"
	"github.com/spf13/cobra"
)

func newCheckKSVCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check a KSV for structural validity",
		Long: `Check whether a Key Selection Vector is structurally valid.
A valid KSV is a 40-bit value with exactly twenty set bits. The command
reports the canonical hex form, the Hamming weight, and the verdict, and
exits non-zero for an invalid KSV.`,
		RunE: runCheckKSV,
	}

	// Add flags.
	cmd.Flags().String("ksv", "", "Key Selection Vector in hex")

	if err := cmd.MarkFlagRequired("ksv"); err != nil {
		panic(err)
	}

	return cmd
}

func runCheckKSV(cmd *cobra.Command, _ []string) error {
	ksvHex, _ := cmd.Flags().GetString("ksv")

	ksv := hdcp.ParseKSV(ksvHex)

	// Output results.
	cmd.Printf("KSV: %s\n", ksv.Hex())
	cmd.Printf("Hamming Weight: %d\n", ksv.Weight())
	cmd.Printf("Valid: %t\n", ksv.IsValid())

	if !ksv.IsValid() {
		return errors.New("ksv must have exactly 20 of 40 bits set")
	}

	return nil
}
