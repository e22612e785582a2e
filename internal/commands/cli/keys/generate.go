package keys

import (
	"fmt"

	"github.com/andrei-cloud/go_hdcp/internal/config"
	"github.com/andrei-cloud/go_hdcp/internal/logging"
	"github.com/andrei-cloud/go_hdcp/pkg/hdcp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newGenerateKeysCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Derive HDCP source and sink keys for a KSV",
		Long: `Derive the HDCP source and sink device keys for a Key Selection Vector.
The KSV is supplied as up to 10 hexadecimal characters, left-padded with zeros;
when omitted, a random structurally valid KSV is generated. A KSV without
exactly twenty set bits is reported but processed anyway, since derivation is
defined for any 40-bit value.`,
		RunE: runGenerateKeys,
	}

	// Add flags.
	cmd.Flags().String("ksv", "", "Key Selection Vector in hex (default: random valid KSV)")
	cmd.Flags().String("out", "", "Output format (default: text_informational; see 'go_hdcp formats')")

	return cmd
}

func runGenerateKeys(cmd *cobra.Command, _ []string) error {
	// Get command flags.
	ksvHex, _ := cmd.Flags().GetString("ksv")
	outName, _ := cmd.Flags().GetString("out")

	if outName == "" {
		outName = viper.GetString("output.format")
	}
	if outName == "" {
		outName = config.Get().Output.Format
	}
	if outName == "" {
		outName = hdcp.TextInformational.String()
	}

	// Reject an unknown format before any derivation work.
	format, err := hdcp.ParseOutputFormat(outName)
	if err != nil {
		return fmt.Errorf("invalid output format: %w", err)
	}

	ksv, err := resolveKSV(ksvHex)
	if err != nil {
		return err
	}

	matrix, err := loadMatrix()
	if err != nil {
		return err
	}

	result := hdcp.Derive(ksv, matrix)
	logging.LogDerivation(ksv.Hex(), ksv.IsValid(), format.String())

	cmd.Print(result.Render(format))

	return nil
}

// resolveKSV parses an explicit KSV or draws a random valid one when the
// flag is empty. Structural invalidity is advisory and only logged.
func resolveKSV(ksvHex string) (hdcp.KSV, error) {
	if ksvHex == "" {
		ksv, err := hdcp.RandomKSV()
		if err != nil {
			return 0, fmt.Errorf("failed to generate random ksv: %w", err)
		}

		return ksv, nil
	}

	ksv := hdcp.ParseKSV(ksvHex)
	if !ksv.IsValid() {
		logging.LogInvalidKSV(ksv.Hex(), ksv.Weight())
	}

	return ksv, nil
}
