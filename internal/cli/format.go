// Package cli contains utilities for CLI operations.
package cli

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"
)

// GetSupportedOutputFormats returns a map of output format selectors to
// readable descriptions.
func GetSupportedOutputFormats() map[string]string {
	return map[string]string{
		"text_informational":   "Human-readable KSV, generated source device key, and generated sink device key",
		"text_source_only":     "Human-readable generated source device key only",
		"text_sink_only":       "Human-readable generated sink device key only",
		"text_source_ksv_only": "Human-readable KSV and generated source device key",
		"text_sink_ksv_only":   "Human-readable KSV and generated sink device key",
		"text_line_source":     "Generated source device key as a line of space-separated hexadecimal values",
		"text_line_sink":       "Generated sink device key as a line of space-separated hexadecimal values",
		"text_full":            "Human-readable KSV, source and sink device keys, and the Master Key Matrix",
		"json":                 "KSV, source device key, and sink device key as JSON",
		"json_full":            "KSV, source and sink device keys, and the Master Key Matrix as JSON",
		"yaml":                 "KSV, source device key, and sink device key as YAML",
		"yaml_full":            "KSV, source and sink device keys, and the Master Key Matrix as YAML",
		"xml":                  "KSV, source device key, and sink device key as XML",
		"xml_full":             "KSV, source and sink device keys, and the Master Key Matrix as XML",
		"toml":                 "KSV, source device key, and sink device key as TOML",
		"toml_full":            "KSV, source and sink device keys, and the Master Key Matrix as TOML",
	}
}

// PrintSupportedFormats writes the supported output formats to w as an
// aligned table, sorted by selector name.
func PrintSupportedFormats(w io.Writer) {
	formats := GetSupportedOutputFormats()

	names := make([]string, 0, len(formats))
	for name := range formats {
		names = append(names, name)
	}
	sort.Strings(names)

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	defer tw.Flush()

	fmt.Fprintln(tw, "Format\tDescription")
	fmt.Fprintln(tw, "------\t-----------")
	for _, name := range names {
		fmt.Fprintf(tw, "%s\t%s\n", name, formats[name])
	}
}
