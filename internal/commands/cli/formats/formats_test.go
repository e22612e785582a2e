// nolint:all // test package
package formats

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrei-cloud/go_hdcp/pkg/hdcp"
)

func TestFormatsCmd(t *testing.T) {
	cmd := NewFormatsCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())

	// Every listed selector must be accepted by the formatter.
	for _, name := range []string{
		"text_informational", "text_full", "text_line_source",
		"json", "json_full", "yaml_full", "xml", "toml_full",
	} {
		assert.Contains(t, out.String(), name)
		_, err := hdcp.ParseOutputFormat(name)
		assert.NoError(t, err, name)
	}
}
