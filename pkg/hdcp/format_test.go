package hdcp

import (
	"encoding/json"
	"encoding/xml"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// testDerivation builds a derivation with hand-set cells so expected output
// can be written down independently of the engine.
func testDerivation() *Derivation {
	var source, sink KeyArray
	for i := range source {
		source[i] = 1
		sink[i] = 2
	}

	return &Derivation{
		KSV:    0x00000fffff,
		Source: source,
		Sink:   sink,
		matrix: uniformMatrix(3),
	}
}

// table builds the expected five-per-row key table for n repetitions of one
// 14-char hex cell.
func table(cell string, n int) string {
	row := strings.Repeat(cell+" ", 4) + cell + "\n"

	return strings.Repeat(row, n/5)
}

func TestParseOutputFormat(t *testing.T) {
	t.Parallel()

	names := []string{
		"text_informational",
		"text_source_only",
		"text_sink_only",
		"text_source_ksv_only",
		"text_sink_ksv_only",
		"text_line_source",
		"text_line_sink",
		"text_full",
		"json",
		"json_full",
		"yaml",
		"yaml_full",
		"xml",
		"xml_full",
		"toml",
		"toml_full",
	}

	for _, name := range names {
		f, err := ParseOutputFormat(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, f.String())
	}

	_, err := ParseOutputFormat("csv")
	assert.Error(t, err)
	_, err = ParseOutputFormat("")
	assert.Error(t, err)
}

func TestRenderTextVariants(t *testing.T) {
	t.Parallel()

	d := testDerivation()
	srcTable := table("00000000000001", 40)
	sinkTable := table("00000000000002", 40)

	tests := []struct {
		name   string
		format OutputFormat
		want   string
	}{
		{
			name:   "informational",
			format: TextInformational,
			want:   "ksv: 00000fffff\n\nSource:\n" + srcTable + "\nSink:\n" + sinkTable,
		},
		{
			name:   "source only",
			format: TextSourceOnly,
			want:   "Source:\n" + srcTable,
		},
		{
			name:   "sink only",
			format: TextSinkOnly,
			want:   "Sink:\n" + sinkTable,
		},
		{
			name:   "source with ksv",
			format: TextSourceKSVOnly,
			want:   "ksv: 00000fffff\n\nSource:\n" + srcTable,
		},
		{
			name:   "sink with ksv",
			format: TextSinkKSVOnly,
			want:   "ksv: 00000fffff\n\nSink:\n" + sinkTable,
		},
		{
			name:   "source as line",
			format: TextLineSource,
			want:   strings.Repeat("00000000000001 ", 40),
		},
		{
			name:   "sink as line",
			format: TextLineSink,
			want:   strings.Repeat("00000000000002 ", 40),
		},
		{
			name:   "full including matrix",
			format: TextFull,
			want: "ksv: 00000fffff\n\nSource:\n" + srcTable + "\nSink:\n" + sinkTable +
				"\nHDCP key:\n" + table("00000000000003", 1600),
		},
	}

	for _, tt := range tests {
		tt := tt // capture range variable.
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, d.Render(tt.format))
		})
	}
}

func TestRenderJSON(t *testing.T) {
	t.Parallel()

	d := testDerivation()
	out := d.Render(JSON)

	assert.True(t, strings.HasPrefix(out, "{\n    \"ksv\":\"00000fffff\",\n"))
	assert.True(t, strings.HasSuffix(out, "    ]\n}\n"))

	var got struct {
		Ksv     string   `json:"ksv"`
		Source  []string `json:"source"`
		Sink    []string `json:"sink"`
		HdcpKey []string `json:"hdcp_key"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "00000fffff", got.Ksv)
	assert.Len(t, got.Source, 40)
	assert.Len(t, got.Sink, 40)
	assert.Equal(t, "00000000000001", got.Source[0])
	assert.Equal(t, "00000000000002", got.Sink[39])
	assert.Empty(t, got.HdcpKey)

	require.NoError(t, json.Unmarshal([]byte(d.Render(JSONFull)), &got))
	assert.Len(t, got.HdcpKey, MatrixCells)
	assert.Equal(t, "00000000000003", got.HdcpKey[0])
}

func TestRenderYAML(t *testing.T) {
	t.Parallel()

	d := testDerivation()
	out := d.Render(YAML)

	assert.True(t, strings.HasPrefix(out, "ksv: 00000fffff\nsource:\n  - 00000000000001\n"))

	var got struct {
		Ksv     string   `yaml:"ksv"`
		Source  []string `yaml:"source"`
		Sink    []string `yaml:"sink"`
		HdcpKey []string `yaml:"hdcp_key"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, "00000fffff", got.Ksv)
	assert.Len(t, got.Source, 40)
	assert.Len(t, got.Sink, 40)
	assert.Empty(t, got.HdcpKey)

	require.NoError(t, yaml.Unmarshal([]byte(d.Render(YAMLFull)), &got))
	assert.Len(t, got.HdcpKey, MatrixCells)
}

func TestRenderXML(t *testing.T) {
	t.Parallel()

	d := testDerivation()
	out := d.Render(XML)

	assert.True(t, strings.HasPrefix(out, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<hdcp>\n"))
	assert.True(t, strings.HasSuffix(out, "</hdcp>\n"))

	var got struct {
		XMLName xml.Name `xml:"hdcp"`
		Ksv     string   `xml:"ksv"`
		Source  struct {
			Items []string `xml:"item"`
		} `xml:"source"`
		Sink struct {
			Items []string `xml:"item"`
		} `xml:"sink"`
		HdcpKey struct {
			Items []string `xml:"item"`
		} `xml:"hdcp_key"`
	}
	require.NoError(t, xml.Unmarshal([]byte(out), &got))
	assert.Equal(t, "00000fffff", got.Ksv)
	assert.Len(t, got.Source.Items, 40)
	assert.Len(t, got.Sink.Items, 40)
	assert.Empty(t, got.HdcpKey.Items)

	require.NoError(t, xml.Unmarshal([]byte(d.Render(XMLFull)), &got))
	assert.Len(t, got.HdcpKey.Items, MatrixCells)
}

func TestRenderTOML(t *testing.T) {
	t.Parallel()

	d := testDerivation()
	out := d.Render(TOML)

	assert.True(t, strings.HasPrefix(out, "ksv = \"00000fffff\"\nsource = [\n  \"00000000000001\",\n"))

	var got struct {
		Ksv     string   `toml:"ksv"`
		Source  []string `toml:"source"`
		Sink    []string `toml:"sink"`
		HdcpKey []string `toml:"hdcp_key"`
	}
	require.NoError(t, toml.Unmarshal([]byte(out), &got))
	assert.Equal(t, "00000fffff", got.Ksv)
	assert.Len(t, got.Source, 40)
	assert.Len(t, got.Sink, 40)
	assert.Empty(t, got.HdcpKey)

	require.NoError(t, toml.Unmarshal([]byte(d.Render(TOMLFull)), &got))
	assert.Len(t, got.HdcpKey, MatrixCells)
}

func TestRenderUnknownFormat(t *testing.T) {
	t.Parallel()

	d := testDerivation()
	assert.Equal(t, "", d.Render(OutputFormat(99)))
}
