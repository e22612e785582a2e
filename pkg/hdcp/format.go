package hdcp

import (
	"fmt"
	"strings"
)

// OutputFormat selects one of the sixteen renderings of a Derivation.
type OutputFormat int

const (
	TextInformational OutputFormat = iota
	TextSourceOnly
	TextSinkOnly
	TextSourceKSVOnly
	TextSinkKSVOnly
	TextLineSource
	TextLineSink
	TextFull
	JSON
	JSONFull
	YAML
	YAMLFull
	XML
	XMLFull
	TOML
	TOMLFull
)

// grammar is the rendering family a format belongs to.
type grammar int

const (
	grammarText grammar = iota
	grammarLine
	grammarJSON
	grammarYAML
	grammarXML
	grammarTOML
)

// outputSpec describes a format as a grammar plus the fields it includes,
// instead of sixteen bespoke render paths.
type outputSpec struct {
	name    string
	grammar grammar
	ksv     bool
	source  bool
	sink    bool
	matrix  bool
}

var outputSpecs = map[OutputFormat]outputSpec{
	TextInformational: {name: "text_informational", grammar: grammarText, ksv: true, source: true, sink: true},
	TextSourceOnly:    {name: "text_source_only", grammar: grammarText, source: true},
	TextSinkOnly:      {name: "text_sink_only", grammar: grammarText, sink: true},
	TextSourceKSVOnly: {name: "text_source_ksv_only", grammar: grammarText, ksv: true, source: true},
	TextSinkKSVOnly:   {name: "text_sink_ksv_only", grammar: grammarText, ksv: true, sink: true},
	TextLineSource:    {name: "text_line_source", grammar: grammarLine, source: true},
	TextLineSink:      {name: "text_line_sink", grammar: grammarLine, sink: true},
	TextFull:          {name: "text_full", grammar: grammarText, ksv: true, source: true, sink: true, matrix: true},
	JSON:              {name: "json", grammar: grammarJSON, ksv: true, source: true, sink: true},
	JSONFull:          {name: "json_full", grammar: grammarJSON, ksv: true, source: true, sink: true, matrix: true},
	YAML:              {name: "yaml", grammar: grammarYAML, ksv: true, source: true, sink: true},
	YAMLFull:          {name: "yaml_full", grammar: grammarYAML, ksv: true, source: true, sink: true, matrix: true},
	XML:               {name: "xml", grammar: grammarXML, ksv: true, source: true, sink: true},
	XMLFull:           {name: "xml_full", grammar: grammarXML, ksv: true, source: true, sink: true, matrix: true},
	TOML:              {name: "toml", grammar: grammarTOML, ksv: true, source: true, sink: true},
	TOMLFull:          {name: "toml_full", grammar: grammarTOML, ksv: true, source: true, sink: true, matrix: true},
}

var formatsByName = func() map[string]OutputFormat {
	m := make(map[string]OutputFormat, len(outputSpecs))
	for f, spec := range outputSpecs {
		m[spec.name] = f
	}

	return m
}()

// ParseOutputFormat maps a selector name (e.g. "json_full") to its
// OutputFormat. An unrecognized name is a request-level error; callers must
// reject it before attempting any derivation.
func ParseOutputFormat(s string) (OutputFormat, error) {
	f, ok := formatsByName[s]
	if !ok {
		return 0, fmt.Errorf("unknown output format %q", s)
	}

	return f, nil
}

// String returns the selector name of the format.
func (f OutputFormat) String() string {
	if spec, ok := outputSpecs[f]; ok {
		return spec.name
	}

	return fmt.Sprintf("OutputFormat(%d)", int(f))
}

// Render produces the textual representation of the derivation in the given
// format. The output is byte-deterministic. An unknown format renders as an
// empty string; ParseOutputFormat is the gate for request validation.
func (d *Derivation) Render(f OutputFormat) string {
	spec, ok := outputSpecs[f]
	if !ok {
		return ""
	}

	switch spec.grammar {
	case grammarLine:
		return d.renderLine(spec)
	case grammarJSON:
		return d.renderJSON(spec)
	case grammarYAML:
		return d.renderYAML(spec)
	case grammarXML:
		return d.renderXML(spec)
	case grammarTOML:
		return d.renderTOML(spec)
	default:
		return d.renderText(spec)
	}
}

// keyTable renders cells as 14-char hex values, five per row: each value is
// followed by a space, every fifth by a newline.
func keyTable(cells []uint64) string {
	var b strings.Builder
	for i, c := range cells {
		b.WriteString(EncodeHex56(c))
		if (i+1)%5 == 0 {
			b.WriteByte('\n')
		} else {
			b.WriteByte(' ')
		}
	}

	return b.String()
}

func (d *Derivation) renderText(spec outputSpec) string {
	var sections []string
	if spec.ksv {
		sections = append(sections, "ksv: "+d.KSV.Hex()+"\n")
	}
	if spec.source {
		sections = append(sections, "Source:\n"+keyTable(d.Source[:]))
	}
	if spec.sink {
		sections = append(sections, "Sink:\n"+keyTable(d.Sink[:]))
	}
	if spec.matrix {
		sections = append(sections, "HDCP key:\n"+keyTable(d.matrix[:]))
	}

	return strings.Join(sections, "\n")
}

func (d *Derivation) renderLine(spec outputSpec) string {
	cells := d.Source
	if spec.sink {
		cells = d.Sink
	}

	var b strings.Builder
	for _, c := range cells {
		b.WriteString(EncodeHex56(c))
		b.WriteByte(' ')
	}

	return b.String()
}

func (d *Derivation) renderJSON(spec outputSpec) string {
	var b strings.Builder
	b.WriteString("{\n")
	b.WriteString("    \"ksv\":\"" + d.KSV.Hex() + "\",\n")
	jsonArray(&b, "source", d.Source[:], true)
	jsonArray(&b, "sink", d.Sink[:], spec.matrix)
	if spec.matrix {
		jsonArray(&b, "hdcp_key", d.matrix[:], false)
	}
	b.WriteString("}\n")

	return b.String()
}

func jsonArray(b *strings.Builder, name string, cells []uint64, trailingComma bool) {
	b.WriteString("    \"" + name + "\":\n")
	b.WriteString("    [\n")
	for i, c := range cells {
		b.WriteString("        \"" + EncodeHex56(c) + "\"")
		if i != len(cells)-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	if trailingComma {
		b.WriteString("    ],\n")
	} else {
		b.WriteString("    ]\n")
	}
}

func (d *Derivation) renderYAML(spec outputSpec) string {
	var b strings.Builder
	b.WriteString("ksv: " + d.KSV.Hex() + "\n")
	yamlSequence(&b, "source", d.Source[:])
	yamlSequence(&b, "sink", d.Sink[:])
	if spec.matrix {
		yamlSequence(&b, "hdcp_key", d.matrix[:])
	}

	return b.String()
}

func yamlSequence(b *strings.Builder, name string, cells []uint64) {
	b.WriteString(name + ":\n")
	for _, c := range cells {
		b.WriteString("  - " + EncodeHex56(c) + "\n")
	}
}

func (d *Derivation) renderXML(spec outputSpec) string {
	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	b.WriteString("<hdcp>\n")
	b.WriteString("    <ksv>" + d.KSV.Hex() + "</ksv>\n")
	xmlList(&b, "source", d.Source[:])
	xmlList(&b, "sink", d.Sink[:])
	if spec.matrix {
		xmlList(&b, "hdcp_key", d.matrix[:])
	}
	b.WriteString("</hdcp>\n")

	return b.String()
}

func xmlList(b *strings.Builder, name string, cells []uint64) {
	b.WriteString("    <" + name + ">\n")
	for _, c := range cells {
		b.WriteString("        <item>" + EncodeHex56(c) + "</item>\n")
	}
	b.WriteString("    </" + name + ">\n")
}

func (d *Derivation) renderTOML(spec outputSpec) string {
	var b strings.Builder
	b.WriteString("ksv = \"" + d.KSV.Hex() + "\"\n")
	tomlArray(&b, "source", d.Source[:])
	tomlArray(&b, "sink", d.Sink[:])
	if spec.matrix {
		tomlArray(&b, "hdcp_key", d.matrix[:])
	}

	return b.String()
}

func tomlArray(b *strings.Builder, name string, cells []uint64) {
	b.WriteString(name + " = [\n")
	for _, c := range cells {
		b.WriteString("  \"" + EncodeHex56(c) + "\",\n")
	}
	b.WriteString("]\n")
}
