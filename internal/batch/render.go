package batch

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Report formats.
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
	FormatMarkdown = "markdown"
)

// Formats lists the accepted report formats.
var Formats = []string{FormatText, FormatJSON, FormatYAML, FormatMarkdown}

// NormalizeFormat resolves a format name or alias (yml, md, empty) to one of Formats.
func NormalizeFormat(format string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatText, "":
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	case FormatMarkdown, "md":
		return FormatMarkdown, nil
	}
	return "", fmt.Errorf("invalid report format %q (want one of %s)", format, strings.Join(Formats, ", "))
}

// Render renders the report in the given format. sentinel is printed in
// place of the value for invalid entries in text and markdown output.
func Render(r *Report, format, sentinel string) ([]byte, error) {
	f, err := NormalizeFormat(format)
	if err != nil {
		return nil, err
	}
	switch f {
	case FormatJSON:
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case FormatYAML:
		return yaml.Marshal(r)
	case FormatMarkdown:
		return []byte(RenderMarkdown(r, sentinel)), nil
	default:
		return []byte(RenderText(r, sentinel)), nil
	}
}

// RenderText writes one result per line, the way the encoder's
// demonstration sink prints them.
func RenderText(r *Report, sentinel string) string {
	b := &strings.Builder{}
	for _, res := range r.Results {
		b.WriteString(res.Text(sentinel))
		b.WriteByte('\n')
	}
	return b.String()
}

// RenderMarkdown renders a human-readable report table.
func RenderMarkdown(r *Report, sentinel string) string {
	if r == nil {
		return "# Batch Report\n\nNo data available.\n"
	}

	b := &strings.Builder{}
	title := "Batch Report"
	if r.Name != "" {
		title += ": " + r.Name
	}
	fmt.Fprintf(b, "# %s\n\n", title)
	fmt.Fprintf(b, "- Total: %d\n", r.Total)
	fmt.Fprintf(b, "- Valid: %d\n", r.Valid)
	fmt.Fprintf(b, "- Invalid: %d\n", r.Invalid)
	if r.Stopped {
		fmt.Fprintf(b, "- Stopped early: %d entries not processed\n", r.Total-len(r.Results))
	}
	b.WriteString("\n| # | Name | Input | Result | Reason |\n|---|------|-------|--------|--------|\n")
	for i, res := range r.Results {
		fmt.Fprintf(b, "| %d | %s | `%s` | %s | %s |\n", i+1, res.Name, res.Input, res.Text(sentinel), res.Reason)
	}
	return b.String()
}
