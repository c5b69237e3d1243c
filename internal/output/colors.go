package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/kjourdan1/hashenc/internal/codec"
)

// NoColor returns true if colored output should be disabled.
// Respects the NO_COLOR environment variable (https://no-color.org/).
func NoColor() bool {
	_, ok := os.LookupEnv("NO_COLOR")
	return ok
}

// Color definitions for consistent styling across the CLI.
var (
	ColorSuccess = lipgloss.Color("#2ECC71") // green
	ColorWarning = lipgloss.Color("#F39C12") // orange
	ColorError   = lipgloss.Color("#E74C3C") // red
	ColorMuted   = lipgloss.Color("#95A5A6") // gray
	ColorAccent  = lipgloss.Color("#9B59B6") // purple
)

// Style presets for common output patterns.
var (
	StyleBold    = lipgloss.NewStyle().Bold(true)
	StyleTitle   = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning)
	StyleError   = lipgloss.NewStyle().Foreground(ColorError)
	StyleMuted   = lipgloss.NewStyle().Foreground(ColorMuted)
)

// plainStyles returns styles without color for NO_COLOR mode.
func plainStyles() *log.Styles {
	// charmbracelet/log strips styles itself on non-TTY writers.
	return log.DefaultStyles()
}

func render(s lipgloss.Style, text string) string {
	if NoColor() {
		return text
	}
	return s.Render(text)
}

// Plain renders a result exactly as the encoder's demonstration sink does:
// the value, or the sentinel on failure.
func Plain(r codec.Result, sentinel string) string {
	return r.Text(sentinel)
}

// RenderResult renders one result as an aligned, styled line. With explain
// set, failures carry their cause.
func RenderResult(r codec.Result, sentinel string, width int, explain bool) string {
	label := r.Input
	if r.Name != "" {
		label = r.Name + " " + StyleMuted.Render("("+r.Input+")")
		if NoColor() {
			label = r.Name + " (" + r.Input + ")"
		}
	}
	pad := width - lipgloss.Width(label)
	if pad < 0 {
		pad = 0
	}
	line := label + strings.Repeat(" ", pad) + "  "

	if r.Valid {
		return line + render(StyleSuccess, r.Text(sentinel))
	}
	line += render(StyleError, sentinel)
	if explain && r.Detail != "" {
		line += "  " + render(StyleMuted, fmt.Sprintf("[%s] %s", r.Reason, r.Detail))
	}
	return line
}

// RenderResults renders a block of results with a shared label column.
func RenderResults(results []codec.Result, sentinel string, explain bool) string {
	width := 0
	for _, r := range results {
		w := lipgloss.Width(r.Input)
		if r.Name != "" {
			w = lipgloss.Width(r.Name + " (" + r.Input + ")")
		}
		if w > width {
			width = w
		}
	}
	lines := make([]string, 0, len(results))
	for _, r := range results {
		lines = append(lines, RenderResult(r, sentinel, width, explain))
	}
	return strings.Join(lines, "\n")
}

// Title renders a section heading.
func Title(text string) string {
	return render(StyleTitle, text)
}

// Summary renders a "N valid, M invalid" footer, plus the number of entries
// a fail-fast run never reached.
func Summary(valid, invalid, skipped int) string {
	v := render(StyleSuccess, fmt.Sprintf("%d valid", valid))
	i := fmt.Sprintf("%d invalid", invalid)
	if invalid > 0 {
		i = render(StyleError, i)
	}
	line := render(StyleBold, "Summary: ") + v + ", " + i
	if skipped > 0 {
		line += ", " + render(StyleWarning, fmt.Sprintf("%d skipped", skipped))
	}
	return line
}
