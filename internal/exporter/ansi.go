package exporter

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/badele/ansideco/internal/types"
)

// ExportANSI re-renders the cleaned text with one SGR-styled run per
// decoration. Non-SGR sequences of the input are gone, so the output is a
// normalized form of it. Colors are degraded to the given profile.
func ExportANSI(w io.Writer, result types.Result, profile termenv.Profile) error {
	renderer := lipgloss.NewRenderer(w)
	renderer.SetColorProfile(profile)

	runes := []rune(result.Text)
	var out strings.Builder
	offset := 0

	for _, decoration := range result.Decorations {
		start, end := clampRange(decoration.Range, len(runes))
		if start < offset {
			start = offset
		}
		if start >= end {
			continue
		}

		out.WriteString(string(runes[offset:start]))

		style := LipglossStyle(renderer, decoration.Options)
		// Render line by line: lipgloss pads multi-line blocks to a common width
		lines := strings.Split(string(runes[start:end]), "\n")
		for i, line := range lines {
			if i > 0 {
				out.WriteByte('\n')
			}
			if line != "" {
				out.WriteString(style.Render(line))
			}
		}

		offset = end
	}
	out.WriteString(string(runes[offset:]))

	if _, err := io.WriteString(w, out.String()); err != nil {
		return fmt.Errorf("error writing ANSI output: %w", err)
	}
	return nil
}

// LipglossStyle converts decoration options to a lipgloss style. lipgloss
// has no conceal attribute, so hidden text takes the background color as
// foreground when one is set.
func LipglossStyle(renderer *lipgloss.Renderer, opts types.Options) lipgloss.Style {
	style := renderer.NewStyle().
		TabWidth(lipgloss.NoTabConversion).
		Bold(opts.Bold).
		Faint(opts.Dim).
		Italic(opts.Italic).
		Underline(opts.Underline).
		Blink(opts.Blink).
		Reverse(opts.Reverse).
		Strikethrough(opts.Strikethrough)

	if opts.Color != nil {
		style = style.Foreground(lipgloss.Color(opts.Color.String()))
	}
	if opts.BackgroundColor != nil {
		style = style.Background(lipgloss.Color(opts.BackgroundColor.String()))
		if opts.Hidden {
			style = style.Foreground(lipgloss.Color(opts.BackgroundColor.String()))
		}
	}

	return style
}

func clampRange(r types.Range, length int) (int, int) {
	start, end := r.Start, r.End
	if start < 0 {
		start = 0
	}
	if end > length {
		end = length
	}
	return start, end
}
