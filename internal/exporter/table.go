package exporter

import (
	"fmt"
	"io"

	"github.com/badele/ansideco/internal/types"
)

func ExportDecorationsToTable(result types.Result, writer io.Writer) error {
	runes := []rune(result.Text)

	fmt.Fprintln(writer, "\n┌─────────┬────────┬────────┬──────────────────────────────────────┬──────────────────────────────────────┐")
	fmt.Fprintf(writer, "│ %-7s │ %-6s │ %-6s │ %-36s │ %-36s │\n", "Deco", "Start", "End", "Options", "Text")
	fmt.Fprintln(writer, "├─────────┼────────┼────────┼──────────────────────────────────────┼──────────────────────────────────────┤")

	for i, decoration := range result.Decorations {
		r := decoration.Range
		covered := ""
		if r.Start >= 0 && r.End <= len(runes) && r.Start < r.End {
			covered = string(runes[r.Start:r.End])
		}

		fmt.Fprintf(writer, "│ %-7d │ %-6d │ %-6d │ %-36s │ %-36s │\n",
			i+1, r.Start, r.End, truncate(decoration.Options.String(), 36), truncate(covered, 36))
	}

	_, err := fmt.Fprintln(writer, "└─────────┴────────┴────────┴──────────────────────────────────────┴──────────────────────────────────────┘")
	return err
}

func truncate(s string, maxLen int) string {
	s = fmt.Sprintf("%q", s)

	// Remove quote added by %q
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}

	if len(s) > maxLen {
		return s[:maxLen-3] + "..."
	}
	return s
}
