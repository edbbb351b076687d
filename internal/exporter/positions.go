package exporter

import (
	"github.com/mattn/go-runewidth"

	"github.com/badele/ansideco/internal/types"
)

// LinePosition is a decoration fragment confined to one line. Columns are
// rune offsets within the line; cells are display columns, where wide runes
// count twice.
type LinePosition struct {
	Decoration  int           `json:"decoration"`
	Line        int           `json:"line"`
	StartColumn int           `json:"startColumn"`
	EndColumn   int           `json:"endColumn"`
	StartCell   int           `json:"startCell"`
	EndCell     int           `json:"endCell"`
	Options     types.Options `json:"options"`
}

type cursor struct {
	line   int
	column int
	cell   int
}

// Positions maps the rune offsets of every decoration to line/column
// fragments. A decoration crossing a newline yields one fragment per line;
// the newline itself is never covered.
func Positions(result types.Result) []LinePosition {
	runes := []rune(result.Text)
	positions := make([]LinePosition, 0, len(result.Decorations))

	var cur cursor
	offset := 0

	advance := func(to int) {
		for ; offset < to && offset < len(runes); offset++ {
			if runes[offset] == '\n' {
				cur = cursor{line: cur.line + 1}
				continue
			}
			cur.column++
			cur.cell += runewidth.RuneWidth(runes[offset])
		}
	}

	for i, decoration := range result.Decorations {
		advance(decoration.Range.Start)

		fragment := LinePosition{
			Decoration:  i,
			Line:        cur.line,
			StartColumn: cur.column,
			StartCell:   cur.cell,
			Options:     decoration.Options,
		}

		for offset < decoration.Range.End && offset < len(runes) {
			if runes[offset] == '\n' {
				fragment.EndColumn = cur.column
				fragment.EndCell = cur.cell
				positions = appendFragment(positions, fragment)

				advance(offset + 1)
				fragment.Line = cur.line
				fragment.StartColumn = cur.column
				fragment.StartCell = cur.cell
				continue
			}
			advance(offset + 1)
		}

		fragment.EndColumn = cur.column
		fragment.EndCell = cur.cell
		positions = appendFragment(positions, fragment)
	}

	return positions
}

// appendFragment drops fragments that cover nothing, such as the part of a
// decoration that starts right at a newline.
func appendFragment(positions []LinePosition, fragment LinePosition) []LinePosition {
	if fragment.EndColumn <= fragment.StartColumn {
		return positions
	}
	return append(positions, fragment)
}
