package processor

import (
	"strings"
	"unicode/utf8"

	"github.com/badele/ansideco/internal/importer/ansi"
	"github.com/badele/ansideco/internal/types"
)

///////////////////////////////////////////////////////////////////////////////
// Decorator
///////////////////////////////////////////////////////////////////////////////

// decorator holds the state of a single parse. It never outlives the call
// that created it.
type decorator struct {
	state       types.StyleState
	text        strings.Builder
	length      int // rune count of text
	rangeStart  int
	decorations []types.Decoration
}

// Parse strips control sequences from text and returns the cleaned text
// with the styled ranges that apply to it.
func Parse(text string) types.Result {
	return ParseSegments(ansi.Split(text))
}

// ParseSegments runs the style state machine over already split segments.
func ParseSegments(segments []types.Segment) types.Result {
	d := &decorator{
		decorations: make([]types.Decoration, 0),
	}

	for _, segment := range segments {
		d.apply(segment)
	}

	// Flush a trailing span that was never reset
	d.closeRange()

	return types.Result{
		Text:        d.text.String(),
		Decorations: d.decorations,
	}
}

func (d *decorator) apply(segment types.Segment) {
	switch segment.Kind {
	case types.SegmentText:
		d.text.WriteString(segment.Raw)
		d.length += utf8.RuneCountInString(segment.Raw)

	case types.SegmentSGR:
		d.closeRange()
		d.state.ApplyParams(segment.Params)
		d.rangeStart = d.length

	case types.SegmentCSI:
		// Stripped without effect, and not a range boundary
	}
}

// closeRange emits the pending span when it is styled and non-empty.
func (d *decorator) closeRange() {
	if d.state.IsDefault() || d.length <= d.rangeStart {
		return
	}

	d.decorations = append(d.decorations, types.Decoration{
		Range:   types.Range{Start: d.rangeStart, End: d.length},
		Options: d.state.Options(),
	})
}
