package exporter

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/badele/ansideco/internal/types"
)

type SegmentsJSONOutput struct {
	Segments []types.Segment  `json:"segments"`
	Stats    types.SplitStats `json:"stats"`
}

// ExportJSON writes the parse result as indented JSON.
func ExportJSON(w io.Writer, result types.Result) error {
	return writeJSON(w, result)
}

// ExportSegmentsJSON writes the splitter output and its statistics.
func ExportSegmentsJSON(w io.Writer, splitter types.SplitterWithStats) error {
	output := SegmentsJSONOutput{
		Segments: splitter.Tokenize(),
		Stats:    splitter.GetStats(),
	}
	return writeJSON(w, output)
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("JSON serialization error: %w", err)
	}

	if _, err := fmt.Fprintln(w, string(data)); err != nil {
		return fmt.Errorf("error writing JSON: %w", err)
	}
	return nil
}

// ExportPositionsJSON writes line/column fragments as indented JSON.
func ExportPositionsJSON(w io.Writer, positions []LinePosition) error {
	return writeJSON(w, positions)
}
