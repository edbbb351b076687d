// Package ansideco provides a public API for turning text that embeds
// ANSI/VT100 control sequences into clean text plus styled ranges.
//
// This package provides functions to:
//   - Convert legacy encodings (CP437, CP850, ISO-8859-1, Windows-1252) to UTF-8
//   - Split text into literal runs and control sequences
//   - Parse text into cleaned text and decorations
//   - Decide whether styling should be on by default for a document
//
// Example usage:
//
//	import "github.com/badele/ansideco/pkg/ansideco"
//
//	data, _ := os.ReadFile("build.log")
//	utf8Data, _ := ansideco.ConvertToUTF8(data, "utf8")
//	result := ansideco.Parse(string(utf8Data))
//	for _, d := range result.Decorations {
//		fmt.Println(d.Range.Start, d.Range.End, d.Options)
//	}
package ansideco

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/badele/ansideco/internal/detect"
	"github.com/badele/ansideco/internal/importer/ansi"
	"github.com/badele/ansideco/internal/processor"
	"github.com/badele/ansideco/internal/types"
)

// Type aliases for public API
type (
	// Result is the cleaned text with its decorations
	Result = types.Result

	// Decoration pairs a rune range of the cleaned text with its style
	Decoration = types.Decoration

	// Range is a half-open rune range
	Range = types.Range

	// Options lists the attributes active over a decoration
	Options = types.Options

	// Color is a 24-bit RGB color
	Color = types.Color

	// StyleState is the SGR state machine record
	StyleState = types.StyleState

	// Segment is a literal run or a control sequence
	Segment = types.Segment

	// SegmentKind tells literal and control segments apart
	SegmentKind = types.SegmentKind

	// SplitStats contains statistics about a split
	SplitStats = types.SplitStats

	// Tokenizer splits text and collects statistics
	Tokenizer = ansi.Tokenizer

	// Document is a text prepared for a viewer
	Document = detect.Document

	// Metadata describes a document
	Metadata = detect.Metadata
)

// Segment kind constants
const (
	SegmentText = types.SegmentText
	SegmentSGR  = types.SegmentSGR
	SegmentCSI  = types.SegmentCSI
)

// Palette16 contains the 16 standard colors
var Palette16 = types.Palette16

// UTF-8 BOM (Byte Order Mark) sequence
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// stripUTF8BOM removes the UTF-8 BOM if present at the beginning of the data
func stripUTF8BOM(data []byte) []byte {
	if len(data) >= 3 && bytes.Equal(data[:3], utf8BOM) {
		return data[3:]
	}
	return data
}

// ConvertToUTF8 converts byte data from a source encoding to UTF-8.
// Supported encodings: "utf8", "cp437", "cp850", "iso-8859-1", "windows-1252"
// The UTF-8 BOM (Byte Order Mark) is automatically stripped if present.
func ConvertToUTF8(data []byte, sourceEncoding string) ([]byte, error) {
	if sourceEncoding == "utf8" {
		return stripUTF8BOM(data), nil
	}

	var decoder *encoding.Decoder

	switch sourceEncoding {
	case "cp437":
		decoder = charmap.CodePage437.NewDecoder()
	case "cp850":
		decoder = charmap.CodePage850.NewDecoder()
	case "iso-8859-1":
		decoder = charmap.ISO8859_1.NewDecoder()
	case "windows-1252":
		decoder = charmap.Windows1252.NewDecoder()
	default:
		return nil, fmt.Errorf("unsupported encoding: %s", sourceEncoding)
	}

	reader := transform.NewReader(bytes.NewReader(data), decoder)
	utf8Data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("encoding conversion error: %w", err)
	}

	// Strip BOM if present after conversion
	return stripUTF8BOM(utf8Data), nil
}

// Parse strips control sequences from text and returns the cleaned text
// with its decorations. It never fails.
func Parse(text string) Result {
	return processor.Parse(text)
}

// ContainsControlSequences reports whether Parse would strip anything.
func ContainsControlSequences(text string) bool {
	return ansi.ContainsControlSequences(text)
}

// Split partitions text into literal and control segments.
func Split(text string) []Segment {
	return ansi.Split(text)
}

// NewTokenizer creates a splitter that also collects statistics.
func NewTokenizer(text string) *Tokenizer {
	return ansi.NewTokenizer(text)
}

// ProcessText prepares raw UTF-8 content for a viewer.
func ProcessText(content []byte, contentType, languageHint string) Document {
	return detect.ProcessText(content, contentType, languageHint)
}

// ShouldEnableByDefault reports whether styling should be on by default.
func ShouldEnableByDefault(meta Metadata, contentType, language string) bool {
	return detect.ShouldEnableByDefault(meta, contentType, language)
}
