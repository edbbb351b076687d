// Package detect decides whether control-sequence styling should be on by
// default for a document and prepares the document for a text viewer.
package detect

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/badele/ansideco/internal/importer/ansi"
	"github.com/badele/ansideco/internal/processor"
	"github.com/badele/ansideco/internal/types"
)

// Languages for which styling stays off: source code and structured data,
// where escape bytes are more likely content than terminal output.
var codeLanguages = map[string]bool{
	"javascript": true, "typescript": true, "python": true, "java": true,
	"go": true, "rust": true, "c": true, "cpp": true, "csharp": true,
	"ruby": true, "php": true, "swift": true, "kotlin": true, "scala": true,
	"groovy": true, "gradle": true, "html": true, "xml": true, "json": true,
	"yaml": true, "css": true, "scss": true, "less": true, "sql": true,
	"dockerfile": true, "makefile": true, "bash": true, "sh": true,
	"zsh": true, "ps1": true, "ps2": true,
}

var lineBreak = regexp.MustCompile(`\r?\n`)

type Metadata struct {
	LineCount int    `json:"lineCount"`
	CharCount int    `json:"charCount"`
	WordCount int    `json:"wordCount"`
	Language  string `json:"language,omitempty"`
}

// Document is a text prepared for display.
type Document struct {
	Preview             string             `json:"preview"`
	Decorations         []types.Decoration `json:"decorations,omitempty"`
	Enabled             bool               `json:"enabled"`
	HasControlSequences bool               `json:"hasControlSequences"`
	Metadata            Metadata           `json:"metadata"`
}

// ShouldEnableByDefault reports whether styling should be on for a document
// with the given content type and language hint.
func ShouldEnableByDefault(meta Metadata, contentType, language string) bool {
	ct := strings.ToLower(contentType)
	lang := strings.ToLower(language)

	if strings.Contains(ct, "log") || lang == "log" {
		return true
	}

	// An explicit code language hint wins over a guessed document language
	if codeLanguages[lang] {
		return false
	}

	switch strings.ToLower(meta.Language) {
	case "log", "text":
		return true
	}

	return false
}

// TextMetadata counts lines, characters and words of text.
func TextMetadata(text string) Metadata {
	return Metadata{
		LineCount: len(lineBreak.Split(text, -1)),
		CharCount: utf8.RuneCountInString(text),
		WordCount: WordCount(text),
	}
}

// WordCount counts whitespace-separated fields the way a split on \s+
// does: leading or trailing whitespace adds an empty field, and the empty
// string counts as one.
func WordCount(text string) int {
	count := len(strings.FieldsFunc(text, isSpace))
	if count == 0 {
		if text == "" {
			return 1
		}
		// Only whitespace: "", ""
		return 2
	}

	trimmed := strings.TrimLeftFunc(text, isSpace)
	if len(trimmed) != len(text) {
		count++
	}
	if len(strings.TrimRightFunc(text, isSpace)) != len(text) {
		count++
	}
	return count
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r', 0xA0:
		return true
	}
	return r >= 0x2000 && r <= 0x200A || r == 0x1680 || r == 0x2028 || r == 0x2029 ||
		r == 0x202F || r == 0x205F || r == 0x3000 || r == 0xFEFF
}

// ProcessText decodes content as UTF-8 and, when it carries control
// sequences, strips them and attaches the decorations.
func ProcessText(content []byte, contentType, languageHint string) Document {
	text := strings.ToValidUTF8(string(content), "\uFFFD")
	meta := TextMetadata(text)

	if !ansi.ContainsControlSequences(text) {
		return Document{
			Preview:  text,
			Metadata: meta,
		}
	}

	result := processor.Parse(text)
	meta.WordCount = WordCount(result.Text)

	return Document{
		Preview:             result.Text,
		Decorations:         result.Decorations,
		Enabled:             ShouldEnableByDefault(meta, contentType, languageHint),
		HasControlSequences: true,
		Metadata:            meta,
	}
}
