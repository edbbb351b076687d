package detect

import (
	"testing"
)

func TestShouldEnableByDefault(t *testing.T) {
	tests := []struct {
		name        string
		meta        Metadata
		contentType string
		language    string
		expected    bool
	}{
		{"LogContentType", Metadata{}, "text/x-log", "", true},
		{"LogContentTypeUpper", Metadata{}, "Application/LOG", "", true},
		{"LogLanguage", Metadata{}, "text/plain", "Log", true},
		{"TextMetadata", Metadata{Language: "text"}, "", "", true},
		{"CodeLanguage", Metadata{}, "text/plain", "go", false},
		{"CodeBeatsMetadata", Metadata{Language: "text"}, "", "python", false},
		{"LogContentTypeBeatsCode", Metadata{}, "text/x-log", "bash", true},
		{"Default", Metadata{}, "text/plain", "", false},
		{"Empty", Metadata{}, "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShouldEnableByDefault(tt.meta, tt.contentType, tt.language); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestWordCount(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"", 1},
		{"one", 1},
		{"one two  three", 3},
		{" lead", 2},
		{"trail\n", 2},
		{" both ", 3},
		{"   ", 2},
		{"next\u0085line", 1},
		{"no\u00a0break", 2},
	}

	for _, tt := range tests {
		if got := WordCount(tt.input); got != tt.expected {
			t.Errorf("WordCount(%q): expected %d, got %d", tt.input, tt.expected, got)
		}
	}
}

func TestTextMetadata(t *testing.T) {
	meta := TextMetadata("héllo\r\nworld\nagain")

	if meta.LineCount != 3 {
		t.Errorf("Expected 3 lines, got %d", meta.LineCount)
	}

	if meta.CharCount != 18 {
		t.Errorf("Expected 18 chars, got %d", meta.CharCount)
	}

	if meta.WordCount != 3 {
		t.Errorf("Expected 3 words, got %d", meta.WordCount)
	}
}

func TestProcessTextWithControlSequences(t *testing.T) {
	doc := ProcessText([]byte("\x1b[31mERROR\x1b[0m disk full\n"), "text/x-log", "")

	if !doc.HasControlSequences {
		t.Fatalf("Expected control sequences to be detected")
	}

	if !doc.Enabled {
		t.Errorf("Expected styling enabled for a log")
	}

	if doc.Preview != "ERROR disk full\n" {
		t.Errorf("Unexpected preview %q", doc.Preview)
	}

	if len(doc.Decorations) != 1 {
		t.Fatalf("Expected 1 decoration, got %d", len(doc.Decorations))
	}

	if doc.Metadata.WordCount != 4 {
		t.Errorf("Expected 4 words, got %d", doc.Metadata.WordCount)
	}
}

func TestProcessTextPlain(t *testing.T) {
	doc := ProcessText([]byte("plain text"), "text/x-log", "")

	if doc.HasControlSequences || doc.Enabled {
		t.Errorf("Expected plain document, got %+v", doc)
	}

	if doc.Preview != "plain text" {
		t.Errorf("Unexpected preview %q", doc.Preview)
	}

	if doc.Decorations != nil {
		t.Errorf("Expected no decorations, got %v", doc.Decorations)
	}
}

func TestProcessTextCodeDisabled(t *testing.T) {
	doc := ProcessText([]byte("echo -e '\x1b[1mhi\x1b[0m'"), "text/plain", "bash")

	if !doc.HasControlSequences {
		t.Fatalf("Expected control sequences to be detected")
	}

	if doc.Enabled {
		t.Errorf("Expected styling disabled for bash")
	}
}
