package exporter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/badele/ansideco/internal/importer/ansi"
	"github.com/badele/ansideco/internal/processor"
)

func TestExportDecorationsToTable(t *testing.T) {
	var buf bytes.Buffer
	result := processor.Parse("\x1b[1;32mok\x1b[0m done \x1b[4mnote")

	if err := ExportDecorationsToTable(result, &buf); err != nil {
		t.Fatalf("unexpected table error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"color:#0DBC79, bold", "underline", "ok", "note"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected table to contain %q, got:\n%s", want, out)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("line\nbreak", 36); got != `line\nbreak` {
		t.Errorf("Expected escaped newline, got %q", got)
	}

	if got := truncate(strings.Repeat("x", 50), 10); got != "xxxxxxx..." {
		t.Errorf("Expected truncated value, got %q", got)
	}
}

func TestDisplayStats(t *testing.T) {
	var buf bytes.Buffer
	tokenizer := ansi.NewTokenizer("\x1b[1mA\x1b[0m\x1b[2J")
	tokenizer.Tokenize()

	DisplayStats(&buf, tokenizer.GetStats())

	out := buf.String()
	for _, want := range []string{"Total segments: 4", "1 (Bold)", "EraseDisplay"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected stats to contain %q, got:\n%s", want, out)
		}
	}
}
