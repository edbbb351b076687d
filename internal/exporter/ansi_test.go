package exporter

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/muesli/termenv"

	"github.com/badele/ansideco/internal/processor"
)

func TestExportANSIRoundTrip(t *testing.T) {
	input := "start \x1b[1;38;2;10;20;30mbold\x1b[0m\x1b[2K mid \x1b[3;41mit\nal\x1b[0m end"
	result := processor.Parse(input)

	var buf bytes.Buffer
	if err := ExportANSI(&buf, result, termenv.TrueColor); err != nil {
		t.Fatalf("unexpected export error: %v", err)
	}

	again := processor.Parse(buf.String())

	if again.Text != result.Text {
		t.Fatalf("Expected text %q, got %q", result.Text, again.Text)
	}

	var ranges []int
	for _, d := range again.Decorations {
		ranges = append(ranges, d.Range.Start, d.Range.End)
	}
	expected := []int{6, 10, 15, 17, 18, 20}
	if !reflect.DeepEqual(ranges, expected) {
		t.Errorf("Expected ranges %v, got %v", expected, ranges)
	}

	if len(again.Decorations) > 0 && !again.Decorations[0].Options.Equals(result.Decorations[0].Options) {
		t.Errorf("Expected %v, got %v", result.Decorations[0].Options, again.Decorations[0].Options)
	}
}

func TestExportANSIAsciiProfile(t *testing.T) {
	result := processor.Parse("\x1b[31mred\x1b[0m")

	var buf bytes.Buffer
	if err := ExportANSI(&buf, result, termenv.Ascii); err != nil {
		t.Fatalf("unexpected export error: %v", err)
	}

	if buf.String() != "red" {
		t.Errorf("Expected colors dropped, got %q", buf.String())
	}
}
