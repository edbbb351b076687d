package ansideco

import "testing"

func TestConvertToUTF8_StripsBOM(t *testing.T) {
	input := []byte("\xEF\xBB\xBFhello")
	got, err := ConvertToUTF8(input, "utf8")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if string(got) != "hello" {
		t.Fatalf("expected %q, got %q", "hello", got)
	}
}

func TestConvertToUTF8_CP437(t *testing.T) {
	input := []byte{0x1B, '[', '3', '1', 'm', 0xDB, 0xB0, 0x1B, '[', '0', 'm'}
	got, err := ConvertToUTF8(input, "cp437")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result := Parse(string(got))
	if result.Text != "█░" {
		t.Fatalf("expected %q, got %q", "█░", result.Text)
	}

	if len(result.Decorations) != 1 || result.Decorations[0].Range != (Range{Start: 0, End: 2}) {
		t.Fatalf("unexpected decorations %+v", result.Decorations)
	}
}

func TestConvertToUTF8_Unsupported(t *testing.T) {
	if _, err := ConvertToUTF8([]byte("x"), "ebcdic"); err == nil {
		t.Fatalf("expected error for unsupported encoding")
	}
}

func TestParseAndContains(t *testing.T) {
	input := "\x1b[31mHello\x1b[0m World"

	if !ContainsControlSequences(input) {
		t.Fatalf("expected control sequences in %q", input)
	}

	result := Parse(input)
	if ContainsControlSequences(result.Text) {
		t.Fatalf("expected clean text, got %q", result.Text)
	}

	if result.Decorations[0].Options.Color.String() != "#CD3131" {
		t.Fatalf("expected #CD3131, got %s", result.Decorations[0].Options.Color)
	}
}

func TestSplitKinds(t *testing.T) {
	segments := Split("a\x1b[1mb\x1b[Hc")

	kinds := []SegmentKind{SegmentText, SegmentSGR, SegmentText, SegmentCSI, SegmentText}
	if len(segments) != len(kinds) {
		t.Fatalf("expected %d segments, got %d", len(kinds), len(segments))
	}

	for i, kind := range kinds {
		if segments[i].Kind != kind {
			t.Errorf("segment %d: expected %v, got %v", i, kind, segments[i].Kind)
		}
	}
}
