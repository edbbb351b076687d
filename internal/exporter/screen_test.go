package exporter

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/badele/ansideco/internal/processor"
	"github.com/badele/ansideco/internal/types"
)

func TestScreenRender(t *testing.T) {
	screen, err := NewScreen(10, 4)
	if err != nil {
		t.Fatalf("unexpected screen error: %v", err)
	}
	defer screen.Close()

	screen.Render(processor.Parse("ok \x1b[1;31mfail\x1b[0m\nnext\x1b[2J"))

	if got := screen.PlainText(); got != "ok fail\nnext" {
		t.Fatalf("Unexpected plain text %q", got)
	}

	fg, _, attrs := screen.StyleAt(3, 0).Decompose()
	if fg != tcell.NewRGBColor(0xCD, 0x31, 0x31) {
		t.Errorf("Expected red foreground at (3,0), got %v", fg)
	}
	if attrs&tcell.AttrBold == 0 {
		t.Errorf("Expected bold at (3,0)")
	}

	if screen.StyleAt(0, 0) != tcell.StyleDefault {
		t.Errorf("Expected default style at (0,0)")
	}
	if screen.StyleAt(0, 1) != tcell.StyleDefault {
		t.Errorf("Expected default style at (0,1)")
	}
}

func TestScreenClipsAndExpandsTabs(t *testing.T) {
	screen, err := NewScreen(12, 1)
	if err != nil {
		t.Fatalf("unexpected screen error: %v", err)
	}
	defer screen.Close()

	screen.Render(processor.Parse("a\tb\nhidden line"))

	if got := screen.PlainText(); got != "a       b" {
		t.Fatalf("Unexpected plain text %q", got)
	}
}

func TestNewScreenInvalidSize(t *testing.T) {
	if _, err := NewScreen(0, 5); err == nil {
		t.Fatalf("Expected error for zero width")
	}
}

func TestStyleFromOptions(t *testing.T) {
	bg := types.Color(0x2472C8)
	style := StyleFromOptions(types.Options{BackgroundColor: &bg, Italic: true, Hidden: true})

	gotFg, gotBg, attrs := style.Decompose()
	if gotBg != tcell.NewRGBColor(0x24, 0x72, 0xC8) {
		t.Errorf("Expected blue background, got %v", gotBg)
	}
	if gotFg != gotBg {
		t.Errorf("Expected hidden text foreground %v to match background %v", gotFg, gotBg)
	}
	if attrs&tcell.AttrItalic == 0 {
		t.Errorf("Expected italic attribute, got %v", attrs)
	}
}

func TestStyleFromOptionsHiddenWithoutBackground(t *testing.T) {
	fg := types.Color(0xCD3131)
	style := StyleFromOptions(types.Options{Color: &fg, Hidden: true})

	gotFg, _, _ := style.Decompose()
	if gotFg != tcell.NewRGBColor(0xCD, 0x31, 0x31) {
		t.Errorf("Expected foreground kept without a background, got %v", gotFg)
	}
}
