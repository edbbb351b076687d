package exporter

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/badele/ansideco/internal/types"
)

const tabWidth = 8

// Screen paints a parse result onto a tcell simulation screen, the way a
// viewer would show it.
type Screen struct {
	screen tcell.SimulationScreen
	width  int
	height int
}

func NewScreen(width, height int) (*Screen, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid screen size: %dx%d", width, height)
	}

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("error creating screen: %w", err)
	}

	screen.SetSize(width, height)

	return &Screen{
		screen: screen,
		width:  width,
		height: height,
	}, nil
}

// StyleFromOptions converts decoration options to a tcell style.
func StyleFromOptions(opts types.Options) tcell.Style {
	style := tcell.StyleDefault

	if opts.Color != nil {
		style = style.Foreground(tcellColor(*opts.Color))
	}
	if opts.BackgroundColor != nil {
		style = style.Background(tcellColor(*opts.BackgroundColor))
		// tcell has no conceal attribute, hidden text blends into the background
		if opts.Hidden {
			style = style.Foreground(tcellColor(*opts.BackgroundColor))
		}
	}

	style = style.
		Bold(opts.Bold).
		Dim(opts.Dim).
		Italic(opts.Italic).
		Underline(opts.Underline).
		Blink(opts.Blink).
		Reverse(opts.Reverse).
		StrikeThrough(opts.Strikethrough)

	return style
}

func tcellColor(c types.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R()), int32(c.G()), int32(c.B()))
}

// Render clears the screen and writes the cleaned text, styling each rune
// with the decoration covering it. Text beyond the screen is clipped.
func (s *Screen) Render(result types.Result) {
	s.screen.Clear()

	x, y := 0, 0
	deco := 0
	decorations := result.Decorations

	for offset, r := range []rune(result.Text) {
		for deco < len(decorations) && decorations[deco].Range.End <= offset {
			deco++
		}

		style := tcell.StyleDefault
		if deco < len(decorations) && decorations[deco].Range.Start <= offset {
			style = StyleFromOptions(decorations[deco].Options)
		}

		switch r {
		case '\n':
			x = 0
			y++
			continue
		case '\r':
			continue
		case '\t':
			next := (x/tabWidth + 1) * tabWidth
			for ; x < next; x++ {
				s.setContent(x, y, ' ', style)
			}
			continue
		}

		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		s.setContent(x, y, r, style)
		x += w
	}

	s.screen.Show()
}

func (s *Screen) setContent(x, y int, r rune, style tcell.Style) {
	if x >= s.width || y >= s.height {
		return
	}
	s.screen.SetContent(x, y, r, nil, style)
}

// PlainText returns the visible rows with trailing blanks removed.
func (s *Screen) PlainText() string {
	var lines []string

	for y := 0; y < s.height; y++ {
		var line strings.Builder
		for x := 0; x < s.width; x++ {
			mainc, _, _, width := s.screen.GetContent(x, y)
			if mainc == 0 {
				mainc = ' '
			}
			line.WriteRune(mainc)
			if width > 1 {
				x += width - 1
			}
		}
		lines = append(lines, strings.TrimRight(line.String(), " "))
	}

	// Trim trailing empty lines
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return strings.Join(lines, "\n")
}

func (s *Screen) StyleAt(x, y int) tcell.Style {
	_, _, style, _ := s.screen.GetContent(x, y)
	return style
}

func (s *Screen) Close() {
	s.screen.Fini()
}
