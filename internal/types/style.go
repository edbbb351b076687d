package types

import (
	"fmt"
	"strings"
)

/////////////////////////////////////////////////////////////////////////////
// STYLE STATE (Select Graphic Rendition)
/////////////////////////////////////////////////////////////////////////////

// StyleState is the mutable SGR state of one parse. The zero value is
// "no style".
type StyleState struct {
	Fg            *Color
	Bg            *Color
	Bold          bool
	Dim           bool
	Italic        bool
	Underline     bool
	Blink         bool
	Reverse       bool
	Hidden        bool
	Strikethrough bool
}

func (s *StyleState) Reset() {
	*s = StyleState{}
}

// IsDefault reports whether no attribute or color is active.
func (s *StyleState) IsDefault() bool {
	return s.Fg == nil && s.Bg == nil &&
		!s.Bold && !s.Dim && !s.Italic && !s.Underline &&
		!s.Blink && !s.Reverse && !s.Hidden && !s.Strikethrough
}

// ApplyParams applies SGR codes left to right. Unknown codes are ignored.
func (s *StyleState) ApplyParams(params []int) {
	for i := 0; i < len(params); i++ {
		code := params[i]

		switch code {
		case 0:
			s.Reset()

		case 1:
			s.Bold = true
		case 2:
			s.Dim = true
		case 3:
			s.Italic = true
		case 4:
			s.Underline = true
		case 5, 6:
			s.Blink = true
		case 7:
			s.Reverse = true
		case 8:
			s.Hidden = true
		case 9:
			s.Strikethrough = true

		case 22:
			s.Bold = false
			s.Dim = false
		case 23:
			s.Italic = false
		case 24:
			s.Underline = false
		case 25:
			s.Blink = false
		case 27:
			s.Reverse = false
		case 28:
			s.Hidden = false
		case 29:
			s.Strikethrough = false

		case 30, 31, 32, 33, 34, 35, 36, 37:
			s.Fg = colorPtr(Palette16[code-30])

		case 38: // Foreground extended
			i += applyExtendedColor(&s.Fg, params, i+1)

		case 39:
			s.Fg = nil

		case 40, 41, 42, 43, 44, 45, 46, 47:
			s.Bg = colorPtr(Palette16[code-40])

		case 48: // Background extended
			i += applyExtendedColor(&s.Bg, params, i+1)

		case 49:
			s.Bg = nil

		case 90, 91, 92, 93, 94, 95, 96, 97:
			s.Fg = colorPtr(Palette16[code-90+8])

		case 100, 101, 102, 103, 104, 105, 106, 107:
			s.Bg = colorPtr(Palette16[code-100+8])
		}
	}
}

// applyExtendedColor decodes the sub-parameters following a 38 or 48 code,
// starting at params[start], and returns how many of them were consumed:
//
//	5;N     -> 2
//	2;R;G;B -> 4
//	other   -> 0 (the 38/48 is a no-op, the next parameter is read as a code)
//
// A complete group with an out-of-range value is consumed but leaves the
// color unchanged.
func applyExtendedColor(color **Color, params []int, start int) int {
	if start >= len(params) {
		return 0
	}

	switch params[start] {
	case 5: // ESC[38;5;n
		if start+1 < len(params) {
			if c, ok := Indexed256(params[start+1]); ok {
				*color = colorPtr(c)
			}
			return 2
		}

	case 2: // ESC[38;2;r;g;b
		if start+3 < len(params) {
			if c, ok := TrueColor(params[start+1], params[start+2], params[start+3]); ok {
				*color = colorPtr(c)
			}
			return 4
		}
	}

	return 0
}

func colorPtr(c Color) *Color {
	return &c
}

// Options snapshots the currently active attributes.
func (s *StyleState) Options() Options {
	opts := Options{
		Bold:          s.Bold,
		Dim:           s.Dim,
		Italic:        s.Italic,
		Underline:     s.Underline,
		Blink:         s.Blink,
		Reverse:       s.Reverse,
		Hidden:        s.Hidden,
		Strikethrough: s.Strikethrough,
	}
	if s.Fg != nil {
		opts.Color = colorPtr(*s.Fg)
	}
	if s.Bg != nil {
		opts.BackgroundColor = colorPtr(*s.Bg)
	}
	return opts
}

func (s *StyleState) String() string {
	return s.Options().String()
}

/////////////////////////////////////////////////////////////////////////////
// OPTIONS
/////////////////////////////////////////////////////////////////////////////

// Options holds the attributes active over a decoration. Inactive
// attributes are omitted from the JSON encoding.
type Options struct {
	Color           *Color `json:"color,omitempty"`
	BackgroundColor *Color `json:"backgroundColor,omitempty"`
	Bold            bool   `json:"bold,omitempty"`
	Dim             bool   `json:"dim,omitempty"`
	Italic          bool   `json:"italic,omitempty"`
	Underline       bool   `json:"underline,omitempty"`
	Blink           bool   `json:"blink,omitempty"`
	Reverse         bool   `json:"reverse,omitempty"`
	Hidden          bool   `json:"hidden,omitempty"`
	Strikethrough   bool   `json:"strikethrough,omitempty"`
}

func (o Options) Equals(other Options) bool {
	return colorEquals(o.Color, other.Color) &&
		colorEquals(o.BackgroundColor, other.BackgroundColor) &&
		o.Bold == other.Bold &&
		o.Dim == other.Dim &&
		o.Italic == other.Italic &&
		o.Underline == other.Underline &&
		o.Blink == other.Blink &&
		o.Reverse == other.Reverse &&
		o.Hidden == other.Hidden &&
		o.Strikethrough == other.Strikethrough
}

func colorEquals(a, b *Color) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// String lists the active attributes, e.g. "color:#CD3131, bold".
func (o Options) String() string {
	var parts []string

	if o.Color != nil {
		parts = append(parts, fmt.Sprintf("color:%s", o.Color))
	}
	if o.BackgroundColor != nil {
		parts = append(parts, fmt.Sprintf("bg:%s", o.BackgroundColor))
	}

	flags := []struct {
		on   bool
		name string
	}{
		{o.Bold, "bold"},
		{o.Dim, "dim"},
		{o.Italic, "italic"},
		{o.Underline, "underline"},
		{o.Blink, "blink"},
		{o.Reverse, "reverse"},
		{o.Hidden, "hidden"},
		{o.Strikethrough, "strikethrough"},
	}
	for _, f := range flags {
		if f.on {
			parts = append(parts, f.name)
		}
	}

	return strings.Join(parts, ", ")
}
