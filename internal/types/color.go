package types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

/////////////////////////////////////////////////////////////////////////////
// COLOR
/////////////////////////////////////////////////////////////////////////////

// Color is a packed 24-bit RGB value (0xRRGGBB).
type Color uint32

func RGB(r, g, b uint8) Color {
	return Color(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

func (c Color) R() uint8 { return uint8(c >> 16) }
func (c Color) G() uint8 { return uint8(c >> 8) }
func (c Color) B() uint8 { return uint8(c) }

// String renders the color as #RRGGBB with upper-case hex digits.
func (c Color) String() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R(), c.G(), c.B())
}

func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *Color) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	parsed, err := ParseColor(s)
	if err != nil {
		return err
	}

	*c = parsed
	return nil
}

// ParseColor parses "#RRGGBB" (case-insensitive).
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return 0, fmt.Errorf("invalid color: %q", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color: %q: %w", s, err)
	}

	return Color(v), nil
}

// Palette16 is the VS Code dark theme rendition of the 16 standard colors.
// Index 0-7 are the normal colors (30-37 / 40-47), 8-15 the bright ones
// (90-97 / 100-107).
var Palette16 = [16]Color{
	0x000000, // 0: Black
	0xCD3131, // 1: Red
	0x0DBC79, // 2: Green
	0xE5E510, // 3: Yellow
	0x2472C8, // 4: Blue
	0xBC3FBC, // 5: Magenta
	0x11A8CD, // 6: Cyan
	0xE5E5E5, // 7: White
	0x666666, // 8: Bright Black
	0xF14C4C, // 9: Bright Red
	0x23D18B, // 10: Bright Green
	0xF5F543, // 11: Bright Yellow
	0x3B8EEA, // 12: Bright Blue
	0xD670D6, // 13: Bright Magenta
	0x29B8DB, // 14: Bright Cyan
	0xFFFFFF, // 15: Bright White
}

// Indexed256 decodes an xterm 256-color index.
//
//   - 0-15: Palette16
//   - 16-231: 6x6x6 cube, channel v maps to 0 when v == 0, else 55 + v*40
//   - 232-255: grayscale ramp 8 + (n-232)*10
//
// ok is false when n is outside 0-255.
func Indexed256(n int) (Color, bool) {
	switch {
	case n < 0 || n > 255:
		return 0, false
	case n < 16:
		return Palette16[n], true
	case n < 232:
		idx := n - 16
		r := cubeLevel(idx / 36)
		g := cubeLevel((idx % 36) / 6)
		b := cubeLevel(idx % 6)
		return RGB(r, g, b), true
	default:
		gray := uint8(8 + (n-232)*10)
		return RGB(gray, gray, gray), true
	}
}

func cubeLevel(v int) uint8 {
	if v == 0 {
		return 0
	}
	return uint8(55 + v*40)
}

// TrueColor builds a color from SGR 38;2 / 48;2 components.
// ok is false when a component is outside 0-255.
func TrueColor(r, g, b int) (Color, bool) {
	if !inByteRange(r) || !inByteRange(g) || !inByteRange(b) {
		return 0, false
	}
	return RGB(uint8(r), uint8(g), uint8(b)), true
}

func inByteRange(v int) bool {
	return v >= 0 && v <= 255
}
