package ansi

// Sources :
// - https://vt100.net/docs/vt510-rm/chapter4.html
// - https://invisible-island.net/xterm/ctlseqs/ctlseqs.html
// - https://ecma-international.org/wp-content/uploads/ECMA-48_5th_edition_june_1991.pdf
//
// Only the subset ESC [ [0-9;]* [A-Za-z] is recognized. Every other byte,
// including a lone or malformed ESC, is literal text.

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/badele/ansideco/internal/types"
)

type Tokenizer struct {
	input    string
	pos      int
	done     bool
	Segments []types.Segment  `json:"segments"`
	Stats    types.SplitStats `json:"stats"`
}

func NewTokenizer(input string) *Tokenizer {
	stats := types.SplitStats{
		SegmentsByKind: make(map[types.SegmentKind]int),
		SGRCodes:       make(map[int]int),
		CSICommands:    make(map[string]int),
		InputSize:      int64(len(input)),
	}

	return &Tokenizer{
		input:    input,
		pos:      0,
		Segments: make([]types.Segment, 0),
		Stats:    stats,
	}
}

// Split partitions text into literal and control segments.
func Split(text string) []types.Segment {
	return NewTokenizer(text).Tokenize()
}

// ContainsControlSequences reports whether text holds at least one token
// that Split would recognize.
func ContainsControlSequences(text string) bool {
	for i := strings.IndexByte(text, esc); i >= 0; {
		if _, ok := matchToken(text, i); ok {
			return true
		}

		next := strings.IndexByte(text[i+1:], esc)
		if next < 0 {
			break
		}
		i += 1 + next
	}
	return false
}

// Tokenize splits the input once; later calls return the same segments.
func (t *Tokenizer) Tokenize() []types.Segment {
	if t.done {
		return t.Segments
	}
	t.done = true

	textStart := t.pos

	for t.pos < len(t.input) {
		next := strings.IndexByte(t.input[t.pos:], esc)
		if next < 0 {
			t.pos = len(t.input)
			break
		}
		t.pos += next

		end, ok := matchToken(t.input, t.pos)
		if !ok {
			// Lone or malformed ESC stays in the literal run
			t.pos++
			continue
		}

		t.flushText(textStart, t.pos)
		t.parseControl(t.pos, end)
		t.pos = end
		textStart = t.pos
	}

	t.flushText(textStart, t.pos)
	t.calculateStats()

	return t.Segments
}

// matchToken checks for ESC [ [0-9;]* [A-Za-z] at pos and returns the
// offset just past the command letter.
func matchToken(input string, pos int) (int, bool) {
	if pos+2 >= len(input) || input[pos] != esc || input[pos+1] != csi {
		return 0, false
	}

	i := pos + 2
	for i < len(input) && isParamByte(input[i]) {
		i++
	}

	if i < len(input) && isCommandByte(input[i]) {
		return i + 1, true
	}
	return 0, false
}

func isParamByte(b byte) bool {
	return (b >= '0' && b <= '9') || b == ';'
}

func isCommandByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func (t *Tokenizer) flushText(start, end int) {
	if end <= start {
		return
	}

	t.Segments = append(t.Segments, types.Segment{
		Kind: types.SegmentText,
		Pos:  start,
		Raw:  t.input[start:end],
	})
}

func (t *Tokenizer) parseControl(start, end int) {
	command := t.input[end-1]
	segment := types.Segment{
		Kind:    types.SegmentCSI,
		Pos:     start,
		Raw:     t.input[start:end],
		Params:  ParseParams(t.input[start+2 : end-1]),
		Command: command,
	}

	if command == 'm' {
		segment.Kind = types.SegmentSGR
	}

	t.Segments = append(t.Segments, segment)
}

// ParseParams splits a parameter string on ';'. Empty fields read as 0 and
// an empty string yields [0], the SGR reset of a bare ESC[m.
func ParseParams(body string) []int {
	if body == "" {
		return []int{0}
	}

	fields := strings.Split(body, ";")
	params := make([]int, len(fields))
	for i, field := range fields {
		params[i] = ParseNumberParam(field, 0)
	}

	return params
}

// ParseNumberParam parses a run of decimal digits, saturating at maxParam.
func ParseNumberParam(param string, defaultValue int) int {
	if param == "" {
		return defaultValue
	}

	num, err := strconv.Atoi(param)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return maxParam
		}
		return defaultValue
	}
	if num > maxParam {
		return maxParam
	}
	return num
}

func (t *Tokenizer) calculateStats() {
	t.Stats.TotalSegments = len(t.Segments)

	for _, segment := range t.Segments {
		t.Stats.SegmentsByKind[segment.Kind]++

		switch segment.Kind {
		case types.SegmentText:
			t.Stats.TotalTextLength += utf8.RuneCountInString(segment.Raw)

		case types.SegmentSGR:
			for _, param := range segment.Params {
				t.Stats.SGRCodes[param]++
			}

		case types.SegmentCSI:
			t.Stats.CSICommands[CommandName(segment.Command)]++
		}
	}
}

// CommandName returns the mnemonic of a CSI final byte, or "CSI <c>" when
// it is not listed.
func CommandName(command byte) string {
	if name, ok := CSICommands[command]; ok {
		return name
	}
	return fmt.Sprintf("CSI %c", command)
}

// DescribeSGR returns a readable meaning for each SGR code, grouping the
// 38/48 extended color forms the same way the style state does.
func DescribeSGR(params []int) []string {
	result := make([]string, 0, len(params))

	for i := 0; i < len(params); i++ {
		code := params[i]

		if code == 38 || code == 48 {
			prefix := "Foreground"
			if code == 48 {
				prefix = "Background"
			}

			if i+2 < len(params) && params[i+1] == 5 {
				result = append(result, fmt.Sprintf("%s Palette Index: %d", prefix, params[i+2]))
				i += 2
				continue
			}
			if i+4 < len(params) && params[i+1] == 2 {
				result = append(result, fmt.Sprintf("%s RGB: %d,%d,%d", prefix, params[i+2], params[i+3], params[i+4]))
				i += 4
				continue
			}

			result = append(result, "Incomplete: "+strconv.Itoa(code))
			continue
		}

		if name, ok := SGRCodes[code]; ok {
			result = append(result, name)
		} else {
			result = append(result, "Unknown: "+strconv.Itoa(code))
		}
	}

	return result
}

// GetStats returns the statistics of the last Tokenize call.
func (t *Tokenizer) GetStats() types.SplitStats {
	return t.Stats
}
