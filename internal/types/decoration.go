package types

// Range is a half-open [Start, End) span of rune offsets into the cleaned text.
type Range struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func (r Range) Len() int {
	return r.End - r.Start
}

type Decoration struct {
	Range   Range   `json:"range"`
	Options Options `json:"options"`
}

// Result is the output of one parse: the text with every control token
// removed and the styled ranges over it, ordered by Range.Start.
type Result struct {
	Text        string       `json:"text"`
	Decorations []Decoration `json:"decorations"`
}
