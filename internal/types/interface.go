package types

type Splitter interface {
	Tokenize() []Segment
}

// Split with statistics
type SplitterWithStats interface {
	Splitter
	GetStats() SplitStats
}
