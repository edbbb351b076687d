package types

import (
	"fmt"
)

/////////////////////////////////////////////////////////////////////////////
// SEGMENT KIND
/////////////////////////////////////////////////////////////////////////////

type SegmentKind int

const (
	SegmentText SegmentKind = iota
	SegmentSGR
	SegmentCSI
)

func (k SegmentKind) String() string {
	switch k {
	case SegmentText:
		return "SegmentText"
	case SegmentSGR:
		return "SegmentSGR"
	case SegmentCSI:
		return "SegmentCSI"
	default:
		return fmt.Sprintf("SegmentKind(%d)", k)
	}
}

// MarshalText encodes the kind by name, both as a JSON value and as a map key.
func (k SegmentKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *SegmentKind) UnmarshalText(data []byte) error {
	switch s := string(data); s {
	case "SegmentText":
		*k = SegmentText
	case "SegmentSGR":
		*k = SegmentSGR
	case "SegmentCSI":
		*k = SegmentCSI
	default:
		return fmt.Errorf("unknown SegmentKind: %s", s)
	}

	return nil
}

/////////////////////////////////////////////////////////////////////////////
// SEGMENT
/////////////////////////////////////////////////////////////////////////////

// Segment is either a run of literal text or one recognized control token
// (ESC [ params letter). Pos is the byte offset of Raw in the input.
type Segment struct {
	Kind    SegmentKind `json:"kind"`
	Pos     int         `json:"pos"`
	Raw     string      `json:"raw"`
	Params  []int       `json:"params,omitempty"`
	Command byte        `json:"command,omitempty"`
}

func (s Segment) IsControl() bool {
	return s.Kind != SegmentText
}

func (s Segment) String() string {
	switch s.Kind {
	case SegmentText:
		return "TEXT: " + s.Raw
	case SegmentSGR:
		return fmt.Sprintf("SGR: %v", s.Params)
	case SegmentCSI:
		return fmt.Sprintf("CSI: %c %v", s.Command, s.Params)
	default:
		return "UNKNOWN"
	}
}

/////////////////////////////////////////////////////////////////////////////
// SPLIT STATS
/////////////////////////////////////////////////////////////////////////////

type SplitStats struct {
	TotalSegments   int                 `json:"total_segments"`
	SegmentsByKind  map[SegmentKind]int `json:"segments_by_kind"`
	SGRCodes        map[int]int         `json:"sgr_codes"`
	CSICommands     map[string]int      `json:"csi_commands"`
	TotalTextLength int                 `json:"total_text_length"`
	InputSize       int64               `json:"input_size"`
}
