package exporter

import (
	"fmt"
	"io"
	"sort"

	"github.com/badele/ansideco/internal/importer/ansi"
	"github.com/badele/ansideco/internal/types"
)

func DisplayStats(w io.Writer, stats types.SplitStats) {
	type kindCount struct {
		Kind  types.SegmentKind
		Count int
	}

	var kindCounts []kindCount

	fmt.Fprintln(w, "=== Segment Statistics ===")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Input size: %d bytes\n", stats.InputSize)
	fmt.Fprintf(w, "  Total segments: %d\n", stats.TotalSegments)
	fmt.Fprintf(w, "  Text length: %d characters\n", stats.TotalTextLength)

	fmt.Fprintln(w, "\n--- Segments by Kind")

	for k, count := range stats.SegmentsByKind {
		kindCounts = append(kindCounts, kindCount{k, count})
	}
	sort.Slice(kindCounts, func(i, j int) bool {
		if kindCounts[i].Count == kindCounts[j].Count {
			return kindCounts[i].Kind < kindCounts[j].Kind
		}
		return kindCounts[i].Count > kindCounts[j].Count
	})

	for _, kc := range kindCounts {
		percentage := float64(kc.Count) / float64(stats.TotalSegments) * 100
		fmt.Fprintf(w, "  %-30s:  %5d (%.1f%%)\n", kc.Kind.String(), kc.Count, percentage)
	}

	if len(stats.SGRCodes) > 0 {
		fmt.Fprintln(w, "\n--- Most Used SGR Codes")
		names := make(map[string]int, len(stats.SGRCodes))
		for code, count := range stats.SGRCodes {
			key := fmt.Sprintf("%d", code)
			if name, ok := ansi.SGRCodes[code]; ok {
				key = fmt.Sprintf("%d (%s)", code, name)
			}
			names[key] = count
		}
		displayTopN(w, names, 10)
	}

	if len(stats.CSICommands) > 0 {
		fmt.Fprintln(w, "\n--- Stripped CSI Sequences")
		displayTopN(w, stats.CSICommands, 10)
	}
}

func displayTopN(w io.Writer, data map[string]int, n int) {
	type entry struct {
		Key   string
		Count int
	}

	var entries []entry
	for k, v := range data {
		entries = append(entries, entry{k, v})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count == entries[j].Count {
			return entries[i].Key < entries[j].Key
		}
		return entries[i].Count > entries[j].Count
	})

	for i, e := range entries {
		if i >= n {
			break
		}
		fmt.Fprintf(w, "  %-30s: %5d\n", e.Key, e.Count)
	}
}
