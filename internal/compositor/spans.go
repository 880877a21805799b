package compositor

import (
	"sort"

	"github.com/loomterm/compositor/internal/geom"
)

// Span is a half-open horizontal run of columns [X1, X2) on one screen row.
type Span struct {
	X1, X2 int
}

// RegionsToSpans collapses a set of (possibly overlapping) regions into the
// minimal set of non-overlapping, merged horizontal spans per screen row
// (spec.md §4.6), used to turn a dirty-region set into the row spans a
// partial render must repaint.
func RegionsToSpans(regions []geom.Region) map[int][]Span {
	byRow := map[int][]Span{}
	for _, r := range regions {
		if r.IsEmpty() {
			continue
		}
		for y := r.Y; y < r.Y+r.Height; y++ {
			byRow[y] = append(byRow[y], Span{X1: r.X, X2: r.X + r.Width})
		}
	}

	for y, spans := range byRow {
		byRow[y] = mergeSpans(spans)
	}
	return byRow
}

func mergeSpans(spans []Span) []Span {
	if len(spans) == 0 {
		return nil
	}
	sort.Slice(spans, func(i, j int) bool {
		if spans[i].X1 != spans[j].X1 {
			return spans[i].X1 < spans[j].X1
		}
		return spans[i].X2 < spans[j].X2
	})

	merged := make([]Span, 0, len(spans))
	current := spans[0]
	for _, s := range spans[1:] {
		if s.X1 <= current.X2 {
			if s.X2 > current.X2 {
				current.X2 = s.X2
			}
			continue
		}
		merged = append(merged, current)
		current = s
	}
	merged = append(merged, current)
	return merged
}
