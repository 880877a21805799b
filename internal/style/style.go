// Package style provides the cell-level rendering primitives the core
// treats as produced by widgets: styled runs of text and the rows ("strips")
// they make up. Cell width is computed from grapheme clusters, not bytes,
// matching the teacher's lipgloss-based styling stack.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/rivo/uniseg"
)

// CellLen returns the number of terminal cells a string occupies. Wide
// (e.g. CJK) and zero-width (combining) characters are accounted for via
// grapheme clustering rather than byte or rune counting.
func CellLen(text string) int {
	return uniseg.StringWidth(text)
}

// Run is one contiguous, uniformly-styled run of text within a rendered
// row. Style may be the zero value, which renders unstyled text.
type Run struct {
	Text  string
	Style lipgloss.Style
}

// CellLen returns the run's on-screen width.
func (r Run) CellLen() int {
	return CellLen(r.Text)
}

// Strip is one rendered row: an ordered sequence of styled runs.
type Strip []Run

// CellLen returns the total on-screen width of the strip.
func (s Strip) CellLen() int {
	total := 0
	for _, run := range s {
		total += run.CellLen()
	}
	return total
}

// Render concatenates a strip's runs into terminal output, applying each
// run's style.
func (s Strip) Render() string {
	out := ""
	for _, run := range s {
		out += run.Style.Render(run.Text)
	}
	return out
}

// Divide slices a strip at the given cell-column cut points (relative to
// the strip's own start), returning len(cuts)+1 fragments. cuts must be
// strictly increasing and within [0, s.CellLen()].
func (s Strip) Divide(cuts []int) []Strip {
	fragments := make([]Strip, 0, len(cuts)+1)
	cutIdx := 0
	var current Strip
	x := 0
	for _, run := range s {
		runStart := x
		remaining := run
		for cutIdx < len(cuts) && cuts[cutIdx] <= runStart+remaining.CellLen() {
			cut := cuts[cutIdx]
			if cut == runStart {
				fragments = append(fragments, current)
				current = nil
				cutIdx++
				continue
			}
			left, right := splitRun(remaining, cut-runStart)
			current = append(current, left)
			fragments = append(fragments, current)
			current = nil
			remaining = right
			runStart = cut
			cutIdx++
		}
		if remaining.Text != "" {
			current = append(current, remaining)
		}
		x += run.CellLen()
	}
	fragments = append(fragments, current)
	for len(fragments) < len(cuts)+1 {
		fragments = append(fragments, nil)
	}
	return fragments
}

// splitRun splits a single run at cell offset n, walking grapheme clusters
// so multi-cell glyphs are never cut in half. n <= 0 puts the whole run on
// the right; n at or past run.CellLen() puts it all on the left.
func splitRun(run Run, n int) (left, right Run) {
	if n <= 0 {
		return Run{Style: run.Style}, run
	}
	gr := uniseg.NewGraphemes(run.Text)
	cells := 0
	pos := 0
	for gr.Next() {
		w := CellLen(gr.Str())
		if cells+w > n {
			break
		}
		cells += w
		_, pos = gr.Positions()
	}
	return Run{Text: run.Text[:pos], Style: run.Style}, Run{Text: run.Text[pos:], Style: run.Style}
}

// Join concatenates strips into a single strip, in order.
func Join(strips ...Strip) Strip {
	var joined Strip
	for _, s := range strips {
		joined = append(joined, s...)
	}
	return joined
}
