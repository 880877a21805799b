package compositor

import (
	"strings"

	"github.com/loomterm/compositor/internal/style"
)

// RenderRow renders one absolute screen row as a single Strip, assembling
// it from the cut-bounded fragments of whichever widget is frontmost over
// each span (spec.md §4.5: first writer, front-to-back, wins each cell).
// Gaps left uncovered by any widget render as blank cells. A panic raised
// by a widget's RenderLines is recovered and returned as a *RenderPanicError.
func (c *Compositor) RenderRow(y int) (style.Strip, error) {
	cuts := c.buildCuts()
	if y < 0 || y >= len(cuts) {
		return nil, nil
	}
	rowCuts := cuts[y]
	visible := c.buildVisibleWidgets()
	m := c.activeMap()

	var runs style.Strip
	for i := 0; i+1 < len(rowCuts); i++ {
		x1, x2 := rowCuts[i], rowCuts[i+1]
		if x2 <= x1 {
			continue
		}
		span, err := c.renderSpan(visible, m, x1, x2, y)
		if err != nil {
			return nil, err
		}
		runs = append(runs, span...)
	}
	return runs, nil
}

// renderSpan finds the frontmost widget covering column x1 on row y and
// returns its content for [x1, x2). A covering widget necessarily covers
// the whole span: x1 and x2 are cut points, and every widget edge is a cut,
// so no widget boundary falls strictly inside [x1, x2).
func (c *Compositor) renderSpan(visible orderedVisibleWidgets, m CompositionMap, x1, x2, y int) (strip style.Strip, err error) {
	for _, w := range visible {
		if w.Styles().Opacity() <= 0 {
			continue
		}
		g := m[w]
		vis := g.VisibleRegion()
		if vis.IsEmpty() {
			continue
		}
		if y < vis.Y || y >= vis.Y+vis.Height {
			continue
		}
		if x1 < vis.X || x1 >= vis.X+vis.Width {
			continue
		}

		lines, err := renderLinesSafe(w, g.Region.ResetOffset())
		if err != nil {
			return nil, err
		}
		rowIndex := y - g.Region.Y
		if rowIndex < 0 || rowIndex >= len(lines) {
			return blankSpan(x2 - x1), nil
		}
		return sliceStrip(lines[rowIndex], x1-g.Region.X, x2-g.Region.X), nil
	}
	return blankSpan(x2 - x1), nil
}

func blankSpan(width int) style.Strip {
	if width <= 0 {
		return nil
	}
	return style.Strip{{Text: strings.Repeat(" ", width)}}
}

// sliceStrip extracts the sub-strip spanning local cell columns [a, b) out
// of a strip produced for a widget's full-width line.
func sliceStrip(s style.Strip, a, b int) style.Strip {
	total := s.CellLen()
	if a <= 0 && b >= total {
		return s
	}
	if a < 0 {
		a = 0
	}
	if b > total {
		b = total
	}
	if b <= a {
		return nil
	}

	var cutPoints []int
	if a > 0 {
		cutPoints = append(cutPoints, a)
	}
	if b < total {
		cutPoints = append(cutPoints, b)
	}
	pieces := s.Divide(cutPoints)

	offset := 0
	for _, p := range pieces {
		w := p.CellLen()
		if offset == a {
			return p
		}
		offset += w
	}
	return nil
}

