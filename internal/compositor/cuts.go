package compositor

import "sort"

// buildCuts lazily computes, for each screen row, the sorted set of column
// boundaries where some widget's visible region starts or ends. Cuts bound
// the spans rendering splits a row into (spec.md §4.4): every widget edge
// on a row becomes a cut, so no widget's content is split mid-run by a
// sibling's boundary during chop assembly.
func (c *Compositor) buildCuts() [][]int {
	if c.cuts != nil {
		return c.cuts
	}
	width := c.size.Width
	height := c.size.Height

	cutSets := make([]map[int]struct{}, height)
	for y := 0; y < height; y++ {
		cutSets[y] = map[int]struct{}{0: {}, width: {}}
	}

	m := c.activeMap()
	for _, g := range m {
		vis := g.VisibleRegion()
		if vis.IsEmpty() {
			continue
		}
		left, right := vis.X, vis.X+vis.Width
		if left < 0 {
			left = 0
		}
		if right > width {
			right = width
		}
		top, bottom := vis.Y, vis.Y+vis.Height
		if top < 0 {
			top = 0
		}
		if bottom > height {
			bottom = height
		}
		for y := top; y < bottom; y++ {
			cutSets[y][left] = struct{}{}
			cutSets[y][right] = struct{}{}
		}
	}

	cuts := make([][]int, height)
	for y := 0; y < height; y++ {
		row := make([]int, 0, len(cutSets[y]))
		for x := range cutSets[y] {
			row = append(row, x)
		}
		sort.Ints(row)
		cuts[y] = row
	}
	c.cuts = cuts
	return cuts
}

// Cuts returns the column boundaries of every screen row.
func (c *Compositor) Cuts() [][]int {
	return c.buildCuts()
}
