package compositor

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/loomterm/compositor/internal/geom"
	"github.com/loomterm/compositor/internal/widget"
)

// GetOffset returns the absolute screen offset of w's last-arranged region.
func (c *Compositor) GetOffset(w widget.Widget) (geom.Offset, error) {
	g, ok := c.activeMap()[w]
	if !ok {
		if c.root == nil {
			return geom.Offset{}, errNoRoot()
		}
		return geom.Offset{}, errNotInLayout()
	}
	return g.Region.Offset(), nil
}

// GetWidgetAt returns the frontmost widget occupying absolute screen
// coordinate (x, y) and the region it was placed in.
func (c *Compositor) GetWidgetAt(x, y int) (widget.Widget, geom.Region, error) {
	m := c.activeMap()
	for _, w := range c.buildVisibleWidgets() {
		g := m[w]
		vis := g.VisibleRegion()
		if vis.Contains(x, y) {
			return w, g.Region, nil
		}
	}
	return nil, geom.Region{}, errNoWidgetAt(x, y)
}

// GetWidgetsAt returns every widget whose visible region covers (x, y),
// front-to-back, for inspecting the full paint stack at one cell.
func (c *Compositor) GetWidgetsAt(x, y int) ([]widget.Widget, error) {
	m := c.activeMap()
	var hits []widget.Widget
	for _, w := range c.buildVisibleWidgets() {
		if m[w].VisibleRegion().Contains(x, y) {
			hits = append(hits, w)
		}
	}
	if len(hits) == 0 {
		return nil, errNoWidgetAt(x, y)
	}
	return hits, nil
}

// GetStyleAt returns the style the cell at (x, y) would be painted with,
// by rendering that row and reading back the run covering the column.
func (c *Compositor) GetStyleAt(x, y int) (lipgloss.Style, error) {
	if x < 0 || x >= c.size.Width || y < 0 || y >= c.size.Height {
		return lipgloss.Style{}, errNoWidgetAt(x, y)
	}
	row, err := c.RenderRow(y)
	if err != nil {
		return lipgloss.Style{}, err
	}
	cell := sliceStrip(row, x, x+1)
	if len(cell) == 0 {
		return lipgloss.Style{}, errNoWidgetAt(x, y)
	}
	return cell[0].Style, nil
}

// FindWidget returns w's composition geometry, checking the full map cache,
// then the visible map cache, then falling back to a full rebuild (mirrors
// _compositor.py's find_widget: _full_map, then _visible_map, then
// full_map).
func (c *Compositor) FindWidget(w widget.Widget) (MapGeometry, error) {
	if c.root == nil {
		return MapGeometry{}, errNoRoot()
	}
	if !c.fullMapInvalidated {
		if g, ok := c.fullMap[w]; ok {
			return g, nil
		}
	}
	if c.visibleMap != nil {
		if g, ok := c.visibleMap[w]; ok {
			return g, nil
		}
	}
	g, ok := c.FullMap()[w]
	if !ok {
		return MapGeometry{}, errNotInLayout()
	}
	return g, nil
}

// MatchWidget returns the frontmost widget in the active map for which
// match reports true. Not part of spec.md; a convenience search built on
// the same visible-widget ordering as GetWidgetAt.
func (c *Compositor) MatchWidget(match func(widget.Widget) bool) (widget.Widget, error) {
	for _, w := range c.buildVisibleWidgets() {
		if match(w) {
			return w, nil
		}
	}
	if c.root == nil {
		return nil, errNoRoot()
	}
	return nil, errNotInLayout()
}
