package compositor

import "github.com/loomterm/compositor/internal/widget"

// UpdateWidgets marks the current visible region of each given widget as
// dirty, for a widget that repainted itself without moving or resizing
// (spec.md §4.7: an explicit repaint request bypasses reflow entirely).
// Widgets not present in the active map are ignored.
func (c *Compositor) UpdateWidgets(widgets ...widget.Widget) {
	m := c.activeMap()
	screenRegion := c.size.Region()
	if _, fullyDirty := c.dirtyRegions[screenRegion]; fullyDirty {
		return
	}
	for _, w := range widgets {
		g, ok := m[w]
		if !ok {
			continue
		}
		region := g.VisibleRegion()
		if region.IsEmpty() {
			continue
		}
		c.dirtyRegions[region] = struct{}{}
	}
}
