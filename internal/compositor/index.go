package compositor

import (
	"sort"

	"github.com/loomterm/compositor/internal/geom"
	"github.com/loomterm/compositor/internal/widget"
)

// orderedVisibleWidgets lists every widget with a non-empty visible region,
// front-to-back (highest Order first). Spatial queries walk it in order and
// stop at the first hit.
type orderedVisibleWidgets []widget.Widget

// layerEntry is one named layer and the widgets placed on it, front-to-back.
type layerEntry struct {
	Index   int
	Widgets []widget.Widget
}

// layerWidgetRow is one widget's intersection with a single screen row
// within a layer, as built by buildLayersVisible. Row assembly in chops.go
// does not read it.
type layerWidgetRow struct {
	Widget widget.Widget
	Region geom.Region
	Clip   geom.Region
}

// layerRow is the front-to-back list of widgets crossing one screen row,
// within a single layer.
type layerRow []layerWidgetRow

// buildVisibleWidgets lazily builds and caches the front-to-back list of
// widgets with a non-empty visible region.
func (c *Compositor) buildVisibleWidgets() orderedVisibleWidgets {
	if c.visibleWidgets != nil {
		return *c.visibleWidgets
	}
	m := c.activeMap()
	entries := make([]widget.Widget, 0, len(m))
	for w, g := range m {
		if !g.VisibleRegion().IsEmpty() {
			entries = append(entries, w)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return m[entries[i]].Order.Compare(m[entries[j]].Order) > 0
	})
	result := orderedVisibleWidgets(entries)
	c.visibleWidgets = &result
	return result
}

// VisibleWidgets returns the widgets with a non-empty visible region,
// ordered front-to-back by paint order.
func (c *Compositor) VisibleWidgets() []widget.Widget {
	return []widget.Widget(c.buildVisibleWidgets())
}

// buildLayers lazily groups visible widgets by their outermost layer index,
// each group front-to-back, groups ordered back-to-front (layer 0 first).
func (c *Compositor) buildLayers() []layerEntry {
	if c.layers != nil {
		return c.layers
	}
	m := c.activeMap()
	byIndex := map[int][]widget.Widget{}
	for w, g := range m {
		if g.VisibleRegion().IsEmpty() || len(g.Order) == 0 {
			continue
		}
		idx := g.Order[0].LayerIndex
		byIndex[idx] = append(byIndex[idx], w)
	}

	indices := make([]int, 0, len(byIndex))
	for idx := range byIndex {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	layers := make([]layerEntry, 0, len(indices))
	for _, idx := range indices {
		widgets := byIndex[idx]
		sort.Slice(widgets, func(i, j int) bool {
			return m[widgets[i]].Order.Compare(m[widgets[j]].Order) > 0
		})
		layers = append(layers, layerEntry{Index: idx, Widgets: widgets})
	}
	c.layers = layers
	return layers
}

// Layers returns the widgets on each layer, back-to-front across layers and
// front-to-back within a layer.
func (c *Compositor) Layers() [][]widget.Widget {
	entries := c.buildLayers()
	result := make([][]widget.Widget, len(entries))
	for i, e := range entries {
		result[i] = e.Widgets
	}
	return result
}

// buildLayersVisible lazily builds, per layer, the front-to-back widget
// list crossing each screen row. Row index y is screen row y; rows the
// layer's widgets do not cross hold an empty list.
func (c *Compositor) buildLayersVisible() [][]layerRow {
	if c.layersVisible != nil {
		return c.layersVisible
	}
	m := c.activeMap()
	layers := c.buildLayers()
	screenHeight := c.size.Height

	result := make([][]layerRow, len(layers))
	for li, layer := range layers {
		rows := make([]layerRow, screenHeight)
		for y := 0; y < screenHeight; y++ {
			var row layerRow
			for _, w := range layer.Widgets {
				g := m[w]
				vis := g.VisibleRegion()
				if vis.IsEmpty() {
					continue
				}
				if y < vis.Y || y >= vis.Y+vis.Height {
					continue
				}
				row = append(row, layerWidgetRow{Widget: w, Region: vis, Clip: g.Clip})
			}
			rows[y] = row
		}
		result[li] = rows
	}
	c.layersVisible = result
	return result
}
