package compositor

import (
	"time"

	"github.com/loomterm/compositor/internal/geom"
	"github.com/loomterm/compositor/internal/widget"
)

// ReflowResult describes what changed between the previous full map and the
// one a Reflow just produced (spec.md §4.1).
type ReflowResult struct {
	Hidden  WidgetSet
	Shown   WidgetSet
	Resized WidgetSet
}

// Reflow recomputes the composition map from scratch by walking root,
// filling size. It invalidates every derived cache and returns the widgets
// that became hidden, shown, or resized relative to the previous full map.
func (c *Compositor) Reflow(root widget.Widget, size geom.Size) ReflowResult {
	start := time.Now()

	c.invalidateDerived()
	c.visibleMap = nil
	c.root = root
	c.size = size

	oldMap := c.fullMap
	oldKeys := mapKeySet(oldMap)

	newMap, widgets := c.arrangeRoot(root, size, false)
	newKeys := mapKeySet(newMap)

	c.fullMap = newMap
	c.fullMapInvalidated = false
	c.widgets = widgets

	c.markChangedRegions(oldMap, newMap)
	c.collectExplicitRepaints(newMap, widgets)

	common := intersect(oldKeys, newKeys)
	resized := WidgetSet{}
	for w := range common {
		if oldMap[w].Region.Size() != newMap[w].Region.Size() {
			resized.add(w)
		}
	}

	result := ReflowResult{
		Hidden:  difference(oldKeys, newKeys),
		Shown:   difference(newKeys, oldKeys),
		Resized: resized,
	}

	c.metrics.observeReflow("full", time.Since(start))
	return result
}

// ReflowVisible re-arranges only the placements the tree reports as
// currently visible -- the fast path used for scroll-only motion. It
// updates the visible map and flags the full map stale, returning the
// widgets newly exposed by the scroll.
//
// Open question (spec.md §9): when neither a visible map nor a full map
// exists yet, the comparison baseline is the empty map, so the very first
// fast-path reflow reports every visible widget as exposed. That falls out
// naturally here because Compositor.fullMap starts as an empty (non-nil)
// CompositionMap rather than nil.
func (c *Compositor) ReflowVisible(root widget.Widget, size geom.Size) WidgetSet {
	start := time.Now()

	c.invalidateDerived()
	c.fullMapInvalidated = true
	c.root = root
	c.size = size

	oldMap := c.fullMap
	if c.visibleMap != nil {
		oldMap = c.visibleMap
	}
	oldKeys := mapKeySet(oldMap)

	newMap, widgets := c.arrangeRoot(root, size, true)
	newKeys := mapKeySet(newMap)

	c.visibleMap = newMap
	c.widgets = widgets

	c.markChangedRegions(oldMap, newMap)
	c.collectExplicitRepaints(newMap, widgets)

	exposed := difference(newKeys, oldKeys)
	c.metrics.observeReflow("visible", time.Since(start))
	return exposed
}

// markChangedRegions adds the visible region of every widget whose
// MapGeometry differs between oldMap and newMap (added, removed, or
// changed) to the dirty set, unless the whole screen is already dirty.
func (c *Compositor) markChangedRegions(oldMap, newMap CompositionMap) {
	screenRegion := c.size.Region()
	if _, fullyDirty := c.dirtyRegions[screenRegion]; fullyDirty {
		return
	}
	mark := func(r geom.Region) {
		if !r.IsEmpty() {
			c.dirtyRegions[r] = struct{}{}
		}
	}
	for w, oldGeom := range oldMap {
		if newGeom, ok := newMap[w]; !ok || !geometryEqual(oldGeom, newGeom) {
			mark(oldGeom.VisibleRegion())
		}
	}
	for w, newGeom := range newMap {
		if oldGeom, ok := oldMap[w]; !ok || !geometryEqual(oldGeom, newGeom) {
			mark(newGeom.VisibleRegion())
		}
	}
}

// collectExplicitRepaints drains each widget's self-reported repaint
// regions (spec.md §4.7: a widget that changed its own content without
// moving or resizing asks for a repaint directly, bypassing reflow's
// region diff) and marks their intersection with the widget's clip dirty.
func (c *Compositor) collectExplicitRepaints(m CompositionMap, widgets WidgetSet) {
	screenRegion := c.size.Region()
	if _, fullyDirty := c.dirtyRegions[screenRegion]; fullyDirty {
		return
	}
	for w := range widgets {
		g, ok := m[w]
		if !ok {
			continue
		}
		for _, region := range w.ExchangeRepaintRegions() {
			dirty := g.Clip.Intersection(region.Translate(g.Region.Offset()))
			if !dirty.IsEmpty() {
				c.dirtyRegions[dirty] = struct{}{}
			}
		}
	}
}

func geometryEqual(a, b MapGeometry) bool {
	return a.Region == b.Region &&
		a.Clip == b.Clip &&
		a.VirtualSize == b.VirtualSize &&
		a.ContainerSize == b.ContainerSize &&
		a.VirtualRegion == b.VirtualRegion &&
		a.Order.Compare(b.Order) == 0
}

// arrangeRoot is the recursive placement algorithm of spec.md §4.1. It
// returns the composition map and the superset of widgets considered
// (spec.md §3 invariant 5), including ones that ended up invisible.
func (c *Compositor) arrangeRoot(root widget.Widget, size geom.Size, visibleOnly bool) (CompositionMap, WidgetSet) {
	screenRegion := size.Region()
	result := CompositionMap{}
	widgets := WidgetSet{}

	var addWidget func(w widget.Widget, virtualRegion, region geom.Region, order Order, layerOrder int, clip geom.Region, visible bool)

	addWidget = func(w widget.Widget, virtualRegion, region geom.Region, order Order, layerOrder int, clip geom.Region, visible bool) {
		styles := w.Styles()
		switch styles.Visibility() {
		case widget.VisibilityVisible:
			visible = true
		case widget.VisibilityHidden:
			visible = false
		}

		if visible {
			widgets.add(w)
		}

		var layoutOffset geom.Offset
		if rule, ok := styles.Offset(); ok {
			layoutOffset = rule.Resolve(region.Size(), clip.Size())
		}

		containerRegion := region.Shrink(styles.Gutter()).Translate(layoutOffset)
		containerSize := containerRegion.Size()

		if w.IsScrollable() {
			childRegion := w.ScrollableRegion(containerRegion)
			subClip := clip.Intersection(childRegion)
			totalRegion := childRegion.ResetOffset()

			if w.IsContainer() {
				arrangeResult := w.Arrange(childRegion.Size())
				for _, p := range arrangeResult.Placements {
					widgets.add(p.Widget)
				}

				placements := arrangeResult.Placements
				if visibleOnly {
					viewport := containerSize.Region().Translate(w.ScrollOffset())
					placements = arrangeResult.VisiblePlacements(viewport)
				}
				totalRegion = totalRegion.Union(arrangeResult.TotalRegion)

				placementOffset := containerRegion.Offset()
				placementScrollOffset := placementOffset.Sub(w.ScrollOffset())

				layerIndexByName := make(map[string]int, len(w.Layers()))
				for i, name := range w.Layers() {
					layerIndexByName[name] = i
				}

				scrollSpacing := arrangeResult.ScrollSpacing
				childLayerOrder := layerOrder

				for i := len(placements) - 1; i >= 0; i-- {
					p := placements[i]
					layerIndex := layerIndexByName[p.Widget.Styles().Layer()]

					var widgetRegion geom.Region
					if p.Fixed {
						widgetRegion = p.Region.Translate(placementOffset)
					} else {
						grow := p.Margin
						if layerIndex == 0 {
							grow = addSpacing(grow, scrollSpacing)
						}
						totalRegion = totalRegion.Union(p.Region.Grow(grow))
						widgetRegion = p.Region.Translate(placementScrollOffset)
					}

					widgetOrder := order.Append(Triple{LayerIndex: layerIndex, Z: p.Z, SiblingOrder: childLayerOrder})

					addWidget(p.Widget, p.Region, widgetRegion, widgetOrder, childLayerOrder, subClip, visible)

					childLayerOrder--
				}
			}

			if visible {
				if horizontal, vertical := w.ScrollbarsEnabled(); horizontal || vertical {
					for _, sb := range w.ArrangeScrollbars(containerRegion) {
						result[sb.Widget] = MapGeometry{
							Region:        sb.Region,
							Order:         order,
							Clip:          clip,
							VirtualSize:   containerSize,
							ContainerSize: containerSize,
							VirtualRegion: sb.Region,
						}
					}
				}

				result[w] = MapGeometry{
					Region:        region.Translate(layoutOffset),
					Order:         order,
					Clip:          clip,
					VirtualSize:   totalRegion.Size(),
					ContainerSize: containerSize,
					VirtualRegion: virtualRegion,
				}
			}
		} else if visible {
			result[w] = MapGeometry{
				Region:        region.Translate(layoutOffset),
				Order:         order,
				Clip:          clip,
				VirtualSize:   region.Size(),
				ContainerSize: containerSize,
				VirtualRegion: virtualRegion,
			}
		}
	}

	addWidget(root, screenRegion, screenRegion, Order{{LayerIndex: 0, Z: 0, SiblingOrder: 0}}, 0, screenRegion, true)
	return result, widgets
}

func addSpacing(a, b geom.Spacing) geom.Spacing {
	return geom.Spacing{
		Top:    a.Top + b.Top,
		Right:  a.Right + b.Right,
		Bottom: a.Bottom + b.Bottom,
		Left:   a.Left + b.Left,
	}
}
