// Package compositor implements the screen compositor: it arranges a tree
// of widgets into absolute screen regions, indexes them for hit-testing,
// resolves paint order, and emits minimal differential screen updates. See
// SPEC_FULL.md for the full requirements this package implements.
package compositor

import (
	"github.com/loomterm/compositor/internal/geom"
	"github.com/loomterm/compositor/internal/widget"
)

// Compositor stores the composition map and derived caches for one screen.
// It is not safe for concurrent use: spec.md §5 treats it as single-
// threaded, UI-thread-only state.
type Compositor struct {
	root widget.Widget
	size geom.Size

	fullMap           CompositionMap
	fullMapInvalidated bool
	visibleMap        CompositionMap // nil unless ReflowVisible ran since the last Reflow

	// widgets is the superset of widgets considered by the last arrangement
	// pass, including ones that ended up invisible (spec.md §3 invariant 5).
	widgets WidgetSet

	dirtyRegions map[geom.Region]struct{}

	// Lazily (re)built derived indices; nil means "needs rebuilding".
	visibleWidgets *orderedVisibleWidgets
	layers         []layerEntry
	layersVisible  [][]layerRow
	cuts           [][]int

	metrics *Metrics
}

// New creates an empty Compositor: no root, the Empty state of spec.md §4.8.
func New() *Compositor {
	return &Compositor{
		fullMap:            CompositionMap{},
		fullMapInvalidated: true,
		widgets:            WidgetSet{},
		dirtyRegions:       make(map[geom.Region]struct{}),
	}
}

// WithMetrics attaches a Metrics recorder, used by cmd/loomdemo's bench
// subcommand. Passing nil disables instrumentation (the default).
func (c *Compositor) WithMetrics(m *Metrics) *Compositor {
	c.metrics = m
	return c
}

// Size returns the screen size of the last reflow.
func (c *Compositor) Size() geom.Size {
	return c.size
}

// Root returns the widget most recently passed to Reflow or ReflowVisible,
// or nil if none has run yet.
func (c *Compositor) Root() widget.Widget {
	return c.root
}

// Widgets returns the superset of widgets considered during the last
// arrangement pass (spec.md §3 invariant 5: a superset of the map's keys).
func (c *Compositor) Widgets() WidgetSet {
	return c.widgets
}

func (c *Compositor) invalidateDerived() {
	c.visibleWidgets = nil
	c.layers = nil
	c.layersVisible = nil
	c.cuts = nil
}

// FullMap lazily (re)builds and returns the map covering every widget,
// including ones currently off the fast scroll path (spec.md §4.8: any
// access to full_map while stale rebuilds it and transitively invalidates
// dependent caches).
func (c *Compositor) FullMap() CompositionMap {
	if c.root == nil {
		return CompositionMap{}
	}
	if c.fullMapInvalidated {
		c.fullMapInvalidated = false
		m, _ := c.arrangeRoot(c.root, c.size, false)
		c.fullMap = m
		c.invalidateDerived()
	}
	return c.fullMap
}

// activeMap returns the map derived indices should be built from: the
// visible map if the fast scroll path has populated one, else the full map.
func (c *Compositor) activeMap() CompositionMap {
	if c.visibleMap != nil {
		return c.visibleMap
	}
	return c.fullMap
}
