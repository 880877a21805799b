package compositor

import (
	"github.com/loomterm/compositor/internal/geom"
	"github.com/loomterm/compositor/internal/widget"
)

// MapGeometry is the record the compositor stores per visible widget
// (spec.md §3).
type MapGeometry struct {
	// Region is the absolute screen region the widget occupies.
	Region geom.Region
	// Order is this widget's full painting-order key.
	Order Order
	// Clip is the absolute region outside of which the widget must not
	// paint: the viewport of the nearest scrollable ancestor, intersected
	// with the screen.
	Clip geom.Region
	// VirtualSize is the total scrollable content size: the union of all
	// descendants plus scroll spacing.
	VirtualSize geom.Size
	// ContainerSize is the inner area excluding scrollbars.
	ContainerSize geom.Size
	// VirtualRegion is the widget's region relative to its container,
	// pre-scroll, pre-layout-offset.
	VirtualRegion geom.Region
}

// VisibleRegion is the widget's region after clipping: clip ∩ region. It is
// empty if the widget is laid out but entirely invisible.
func (m MapGeometry) VisibleRegion() geom.Region {
	return m.Clip.Intersection(m.Region)
}

// CompositionMap maps a widget to its geometry. Keys are Go interface
// values, so two distinct widgets are distinguished by the underlying
// pointer identity their implementation carries, per spec.md §9.
type CompositionMap map[widget.Widget]MapGeometry

// WidgetSet is a set of widgets, used for the reflow diff and for the
// superset of all widgets considered during arrangement (spec.md §3
// invariant 5).
type WidgetSet map[widget.Widget]struct{}

func newWidgetSet(widgets ...widget.Widget) WidgetSet {
	set := make(WidgetSet, len(widgets))
	for _, w := range widgets {
		set[w] = struct{}{}
	}
	return set
}

func (s WidgetSet) add(w widget.Widget) {
	s[w] = struct{}{}
}

// Contains reports whether w is a member of the set.
func (s WidgetSet) Contains(w widget.Widget) bool {
	_, ok := s[w]
	return ok
}

// difference returns the widgets in a that are not in b.
func difference(a, b WidgetSet) WidgetSet {
	diff := make(WidgetSet)
	for w := range a {
		if !b.Contains(w) {
			diff.add(w)
		}
	}
	return diff
}

// intersect returns the widgets present in both a and b.
func intersect(a, b WidgetSet) WidgetSet {
	small, large := a, b
	if len(b) < len(a) {
		small, large = b, a
	}
	result := make(WidgetSet)
	for w := range small {
		if large.Contains(w) {
			result.add(w)
		}
	}
	return result
}

func mapKeySet(m CompositionMap) WidgetSet {
	set := make(WidgetSet, len(m))
	for w := range m {
		set.add(w)
	}
	return set
}
