// Package widget defines the contract the compositor consumes from widget
// implementations. The compositor never implements these interfaces itself
// -- widgets, their styling engine, and their arrangement logic are external
// collaborators (spec.md §1, §6).
package widget

import (
	"github.com/loomterm/compositor/internal/geom"
	"github.com/loomterm/compositor/internal/style"
)

// Visibility is the resolved value of a widget's "visibility" style rule.
type Visibility int

const (
	// VisibilityInherit means the widget has no explicit rule and inherits
	// the ancestor chain's effective visibility.
	VisibilityInherit Visibility = iota
	VisibilityVisible
	VisibilityHidden
)

// Styles exposes the layout-relevant style lookups the arrangement engine
// needs from a widget. A concrete widget's full styling engine is out of
// scope; only these resolved values are consumed.
type Styles interface {
	Visibility() Visibility
	// Offset returns the widget's styled offset rule, and whether one is
	// set at all (an unset offset defaults to geom.NullOffset).
	Offset() (offset OffsetRule, ok bool)
	// Opacity is a value in [0, 1]; zero means the widget is skipped
	// during rendering but still occupies a slot in the derived indices.
	Opacity() float64
	// Layer is the name of the declared layer this widget paints on.
	Layer() string
	// Gutter is the border+padding spacing subtracted from a container's
	// region to produce its content area.
	Gutter() geom.Spacing
}

// OffsetRule is a styled offset expressed as scalars to be resolved against
// a region size and a clip size (e.g. percentages or fixed cells).
type OffsetRule interface {
	Resolve(regionSize, clipSize geom.Size) geom.Offset
}

// FixedOffset is an OffsetRule that ignores both sizes.
type FixedOffset geom.Offset

// Resolve implements OffsetRule.
func (f FixedOffset) Resolve(geom.Size, geom.Size) geom.Offset {
	return geom.Offset(f)
}

// Placement is one entry a container's Arrange produces for one child.
type Placement struct {
	Region geom.Region
	Margin geom.Spacing
	Widget Widget
	Z      int
	// Fixed marks a scroll-fixed child: its absolute region does not move
	// with the container's scroll offset.
	Fixed bool
}

// ArrangeResult is what a container's Arrange call returns.
type ArrangeResult struct {
	Placements    []Placement
	TotalRegion   geom.Region
	ScrollSpacing geom.Spacing
}

// VisiblePlacements filters Placements down to those intersecting viewport,
// used by the fast scroll path.
func (a ArrangeResult) VisiblePlacements(viewport geom.Region) []Placement {
	visible := make([]Placement, 0, len(a.Placements))
	for _, p := range a.Placements {
		if p.Region.Overlaps(viewport) {
			visible = append(visible, p)
		}
	}
	return visible
}

// ScrollbarPlacement is one chrome widget a scrollable widget wants drawn
// alongside its content (a horizontal or vertical scrollbar).
type ScrollbarPlacement struct {
	Widget Widget
	Region geom.Region
}

// Widget is the black-box contract the compositor arranges, indexes, and
// asks to render. Implementations own their own state, styling engine, and
// (for containers) arrangement logic; the compositor only calls these
// methods.
type Widget interface {
	Styles() Styles

	// IsScrollable reports whether this widget clips and offsets its
	// children by a scroll position (true for both scroll views and plain
	// containers with overflow).
	IsScrollable() bool
	// IsContainer reports whether this widget has children to arrange at
	// all. A scrollable leaf (e.g. a scrollable text area with no child
	// widgets) is scrollable but not a container.
	IsContainer() bool
	// ScrollbarsEnabled reports which of the widget's scrollbars
	// (horizontal, vertical) are currently shown.
	ScrollbarsEnabled() (horizontal, vertical bool)
	// Layers is the widget's declared child layer ordering, back to front.
	Layers() []string

	// Arrange asks a container to lay out its children within size,
	// returning their placements. Only called when IsContainer is true.
	Arrange(size geom.Size) ArrangeResult
	// ScrollOffset is the current scroll position of a scrollable widget.
	ScrollOffset() geom.Offset
	// ScrollableRegion computes the content area within container,
	// excluding any scrollbar gutters.
	ScrollableRegion(container geom.Region) geom.Region
	// ArrangeScrollbars returns the chrome widgets (and their regions)
	// for whichever scrollbars are enabled.
	ArrangeScrollbars(container geom.Region) []ScrollbarPlacement

	// RenderLines asks the widget to render the given widget-local region,
	// one Strip per row.
	RenderLines(region geom.Region) []style.Strip

	// ExchangeRepaintRegions atomically drains and returns the widget's
	// pending repaint rectangles (in widget-local coordinates).
	ExchangeRepaintRegions() []geom.Region
}
