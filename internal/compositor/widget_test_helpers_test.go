package compositor

import (
	"github.com/loomterm/compositor/internal/geom"
	"github.com/loomterm/compositor/internal/style"
	"github.com/loomterm/compositor/internal/widget"
)

// fakeStyles is a minimal widget.Styles double for tests.
type fakeStyles struct {
	visibility widget.Visibility
	offset     widget.OffsetRule
	hasOffset  bool
	opacity    float64
	opacitySet bool
	layer      string
	gutter     geom.Spacing
}

func (s fakeStyles) Visibility() widget.Visibility     { return s.visibility }
func (s fakeStyles) Offset() (widget.OffsetRule, bool) { return s.offset, s.hasOffset }

func (s fakeStyles) Opacity() float64 {
	if !s.opacitySet {
		return 1
	}
	return s.opacity
}

func (s fakeStyles) Layer() string        { return s.layer }
func (s fakeStyles) Gutter() geom.Spacing { return s.gutter }

// fakeWidget is a bare-bones widget.Widget double: a leaf by default, or a
// container when children is non-empty.
type fakeWidget struct {
	name     string
	styles   fakeStyles
	children []widget.Widget

	scrollable  bool
	scrollOff   geom.Offset
	hScroll     bool
	vScroll     bool
	layers      []string
	lines       []style.Strip
	repaints    []geom.Region

	// stack, when set, overrides Arrange's default one-child-per-row layout
	// and places every child at the same region (for overlap tests).
	stack bool

	// childRegion, when set, is used verbatim as the single child's region
	// instead of Arrange's default layout.
	childRegion *geom.Region

	renderPanics bool
}

func newLeaf(name string) *fakeWidget {
	return &fakeWidget{
		name:   name,
		styles: fakeStyles{opacitySet: true, opacity: 1},
	}
}

func newContainer(name string, children ...widget.Widget) *fakeWidget {
	return &fakeWidget{
		name:     name,
		styles:   fakeStyles{opacitySet: true, opacity: 1},
		children: children,
	}
}

func (w *fakeWidget) Styles() widget.Styles { return w.styles }
func (w *fakeWidget) IsScrollable() bool    { return w.scrollable || len(w.children) > 0 }
func (w *fakeWidget) IsContainer() bool     { return len(w.children) > 0 }
func (w *fakeWidget) ScrollbarsEnabled() (bool, bool) { return w.hScroll, w.vScroll }
func (w *fakeWidget) Layers() []string      { return w.layers }

func (w *fakeWidget) Arrange(size geom.Size) widget.ArrangeResult {
	if w.childRegion != nil && len(w.children) == 1 {
		return widget.ArrangeResult{
			Placements:  []widget.Placement{{Region: *w.childRegion, Widget: w.children[0]}},
			TotalRegion: *w.childRegion,
		}
	}
	if w.stack {
		region := geom.Region{X: 0, Y: 0, Width: size.Width, Height: size.Height}
		placements := make([]widget.Placement, 0, len(w.children))
		for _, child := range w.children {
			placements = append(placements, widget.Placement{Region: region, Widget: child})
		}
		return widget.ArrangeResult{Placements: placements, TotalRegion: region}
	}

	placements := make([]widget.Placement, 0, len(w.children))
	y := 0
	for _, child := range w.children {
		region := geom.Region{X: 0, Y: y, Width: size.Width, Height: 1}
		placements = append(placements, widget.Placement{Region: region, Widget: child})
		y++
	}
	return widget.ArrangeResult{
		Placements:  placements,
		TotalRegion: geom.Region{X: 0, Y: 0, Width: size.Width, Height: y},
	}
}

func (w *fakeWidget) ScrollOffset() geom.Offset { return w.scrollOff }

func (w *fakeWidget) ScrollableRegion(container geom.Region) geom.Region { return container }

func (w *fakeWidget) ArrangeScrollbars(container geom.Region) []widget.ScrollbarPlacement {
	return nil
}

func (w *fakeWidget) RenderLines(region geom.Region) []style.Strip {
	if w.renderPanics {
		panic("boom")
	}
	if w.lines != nil {
		return w.lines
	}
	lines := make([]style.Strip, region.Height)
	for i := range lines {
		lines[i] = style.Strip{{Text: padTo(w.name, region.Width)}}
	}
	return lines
}

func (w *fakeWidget) ExchangeRepaintRegions() []geom.Region {
	r := w.repaints
	w.repaints = nil
	return r
}

func padTo(s string, width int) string {
	if width <= 0 {
		return ""
	}
	for len(s) < width {
		s += " "
	}
	if len(s) > width {
		s = s[:width]
	}
	return s
}
