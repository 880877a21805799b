package main

import (
	"github.com/google/uuid"

	"github.com/loomterm/compositor/internal/geom"
	"github.com/loomterm/compositor/internal/style"
	"github.com/loomterm/compositor/internal/widget"
)

// progress is an optional current/total pair a panel renders as a bar.
type progress struct {
	Current, Total int
}

// panel is the demo's one widget type: a bordered box with a title, wrapped
// body text, an optional status word, an optional progress bar, and
// optionally nested child panels stacked top to bottom.
type panel struct {
	id uuid.UUID

	Title    string
	Body     string
	Status   string
	Progress *progress
	Layer    string

	theme    theme
	children []*panel

	scrollOffset geom.Offset
	opacity      float64
	pending      []geom.Region
}

// newPanel creates a leaf panel.
func newPanel(t theme, title, body string) *panel {
	return &panel{id: uuid.New(), Title: title, Body: body, theme: t, opacity: 1}
}

// withChildren turns the panel into a container stacking the given panels.
func (p *panel) withChildren(children ...*panel) *panel {
	p.children = children
	return p
}

// Invalidate queues region for an explicit repaint on the next reflow,
// without going through the compositor's move/resize diff.
func (p *panel) Invalidate(region geom.Region) {
	p.pending = append(p.pending, region)
}

// ID is the panel's debug identity, distinct from its title so two panels
// with the same title remain distinguishable. No subcommand prints it.
func (p *panel) ID() uuid.UUID { return p.id }

// --- widget.Widget ---

func (p *panel) Styles() widget.Styles { return panelStyles{p} }

func (p *panel) IsScrollable() bool { return len(p.children) > 0 }
func (p *panel) IsContainer() bool  { return len(p.children) > 0 }

func (p *panel) ScrollbarsEnabled() (bool, bool) { return false, false }

func (p *panel) Layers() []string {
	if len(p.children) == 0 {
		return nil
	}
	seen := map[string]bool{}
	var layers []string
	for _, child := range p.children {
		name := child.Layer
		if name == "" {
			name = "base"
		}
		if !seen[name] {
			seen[name] = true
			layers = append(layers, name)
		}
	}
	return layers
}

// Arrange stacks children vertically, each given the full content width and
// a height sized to its own rendered content.
func (p *panel) Arrange(size geom.Size) widget.ArrangeResult {
	placements := make([]widget.Placement, 0, len(p.children))
	y := 0
	for _, child := range p.children {
		height := child.contentHeight(size.Width)
		region := geom.Region{X: 0, Y: y, Width: size.Width, Height: height}
		placements = append(placements, widget.Placement{
			Region: region,
			Widget: child,
		})
		y += height
	}
	return widget.ArrangeResult{
		Placements:  placements,
		TotalRegion: geom.Region{X: 0, Y: 0, Width: size.Width, Height: y},
	}
}

func (p *panel) ScrollOffset() geom.Offset { return p.scrollOffset }

func (p *panel) ScrollableRegion(container geom.Region) geom.Region { return container }

func (p *panel) ArrangeScrollbars(container geom.Region) []widget.ScrollbarPlacement { return nil }

// contentHeight is how many rows a leaf panel needs to render its title,
// wrapped body, status line, and progress bar at the given width.
func (p *panel) contentHeight(width int) int {
	lines := 1 // title row
	inner := width - 2
	if inner < 1 {
		inner = 1
	}
	if p.Body != "" {
		lines += len(wrapText(p.Body, inner))
	}
	if p.Status != "" {
		lines++
	}
	if p.Progress != nil {
		lines++
	}
	if lines < 1 {
		lines = 1
	}
	return lines + 2 // top and bottom border rows
}

// RenderLines renders the panel's border, title, body, status, and progress
// bar for the given widget-local region, one Strip per row.
func (p *panel) RenderLines(region geom.Region) []style.Strip {
	width := region.Width
	height := region.Height
	if width <= 0 || height <= 0 {
		return nil
	}

	content := p.contentLines(width - 2)
	lines := make([]style.Strip, height)

	border := p.theme.BorderStyle
	for y := 0; y < height; y++ {
		switch {
		case y == 0:
			lines[y] = style.Strip{{Text: border.Render("┌" + repeatRune('─', width-2) + "┐")}}
		case y == height-1:
			lines[y] = style.Strip{{Text: border.Render("└" + repeatRune('─', width-2) + "┘")}}
		default:
			idx := y - 1
			text := ""
			if idx < len(content) {
				text = content[idx]
			}
			lines[y] = style.Strip{
				{Text: border.Render("│")},
				{Text: padRight(text, width-2)},
				{Text: border.Render("│")},
			}
		}
	}
	return lines
}

// contentLines renders the panel's interior (everything between the top and
// bottom border) to a list of already-styled, width-bounded strings.
func (p *panel) contentLines(innerWidth int) []string {
	if innerWidth < 1 {
		innerWidth = 1
	}
	var out []string
	if p.Title != "" {
		out = append(out, p.theme.Header.Render(truncateText(p.Title, innerWidth)))
	}
	if p.Body != "" {
		out = append(out, wrapText(p.Body, innerWidth)...)
	}
	if p.Status != "" {
		out = append(out, p.theme.statusStyle(p.Status).Render(p.Status))
	}
	if p.Progress != nil {
		barWidth := innerWidth - maxPercentLabelWidth - 1
		filled, empty, label := progressBar(p.Progress.Current, p.Progress.Total, barWidth)
		out = append(out, p.theme.Progress.Render(filled)+p.theme.ProgressTrack.Render(empty)+" "+label)
	}
	return out
}

// maxPercentLabelWidth reserves space for the widest possible percentage
// label ("100.0%") so the bar's width calculation doesn't need to measure
// the label text it hasn't built yet.
const maxPercentLabelWidth = len("100.0%")

func (p *panel) ExchangeRepaintRegions() []geom.Region {
	regions := p.pending
	p.pending = nil
	return regions
}

// panelStyles adapts panel's exported fields to widget.Styles.
type panelStyles struct{ p *panel }

func (s panelStyles) Visibility() widget.Visibility { return widget.VisibilityInherit }
func (s panelStyles) Offset() (widget.OffsetRule, bool) { return nil, false }
func (s panelStyles) Opacity() float64 {
	if s.p.opacity == 0 {
		return 1
	}
	return s.p.opacity
}
func (s panelStyles) Layer() string {
	if s.p.Layer == "" {
		return "base"
	}
	return s.p.Layer
}
func (s panelStyles) Gutter() geom.Spacing { return geom.Spacing{} }

func repeatRune(r rune, n int) string {
	if n <= 0 {
		return ""
	}
	out := make([]rune, n)
	for i := range out {
		out[i] = r
	}
	return string(out)
}
