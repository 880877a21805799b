package compositor

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/loomterm/compositor/internal/geom"
	"github.com/loomterm/compositor/internal/style"
	"github.com/loomterm/compositor/internal/widget"
)

// Screen is a background layer a Compositor can fall back to, the ambient
// "screen stack" of spec.md's supplemented features: a screen row that
// renders to zero cells shows the topmost background screen's row instead.
// Blank gaps inside a row that does render are painted as spaces.
type Screen interface {
	RenderStrips() ([]style.Strip, error)
}

type screenStackKey struct{}

// WithScreenStack attaches a background screen stack to ctx, bottom screen
// first. RenderUpdate reads it back via ScreenStackFromContext when its
// screens argument is nil; RenderStrips takes no context and uses only the
// screens passed to it.
func WithScreenStack(ctx context.Context, stack []Screen) context.Context {
	return context.WithValue(ctx, screenStackKey{}, stack)
}

// ScreenStackFromContext returns the screen stack attached by
// WithScreenStack, or nil if none was attached.
func ScreenStackFromContext(ctx context.Context) []Screen {
	stack, _ := ctx.Value(screenStackKey{}).([]Screen)
	return stack
}

// Update is produced by RenderUpdate: either a LayoutUpdate (full repaint)
// or a ChopsUpdate (only the rows touched by dirty regions). WriteTo emits
// it to a terminal as absolute cursor moves plus styled strips (spec.md
// §6), standing in for Python Rich's console-renderable protocol.
type Update interface {
	isUpdate()
	WriteTo(w io.Writer, screen geom.Size) error
}

// LayoutUpdate carries every screen row. RenderUpdate produces it only when
// called with full set; a dirty set that covers the whole screen still
// yields a ChopsUpdate.
type LayoutUpdate struct {
	Strips []style.Strip
}

func (*LayoutUpdate) isUpdate() {}

// WriteTo emits each row as move_to(0, y) followed by the row's strip,
// separated by newlines between (not after) rows (spec.md §6).
func (u *LayoutUpdate) WriteTo(w io.Writer, screen geom.Size) error {
	for y, strip := range u.Strips {
		if err := moveTo(w, 0, y); err != nil {
			return err
		}
		if _, err := io.WriteString(w, strip.Render()); err != nil {
			return err
		}
		if y != len(u.Strips)-1 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

// SpanUpdate is one changed horizontal run on a row.
type SpanUpdate struct {
	Span  Span
	Strip style.Strip
}

// RowUpdate collects the changed spans of a single row.
type RowUpdate struct {
	Y     int
	Spans []SpanUpdate
}

// ChopsUpdate carries only the rows and spans touched by the compositor's
// pending dirty regions, the partial-repaint path (spec.md §4.6).
type ChopsUpdate struct {
	Rows []RowUpdate
}

func (*ChopsUpdate) isUpdate() {}

// WriteTo emits only the changed spans: move_to(span.X1, row.Y) followed by
// the span's already-cropped strip, for every span on every row, rows in
// ascending Y order, with a newline between (not after) distinct rows
// (spec.md §4.5, §6).
func (u *ChopsUpdate) WriteTo(w io.Writer, screen geom.Size) error {
	rows := make([]RowUpdate, len(u.Rows))
	copy(rows, u.Rows)
	sort.Slice(rows, func(i, j int) bool { return rows[i].Y < rows[j].Y })
	for i, row := range rows {
		for _, span := range row.Spans {
			if err := moveTo(w, span.Span.X1, row.Y); err != nil {
				return err
			}
			if _, err := io.WriteString(w, span.Strip.Render()); err != nil {
				return err
			}
		}
		if i != len(rows)-1 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

// moveTo writes an absolute cursor-position escape sequence (1-indexed, as
// terminals expect). This is the one place the compositor talks directly to
// a terminal; no library in the example corpus wraps this single control
// sequence, so it is written by hand rather than reimplementing a Rich- or
// termenv-style console abstraction for one escape code.
func moveTo(w io.Writer, x, y int) error {
	_, err := fmt.Fprintf(w, "\x1b[%d;%dH", y+1, x+1)
	return err
}

// RenderStrips renders every screen row in full, ignoring dirty tracking.
// If screens is non-empty, a row that renders to zero cells on this
// compositor is replaced by the topmost background screen's row; gaps
// inside a row that renders at all stay blank.
func (c *Compositor) RenderStrips(screens ...Screen) ([]style.Strip, error) {
	height := c.size.Height
	strips := make([]style.Strip, height)
	for y := 0; y < height; y++ {
		strip, err := c.renderRowWithFallback(y, screens)
		if err != nil {
			return nil, err
		}
		strips[y] = strip
	}
	return strips, nil
}

func (c *Compositor) renderRowWithFallback(y int, screens []Screen) (style.Strip, error) {
	strip, err := c.RenderRow(y)
	if err != nil {
		return nil, err
	}
	if len(screens) == 0 || strip.CellLen() > 0 {
		return strip, nil
	}
	background, err := screens[len(screens)-1].RenderStrips()
	if err != nil || y >= len(background) {
		return strip, nil
	}
	return background[y], nil
}

// RenderUpdate produces the minimal Update needed to bring the terminal's
// displayed content in sync with the compositor's current state, then
// clears the dirty set (spec.md §4.6's Rendered state transition). full
// forces a LayoutUpdate even with no pending dirty regions. The bool
// result is false when nothing needs repainting.
func (c *Compositor) RenderUpdate(ctx context.Context, full bool, screens []Screen) (Update, bool, error) {
	start := time.Now()
	if screens == nil {
		screens = ScreenStackFromContext(ctx)
	}

	if full {
		strips, err := c.RenderStrips(screens...)
		if err != nil {
			return nil, false, err
		}
		dirtyCount := len(c.dirtyRegions)
		c.dirtyRegions = make(map[geom.Region]struct{})
		c.metrics.observeRender("full", dirtyCount, time.Since(start))
		return &LayoutUpdate{Strips: strips}, true, nil
	}

	if len(c.dirtyRegions) == 0 {
		c.metrics.observeRender("none", 0, time.Since(start))
		return nil, false, nil
	}

	dirtyCount := len(c.dirtyRegions)
	regions := make([]geom.Region, 0, dirtyCount)
	for r := range c.dirtyRegions {
		regions = append(regions, r)
	}
	spansByRow := RegionsToSpans(regions)

	rows := make([]RowUpdate, 0, len(spansByRow))
	for y, spans := range spansByRow {
		rowStrip, err := c.renderRowWithFallback(y, screens)
		if err != nil {
			return nil, false, err
		}
		update := RowUpdate{Y: y}
		for _, span := range spans {
			update.Spans = append(update.Spans, SpanUpdate{
				Span:  span,
				Strip: sliceStrip(rowStrip, span.X1, span.X2),
			})
		}
		rows = append(rows, update)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Y < rows[j].Y })

	c.dirtyRegions = make(map[geom.Region]struct{})
	c.metrics.observeRender("partial", dirtyCount, time.Since(start))
	return &ChopsUpdate{Rows: rows}, true, nil
}

// renderLinesSafe calls w.RenderLines, converting any panic into a
// *RenderPanicError instead of letting it unwind into the caller (spec.md
// §7.2: a widget's rendering bug must not take down the compositor).
func renderLinesSafe(w widget.Widget, region geom.Region) (lines []style.Strip, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &RenderPanicError{Widget: w, Cause: r}
		}
	}()
	return w.RenderLines(region), nil
}
