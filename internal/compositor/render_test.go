package compositor

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loomterm/compositor/internal/geom"
	"github.com/loomterm/compositor/internal/style"
)

func TestRenderUpdate_FullProducesLayoutUpdate(t *testing.T) {
	root := newLeaf("root")
	c := New()
	c.Reflow(root, geom.Size{Width: 4, Height: 2})

	update, ok, err := c.RenderUpdate(context.Background(), true, nil)
	require.NoError(t, err)
	require.True(t, ok)

	layout, isLayout := update.(*LayoutUpdate)
	require.True(t, isLayout)
	assert.Len(t, layout.Strips, 2)
	assert.Empty(t, c.dirtyRegions)
}

func TestRenderUpdate_NoneWhenNothingDirty(t *testing.T) {
	root := newLeaf("root")
	c := New()
	c.Reflow(root, geom.Size{Width: 4, Height: 2})
	c.dirtyRegions = map[geom.Region]struct{}{}

	update, ok, err := c.RenderUpdate(context.Background(), false, nil)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, update)
}

func TestRenderUpdate_PartialProducesChopsUpdate(t *testing.T) {
	root := newLeaf("root")
	c := New()
	c.Reflow(root, geom.Size{Width: 4, Height: 2})

	update, ok, err := c.RenderUpdate(context.Background(), false, nil)
	require.NoError(t, err)
	require.True(t, ok)
	_, isChops := update.(*ChopsUpdate)
	assert.True(t, isChops)
}

type fakeScreen struct {
	strips []style.Strip
}

func (s fakeScreen) RenderStrips() ([]style.Strip, error) { return s.strips, nil }

func TestRenderStrips_FallsBackToBackgroundScreenForEmptyRows(t *testing.T) {
	root := newLeaf("")
	root.lines = []style.Strip{{}}

	c := New()
	c.Reflow(root, geom.Size{Width: 4, Height: 1})

	background := fakeScreen{strips: []style.Strip{{{Text: "bg behind"}}}}
	strips, err := c.RenderStrips(background)
	require.NoError(t, err)
	require.Len(t, strips, 1)
	assert.Equal(t, "bg behind", strips[0].Render())
}

func TestWithScreenStack_RoundTripsThroughContext(t *testing.T) {
	stack := []Screen{fakeScreen{}}
	ctx := WithScreenStack(context.Background(), stack)
	assert.Len(t, ScreenStackFromContext(ctx), 1)
	assert.Empty(t, ScreenStackFromContext(context.Background()))
}

func TestLayoutUpdate_WriteToEmitsMoveToPerRowWithNewlinesBetween(t *testing.T) {
	update := &LayoutUpdate{Strips: []style.Strip{
		{{Text: "aa"}},
		{{Text: "bb"}},
	}}

	var buf strings.Builder
	require.NoError(t, update.WriteTo(&buf, geom.Size{Width: 2, Height: 2}))

	out := buf.String()
	assert.Equal(t, "\x1b[1;1Haa\n\x1b[2;1Hbb", out)
}

func TestChopsUpdate_WriteToEmitsRowsInAscendingOrder(t *testing.T) {
	update := &ChopsUpdate{Rows: []RowUpdate{
		{Y: 2, Spans: []SpanUpdate{{Span: Span{X1: 0, X2: 1}, Strip: style.Strip{{Text: "c"}}}}},
		{Y: 0, Spans: []SpanUpdate{{Span: Span{X1: 1, X2: 2}, Strip: style.Strip{{Text: "a"}}}}},
	}}

	var buf strings.Builder
	require.NoError(t, update.WriteTo(&buf, geom.Size{Width: 4, Height: 4}))

	out := buf.String()
	aIdx := strings.Index(out, "\x1b[1;2Ha")
	cIdx := strings.Index(out, "\x1b[3;1Hc")
	require.NotEqual(t, -1, aIdx)
	require.NotEqual(t, -1, cIdx)
	assert.Less(t, aIdx, cIdx)
	assert.Contains(t, out, "a\n\x1b[3;1H")
}

func TestRenderUpdate_PartialUpdateRowsAreSortedByY(t *testing.T) {
	root := newContainer("root", newLeaf("top"), newLeaf("bottom"))
	c := New()
	c.Reflow(root, geom.Size{Width: 4, Height: 2})
	c.dirtyRegions = map[geom.Region]struct{}{
		{X: 0, Y: 1, Width: 4, Height: 1}: {},
		{X: 0, Y: 0, Width: 4, Height: 1}: {},
	}

	update, ok, err := c.RenderUpdate(context.Background(), false, nil)
	require.NoError(t, err)
	require.True(t, ok)
	chops := update.(*ChopsUpdate)
	require.Len(t, chops.Rows, 2)
	assert.Equal(t, 0, chops.Rows[0].Y)
	assert.Equal(t, 1, chops.Rows[1].Y)
}
