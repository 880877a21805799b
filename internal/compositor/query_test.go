package compositor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loomterm/compositor/internal/geom"
	"github.com/loomterm/compositor/internal/widget"
)

func TestGetWidgetAt_ReturnsFrontmostHit(t *testing.T) {
	back := newLeaf("back")
	front := newLeaf("front")
	root := newContainer("root", back, front)
	root.stack = true

	c := New()
	c.Reflow(root, geom.Size{Width: 4, Height: 2})

	w, region, err := c.GetWidgetAt(1, 1)
	require.NoError(t, err)
	assert.Same(t, front, w)
	assert.Equal(t, geom.Region{X: 0, Y: 0, Width: 4, Height: 2}, region)
}

func TestGetWidgetAt_NoWidgetAtCoordinate(t *testing.T) {
	root := newLeaf("root")
	c := New()
	c.Reflow(root, geom.Size{Width: 4, Height: 2})

	_, _, err := c.GetWidgetAt(99, 99)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoWidget))
}

func TestGetOffset_ErrorsWhenNotInLayout(t *testing.T) {
	root := newLeaf("root")
	stray := newLeaf("stray")
	c := New()
	c.Reflow(root, geom.Size{Width: 4, Height: 2})

	_, err := c.GetOffset(stray)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoWidget))
}

func TestFindWidget_ReturnsGeometryForKnownWidget(t *testing.T) {
	target := newLeaf("target")
	root := newContainer("root", target)

	c := New()
	c.Reflow(root, geom.Size{Width: 4, Height: 2})

	g, err := c.FindWidget(target)
	require.NoError(t, err)
	assert.Equal(t, geom.Region{X: 0, Y: 0, Width: 4, Height: 1}, g.Region)
}

func TestFindWidget_NotInLayout(t *testing.T) {
	root := newLeaf("root")
	stray := newLeaf("stray")
	c := New()
	c.Reflow(root, geom.Size{Width: 4, Height: 2})

	_, err := c.FindWidget(stray)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoWidget))
}

func TestFindWidget_NoRootErrors(t *testing.T) {
	c := New()
	_, err := c.FindWidget(newLeaf("stray"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoWidget))
}

func TestMatchWidget_MatchesByPredicate(t *testing.T) {
	target := newLeaf("target")
	root := newContainer("root", target)

	c := New()
	c.Reflow(root, geom.Size{Width: 4, Height: 2})

	found, err := c.MatchWidget(func(w widget.Widget) bool { return w == target })
	require.NoError(t, err)
	assert.Same(t, target, found)
}

func TestMatchWidget_NotInLayout(t *testing.T) {
	root := newLeaf("root")
	c := New()
	c.Reflow(root, geom.Size{Width: 4, Height: 2})

	_, err := c.MatchWidget(func(widget.Widget) bool { return false })
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoWidget))
}
