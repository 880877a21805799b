package compositor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loomterm/compositor/internal/geom"
	"github.com/loomterm/compositor/internal/widget"
)

func TestReflow_PlacesContainerAndChildren(t *testing.T) {
	child1 := newLeaf("one")
	child2 := newLeaf("two")
	root := newContainer("root", child1, child2)

	c := New()
	c.Reflow(root, geom.Size{Width: 10, Height: 5})

	m := c.FullMap()
	require.Contains(t, m, root)
	require.Contains(t, m, child1)
	require.Contains(t, m, child2)

	assert.Equal(t, geom.Region{X: 0, Y: 0, Width: 10, Height: 5}, m[root].Region)
	assert.Equal(t, geom.Region{X: 0, Y: 0, Width: 10, Height: 1}, m[child1].Region)
	assert.Equal(t, geom.Region{X: 0, Y: 1, Width: 10, Height: 1}, m[child2].Region)
}

func TestReflow_ReportsShownAndHidden(t *testing.T) {
	childA := newLeaf("a")
	root := newContainer("root", childA)

	c := New()
	result := c.Reflow(root, geom.Size{Width: 5, Height: 5})
	assert.True(t, result.Shown.Contains(root))
	assert.True(t, result.Shown.Contains(childA))
	assert.Empty(t, result.Hidden)

	childB := newLeaf("b")
	root2 := newContainer("root", childB)
	result2 := c.Reflow(root2, geom.Size{Width: 5, Height: 5})
	assert.True(t, result2.Hidden.Contains(childA))
	assert.True(t, result2.Shown.Contains(childB))
}

func TestReflow_WidgetsIsSupersetOfMapKeys(t *testing.T) {
	hidden := newLeaf("hidden")
	hidden.styles.visibility = widget.VisibilityHidden

	root := newContainer("root", hidden)

	c := New()
	c.Reflow(root, geom.Size{Width: 5, Height: 5})

	assert.True(t, c.Widgets().Contains(hidden))
	_, inMap := c.FullMap()[hidden]
	assert.False(t, inMap)
}

func TestReflowVisible_ExposesNewlyVisibleWidgets(t *testing.T) {
	child := newLeaf("child")
	root := newContainer("root", child)

	c := New()
	exposed := c.ReflowVisible(root, geom.Size{Width: 5, Height: 5})
	assert.True(t, exposed.Contains(child))
	assert.True(t, exposed.Contains(root))
}

func TestOrder_CompareLexicographic(t *testing.T) {
	a := Order{{LayerIndex: 0, Z: 0, SiblingOrder: 0}, {LayerIndex: 0, Z: 0, SiblingOrder: 1}}
	b := Order{{LayerIndex: 0, Z: 0, SiblingOrder: 0}, {LayerIndex: 0, Z: 0, SiblingOrder: 2}}
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
	assert.Equal(t, 0, a.Compare(a))
}

func TestOrder_ShorterPrefixSortsFirst(t *testing.T) {
	parent := Order{{LayerIndex: 0, Z: 0, SiblingOrder: 0}}
	child := parent.Append(Triple{LayerIndex: 0, Z: 0, SiblingOrder: 0})
	assert.True(t, parent.Less(child))
}
