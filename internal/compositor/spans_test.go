package compositor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/loomterm/compositor/internal/geom"
)

func TestRegionsToSpans_MergesOverlapping(t *testing.T) {
	regions := []geom.Region{
		{X: 0, Y: 0, Width: 5, Height: 1},
		{X: 3, Y: 0, Width: 5, Height: 1},
	}
	spans := RegionsToSpans(regions)
	assert.Equal(t, []Span{{X1: 0, X2: 8}}, spans[0])
}

func TestRegionsToSpans_KeepsDisjointSeparate(t *testing.T) {
	regions := []geom.Region{
		{X: 0, Y: 0, Width: 2, Height: 1},
		{X: 10, Y: 0, Width: 2, Height: 1},
	}
	spans := RegionsToSpans(regions)
	assert.Equal(t, []Span{{X1: 0, X2: 2}, {X1: 10, X2: 12}}, spans[0])
}

func TestRegionsToSpans_SeparatesByRow(t *testing.T) {
	regions := []geom.Region{
		{X: 0, Y: 0, Width: 3, Height: 1},
		{X: 0, Y: 1, Width: 3, Height: 1},
	}
	spans := RegionsToSpans(regions)
	assert.Len(t, spans, 2)
	assert.Contains(t, spans, 0)
	assert.Contains(t, spans, 1)
}

func TestRegionsToSpans_IgnoresEmptyRegions(t *testing.T) {
	regions := []geom.Region{{X: 0, Y: 0, Width: 0, Height: 0}}
	spans := RegionsToSpans(regions)
	assert.Empty(t, spans)
}
