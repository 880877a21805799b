package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDemoTree_HasHeaderWorkersStorageAndFooter(t *testing.T) {
	root := buildDemoTree(themeByName("dark"))
	require.Len(t, root.children, 4)

	assert.Equal(t, "loomterm compositor", root.children[0].Title)
	assert.Equal(t, "ok", root.children[0].Status)
	assert.Equal(t, "warning", root.children[1].Status)
	assert.Equal(t, "ok", root.children[2].Status)

	footer := root.children[3]
	require.NotNil(t, footer.Progress)
	assert.Equal(t, 67, footer.Progress.Current)
}
