package palette_test

import (
	"image/color"
	"testing"

	"github.com/katalvlaran/mstquant/colorspace"
	"github.com/katalvlaran/mstquant/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fourColors = []colorspace.Color{{}, {R: 10}, {G: 10}, {B: 10}}

// TestBuild_FourColorExample maps the {black, red, green} cluster to its mean
// (3,3,0) and keeps blue as a singleton.
func TestBuild_FourColorExample(t *testing.T) {
	p, err := palette.Build(fourColors, [][]int{{0, 1, 2}, {3}})
	require.NoError(t, err)

	assert.Equal(t, 2, p.Len())
	assert.Equal(t, 4, p.Colors())
	assert.Equal(t, []colorspace.Color{colorspace.RGB(3, 3, 0), colorspace.RGB(0, 0, 10)}, p.Representatives())

	for i, want := range []colorspace.Color{{R: 3, G: 3}, {R: 3, G: 3}, {R: 3, G: 3}, {B: 10}} {
		got, ok := p.Lookup(fourColors[i])
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
	ci, ok := p.Cluster(colorspace.RGB(0, 0, 10))
	require.True(t, ok)
	assert.Equal(t, 1, ci)

	_, ok = p.Lookup(colorspace.RGB(1, 1, 1))
	assert.False(t, ok)
	_, ok = p.Cluster(colorspace.RGB(1, 1, 1))
	assert.False(t, ok)
}

// TestBuild_Singletons checks that singleton clusters represent themselves.
func TestBuild_Singletons(t *testing.T) {
	p, err := palette.Build(fourColors, [][]int{{0}, {1}, {2}, {3}})
	require.NoError(t, err)
	for _, c := range fourColors {
		got, ok := p.Lookup(c)
		require.True(t, ok)
		assert.Equal(t, c, got)
	}
}

// TestBuild_Errors covers empty clusters, bad indices and repeated vertices.
func TestBuild_Errors(t *testing.T) {
	_, err := palette.Build(fourColors, [][]int{{0, 1}, {}, {2, 3}})
	assert.ErrorIs(t, err, colorspace.ErrEmptyCluster)

	_, err = palette.Build(fourColors, [][]int{{0, 4}})
	assert.ErrorIs(t, err, palette.ErrBadCluster)

	_, err = palette.Build(fourColors, [][]int{{0, 1}, {1, 2}})
	assert.ErrorIs(t, err, palette.ErrBadCluster)
}

// TestColorPalette drops duplicate representatives.
func TestColorPalette(t *testing.T) {
	verts := []colorspace.Color{{R: 0}, {R: 10}, {R: 4}, {R: 6}}
	// Both clusters average to (5,0,0).
	p, err := palette.Build(verts, [][]int{{0, 1}, {2, 3}})
	require.NoError(t, err)

	assert.Equal(t, 2, p.Len())
	assert.Equal(t, color.Palette{color.RGBA{R: 5, A: 255}}, p.ColorPalette())
}
