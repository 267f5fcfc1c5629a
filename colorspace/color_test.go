package colorspace_test

import (
	"image/color"
	"math"
	"testing"

	"github.com/katalvlaran/mstquant/colorspace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPackUnpack verifies that Pack/Unpack round-trip and that Pack orders R, G, B
// from the most significant byte down.
func TestPackUnpack(t *testing.T) {
	c := colorspace.RGB(0x12, 0x34, 0x56)
	assert.Equal(t, uint32(0x123456), c.Pack())
	assert.Equal(t, c, colorspace.Unpack(c.Pack()))

	// Bits above 24 are ignored.
	assert.Equal(t, colorspace.RGB(0xff, 0, 1), colorspace.Unpack(0xabff0001))
	assert.Equal(t, uint32(colorspace.Levels-1), colorspace.RGB(255, 255, 255).Pack())
}

// TestDistance checks the Euclidean metric on axis-aligned and diagonal pairs.
func TestDistance(t *testing.T) {
	black := colorspace.RGB(0, 0, 0)

	assert.Equal(t, 0.0, colorspace.Distance(black, black))
	assert.Equal(t, 10.0, colorspace.Distance(black, colorspace.RGB(10, 0, 0)))
	assert.Equal(t, 5.0, colorspace.Distance(colorspace.RGB(3, 4, 0), black))
	assert.InDelta(t, math.Sqrt(200), colorspace.Distance(colorspace.RGB(10, 0, 0), colorspace.RGB(0, 10, 0)), 1e-12)

	white := colorspace.RGB(255, 255, 255)
	assert.InDelta(t, 255*math.Sqrt(3), colorspace.Distance(black, white), 1e-9)
	// Symmetric.
	assert.Equal(t, colorspace.Distance(white, black), colorspace.Distance(black, white))
	assert.Equal(t, 3*255*255, colorspace.SquaredDistance(black, white))
}

// TestMean verifies truncating integer means and the empty-cluster error.
func TestMean(t *testing.T) {
	m, err := colorspace.Mean([]colorspace.Color{{R: 0}, {R: 10}, {G: 10}, {B: 10}})
	require.NoError(t, err)
	// 10/4 = 2.5 truncates to 2 on every channel.
	assert.Equal(t, colorspace.RGB(2, 2, 2), m)

	m, err = colorspace.Mean([]colorspace.Color{{R: 255, G: 255, B: 255}, {R: 254, G: 255, B: 0}})
	require.NoError(t, err)
	assert.Equal(t, colorspace.RGB(254, 255, 127), m)

	single := colorspace.RGB(7, 8, 9)
	m, err = colorspace.Mean([]colorspace.Color{single})
	require.NoError(t, err)
	assert.Equal(t, single, m)

	_, err = colorspace.Mean(nil)
	assert.ErrorIs(t, err, colorspace.ErrEmptyCluster)
}

// TestConversions covers the image/color and go-colorful bridges.
func TestConversions(t *testing.T) {
	c := colorspace.RGB(255, 128, 0)

	assert.Equal(t, color.RGBA{R: 255, G: 128, B: 0, A: 255}, c.Opaque())
	assert.Equal(t, c, colorspace.FromColor(c.Opaque()))
	assert.Equal(t, c, colorspace.FromColor(c))
	// Translucent colors keep their straight RGB.
	assert.Equal(t, c, colorspace.FromColor(color.NRGBA{R: 255, G: 128, B: 0, A: 10}))

	assert.Equal(t, "#ff8000", c.Hex())
	assert.Equal(t, "(255,128,0)", c.String())
	assert.InDelta(t, 1.0, c.Colorful().R, 1e-12)
}
