// Package pixgrid treats an image as a rectangular grid of colorspace.Color
// cells. It is the only pixel layout the quantization core understands.
package pixgrid

import (
	"fmt"

	"github.com/katalvlaran/mstquant/colorspace"
)

// New allocates a black Width×Height grid.
// Returns ErrEmptyImage if either dimension is not positive.
// Complexity: O(W×H) time and memory.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrEmptyImage, width, height)
	}

	return &Grid{
		Width:  width,
		Height: height,
		Pix:    make([]colorspace.Color, width*height),
	}, nil
}

// FromPix wraps an existing row-major buffer without copying it.
// Returns ErrEmptyImage for non-positive dimensions and ErrBadDimensions when
// len(pix) != width*height.
func FromPix(width, height int, pix []colorspace.Color) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrEmptyImage, width, height)
	}
	if len(pix) != width*height {
		return nil, fmt.Errorf("%w: %d pixels for %dx%d", ErrBadDimensions, len(pix), width, height)
	}

	return &Grid{Width: width, Height: height, Pix: pix}, nil
}

// From2D constructs a Grid from a non-empty, rectangular [row][column] slice.
// It deep-copies the input.
// Returns ErrEmptyImage if rows has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func From2D(rows [][]colorspace.Color) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyImage
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	pix := make([]colorspace.Color, 0, w*h)
	for _, row := range rows {
		pix = append(pix, row...)
	}

	return &Grid{Width: w, Height: h, Pix: pix}, nil
}

// Validate reports whether g is a usable, non-empty grid.
func (g *Grid) Validate() error {
	if g == nil || g.Width <= 0 || g.Height <= 0 {
		return ErrEmptyImage
	}
	if len(g.Pix) != g.Width*g.Height {
		return ErrBadDimensions
	}

	return nil
}

// Len returns the number of pixels.
func (g *Grid) Len() int {
	return g.Width * g.Height
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the color at (x,y). It panics if (x,y) is out of bounds.
func (g *Grid) At(x, y int) colorspace.Color {
	return g.Pix[g.index(x, y)]
}

// Set stores c at (x,y). It panics if (x,y) is out of bounds.
func (g *Grid) Set(x, y int, c colorspace.Color) {
	g.Pix[g.index(x, y)] = c
}

// Row returns the y-th row as a subslice of Pix (shared, not copied).
func (g *Grid) Row(y int) []colorspace.Color {
	return g.Pix[y*g.Width : (y+1)*g.Width]
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	pix := make([]colorspace.Color, len(g.Pix))
	copy(pix, g.Pix)

	return &Grid{Width: g.Width, Height: g.Height, Pix: pix}
}

// SameSize reports whether g and o have identical dimensions.
func (g *Grid) SameSize(o *Grid) bool {
	return o != nil && g.Width == o.Width && g.Height == o.Height
}

// index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) index(x, y int) int {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("pixgrid: (%d,%d) out of bounds %dx%d", x, y, g.Width, g.Height))
	}

	return y*g.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}

// Band is a half-open row range [Y0, Y1).
type Band struct {
	Y0, Y1 int
}

// Bands splits the rows into at most n contiguous, non-empty bands of
// near-equal height, in top-to-bottom order. n < 1 is treated as 1.
func (g *Grid) Bands(n int) []Band {
	if n < 1 {
		n = 1
	}
	if n > g.Height {
		n = g.Height
	}
	bands := make([]Band, 0, n)
	base, extra := g.Height/n, g.Height%n
	y := 0
	for i := 0; i < n; i++ {
		h := base
		if i < extra {
			h++
		}
		bands = append(bands, Band{Y0: y, Y1: y + h})
		y += h
	}

	return bands
}
