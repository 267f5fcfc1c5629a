package colorspace

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrEmptyCluster indicates that a mean was requested over zero colors.
// Clusters are never empty by construction, so this signals an internal bug.
var ErrEmptyCluster = errors.New("colorspace: cluster has no colors")

// Levels is the number of distinct 24-bit colors (2^24).
const Levels = 1 << 24

// Color is an exact 8-bit RGB triple. The zero value is black.
type Color struct {
	R, G, B uint8
}

// RGB builds a Color from its components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Pack returns the 24-bit key R<<16 | G<<8 | B.
// Complexity: O(1).
func (c Color) Pack() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Unpack is the inverse of Pack. Bits above 24 are ignored.
// Complexity: O(1).
func Unpack(key uint32) Color {
	return Color{R: uint8(key >> 16), G: uint8(key >> 8), B: uint8(key)}
}

// FromColor converts any color.Color to its straight (non-premultiplied)
// 8-bit RGB form. Alpha is dropped.
func FromColor(c color.Color) Color {
	if cc, ok := c.(Color); ok {
		return cc
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)

	return Color{R: n.R, G: n.G, B: n.B}
}

// RGBA implements color.Color; Colors are always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// Opaque returns c as an opaque color.RGBA.
func (c Color) Opaque() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Colorful returns c as a go-colorful color with components in [0,1].
func (c Color) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// Hex returns the "#rrggbb" form of c.
func (c Color) Hex() string {
	return c.Colorful().Hex()
}

// String formats c as "(r,g,b)".
func (c Color) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.R, c.G, c.B)
}

// SquaredDistance returns Δr² + Δg² + Δb² exactly.
// Complexity: O(1).
func SquaredDistance(a, b Color) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)

	return dr*dr + dg*dg + db*db
}

// Distance returns the Euclidean distance between a and b in RGB space.
// It is zero only for equal colors and at most 255·√3.
// Complexity: O(1).
func Distance(a, b Color) float64 {
	return math.Sqrt(float64(SquaredDistance(a, b)))
}

// Mean returns the component-wise integer mean of colors, truncating each
// component. Returns ErrEmptyCluster for an empty slice.
// Complexity: O(n).
func Mean(colors []Color) (Color, error) {
	n := uint64(len(colors))
	if n == 0 {
		return Color{}, ErrEmptyCluster
	}
	var r, g, b uint64
	for _, c := range colors {
		r += uint64(c.R)
		g += uint64(c.G)
		b += uint64(c.B)
	}

	return Color{R: uint8(r / n), G: uint8(g / n), B: uint8(b / n)}, nil
}
