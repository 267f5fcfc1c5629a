package pixgrid

import (
	"image"
	"image/color"

	"github.com/katalvlaran/mstquant/colorspace"
	"golang.org/x/image/draw"
)

// FromImage converts img into a Grid whose origin is img.Bounds().Min.
// NRGBA images and opaque RGBA pixels are read straight from Pix;
// translucent RGBA pixels are un-premultiplied and any other image is first
// drawn into an NRGBA buffer. Alpha is dropped: translucent pixels keep their
// straight RGB.
// Returns ErrEmptyImage for a nil or zero-area image.
// Complexity: O(W×H).
func FromImage(img image.Image) (*Grid, error) {
	if img == nil {
		return nil, ErrEmptyImage
	}
	b := img.Bounds()
	g, err := New(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}

	switch src := img.(type) {
	case *image.NRGBA:
		g.fillNRGBA(src)
	case *image.RGBA:
		g.fillRGBA(src)
	default:
		dst := image.NewNRGBA(image.Rect(0, 0, g.Width, g.Height))
		draw.Copy(dst, image.Point{}, img, b, draw.Src, nil)
		g.fillNRGBA(dst)
	}

	return g, nil
}

// fillNRGBA copies the straight RGB channels of src into g.
func (g *Grid) fillNRGBA(src *image.NRGBA) {
	b := src.Bounds()
	for y := 0; y < g.Height; y++ {
		off := src.PixOffset(b.Min.X, b.Min.Y+y)
		row := g.Row(y)
		for x := range row {
			p := src.Pix[off+4*x : off+4*x+3 : off+4*x+3]
			row[x] = colorspace.Color{R: p[0], G: p[1], B: p[2]}
		}
	}
}

// fillRGBA copies src into g, un-premultiplying pixels with alpha < 0xff.
func (g *Grid) fillRGBA(src *image.RGBA) {
	b := src.Bounds()
	for y := 0; y < g.Height; y++ {
		off := src.PixOffset(b.Min.X, b.Min.Y+y)
		row := g.Row(y)
		for x := range row {
			p := src.Pix[off+4*x : off+4*x+4 : off+4*x+4]
			if p[3] == 0xff {
				row[x] = colorspace.Color{R: p[0], G: p[1], B: p[2]}
				continue
			}
			row[x] = colorspace.FromColor(color.RGBA{R: p[0], G: p[1], B: p[2], A: p[3]})
		}
	}
}

// Image returns g as an opaque *image.RGBA anchored at (0,0).
// Complexity: O(W×H).
func (g *Grid) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	for i, c := range g.Pix {
		img.Pix[4*i+0] = c.R
		img.Pix[4*i+1] = c.G
		img.Pix[4*i+2] = c.B
		img.Pix[4*i+3] = 0xff
	}

	return img
}

// Paletted returns g as an *image.Paletted over p. Every pixel takes the index
// p.Index returns for it, so colors absent from p map to their nearest entry.
// p must hold at most 256 colors.
func (g *Grid) Paletted(p color.Palette) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, g.Width, g.Height), p)
	cache := make(map[colorspace.Color]uint8, len(p))
	for i, c := range g.Pix {
		idx, ok := cache[c]
		if !ok {
			idx = uint8(p.Index(c))
			cache[c] = idx
		}
		img.Pix[i] = idx
	}

	return img
}
