package quantize

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/katalvlaran/mstquant/pixgrid"
)

// MaxPaletteColors is the largest palette an image.Paletted can index.
const MaxPaletteColors = 256

// Drawer adapts the pipeline to image/draw.Quantizer, so it can be plugged
// into gif.Options.Quantizer.
//
// The number of clusters is K, bounded by the free capacity of the palette
// passed to Quantize and by MaxPaletteColors. K <= 0 uses the whole free
// capacity.
type Drawer struct {
	K       int
	Workers int
}

var _ draw.Quantizer = Drawer{}

// Quantize appends the cluster representatives of m to p. On failure (for
// example an empty image) p is returned unchanged, as draw.Quantizer has no
// error channel.
func (d Drawer) Quantize(p color.Palette, m image.Image) color.Palette {
	room := cap(p) - len(p)
	if room <= 0 {
		room = MaxPaletteColors - len(p)
	}
	if room > MaxPaletteColors {
		room = MaxPaletteColors
	}
	if room <= 0 {
		return p
	}
	k := d.K
	if k <= 0 || k > room {
		k = room
	}
	workers := d.Workers
	if workers < 1 {
		workers = 1
	}

	g, err := pixgrid.FromImage(m)
	if err != nil {
		return p
	}
	res, err := Run(g, k, WithWorkers(workers))
	if err != nil {
		return p
	}

	return append(p, res.Palette.ColorPalette()...)
}
