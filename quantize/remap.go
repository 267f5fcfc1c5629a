package quantize

import (
	"fmt"

	"github.com/katalvlaran/mstquant/palette"
	"github.com/katalvlaran/mstquant/pixgrid"
	"golang.org/x/sync/errgroup"
)

// Remap returns a new grid of g's size in which every pixel is replaced by
// its palette representative. g is not modified.
//
// Returns ErrUnmappedColor, naming the first offending pixel of the
// lowest failing band, if a color has no palette entry; that can only
// happen when the palette was built from a different image.
//
// Complexity: O(W×H); rows are split across Workers bands.
func Remap(g *pixgrid.Grid, p *palette.Palette, opts ...Option) (*pixgrid.Grid, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}

	out, err := pixgrid.New(g.Width, g.Height)
	if err != nil {
		return nil, err
	}

	bands := g.Bands(o.Workers)
	errs := make([]error, len(bands))
	var eg errgroup.Group
	for i, b := range bands {
		eg.Go(func() error {
			errs[i] = remapBand(g, out, p, b)
			return nil
		})
	}
	_ = eg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}

// remapBand rewrites rows [b.Y0, b.Y1) of dst. Each band owns its rows.
func remapBand(src, dst *pixgrid.Grid, p *palette.Palette, b pixgrid.Band) error {
	for y := b.Y0; y < b.Y1; y++ {
		in, out := src.Row(y), dst.Row(y)
		for x, c := range in {
			rep, ok := p.Lookup(c)
			if !ok {
				return fmt.Errorf("%w: %v at (%d,%d)", ErrUnmappedColor, c, x, y)
			}
			out[x] = rep
		}
	}

	return nil
}
