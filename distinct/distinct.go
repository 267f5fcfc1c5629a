// Package distinct scans a pixel grid once and returns its deduplicated set
// of colors, the vertex set of the color graph.
//
// Colors are returned in first-occurrence order of a left-to-right,
// top-to-bottom scan. That order only matters for the determinism of later
// tie-breaking; each color appears exactly once regardless of how many
// pixels carry it.
//
// Membership is tracked in a 2^24-bit set indexed by the packed color
// (2 MiB), so every lookup is O(1) with no hashing.
package distinct

import (
	"fmt"

	"github.com/katalvlaran/mstquant/colorspace"
	"github.com/katalvlaran/mstquant/pixgrid"
	"golang.org/x/sync/errgroup"
)

// bitset is a fixed 2^24-bit membership set keyed by colorspace.Color.Pack.
type bitset []uint64

func newBitset() bitset {
	return make(bitset, colorspace.Levels/64)
}

// add inserts key and reports whether it was absent.
func (s bitset) add(key uint32) bool {
	w, m := key>>6, uint64(1)<<(key&63)
	if s[w]&m != 0 {
		return false
	}
	s[w] |= m

	return true
}

// Extract returns the distinct colors of g in scan order.
// Returns ErrEmptyImage for a nil or empty grid and ErrOptionViolation for
// bad options.
//
// With WithWorkers(n), n > 1, the rows are split into n bands; every band
// collects its own first occurrences concurrently, then the bands are merged
// top to bottom, which yields exactly the serial order.
//
// Complexity: O(W×H) time, O(V) output plus one bitset per band.
func Extract(g *pixgrid.Grid, opts ...Option) ([]colorspace.Color, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEmptyImage, err)
	}

	bands := g.Bands(o.Workers)
	if len(bands) == 1 {
		return scan(g, bands[0], newBitset(), nil), nil
	}

	// Each band is owned by one goroutine; partial[i] is written only by band i.
	partial := make([][]colorspace.Color, len(bands))
	var eg errgroup.Group
	for i, b := range bands {
		eg.Go(func() error {
			partial[i] = scan(g, b, newBitset(), nil)
			return nil
		})
	}
	_ = eg.Wait() // scans cannot fail

	seen := newBitset()
	out := make([]colorspace.Color, 0, len(partial[0]))
	for _, part := range partial {
		for _, c := range part {
			if seen.add(c.Pack()) {
				out = append(out, c)
			}
		}
	}

	return out, nil
}

// scan appends to out every color of rows [b.Y0, b.Y1) not yet in seen.
func scan(g *pixgrid.Grid, b pixgrid.Band, seen bitset, out []colorspace.Color) []colorspace.Color {
	for y := b.Y0; y < b.Y1; y++ {
		for _, c := range g.Row(y) {
			if seen.add(c.Pack()) {
				out = append(out, c)
			}
		}
	}

	return out
}

// Count returns the number of distinct colors in g without materializing them.
func Count(g *pixgrid.Grid) (int, error) {
	if err := g.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrEmptyImage, err)
	}
	seen := newBitset()
	n := 0
	for _, c := range g.Pix {
		if seen.add(c.Pack()) {
			n++
		}
	}

	return n, nil
}
