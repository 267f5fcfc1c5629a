// Package palette turns a clustering of the distinct colors into the
// color → representative mapping used to rewrite an image. The representative
// of a cluster is the truncating integer mean of its member colors.
package palette

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/katalvlaran/mstquant/colorspace"
)

// ErrBadCluster indicates a cluster lists a vertex index outside the vertex
// set or a vertex already claimed by another cluster.
var ErrBadCluster = errors.New("palette: malformed cluster")

// Palette maps every original distinct color to its cluster representative.
type Palette struct {
	reps  []colorspace.Color
	index map[uint32]int32 // packed original color → cluster
}

// Build computes one representative per cluster and maps every member color
// to it. clusters holds indices into vertices.
//
// Error Conditions:
//   - colorspace.ErrEmptyCluster : a cluster has no members.
//   - ErrBadCluster              : an index is out of range or repeated.
//
// Complexity: O(V) time and memory.
func Build(vertices []colorspace.Color, clusters [][]int) (*Palette, error) {
	p := &Palette{
		reps:  make([]colorspace.Color, 0, len(clusters)),
		index: make(map[uint32]int32, len(vertices)),
	}
	members := make([]colorspace.Color, 0)
	for ci, cl := range clusters {
		members = members[:0]
		for _, v := range cl {
			if v < 0 || v >= len(vertices) {
				return nil, fmt.Errorf("%w: cluster %d references vertex %d of %d", ErrBadCluster, ci, v, len(vertices))
			}
			key := vertices[v].Pack()
			if prev, dup := p.index[key]; dup {
				return nil, fmt.Errorf("%w: vertex %d in clusters %d and %d", ErrBadCluster, v, prev, ci)
			}
			p.index[key] = int32(ci)
			members = append(members, vertices[v])
		}
		rep, err := colorspace.Mean(members)
		if err != nil {
			return nil, fmt.Errorf("palette: cluster %d: %w", ci, err)
		}
		p.reps = append(p.reps, rep)
	}

	return p, nil
}

// Lookup returns the representative of c and whether c is mapped.
// Complexity: O(1) expected.
func (p *Palette) Lookup(c colorspace.Color) (colorspace.Color, bool) {
	ci, ok := p.index[c.Pack()]
	if !ok {
		return colorspace.Color{}, false
	}

	return p.reps[ci], true
}

// Cluster returns the cluster index of c and whether c is mapped.
func (p *Palette) Cluster(c colorspace.Color) (int, bool) {
	ci, ok := p.index[c.Pack()]
	return int(ci), ok
}

// Len returns the number of clusters (representatives).
func (p *Palette) Len() int { return len(p.reps) }

// Colors returns the number of original colors mapped.
func (p *Palette) Colors() int { return len(p.index) }

// Representatives returns a copy of the representatives, in cluster order.
// Two clusters may share a representative when their means coincide.
func (p *Palette) Representatives() []colorspace.Color {
	out := make([]colorspace.Color, len(p.reps))
	copy(out, p.reps)

	return out
}

// ColorPalette returns the distinct representatives as a color.Palette of
// opaque colors, in cluster order.
func (p *Palette) ColorPalette() color.Palette {
	out := make(color.Palette, 0, len(p.reps))
	seen := make(map[colorspace.Color]bool, len(p.reps))
	for _, c := range p.reps {
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c.Opaque())
	}

	return out
}
