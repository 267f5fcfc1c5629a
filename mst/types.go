// Package mst defines the spanning-tree types, options, and sentinel errors
// for the dense Prim builder.
package mst

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mstquant/colorspace"
	"github.com/katalvlaran/mstquant/pixgrid"
)

// Sentinel errors for MST construction.
var (
	// ErrEmptyVertexSet is returned when Prim receives no colors.
	// It wraps pixgrid.ErrEmptyImage: an empty vertex set means an empty image.
	ErrEmptyVertexSet = fmt.Errorf("mst: %w", pixgrid.ErrEmptyImage)

	// ErrDuplicateColor is returned when the vertex set lists a color twice.
	// Duplicates would produce zero-weight edges, which clash with the cut sentinel.
	ErrDuplicateColor = errors.New("mst: vertex set contains a duplicate color")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("mst: invalid option supplied")
)

// MinParallelChunk is the smallest index range handed to a worker. Vertex
// sets smaller than two chunks are always processed serially.
const MinParallelChunk = 2048

// Edge is a tree edge between two vertices, identified by their index in the
// vertex set. Weight is colorspace.Distance of the endpoints.
type Edge struct {
	From, To int
	Weight   float64
}

// Tree is a spanning tree of the complete distance graph over Vertices.
//
// Fields:
//
//	Vertices: the vertex set the indices refer to (not copied).
//	Edges:    len(Vertices)-1 edges; Edges[i-1] joins vertex i to Parent[i].
//	Parent:   Parent[0] == -1; Parent[i] is i's neighbor toward the root.
//	Total:    sum of all edge weights.
type Tree struct {
	Vertices []colorspace.Color
	Edges    []Edge
	Parent   []int
	Total    float64
}

// Source returns the color of e.From.
func (t *Tree) Source(e Edge) colorspace.Color { return t.Vertices[e.From] }

// Dest returns the color of e.To.
func (t *Tree) Dest(e Edge) colorspace.Color { return t.Vertices[e.To] }

// Option configures Prim via functional arguments.
type Option func(*Options)

// Options holds MST build parameters.
type Options struct {
	// Workers is the maximum number of goroutines used for each relax step.
	Workers int

	err error
}

// DefaultOptions returns a serial configuration (Workers = 1).
func DefaultOptions() Options {
	return Options{Workers: 1}
}

// WithWorkers sets the number of goroutines sharing each relax step.
// n < 1 is recorded and surfaced as ErrOptionViolation.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}
