// Package mst builds the minimum spanning tree of the complete graph whose
// vertices are the distinct colors of an image and whose edge weights are
// RGB Euclidean distances.
//
// The graph is never materialized. Prim's algorithm runs over a dense key
// array in O(V²) time and O(V) memory, which beats any heap-based variant on
// a complete graph.
package mst

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mstquant/colorspace"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

// builder encapsulates mutable Prim state.
type builder struct {
	verts  []colorspace.Color
	key    []float64 // best known connection cost to the tree
	parent []int
	inTree []bool
	chunks [][2]int // index ranges, one per worker

	// Per-range argmin results, reused across rounds.
	best    []int
	bestKey []float64
}

// Prim computes the minimum spanning tree over vertices.
//
// Error Conditions:
//   - ErrEmptyVertexSet  : len(vertices) == 0.
//   - ErrDuplicateColor  : a color appears more than once.
//   - ErrOptionViolation : an invalid Option was supplied.
//
// Steps:
//  1. key[0] = 0, every other key = +Inf, parent[0] = -1.
//  2. Repeat V times: add the not-yet-added vertex u with the smallest key
//     (ties go to the lowest index), then for every remaining v, if
//     Distance(u, v) < key[v], set key[v] and parent[v] = u.
//  3. Emit Edge{From: i, To: parent[i]} for i = 1..V-1 in ascending order.
//
// Step 2's relax and the following argmin are fused into one pass. With
// WithWorkers(n) that pass is split into index ranges whose local minima are
// reduced in index order, so the tree is identical to the serial one.
//
// Complexity: O(V²) time, O(V) memory.
func Prim(vertices []colorspace.Color, opts ...Option) (*Tree, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := len(vertices)
	if n == 0 {
		return nil, ErrEmptyVertexSet
	}
	if err := checkDistinct(vertices); err != nil {
		return nil, err
	}
	if n == 1 {
		// Single-vertex MST: no edges, zero weight.
		return &Tree{Vertices: vertices, Edges: []Edge{}, Parent: []int{-1}}, nil
	}

	b := newBuilder(vertices, o.Workers)
	u := 0 // key[0] == 0 is the unique minimum before the first round
	for it := 0; it < n; it++ {
		b.inTree[u] = true
		if it == n-1 {
			break
		}
		u = b.relax(u)
	}

	edges := make([]Edge, 0, n-1)
	weights := make([]float64, 0, n-1)
	for i := 1; i < n; i++ {
		p := b.parent[i]
		w := colorspace.Distance(vertices[i], vertices[p])
		edges = append(edges, Edge{From: i, To: p, Weight: w})
		weights = append(weights, w)
	}

	return &Tree{
		Vertices: vertices,
		Edges:    edges,
		Parent:   b.parent,
		Total:    floats.Sum(weights),
	}, nil
}

// newBuilder initializes keys, parents, and worker ranges.
func newBuilder(vertices []colorspace.Color, workers int) *builder {
	n := len(vertices)
	b := &builder{
		verts:  vertices,
		key:    make([]float64, n),
		parent: make([]int, n),
		inTree: make([]bool, n),
	}
	for v := range b.key {
		b.key[v] = math.Inf(1)
		b.parent[v] = -1
	}
	b.key[0] = 0

	size := (n + workers - 1) / workers
	if size < MinParallelChunk {
		size = MinParallelChunk
	}
	for lo := 0; lo < n; lo += size {
		hi := lo + size
		if hi > n {
			hi = n
		}
		b.chunks = append(b.chunks, [2]int{lo, hi})
	}
	if len(b.chunks) > 1 {
		b.best = make([]int, len(b.chunks))
		b.bestKey = make([]float64, len(b.chunks))
	}

	return b
}

// relax updates the keys of all vertices outside the tree through u and
// returns the outside vertex with the smallest key.
func (b *builder) relax(u int) int {
	if len(b.chunks) == 1 {
		next, _ := b.relaxRange(u, 0, len(b.key))
		return next
	}

	best, bestKey := b.best, b.bestKey
	var eg errgroup.Group
	for i, c := range b.chunks {
		eg.Go(func() error {
			best[i], bestKey[i] = b.relaxRange(u, c[0], c[1])
			return nil
		})
	}
	_ = eg.Wait() // ranges are disjoint and cannot fail

	next, nextKey := -1, math.Inf(1)
	for i := range best {
		if best[i] >= 0 && (next < 0 || bestKey[i] < nextKey) {
			next, nextKey = best[i], bestKey[i]
		}
	}

	return next
}

// relaxRange is relax restricted to indices [lo, hi). It returns -1 when
// every vertex of the range is already in the tree.
func (b *builder) relaxRange(u, lo, hi int) (int, float64) {
	cu := b.verts[u]
	best, bestKey := -1, math.Inf(1)
	for v := lo; v < hi; v++ {
		if b.inTree[v] {
			continue
		}
		if d := colorspace.Distance(cu, b.verts[v]); d < b.key[v] {
			b.key[v] = d
			b.parent[v] = u
		}
		if best < 0 || b.key[v] < bestKey {
			best, bestKey = v, b.key[v]
		}
	}

	return best, bestKey
}

// checkDistinct rejects vertex sets that repeat a color.
func checkDistinct(vertices []colorspace.Color) error {
	seen := make(map[uint32]int, len(vertices))
	for i, c := range vertices {
		if j, dup := seen[c.Pack()]; dup {
			return fmt.Errorf("%w: %v at %d and %d", ErrDuplicateColor, c, j, i)
		}
		seen[c.Pack()] = i
	}

	return nil
}
