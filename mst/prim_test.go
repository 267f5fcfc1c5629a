package mst_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/mstquant/colorspace"
	"github.com/katalvlaran/mstquant/mst"
	"github.com/katalvlaran/mstquant/pixgrid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// randomColors returns n distinct colors drawn with a fixed seed.
func randomColors(n int, seed int64) []colorspace.Color {
	r := rand.New(rand.NewSource(seed))
	seen := make(map[colorspace.Color]bool, n)
	out := make([]colorspace.Color, 0, n)
	for len(out) < n {
		c := colorspace.Unpack(uint32(r.Intn(colorspace.Levels)))
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}

	return out
}

// bruteForceMST enumerates every (V-1)-subset of the complete graph's edges,
// keeps those that form a spanning tree, and returns the minimum total weight.
// Only feasible for a handful of vertices.
func bruteForceMST(vertices []colorspace.Color) float64 {
	n := len(vertices)
	type pair struct{ u, v int }
	var all []pair
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			all = append(all, pair{u, v})
		}
	}

	best := math.Inf(1)
	// Iterate all bitmasks over the edge list with exactly n-1 bits set.
	for mask := 0; mask < 1<<len(all); mask++ {
		if popcount(mask) != n-1 {
			continue
		}
		parent := make([]int, n)
		for i := range parent {
			parent[i] = i
		}
		var find func(int) int
		find = func(x int) int {
			for parent[x] != x {
				x = parent[x]
			}
			return x
		}
		acyclic := true
		total := 0.0
		for i, e := range all {
			if mask&(1<<i) == 0 {
				continue
			}
			ru, rv := find(e.u), find(e.v)
			if ru == rv {
				acyclic = false
				break
			}
			parent[ru] = rv
			total += colorspace.Distance(vertices[e.u], vertices[e.v])
		}
		// n-1 acyclic edges over n vertices always span them.
		if acyclic && total < best {
			best = total
		}
	}

	return best
}

func popcount(x int) int {
	c := 0
	for ; x != 0; x &= x - 1 {
		c++
	}
	return c
}

// assertSpanningTree checks edge count, index ranges, weights, connectivity and Total.
func assertSpanningTree(t *testing.T, tree *mst.Tree) {
	t.Helper()
	n := len(tree.Vertices)
	require.Len(t, tree.Edges, n-1)

	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	find := func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	sum := 0.0
	for _, e := range tree.Edges {
		require.True(t, e.From >= 0 && e.From < n && e.To >= 0 && e.To < n)
		assert.Equal(t, colorspace.Distance(tree.Source(e), tree.Dest(e)), e.Weight)
		assert.Greater(t, e.Weight, 0.0)
		ru, rv := find(e.From), find(e.To)
		require.NotEqual(t, ru, rv, "edge %v closes a cycle", e)
		parent[ru] = rv
		sum += e.Weight
	}
	assert.InDelta(t, sum, tree.Total, 1e-9)
}

// TestPrim_FourColorExample runs the black/red/green/blue example: every
// primary sits at distance 10 from black and √200 from each other, so the
// MST is a star around black.
func TestPrim_FourColorExample(t *testing.T) {
	verts := []colorspace.Color{{}, {R: 10}, {G: 10}, {B: 10}}
	tree, err := mst.Prim(verts)
	require.NoError(t, err)

	assert.Equal(t, []mst.Edge{
		{From: 1, To: 0, Weight: 10},
		{From: 2, To: 0, Weight: 10},
		{From: 3, To: 0, Weight: 10},
	}, tree.Edges)
	assert.Equal(t, []int{-1, 0, 0, 0}, tree.Parent)
	assert.Equal(t, 30.0, tree.Total)
}

// TestPrim_SingleVertex verifies the trivial tree.
func TestPrim_SingleVertex(t *testing.T) {
	tree, err := mst.Prim([]colorspace.Color{colorspace.RGB(9, 9, 9)})
	require.NoError(t, err)
	assert.Empty(t, tree.Edges)
	assert.Zero(t, tree.Total)
	assert.Equal(t, []int{-1}, tree.Parent)
}

// TestPrim_Errors covers empty input, duplicates, and bad options.
func TestPrim_Errors(t *testing.T) {
	_, err := mst.Prim(nil)
	assert.ErrorIs(t, err, mst.ErrEmptyVertexSet)
	assert.ErrorIs(t, err, pixgrid.ErrEmptyImage)

	c := colorspace.RGB(1, 2, 3)
	_, err = mst.Prim([]colorspace.Color{c, {}, c})
	assert.ErrorIs(t, err, mst.ErrDuplicateColor)

	_, err = mst.Prim([]colorspace.Color{c}, mst.WithWorkers(-1))
	assert.ErrorIs(t, err, mst.ErrOptionViolation)
}

// TestPrim_MatchesBruteForce compares Prim's total against exhaustive
// enumeration on small random color sets (4 to 6 vertices).
func TestPrim_MatchesBruteForce(t *testing.T) {
	for n := 4; n <= 6; n++ {
		for seed := int64(0); seed < 5; seed++ {
			verts := randomColors(n, seed*31+int64(n))
			tree, err := mst.Prim(verts)
			require.NoError(t, err)
			assertSpanningTree(t, tree)
			assert.InDelta(t, bruteForceMST(verts), tree.Total, 1e-9, "n=%d seed=%d", n, seed)
		}
	}
}

// TestPrim_Deterministic ensures repeated runs produce identical trees.
func TestPrim_Deterministic(t *testing.T) {
	verts := randomColors(300, 99)
	a, err := mst.Prim(verts)
	require.NoError(t, err)
	b, err := mst.Prim(verts)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assertSpanningTree(t, a)
}

// TestPrim_TieBreakLowestIndex builds equidistant vertices so every selection
// is a tie; the lowest index must win each time.
func TestPrim_TieBreakLowestIndex(t *testing.T) {
	// A line of colors 5 apart: 0, 5, 10, 15 on the red axis, listed out of order.
	verts := []colorspace.Color{{R: 10}, {R: 5}, {R: 15}, {R: 0}}
	tree, err := mst.Prim(verts)
	require.NoError(t, err)

	// From 10: both 5 (index 1) and 15 (index 2) are at distance 5; index 1 is added first.
	assert.Equal(t, []int{-1, 0, 0, 1}, tree.Parent)
	assert.Equal(t, 15.0, tree.Total)
}

// TestPrim_ParallelMatchesSerial forces several worker ranges and compares
// against the serial tree.
func TestPrim_ParallelMatchesSerial(t *testing.T) {
	verts := randomColors(3*mst.MinParallelChunk+17, 5)

	serial, err := mst.Prim(verts)
	require.NoError(t, err)
	for _, workers := range []int{2, 3, 4, 16} {
		par, err := mst.Prim(verts, mst.WithWorkers(workers))
		require.NoError(t, err)

		assert.Equal(t, serial.Parent, par.Parent, "workers=%d", workers)
		assert.Equal(t, serial.Edges, par.Edges, "workers=%d", workers)
		assert.Equal(t, serial.Total, par.Total, "workers=%d", workers)
	}
}

// TestKruskal_MatchesPrim checks both algorithms agree on the total weight.
func TestKruskal_MatchesPrim(t *testing.T) {
	for _, n := range []int{1, 2, 5, 40, 200} {
		verts := randomColors(n, int64(n)*7)
		tree, err := mst.Prim(verts)
		require.NoError(t, err)
		edges, total, err := mst.Kruskal(verts)
		require.NoError(t, err)

		assert.Len(t, edges, n-1)
		assert.InDelta(t, tree.Total, total, 1e-6, "n=%d", n)
		for i := 1; i < len(edges); i++ {
			assert.LessOrEqual(t, edges[i-1].Weight, edges[i].Weight)
		}
	}

	_, _, err := mst.Kruskal(nil)
	assert.ErrorIs(t, err, mst.ErrEmptyVertexSet)
	_, _, err = mst.Kruskal([]colorspace.Color{{R: 1}, {R: 1}})
	assert.ErrorIs(t, err, mst.ErrDuplicateColor)
}
