package mst

import (
	"sort"

	"github.com/katalvlaran/mstquant/colorspace"
	"gonum.org/v1/gonum/floats"
)

// Kruskal computes a minimum spanning tree over vertices by sorting all
// V·(V-1)/2 edges of the complete graph and joining components with a
// disjoint-set forest (path compression and union by rank).
//
// It materializes every edge, so it is only meant for small vertex sets and
// as an independent check on Prim. The returned edges are in acceptance
// order (ascending weight, ties by (From, To)); their total equals Prim's
// Tree.Total even when the trees differ on ties.
//
// Error Conditions:
//   - ErrEmptyVertexSet : len(vertices) == 0.
//   - ErrDuplicateColor : a color appears more than once.
//
// Complexity: O(V² log V) time, O(V²) memory.
func Kruskal(vertices []colorspace.Color) ([]Edge, float64, error) {
	n := len(vertices)
	if n == 0 {
		return nil, 0, ErrEmptyVertexSet
	}
	if err := checkDistinct(vertices); err != nil {
		return nil, 0, err
	}

	edges := make([]Edge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, Edge{From: i, To: j, Weight: colorspace.Distance(vertices[i], vertices[j])})
		}
	}
	// Generated in (From, To) order, so a stable sort keeps that order on ties.
	sort.SliceStable(edges, func(a, b int) bool {
		return edges[a].Weight < edges[b].Weight
	})

	parent := make([]int, n)
	rank := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	tree := make([]Edge, 0, n-1)
	weights := make([]float64, 0, n-1)
	for _, e := range edges {
		ru, rv := find(e.From), find(e.To)
		if ru == rv {
			continue
		}
		switch {
		case rank[ru] < rank[rv]:
			parent[ru] = rv
		case rank[ru] > rank[rv]:
			parent[rv] = ru
		default:
			parent[rv] = ru
			rank[ru]++
		}
		tree = append(tree, e)
		weights = append(weights, e.Weight)
		if len(tree) == n-1 {
			break
		}
	}

	return tree, floats.Sum(weights), nil
}
