// Package cluster splits a minimum spanning tree into k connected components
// by cutting its (k-1) heaviest edges. Each component is one color cluster.
//
// Cutting k-1 edges of a tree on V vertices always leaves exactly k
// components, so for 1 ≤ k ≤ V the partition has exactly k clusters. A k
// larger than V is capped: every edge is cut and every vertex is a singleton.
package cluster

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/mstquant/mst"
	"gonum.org/v1/gonum/stat"
)

// Split cuts tree into k clusters. The tree itself is not modified.
// Returns mst.ErrEmptyVertexSet for a nil tree and ErrInvalidClusterCount
// if k < 1.
// Complexity: O(V log V) for the sort plus O(V) for adjacency and BFS.
func Split(tree *mst.Tree, k int) (*Partition, error) {
	if tree == nil {
		return nil, mst.ErrEmptyVertexSet
	}
	return SplitEdges(len(tree.Vertices), tree.Edges, k)
}

// SplitEdges cuts a tree given as n vertices and its edge list.
//
// Steps:
//  1. Copy edges and stable-sort them by ascending weight.
//  2. Set the last min(k-1, len(edges)) weights to CutWeight.
//  3. Build an undirected adjacency list from the live edges; every vertex
//     gets a slot, isolated ones keep an empty neighbor list.
//  4. BFS from the lowest unvisited vertex until all vertices are visited;
//     each BFS tree is one cluster.
//
// Returns ErrInvalidClusterCount if k < 1 and ErrEdgeIndex if an edge
// endpoint is outside [0, n).
func SplitEdges(n int, edges []mst.Edge, k int) (*Partition, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidClusterCount, k)
	}

	sorted := make([]mst.Edge, len(edges))
	copy(sorted, edges)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight < sorted[j].Weight
	})

	cuts := k - 1
	if cuts > len(sorted) {
		cuts = len(sorted)
	}
	for i := len(sorted) - cuts; i < len(sorted); i++ {
		sorted[i].Weight = CutWeight
	}

	adj, err := Adjacency(n, sorted)
	if err != nil {
		return nil, err
	}

	return &Partition{
		Clusters: Components(adj),
		Edges:    sorted,
		Cuts:     cuts,
	}, nil
}

// Adjacency builds the undirected neighbor lists of n vertices from every
// edge whose weight is not CutWeight. The endpoints of cut edges still get
// their (possibly empty) slot, as does every other vertex.
// Returns ErrEdgeIndex for an endpoint outside [0, n).
// Complexity: O(n + len(edges)).
func Adjacency(n int, edges []mst.Edge) ([][]int, error) {
	adj := make([][]int, n)
	for _, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return nil, fmt.Errorf("%w: %d-%d with %d vertices", ErrEdgeIndex, e.From, e.To, n)
		}
		if e.Weight == CutWeight {
			continue
		}
		adj[e.From] = append(adj[e.From], e.To)
		adj[e.To] = append(adj[e.To], e.From)
	}

	return adj, nil
}

// Components returns the connected components of adj, found by repeated BFS
// from the lowest unvisited vertex. Every vertex appears in exactly one
// component.
// Complexity: O(V + E) time, O(V) memory.
func Components(adj [][]int) [][]int {
	seen := make([]bool, len(adj))
	queue := make([]int, 0, len(adj))
	var comps [][]int

	for v0 := range adj {
		if seen[v0] {
			continue
		}
		// BFS to collect component
		queue = append(queue[:0], v0)
		seen[v0] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, w := range adj[queue[qi]] {
				if !seen[w] {
					seen[w] = true
					queue = append(queue, w)
				}
			}
		}
		comp := make([]int, len(queue))
		copy(comp, queue)
		comps = append(comps, comp)
	}

	return comps
}

// LiveWeightStats returns the mean and sample standard deviation of the
// weights of the edges that survived the cut. Both are zero when no live
// edge remains.
func (p *Partition) LiveWeightStats() (mean, std float64) {
	live := len(p.Edges) - p.Cuts
	if live <= 0 {
		return 0, 0
	}
	weights := make([]float64, live)
	for i := range weights {
		weights[i] = p.Edges[i].Weight
	}
	if live == 1 {
		return weights[0], 0
	}

	return stat.MeanStdDev(weights, nil)
}
