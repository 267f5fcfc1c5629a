// Package cluster defines the partition result and sentinel errors for
// splitting a spanning tree into k clusters.
package cluster

import (
	"errors"

	"github.com/katalvlaran/mstquant/mst"
)

// ErrInvalidClusterCount is returned when k < 1.
var ErrInvalidClusterCount = errors.New("cluster: cluster count must be at least 1")

// ErrEdgeIndex is returned when an edge references a vertex outside [0, n).
var ErrEdgeIndex = errors.New("cluster: edge endpoint out of range")

// CutWeight is the sentinel weight of a cut edge. Tree edges between distinct
// colors always weigh more than zero, so the sentinel cannot be mistaken for
// a live edge.
const CutWeight = 0

// Partition is the outcome of cutting a tree into clusters.
//
// Fields:
//
//	Clusters: disjoint, non-empty lists of vertex indices whose union is
//	          every vertex; each list is in BFS visit order and the lists
//	          are ordered by their lowest vertex index.
//	Edges:    the tree edges sorted by ascending original weight, with the
//	          Cuts heaviest ones set to CutWeight.
//	Cuts:     number of edges cut, min(k-1, len(Edges)).
type Partition struct {
	Clusters [][]int
	Edges    []mst.Edge
	Cuts     int
}

// Len returns the number of clusters.
func (p *Partition) Len() int { return len(p.Clusters) }

// Sizes returns the member count of every cluster, in cluster order.
func (p *Partition) Sizes() []int {
	sizes := make([]int, len(p.Clusters))
	for i, c := range p.Clusters {
		sizes[i] = len(c)
	}

	return sizes
}

// Labels returns, for each of the n vertices, the index of its cluster.
func (p *Partition) Labels(n int) []int {
	labels := make([]int, n)
	for ci, members := range p.Clusters {
		for _, v := range members {
			labels[v] = ci
		}
	}

	return labels
}
