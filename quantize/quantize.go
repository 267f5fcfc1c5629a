// Package quantize runs the MST color quantization pipeline end to end:
//
//	grid → distinct colors → MST → k clusters → palette → quantized grid
//
// Each stage consumes only the previous stage's output and keeps no state
// between requests, so concurrent Run calls on different grids are safe.
package quantize

import (
	"fmt"
	"time"

	"github.com/katalvlaran/mstquant/cluster"
	"github.com/katalvlaran/mstquant/distinct"
	"github.com/katalvlaran/mstquant/mst"
	"github.com/katalvlaran/mstquant/palette"
	"github.com/katalvlaran/mstquant/pixgrid"
)

// Run quantizes g to at most k colors and returns the new grid, the palette,
// and diagnostics. g is not modified.
//
// Error Conditions (match with errors.Is):
//   - ErrInvalidClusterCount : k < 1.
//   - ErrEmptyImage          : g is nil or has no pixels.
//   - ErrEmptyCluster        : internal invariant violation in partitioning.
//   - ErrUnmappedColor       : internal invariant violation in the palette.
//   - ErrOptionViolation     : an invalid Option was supplied.
//
// k larger than the number of distinct colors is not an error: every color
// becomes its own cluster and the output equals the input.
//
// Complexity: O(W×H + V²) time, O(W×H + V) memory, V = distinct colors.
func Run(g *pixgrid.Grid, k int, opts ...Option) (*Result, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if k < 1 {
		return nil, fmt.Errorf("quantize: %w: got %d", ErrInvalidClusterCount, k)
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("quantize: %w", err)
	}

	obs := o.Observer
	stats := Stats{Width: g.Width, Height: g.Height, Pixels: g.Len()}
	mark := time.Now()
	lap := func(s Stage) {
		now := time.Now()
		obs.ObserveStage(s, now.Sub(mark))
		mark = now
	}

	vertices, err := distinct.Extract(g, distinct.WithWorkers(o.Workers))
	if err != nil {
		return nil, fmt.Errorf("quantize: %s: %w", StageExtract, err)
	}
	stats.DistinctColors = len(vertices)
	lap(StageExtract)

	tree, err := mst.Prim(vertices, mst.WithWorkers(o.Workers))
	if err != nil {
		return nil, fmt.Errorf("quantize: %s: %w", StageMST, err)
	}
	stats.MSTWeight = tree.Total
	lap(StageMST)

	part, err := cluster.Split(tree, k)
	if err != nil {
		return nil, fmt.Errorf("quantize: %s: %w", StagePartition, err)
	}
	stats.Clusters = part.Len()
	stats.Cuts = part.Cuts
	lap(StagePartition)

	pal, err := palette.Build(vertices, part.Clusters)
	if err != nil {
		return nil, fmt.Errorf("quantize: %s: %w", StagePalette, err)
	}
	lap(StagePalette)

	img, err := Remap(g, pal, WithWorkers(o.Workers))
	if err != nil {
		return nil, fmt.Errorf("quantize: %s: %w", StageRemap, err)
	}
	lap(StageRemap)

	obs.ObserveStats(stats)

	return &Result{Image: img, Palette: pal, Stats: stats}, nil
}
