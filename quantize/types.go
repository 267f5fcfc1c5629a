// Package quantize defines the pipeline result, diagnostics, observer hook,
// options, and the error kinds a quantization request can fail with.
package quantize

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/mstquant/cluster"
	"github.com/katalvlaran/mstquant/colorspace"
	"github.com/katalvlaran/mstquant/palette"
	"github.com/katalvlaran/mstquant/pixgrid"
)

// Error kinds of a quantization request. Stage errors are returned wrapped;
// match them with errors.Is.
var (
	// ErrEmptyImage: the image has no pixels (hence no distinct colors).
	ErrEmptyImage = pixgrid.ErrEmptyImage
	// ErrInvalidClusterCount: k < 1.
	ErrInvalidClusterCount = cluster.ErrInvalidClusterCount
	// ErrEmptyCluster: a cluster came out of partitioning with no members.
	ErrEmptyCluster = colorspace.ErrEmptyCluster
	// ErrUnmappedColor: a pixel color has no palette entry.
	ErrUnmappedColor = errors.New("quantize: pixel color missing from palette")
	// ErrOptionViolation: an invalid Option was supplied.
	ErrOptionViolation = errors.New("quantize: invalid option supplied")
)

// Stage names one step of the pipeline.
type Stage string

// Pipeline stages, in execution order.
const (
	StageExtract   Stage = "extract"
	StageMST       Stage = "mst"
	StagePartition Stage = "partition"
	StagePalette   Stage = "palette"
	StageRemap     Stage = "remap"
)

// Stages lists every Stage in execution order.
var Stages = []Stage{StageExtract, StageMST, StagePartition, StagePalette, StageRemap}

// Stats carries the diagnostics of one request. None of it affects the output.
type Stats struct {
	Width, Height  int
	Pixels         int
	DistinctColors int
	Clusters       int
	Cuts           int
	MSTWeight      float64
}

// Result is the outcome of Run.
type Result struct {
	// Image is the quantized grid, same size as the input.
	Image *pixgrid.Grid
	// Palette maps every distinct input color to its representative.
	Palette *palette.Palette
	Stats   Stats
}

// Observer receives timing and diagnostics from Run. Implementations must be
// safe to call from the goroutine running the pipeline.
type Observer interface {
	ObserveStage(stage Stage, d time.Duration)
	ObserveStats(s Stats)
}

type nopObserver struct{}

func (nopObserver) ObserveStage(Stage, time.Duration) {}
func (nopObserver) ObserveStats(Stats)                {}

// Option configures Run and Remap via functional arguments.
type Option func(*Options)

// Options holds pipeline parameters.
type Options struct {
	// Workers bounds the goroutines used by pixel scans and the MST relax
	// step. 1 runs everything serially.
	Workers int

	// Observer is notified after every stage and once with the final Stats.
	Observer Observer

	err error
}

// DefaultOptions returns a serial, unobserved configuration.
func DefaultOptions() Options {
	return Options{
		Workers:  1,
		Observer: nopObserver{},
	}
}

// WithWorkers sets the worker count; n < 1 → ErrOptionViolation.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithObserver registers obs; nil is ignored.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		if obs != nil {
			o.Observer = obs
		}
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
