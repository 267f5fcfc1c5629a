// Package distinct defines options and sentinel errors for distinct color
// extraction.
package distinct

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mstquant/pixgrid"
)

// Sentinel errors for extraction.
var (
	// ErrEmptyImage is returned for a nil grid or a grid without pixels.
	// It wraps pixgrid.ErrEmptyImage, so either sentinel matches with errors.Is.
	ErrEmptyImage = fmt.Errorf("distinct: %w", pixgrid.ErrEmptyImage)

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("distinct: invalid option supplied")
)

// Option configures Extract via functional arguments.
type Option func(*Options)

// Options holds extraction parameters.
type Options struct {
	// Workers is the number of row bands scanned concurrently.
	// 1 scans serially.
	Workers int

	err error
}

// DefaultOptions returns a serial configuration (Workers = 1).
func DefaultOptions() Options {
	return Options{Workers: 1}
}

// WithWorkers sets the number of concurrent row bands.
//
//	n >= 1: use n bands (capped at the image height)
//	n < 1:  invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}
