// Package pixgrid defines the rectangular pixel grid consumed and produced by
// the quantization pipeline, plus its sentinel errors.
package pixgrid

import (
	"errors"

	"github.com/katalvlaran/mstquant/colorspace"
)

// Sentinel errors for pixgrid operations.
var (
	// ErrEmptyImage indicates the grid has no rows, no columns, or no pixels.
	ErrEmptyImage = errors.New("pixgrid: image must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("pixgrid: all rows must have the same length")
	// ErrBadDimensions indicates a pixel buffer that does not match Width×Height.
	ErrBadDimensions = errors.New("pixgrid: pixel buffer does not match dimensions")
)

// Grid is a Width×Height image of exact 8-bit RGB colors stored row-major:
// the pixel at (x, y) lives at Pix[y*Width+x].
type Grid struct {
	Width, Height int
	Pix           []colorspace.Color
}
