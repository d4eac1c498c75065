package img2ascii

import (
	"errors"
	"fmt"
)

var (
	// ErrShortScanline reports a scanline with fewer samples than the image stride.
	ErrShortScanline = errors.New("scanline shorter than image stride")
	// ErrTooManyScanlines reports a scanline past the image height.
	ErrTooManyScanlines = errors.New("more scanlines than image height")
)

// Accumulator reduces the scanlines of one image onto a Canvas. It owns
// all per-image state, so a new Accumulator is created for every image.
type Accumulator struct {
	info    ImageInfo
	canvas  *Canvas
	lookup  ColumnLookup
	resizeY float64
	lastRow int
	rows    int
}

// NewAccumulator prepares a zeroed width x height canvas for an image
// described by info.
func NewAccumulator(info ImageInfo, width, height, maxCells int) (*Accumulator, error) {
	if err := info.Validate(); err != nil {
		return nil, err
	}
	canvas, err := NewCanvas(width, height, maxCells)
	if err != nil {
		return nil, err
	}

	a := &Accumulator{
		info:   info,
		canvas: canvas,
		lookup: BuildColumnLookup(info.Width, width, info.Components),
	}
	if info.Height > 1 {
		a.resizeY = float64(height-1) / float64(info.Height-1)
	}
	return a, nil
}

// targetRow maps source scanline s to its output row.
func (a *Accumulator) targetRow(s int) int {
	if a.info.Height == 1 {
		// A lone scanline backfills every row.
		return a.canvas.height - 1
	}
	y := round(a.resizeY * float64(s))
	if y >= a.canvas.height {
		y = a.canvas.height - 1
	}
	return y
}

// AddScanline accumulates the next scanline. Every output row from the
// previously reached row up to and including this scanline's row receives
// the scanline's intensities once, so rows skipped by an upscaling ratio
// are filled and the boundary row is shared with the previous scanline.
func (a *Accumulator) AddScanline(line []byte) error {
	if a.rows >= a.info.Height {
		return fmt.Errorf("scanline %d: %w", a.rows, ErrTooManyScanlines)
	}
	if len(line) < a.info.Stride() {
		return fmt.Errorf("scanline %d has %d samples, want %d: %w",
			a.rows, len(line), a.info.Stride(), ErrShortScanline)
	}

	y := a.targetRow(a.rows)
	for row := a.lastRow; row <= y; row++ {
		a.canvas.addRow(row, line, a.lookup, a.info.Components)
	}
	a.lastRow = y
	a.rows++
	return nil
}

// Rows returns the number of scanlines accumulated so far.
func (a *Accumulator) Rows() int {
	return a.rows
}

// Done reports whether every scanline of the image has been accumulated.
func (a *Accumulator) Done() bool {
	return a.rows == a.info.Height
}

// Canvas returns the accumulation buffer.
func (a *Accumulator) Canvas() *Canvas {
	return a.canvas
}
