package img2ascii

import (
	"errors"
	"fmt"
)

// DefaultMaxCells bounds the number of cells a Canvas may allocate.
const DefaultMaxCells = 1 << 24

// ErrCanvasTooLarge reports an output larger than the canvas cell limit.
var ErrCanvasTooLarge = errors.New("not enough memory for given output dimension")

// Canvas is the per-image accumulation buffer: width*height intensities
// plus one contribution count per row. Intensities are sums until
// Normalize turns them into averages.
type Canvas struct {
	width  int
	height int
	pixels []float64
	counts []int
}

// NewCanvas allocates a zeroed canvas. maxCells <= 0 selects
// DefaultMaxCells.
func NewCanvas(width, height, maxCells int) (*Canvas, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("canvas %dx%d: %w", width, height, ErrInvalidSize)
	}
	if maxCells <= 0 {
		maxCells = DefaultMaxCells
	}
	if width > maxCells/height {
		return nil, fmt.Errorf("canvas %dx%d exceeds %d cells: %w",
			width, height, maxCells, ErrCanvasTooLarge)
	}
	return &Canvas{
		width:  width,
		height: height,
		pixels: make([]float64, width*height),
		counts: make([]int, height),
	}, nil
}

// Width returns the number of columns.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the number of rows.
func (c *Canvas) Height() int {
	return c.height
}

// At returns the intensity stored at (x, y).
func (c *Canvas) At(x, y int) float64 {
	return c.pixels[y*c.width+x]
}

// Row returns the intensities of row y. The slice aliases the canvas.
func (c *Canvas) Row(y int) []float64 {
	return c.pixels[y*c.width : (y+1)*c.width]
}

// Count returns the number of scanlines accumulated into row y.
func (c *Canvas) Count(y int) int {
	return c.counts[y]
}

// addRow adds one scanline's cell intensities into row y.
func (c *Canvas) addRow(y int, line []byte, lookup ColumnLookup, components int) {
	row := c.Row(y)
	for x, offset := range lookup {
		row[x] += intensity(line[offset : offset+components])
	}
	c.counts[y]++
}

// Normalize divides every row by its contribution count. Rows nothing was
// accumulated into keep their zero intensities.
func (c *Canvas) Normalize() {
	for y := 0; y < c.height; y++ {
		n := c.counts[y]
		if n == 0 {
			continue
		}
		row := c.Row(y)
		for x := range row {
			row[x] /= float64(n)
		}
	}
}

// intensity averages the 8-bit samples of one pixel into [0,1].
func intensity(samples []byte) float64 {
	var v float64
	for _, s := range samples {
		v += float64(s)
	}
	return v / (255 * float64(len(samples)))
}
