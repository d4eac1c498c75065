package img2ascii

import (
	"errors"
	"fmt"
	"io"
	"log"
)

// ErrShortImage reports a source that ended before its last scanline.
var ErrShortImage = errors.New("image ended before its last scanline")

// Converter turns decoded images into ASCII art. Its configuration is
// fixed at construction and it keeps no per-image state, so one Converter
// can convert any number of images.
type Converter struct {
	palette  Palette
	size     Size
	render   RenderOptions
	maxCells int
	logger   *log.Logger
}

// Option is a functional option for configuring a Converter.
type Option func(*Converter)

// NewConverter creates a Converter with the given options.
// Default values: DefaultPalette(), width DefaultWidth with derived height,
// no flips, no inversion, DefaultMaxCells, no logging.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		palette:  DefaultPalette(),
		size:     Size{Mode: SizeDefault},
		maxCells: DefaultMaxCells,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithPalette sets the character palette.
func WithPalette(p Palette) Option {
	return func(c *Converter) {
		c.palette = p
	}
}

// WithSize sets the requested output size.
func WithSize(size Size) Option {
	return func(c *Converter) {
		c.size = size
	}
}

// WithInvert selects inverted palette order, for dark backgrounds.
func WithInvert(invert bool) Option {
	return func(c *Converter) {
		c.render.Invert = invert
	}
}

// WithFlipX mirrors the output horizontally.
func WithFlipX(flip bool) Option {
	return func(c *Converter) {
		c.render.FlipX = flip
	}
}

// WithFlipY mirrors the output vertically.
func WithFlipY(flip bool) Option {
	return func(c *Converter) {
		c.render.FlipY = flip
	}
}

// WithMaxCells bounds the canvas size; larger outputs fail with
// ErrCanvasTooLarge.
func WithMaxCells(n int) Option {
	return func(c *Converter) {
		c.maxCells = n
	}
}

// WithLogger enables diagnostic output.
func WithLogger(l *log.Logger) Option {
	return func(c *Converter) {
		c.logger = l
	}
}

// Palette returns the configured palette.
func (c *Converter) Palette() Palette {
	return c.palette
}

// RenderOptions returns the configured orientation and tone.
func (c *Converter) RenderOptions() RenderOptions {
	return c.render
}

// Accumulate resolves the output size for r, streams all of its scanlines
// through an Accumulator and returns the normalized canvas.
func (c *Converter) Accumulate(r ScanlineReader) (*Canvas, error) {
	info := r.Info()
	if err := info.Validate(); err != nil {
		return nil, err
	}
	width, height, err := ResolveSize(info.Width, info.Height, c.size)
	if err != nil {
		return nil, err
	}
	c.logInfo(info, width, height)

	acc, err := NewAccumulator(info, width, height, c.maxCells)
	if err != nil {
		return nil, err
	}
	for !acc.Done() {
		line, err := r.ReadScanline()
		if err == io.EOF {
			return nil, fmt.Errorf("read %d of %d scanlines: %w",
				acc.Rows(), info.Height, ErrShortImage)
		}
		if err != nil {
			return nil, fmt.Errorf("reading scanline %d: %w", acc.Rows(), err)
		}
		if err := acc.AddScanline(line); err != nil {
			return nil, err
		}
	}

	canvas := acc.Canvas()
	canvas.Normalize()
	return canvas, nil
}

// Convert writes the ASCII rendition of one image to w.
func (c *Converter) Convert(r ScanlineReader, w io.Writer) error {
	canvas, err := c.Accumulate(r)
	if err != nil {
		return err
	}
	return Render(w, canvas, c.palette, c.render)
}

// ConvertToLines returns the ASCII rendition of one image as lines.
func (c *Converter) ConvertToLines(r ScanlineReader) ([]string, error) {
	canvas, err := c.Accumulate(r)
	if err != nil {
		return nil, err
	}
	return RenderLines(canvas, c.palette, c.render), nil
}

func (c *Converter) logInfo(info ImageInfo, width, height int) {
	if c.logger == nil {
		return
	}
	c.logger.Printf("Source width: %d", info.Width)
	c.logger.Printf("Source height: %d", info.Height)
	c.logger.Printf("Source color components: %d", info.Components)
	c.logger.Printf("Output width: %d", width)
	c.logger.Printf("Output height: %d", height)
	c.logger.Printf("Output palette (%d chars): '%s'\n",
		c.palette.Len(), c.palette)
}
