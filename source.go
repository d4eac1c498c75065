package img2ascii

import (
	"fmt"
	"io"
)

// ImageInfo describes a decoded raster: its dimensions and the number of
// interleaved 8-bit samples per pixel.
type ImageInfo struct {
	Width      int
	Height     int
	Components int
}

// Stride returns the number of samples in one scanline.
func (i ImageInfo) Stride() int {
	return i.Width * i.Components
}

// Validate reports whether the dimensions are usable.
func (i ImageInfo) Validate() error {
	if i.Width < 1 || i.Height < 1 || i.Components < 1 {
		return fmt.Errorf("image %dx%d with %d components: %w",
			i.Width, i.Height, i.Components, ErrInvalidSize)
	}
	return nil
}

// ScanlineReader is a single forward pass over a decoded image, top to
// bottom. ReadScanline returns io.EOF once all Info().Height scanlines have
// been read. The returned slice is only valid until the next call.
type ScanlineReader interface {
	Info() ImageInfo
	ReadScanline() ([]byte, error)
}

// RawSource serves scanlines from an in-memory, row-major sample buffer.
type RawSource struct {
	info ImageInfo
	data []byte
	next int
}

// NewRawSource wraps data, which must hold info.Height scanlines of
// info.Stride() samples each.
func NewRawSource(info ImageInfo, data []byte) (*RawSource, error) {
	if err := info.Validate(); err != nil {
		return nil, err
	}
	if len(data) < info.Stride()*info.Height {
		return nil, fmt.Errorf("raw image has %d samples, want %d: %w",
			len(data), info.Stride()*info.Height, ErrShortImage)
	}
	return &RawSource{info: info, data: data}, nil
}

// Info implements ScanlineReader.
func (r *RawSource) Info() ImageInfo {
	return r.info
}

// ReadScanline implements ScanlineReader.
func (r *RawSource) ReadScanline() ([]byte, error) {
	if r.next >= r.info.Height {
		return nil, io.EOF
	}
	stride := r.info.Stride()
	line := r.data[r.next*stride : (r.next+1)*stride]
	r.next++
	return line, nil
}
