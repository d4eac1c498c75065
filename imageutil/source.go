// Package imageutil adapts decoded images to img2ascii scanline readers
// and provides file decoding and tonal pre-adjustment.
package imageutil

import (
	"image"
	"image/color"
	"io"

	"golang.org/x/image/draw"

	"github.com/wbrown/img2ascii"
)

// ImageSource serves the rows of an image.Image as 8-bit scanlines.
// Grayscale images yield one component per pixel, everything else three
// (R, G, B); alpha is dropped.
type ImageSource struct {
	info  img2ascii.ImageInfo
	gray  *image.Gray
	nrgba *image.NRGBA
	line  []byte
	next  int
}

// NewImageSource converts img into a scanline reader. The image is copied,
// so later changes to img are not observed.
func NewImageSource(img image.Image) *ImageSource {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	rect := image.Rect(0, 0, width, height)

	s := &ImageSource{}
	if isGray(img.ColorModel()) {
		s.gray = image.NewGray(rect)
		draw.Copy(s.gray, image.Point{}, img, bounds, draw.Src, nil)
		s.info = img2ascii.ImageInfo{Width: width, Height: height, Components: 1}
		return s
	}

	s.nrgba = image.NewNRGBA(rect)
	draw.Copy(s.nrgba, image.Point{}, img, bounds, draw.Src, nil)
	s.info = img2ascii.ImageInfo{Width: width, Height: height, Components: 3}
	s.line = make([]byte, width*3)
	return s
}

func isGray(m color.Model) bool {
	return m == color.GrayModel || m == color.Gray16Model
}

// Info implements img2ascii.ScanlineReader.
func (s *ImageSource) Info() img2ascii.ImageInfo {
	return s.info
}

// ReadScanline implements img2ascii.ScanlineReader.
func (s *ImageSource) ReadScanline() ([]byte, error) {
	if s.next >= s.info.Height {
		return nil, io.EOF
	}
	y := s.next
	s.next++

	if s.gray != nil {
		off := y * s.gray.Stride
		return s.gray.Pix[off : off+s.info.Width], nil
	}

	row := s.nrgba.Pix[y*s.nrgba.Stride:]
	for x := 0; x < s.info.Width; x++ {
		copy(s.line[x*3:x*3+3], row[x*4:x*4+3])
	}
	return s.line, nil
}
