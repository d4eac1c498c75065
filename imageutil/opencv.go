//go:build gocv

package imageutil

import (
	"fmt"
	"io"

	"gocv.io/x/gocv"

	"github.com/wbrown/img2ascii"
)

// OpenCVSource serves the rows of an image decoded by OpenCV. Pixels keep
// OpenCV's BGR order, which averaging into an intensity does not care
// about.
type OpenCVSource struct {
	mat  gocv.Mat
	info img2ascii.ImageInfo
	data []byte
	next int
}

// LoadOpenCV decodes path with gocv.IMRead. The caller must Close the
// returned source.
func LoadOpenCV(path string) (*OpenCVSource, error) {
	mat := gocv.IMRead(path, gocv.IMReadAnyColor)
	if mat.Empty() {
		return nil, fmt.Errorf("could not read image from %s", path)
	}
	if mat.Type() != gocv.MatTypeCV8U && mat.Type() != gocv.MatTypeCV8UC3 &&
		mat.Type() != gocv.MatTypeCV8UC4 {
		mat.Close()
		return nil, fmt.Errorf("unsupported pixel type %v in %s", mat.Type(), path)
	}

	data, err := mat.DataPtrUint8()
	if err != nil {
		mat.Close()
		return nil, fmt.Errorf("failed to access pixels of %s: %w", path, err)
	}
	return &OpenCVSource{
		mat: mat,
		info: img2ascii.ImageInfo{
			Width:      mat.Cols(),
			Height:     mat.Rows(),
			Components: mat.Channels(),
		},
		data: data,
	}, nil
}

// Info implements img2ascii.ScanlineReader.
func (s *OpenCVSource) Info() img2ascii.ImageInfo {
	return s.info
}

// ReadScanline implements img2ascii.ScanlineReader.
func (s *OpenCVSource) ReadScanline() ([]byte, error) {
	if s.next >= s.info.Height {
		return nil, io.EOF
	}
	step := s.mat.Step()
	line := s.data[s.next*step : s.next*step+s.info.Stride()]
	s.next++
	return line, nil
}

// Close releases the OpenCV matrix.
func (s *OpenCVSource) Close() error {
	return s.mat.Close()
}
