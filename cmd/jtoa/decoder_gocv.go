//go:build gocv

package main

import (
	"errors"
	"io"

	"github.com/wbrown/img2ascii/imageutil"
)

func init() {
	decoders["opencv"] = decodeOpenCV
}

// decodeOpenCV decodes with gocv. It reads files only and applies no
// tonal adjustments.
func decodeOpenCV(path string, _ io.Reader, adj imageutil.Adjustments) (source, error) {
	if path == "-" {
		return nil, errors.New("the opencv decoder cannot read stdin")
	}
	if !adj.IsZero() {
		return nil, errors.New("brightness, contrast and gamma need --decoder=std")
	}
	return imageutil.LoadOpenCV(path)
}
