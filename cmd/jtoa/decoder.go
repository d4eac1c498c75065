package main

import (
	"fmt"
	"io"
	"os"

	"github.com/wbrown/img2ascii"
	"github.com/wbrown/img2ascii/imageutil"
)

// source is a decoded input image ready for conversion.
type source interface {
	img2ascii.ScanlineReader
	Close() error
}

// decodeFunc opens the input named path ("-" reads stdin).
type decodeFunc func(path string, stdin io.Reader, adj imageutil.Adjustments) (source, error)

// decoders holds the decoders compiled into this binary, by --decoder name.
var decoders = map[string]decodeFunc{
	"std": decodeStd,
}

type imageSource struct {
	*imageutil.ImageSource
}

func (imageSource) Close() error { return nil }

// decodeStd decodes with the image package registry.
func decodeStd(path string, stdin io.Reader, adj imageutil.Adjustments) (source, error) {
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("can't open %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}

	img, _, err := imageutil.DecodeImage(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if !adj.IsZero() {
		img = imageutil.Adjust(img, adj)
	}
	return imageSource{imageutil.NewImageSource(img)}, nil
}
