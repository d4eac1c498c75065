package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wbrown/img2ascii"
	"github.com/wbrown/img2ascii/imageutil"
)

// Options are the command line flags of jtoa.
type Options struct {
	Chars      string  `long:"chars" value-name:"CHARS" description:"Palette characters, printed for the brightest cells first; overrides --palette"`
	Palette    string  `short:"p" long:"palette" default:"default" description:"Embedded palette name or path to a palette file"`
	FlipX      bool    `long:"flipx" description:"Mirror the output horizontally"`
	FlipY      bool    `long:"flipy" description:"Mirror the output vertically"`
	Width      int     `short:"W" long:"width" default:"78" description:"Output width in characters; height follows the image aspect"`
	Height     int     `short:"H" long:"height" description:"Output height in lines; width follows unless --width is also given"`
	Size       string  `long:"size" value-name:"WxH" description:"Exact output size, ignoring the image aspect"`
	Invert     bool    `short:"i" long:"invert" description:"Invert the palette for light text on dark backgrounds"`
	Verbose    bool    `short:"v" long:"verbose" description:"Print image and output information to stderr"`
	Brightness float32 `long:"brightness" description:"Brightness adjustment in percent (-100..100)"`
	Contrast   float32 `long:"contrast" description:"Contrast adjustment in percent (-100..100)"`
	Gamma      float32 `long:"gamma" description:"Gamma correction (1 = none)"`
	Preview    string  `long:"preview" value-name:"DIR" description:"Also render each result to DIR/<name>.png"`
	Font       string  `long:"font" value-name:"TTF" description:"TrueType font for previews (default: Go Mono)"`
	Scale      int     `long:"scale" default:"1" description:"Preview pixel scale"`
	Decoder    string  `long:"decoder" choice:"std" choice:"opencv" default:"std" description:"Image decoder"`
}

// parseSize parses a "WxH" dimension pair.
func parseSize(value string) (int, int, error) {
	w, h, ok := strings.Cut(strings.ToLower(value), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid size %q, want WxH", value)
	}
	width, err := strconv.Atoi(w)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid width in %q: %w", value, err)
	}
	height, err := strconv.Atoi(h)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid height in %q: %w", value, err)
	}
	return width, height, nil
}

// size works out the requested output size. widthSet and heightSet tell
// whether --width and --height appeared on the command line: both pin the
// size, a lone height derives the width, anything else derives the height
// from the width.
func (o *Options) size(widthSet, heightSet bool) (img2ascii.Size, error) {
	var req img2ascii.Size
	switch {
	case o.Size != "":
		w, h, err := parseSize(o.Size)
		if err != nil {
			return req, err
		}
		req = img2ascii.FixedSize(w, h)
	case widthSet && heightSet:
		req = img2ascii.FixedSize(o.Width, o.Height)
	case heightSet:
		req = img2ascii.HeightSize(o.Height)
	default:
		req = img2ascii.WidthSize(o.Width)
	}

	if (req.Mode != img2ascii.SizeHeight && req.Width < 1) ||
		(req.Mode != img2ascii.SizeWidth && req.Height < 1) {
		return req, fmt.Errorf("output size %dx%d: %w",
			req.Width, req.Height, img2ascii.ErrInvalidSize)
	}
	return req, nil
}

// palette returns the palette selected by --chars or --palette.
func (o *Options) palette() (img2ascii.Palette, error) {
	if o.Chars != "" {
		return img2ascii.NewPalette(o.Chars)
	}
	return img2ascii.LoadPalette(o.Palette)
}

func (o *Options) adjustments() imageutil.Adjustments {
	return imageutil.Adjustments{
		Brightness: o.Brightness,
		Contrast:   o.Contrast,
		Gamma:      o.Gamma,
	}
}
