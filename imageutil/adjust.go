package imageutil

import (
	"image"

	"github.com/disintegration/gift"
)

// Adjustments are tonal corrections applied to an image before it is
// converted. The zero value leaves the image untouched.
type Adjustments struct {
	// Brightness in percent, -100 to 100.
	Brightness float32
	// Contrast in percent, -100 to 100.
	Contrast float32
	// Gamma correction; 0 and 1 mean none.
	Gamma float32
}

// IsZero reports whether a contains no correction.
func (a Adjustments) IsZero() bool {
	return a.Brightness == 0 && a.Contrast == 0 && (a.Gamma == 0 || a.Gamma == 1)
}

// filter builds the gift filter chain for a.
func (a Adjustments) filter() *gift.GIFT {
	g := gift.New()
	if a.Brightness != 0 {
		g.Add(gift.Brightness(a.Brightness))
	}
	if a.Contrast != 0 {
		g.Add(gift.Contrast(a.Contrast))
	}
	if a.Gamma != 0 && a.Gamma != 1 {
		g.Add(gift.Gamma(a.Gamma))
	}
	return g
}

// Adjust applies the corrections in a to img. Grayscale input stays
// grayscale so it keeps converting with one component per pixel.
func Adjust(img image.Image, a Adjustments) image.Image {
	if a.IsZero() {
		return img
	}
	g := a.filter()
	bounds := g.Bounds(img.Bounds())
	if isGray(img.ColorModel()) {
		dst := image.NewGray(bounds)
		g.Draw(dst, img)
		return dst
	}
	dst := image.NewNRGBA(bounds)
	g.Draw(dst, img)
	return dst
}
