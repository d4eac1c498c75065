package img2ascii

import (
	"errors"
	"fmt"
)

// DefaultWidth is the output width used when no size is requested.
const DefaultWidth = 78

// glyphAspect is the height:width ratio of a terminal character cell.
const glyphAspect = 2.0

// MaxDimension bounds each output dimension ResolveSize returns.
const MaxDimension = 1 << 30

// ErrInvalidSize reports a non-positive image or output dimension.
var ErrInvalidSize = errors.New("invalid width or height")

// SizeMode selects which output dimensions are fixed by the caller and
// which are derived from the source aspect ratio.
type SizeMode int

const (
	// SizeDefault fixes the width at DefaultWidth and derives the height.
	SizeDefault SizeMode = iota
	// SizeWidth fixes the width and derives the height.
	SizeWidth
	// SizeHeight fixes the height and derives the width.
	SizeHeight
	// SizeBoth uses width and height verbatim.
	SizeBoth
)

func (m SizeMode) String() string {
	switch m {
	case SizeDefault:
		return "default"
	case SizeWidth:
		return "width"
	case SizeHeight:
		return "height"
	case SizeBoth:
		return "both"
	}
	return fmt.Sprintf("SizeMode(%d)", int(m))
}

// Size is a partially specified output size.
type Size struct {
	Mode   SizeMode
	Width  int
	Height int
}

// WidthSize fixes the output width.
func WidthSize(width int) Size {
	return Size{Mode: SizeWidth, Width: width}
}

// HeightSize fixes the output height.
func HeightSize(height int) Size {
	return Size{Mode: SizeHeight, Height: height}
}

// FixedSize fixes both output dimensions.
func FixedSize(width, height int) Size {
	return Size{Mode: SizeBoth, Width: width, Height: height}
}

// round adds one half and truncates toward zero.
func round(v float64) int {
	return int(0.5 + v)
}

// ResolveSize computes the final output dimensions for a source image.
//
// A derived dimension that rounds to zero is corrected by growing the fixed
// dimension one step at a time. The fixed dimension strictly increases each
// iteration and the derived value is at least one as soon as the fixed
// dimension reaches srcW/srcH (or srcH/srcW), so the loop ends after at most
// max(srcW, srcH) iterations. Dimensions beyond MaxDimension fail with
// ErrCanvasTooLarge.
func ResolveSize(srcW, srcH int, req Size) (width, height int, err error) {
	if srcW < 1 || srcH < 1 {
		return 0, 0, fmt.Errorf("source %dx%d: %w", srcW, srcH, ErrInvalidSize)
	}

	switch req.Mode {
	case SizeBoth:
		if req.Width < 1 || req.Height < 1 {
			return 0, 0, fmt.Errorf("size %dx%d: %w",
				req.Width, req.Height, ErrInvalidSize)
		}
		if req.Width > MaxDimension || req.Height > MaxDimension {
			return 0, 0, fmt.Errorf("size %dx%d exceeds %d: %w",
				req.Width, req.Height, MaxDimension, ErrCanvasTooLarge)
		}
		return req.Width, req.Height, nil

	case SizeHeight:
		if req.Height < 1 {
			return 0, 0, fmt.Errorf("height %d: %w", req.Height, ErrInvalidSize)
		}
		height, width, err = grow(req.Height, glyphAspect, srcW, srcH)
		return width, height, err

	case SizeWidth, SizeDefault:
		width = req.Width
		if req.Mode == SizeDefault {
			width = DefaultWidth
		}
		if width < 1 {
			return 0, 0, fmt.Errorf("width %d: %w", width, ErrInvalidSize)
		}
		return grow(width, 1/glyphAspect, srcH, srcW)
	}

	return 0, 0, fmt.Errorf("size mode %v: %w", req.Mode, ErrInvalidSize)
}

// grow derives round(scale*fixed*num/den), incrementing fixed until the
// result is positive. It returns the final fixed and derived values.
func grow(fixed int, scale float64, num, den int) (int, int, error) {
	for ; fixed <= MaxDimension; fixed++ {
		v := scale * float64(fixed) * float64(num) / float64(den)
		if v >= MaxDimension {
			break
		}
		if derived := round(v); derived > 0 {
			return fixed, derived, nil
		}
	}
	return 0, 0, fmt.Errorf("output dimension exceeds %d: %w",
		MaxDimension, ErrCanvasTooLarge)
}
