package imageutil

import (
	"image"
	"image/color"
	"testing"
)

func TestAdjustZeroIsNoop(t *testing.T) {
	t.Parallel()

	img := CreateGradientImage(4, 4)
	if got := Adjust(img, Adjustments{Gamma: 1}); got != image.Image(img) {
		t.Error("Expected the same image back for a zero adjustment")
	}
}

func TestAdjustBrightness(t *testing.T) {
	t.Parallel()

	img := CreateSolidImage(4, 4, color.NRGBA{R: 100, G: 100, B: 100, A: 255})
	adjusted := Adjust(img, Adjustments{Brightness: 30})

	r, _, _, _ := adjusted.At(1, 1).RGBA()
	if r>>8 <= 100 {
		t.Errorf("Expected brightened red above 100, got %d", r>>8)
	}
	if adjusted.Bounds() != img.Bounds() {
		t.Errorf("Expected bounds %v, got %v", img.Bounds(), adjusted.Bounds())
	}
}

func TestAdjustKeepsGray(t *testing.T) {
	t.Parallel()

	img := CreateVerticalGradientImage(4, 4)
	adjusted := Adjust(img, Adjustments{Contrast: 20, Gamma: 0.8})
	if _, ok := adjusted.(*image.Gray); !ok {
		t.Fatalf("Expected *image.Gray, got %T", adjusted)
	}
	if NewImageSource(adjusted).Info().Components != 1 {
		t.Error("Expected one component for adjusted grayscale image")
	}
}
