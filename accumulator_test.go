package img2ascii

import (
	"errors"
	"math"
	"testing"
)

func accumulate(t *testing.T, info ImageInfo, data []byte, width, height int) *Canvas {
	t.Helper()
	acc, err := NewAccumulator(info, width, height, 0)
	if err != nil {
		t.Fatalf("NewAccumulator: %v", err)
	}
	stride := info.Stride()
	for s := 0; s < info.Height; s++ {
		if err := acc.AddScanline(data[s*stride : (s+1)*stride]); err != nil {
			t.Fatalf("AddScanline %d: %v", s, err)
		}
	}
	if !acc.Done() {
		t.Fatalf("Expected accumulator to be done after %d scanlines", info.Height)
	}
	return acc.Canvas()
}

func TestAccumulatorTwoComponentScenario(t *testing.T) {
	t.Parallel()

	info := ImageInfo{Width: 4, Height: 2, Components: 2}
	data := []byte{
		0, 0, 255, 255, 0, 0, 255, 255,
		0, 0, 255, 255, 255, 255, 0, 0,
	}
	c := accumulate(t, info, data, 4, 2)

	// The second scanline lands on row 1 and is shared with row 0.
	if c.Count(0) != 2 || c.Count(1) != 1 {
		t.Fatalf("Expected counts [2 1], got [%d %d]", c.Count(0), c.Count(1))
	}
	c.Normalize()

	p, _ := NewPalette("01")
	got := RenderLines(c, p, RenderOptions{})
	want := []string{"1000", "1001"}
	for y := range want {
		if got[y] != want[y] {
			t.Errorf("Row %d: expected %q, got %q", y, want[y], got[y])
		}
	}
}

func TestAccumulatorAveragesRows(t *testing.T) {
	t.Parallel()

	info := ImageInfo{Width: 1, Height: 4, Components: 1}
	c := accumulate(t, info, []byte{0, 51, 102, 255}, 1, 2)

	if c.Count(0) != 3 || c.Count(1) != 2 {
		t.Fatalf("Expected counts [3 2], got [%d %d]", c.Count(0), c.Count(1))
	}
	c.Normalize()
	if math.Abs(c.At(0, 0)-0.2) > 1e-9 {
		t.Errorf("Row 0: expected 0.2, got %v", c.At(0, 0))
	}
	if math.Abs(c.At(0, 1)-0.7) > 1e-9 {
		t.Errorf("Row 1: expected 0.7, got %v", c.At(0, 1))
	}
}

func TestAccumulatorCoversEveryRow(t *testing.T) {
	t.Parallel()

	for srcH := 1; srcH <= 40; srcH++ {
		for outH := 1; outH <= 40; outH++ {
			info := ImageInfo{Width: 3, Height: srcH, Components: 1}
			c := accumulate(t, info, make([]byte, 3*srcH), 2, outH)
			for y := 0; y < outH; y++ {
				if c.Count(y) < 1 {
					t.Errorf("src height %d, out height %d: row %d has no contributions",
						srcH, outH, y)
				}
			}
		}
	}
}

func TestAccumulatorSingleOutputRow(t *testing.T) {
	t.Parallel()

	info := ImageInfo{Width: 2, Height: 5, Components: 1}
	data := []byte{0, 255, 0, 255, 0, 255, 0, 255, 0, 255}
	c := accumulate(t, info, data, 2, 1)
	if c.Count(0) != 5 {
		t.Errorf("Expected all 5 scanlines on row 0, got %d", c.Count(0))
	}
	c.Normalize()
	if c.At(0, 0) != 0 || c.At(1, 0) != 1 {
		t.Errorf("Expected [0 1], got %v", c.Row(0))
	}
}

func TestAccumulatorSingleScanline(t *testing.T) {
	t.Parallel()

	info := ImageInfo{Width: 2, Height: 1, Components: 3}
	c := accumulate(t, info, []byte{255, 255, 255, 0, 0, 0}, 2, 3)
	c.Normalize()
	for y := 0; y < 3; y++ {
		if c.Count(y) != 1 {
			t.Errorf("Row %d: expected count 1, got %d", y, c.Count(y))
		}
		if c.At(0, y) != 1 || c.At(1, y) != 0 {
			t.Errorf("Row %d: expected [1 0], got %v", y, c.Row(y))
		}
	}
}

func TestAccumulatorErrors(t *testing.T) {
	t.Parallel()

	info := ImageInfo{Width: 3, Height: 1, Components: 2}
	acc, err := NewAccumulator(info, 2, 1, 0)
	if err != nil {
		t.Fatal(err)
	}
	if err := acc.AddScanline(make([]byte, 5)); !errors.Is(err, ErrShortScanline) {
		t.Errorf("Expected ErrShortScanline, got %v", err)
	}
	if err := acc.AddScanline(make([]byte, 6)); err != nil {
		t.Fatalf("AddScanline: %v", err)
	}
	if err := acc.AddScanline(make([]byte, 6)); !errors.Is(err, ErrTooManyScanlines) {
		t.Errorf("Expected ErrTooManyScanlines, got %v", err)
	}
	if acc.Rows() != 1 {
		t.Errorf("Expected 1 row accumulated, got %d", acc.Rows())
	}

	if _, err := NewAccumulator(ImageInfo{Width: 3, Height: 0, Components: 1}, 1, 1, 0); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Expected ErrInvalidSize, got %v", err)
	}
	if _, err := NewAccumulator(info, 100, 100, 50); !errors.Is(err, ErrCanvasTooLarge) {
		t.Errorf("Expected ErrCanvasTooLarge, got %v", err)
	}
}
