package img2ascii

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestGlyphBitmapBits(t *testing.T) {
	t.Parallel()

	var g GlyphBitmap
	g.setBit(3, 15, true)
	if !g.getBit(3, 15) {
		t.Error("Expected bit (3,15) to be set")
	}
	g.setBit(3, 15, false)
	if g.getBit(3, 15) {
		t.Error("Expected bit (3,15) to be cleared")
	}
	g.setBit(GlyphWidth, 0, true)
	if g != (GlyphBitmap{}) {
		t.Error("Out of range setBit should be ignored")
	}
}

func TestLoadFontBitmapsDefault(t *testing.T) {
	t.Parallel()

	fb, err := LoadFontBitmaps("")
	if err != nil {
		t.Fatalf("LoadFontBitmaps: %v", err)
	}
	if fb.Name() != "Go Mono" {
		t.Errorf("Expected Go Mono, got %s", fb.Name())
	}
	space, ok := fb.GetGlyph(' ')
	if !ok || space != (GlyphBitmap{}) {
		t.Error("Expected an empty glyph for space")
	}
	for _, r := range "M#@" {
		g, ok := fb.GetGlyph(r)
		if !ok || g == (GlyphBitmap{}) {
			t.Errorf("Expected pixels in glyph %q", r)
		}
	}
	if _, ok := fb.GetGlyph('\t'); ok {
		t.Error("Expected no glyph for a control character")
	}
}

func TestLoadFontBitmapsMissing(t *testing.T) {
	t.Parallel()

	if _, err := LoadFontBitmaps("does/not/exist.ttf"); err == nil {
		t.Error("Expected an error for a missing font")
	}
}

func TestRenderPreview(t *testing.T) {
	t.Parallel()

	fb, err := LoadFontBitmaps("")
	if err != nil {
		t.Fatal(err)
	}
	white := color.RGBA{255, 255, 255, 255}
	black := color.RGBA{0, 0, 0, 255}
	img := fb.RenderPreview([]string{"M ", "  "}, 2, black, white)

	want := image.Rect(0, 0, 2*GlyphWidth*2, 2*GlyphHeight*2)
	if img.Bounds() != want {
		t.Fatalf("Expected bounds %v, got %v", want, img.Bounds())
	}

	cell := 2 * GlyphWidth
	inked := 0
	for y := 0; y < GlyphHeight*2; y++ {
		for x := 0; x < cell; x++ {
			if img.RGBAAt(x, y) == black {
				inked++
			}
		}
	}
	if inked == 0 {
		t.Error("Expected foreground pixels in the 'M' cell")
	}
	for y := 0; y < img.Bounds().Dy(); y++ {
		for x := cell; x < img.Bounds().Dx(); x++ {
			if img.RGBAAt(x, y) != white {
				t.Fatalf("Expected background at (%d,%d), got %v", x, y, img.RGBAAt(x, y))
			}
		}
	}
}

func TestSavePreviewPNG(t *testing.T) {
	t.Parallel()

	fb, err := LoadFontBitmaps("")
	if err != nil {
		t.Fatal(err)
	}
	img := fb.RenderPreview([]string{"ok"}, 1, color.Black, color.White)
	path := filepath.Join(t.TempDir(), "preview.png")
	if err := SavePreviewPNG(img, path); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("Decoding preview: %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("Expected bounds %v, got %v", img.Bounds(), decoded.Bounds())
	}
}
