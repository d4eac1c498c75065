package img2ascii

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"unicode/utf8"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

const (
	// GlyphWidth and GlyphHeight define the preview character cell size.
	// Cells are twice as tall as wide, matching a terminal glyph.
	GlyphWidth  = 8
	GlyphHeight = 16

	// glyphFontSize is the point size glyphs are rasterised at (72 DPI).
	glyphFontSize = 13
)

// GlyphBitmap is a GlyphWidth x GlyphHeight monochrome character, one byte
// per row, bit x set for a foreground pixel.
type GlyphBitmap [GlyphHeight]uint8

// getBit checks if a specific bit is set in the bitmap
func (g GlyphBitmap) getBit(x, y int) bool {
	if x < 0 || x >= GlyphWidth || y < 0 || y >= GlyphHeight {
		return false
	}
	return g[y]&(1<<x) != 0
}

// setBit sets a specific bit in the bitmap
func (g *GlyphBitmap) setBit(x, y int, value bool) {
	if x < 0 || x >= GlyphWidth || y < 0 || y >= GlyphHeight {
		return
	}
	if value {
		g[y] |= 1 << x
	} else {
		g[y] &^= 1 << x
	}
}

// FontBitmaps holds pre-rendered character bitmaps for a font.
type FontBitmaps struct {
	glyphs map[rune]GlyphBitmap
	name   string
}

// LoadFontBitmaps rasterises a TrueType font for preview rendering. An
// empty path selects the embedded Go Mono font.
func LoadFontBitmaps(path string) (*FontBitmaps, error) {
	name := path
	fontBytes := gomono.TTF
	if path == "" {
		name = "Go Mono"
	} else {
		var err error
		fontBytes, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read font: %w", err)
		}
	}

	ttf, err := freetype.ParseFont(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %s: %w", name, err)
	}

	fb := &FontBitmaps{
		glyphs: make(map[rune]GlyphBitmap),
		name:   name,
	}
	// Printable ASCII plus the shade blocks used by the embedded palettes
	for r := rune(32); r <= rune(126); r++ {
		fb.glyphs[r] = renderGlyphToBitmap(ttf, r)
	}
	for _, r := range []rune{'░', '▒', '▓', '█'} {
		if ttf.Index(r) != 0 {
			fb.glyphs[r] = renderGlyphToBitmap(ttf, r)
		}
	}
	return fb, nil
}

// Name returns the font path, or "Go Mono" for the embedded font.
func (fb *FontBitmaps) Name() string {
	return fb.name
}

// renderGlyphToBitmap renders a single glyph into one preview cell.
// Anti-aliased coverage above 25% counts as foreground, which keeps thin
// strokes such as the dot on 'i'.
func renderGlyphToBitmap(ttf *truetype.Font, r rune) GlyphBitmap {
	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    glyphFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	img := image.NewAlpha(image.Rect(0, 0, GlyphWidth, GlyphHeight))

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(ttf)
	ctx.SetFontSize(glyphFontSize)
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img)
	ctx.SetSrc(image.White)
	ctx.SetHinting(font.HintingFull)

	// Centre the ascent+descent span vertically in the cell
	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	descent := metrics.Descent.Ceil()
	baselineY := (GlyphHeight-ascent-descent)/2 + ascent

	var bitmap GlyphBitmap
	if _, err := ctx.DrawString(string(r), freetype.Pt(0, baselineY)); err != nil {
		return bitmap
	}

	for y := 0; y < GlyphHeight; y++ {
		for x := 0; x < GlyphWidth; x++ {
			if img.AlphaAt(x, y).A > 64 {
				bitmap.setBit(x, y, true)
			}
		}
	}
	return bitmap
}

// GetGlyph returns the bitmap for a character.
func (fb *FontBitmaps) GetGlyph(r rune) (GlyphBitmap, bool) {
	bitmap, ok := fb.glyphs[r]
	return bitmap, ok
}

// RenderPreview draws rendered lines into an image, one GlyphWidth x
// GlyphHeight cell per character, each pixel enlarged scale times.
// Characters without a glyph are drawn as background.
func (fb *FontBitmaps) RenderPreview(lines []string, scale int, fg, bg color.Color) *image.RGBA {
	if scale < 1 {
		scale = 1
	}

	cols := 0
	for _, l := range lines {
		cols = max(cols, utf8.RuneCountInString(l))
	}
	cellW, cellH := GlyphWidth*scale, GlyphHeight*scale
	img := image.NewRGBA(image.Rect(0, 0, cols*cellW, len(lines)*cellH))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: bg}, image.Point{}, draw.Src)

	for row, l := range lines {
		col := 0
		for _, r := range l {
			if bitmap, ok := fb.glyphs[r]; ok {
				fb.renderBitmap(img, bitmap, col*cellW, row*cellH, scale, fg)
			}
			col++
		}
	}
	return img
}

// renderBitmap paints the foreground pixels of a glyph with scaling.
func (fb *FontBitmaps) renderBitmap(img *image.RGBA, bitmap GlyphBitmap, startX, startY, scale int, fg color.Color) {
	for y := 0; y < GlyphHeight; y++ {
		for x := 0; x < GlyphWidth; x++ {
			if !bitmap.getBit(x, y) {
				continue
			}
			rect := image.Rect(startX+x*scale, startY+y*scale,
				startX+(x+1)*scale, startY+(y+1)*scale)
			draw.Draw(img, rect, &image.Uniform{C: fg}, image.Point{}, draw.Src)
		}
	}
}

// SavePreviewPNG writes img to path as PNG.
func SavePreviewPNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}
