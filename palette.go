package img2ascii

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode/utf8"
)

//go:embed palettedata/palettes.json
var paletteFS embed.FS

const (
	// DefaultPaletteChars is the ramp used when no palette is configured.
	// The leftmost character is printed for the brightest cells.
	DefaultPaletteChars = "   ...',;:clodxkO0KXNWM"

	// MaxPaletteLength bounds the number of characters in a palette.
	MaxPaletteLength = 256
)

var (
	// ErrPaletteTooShort reports a palette of fewer than two characters.
	ErrPaletteTooShort = errors.New("palette needs at least two characters")
	// ErrPaletteTooLong reports a palette of more than MaxPaletteLength characters.
	ErrPaletteTooLong = fmt.Errorf("palette has more than %d characters",
		MaxPaletteLength)
)

// Palette is an ordered, immutable sequence of characters used to quantize
// intensities. Its length determines the quantization resolution.
type Palette struct {
	chars []rune
}

// DefaultPalette returns the built-in 23 character ramp.
func DefaultPalette() Palette {
	p, _ := NewPalette(DefaultPaletteChars)
	return p
}

// NewPalette builds a Palette from a string. Every rune is one level, so
// spaces are significant.
func NewPalette(chars string) (Palette, error) {
	if !utf8.ValidString(chars) {
		return Palette{}, fmt.Errorf("palette %q is not valid UTF-8", chars)
	}
	runes := []rune(chars)
	if len(runes) < 2 {
		return Palette{}, ErrPaletteTooShort
	}
	if len(runes) > MaxPaletteLength {
		return Palette{}, ErrPaletteTooLong
	}
	return Palette{chars: runes}, nil
}

// Len returns the number of characters in the palette.
func (p Palette) Len() int {
	return len(p.chars)
}

// Levels returns the highest quantization level, Len()-1.
func (p Palette) Levels() int {
	return len(p.chars) - 1
}

// At returns the character at index i.
func (p Palette) At(i int) rune {
	return p.chars[i]
}

// String returns the palette characters in order.
func (p Palette) String() string {
	return string(p.chars)
}

// Index quantizes an intensity in [0,1] to a palette index. Without invert
// the darkest intensity selects the last character; invert selects the
// first. Out-of-range intensities are clamped.
func (p Palette) Index(intensity float64, invert bool) int {
	levels := p.Levels()
	pos := round(float64(levels) * intensity)
	if pos < 0 {
		pos = 0
	} else if pos > levels {
		pos = levels
	}
	if invert {
		return pos
	}
	return levels - pos
}

// Char returns the character for an intensity. See Index.
func (p Palette) Char(intensity float64, invert bool) rune {
	return p.chars[p.Index(intensity, invert)]
}

// readPaletteData reads the embedded named palettes.
func readPaletteData() (map[string]string, error) {
	data, err := paletteFS.ReadFile("palettedata/palettes.json")
	if err != nil {
		return nil, fmt.Errorf("error reading embedded palettes: %w", err)
	}
	var named map[string]string
	if err := json.Unmarshal(data, &named); err != nil {
		return nil, fmt.Errorf("error unmarshalling palettes: %w", err)
	}
	return named, nil
}

// PaletteNames returns the names of the embedded palettes, sorted.
func PaletteNames() []string {
	named, err := readPaletteData()
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(named))
	for name := range named {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadPalette returns an embedded palette by name. If no embedded palette
// has that name, nameOrPath is read from the filesystem and its content,
// minus any trailing line break, becomes the palette.
func LoadPalette(nameOrPath string) (Palette, error) {
	// First, try the embedded set.
	named, err := readPaletteData()
	if err != nil {
		return Palette{}, err
	}
	if chars, ok := named[nameOrPath]; ok {
		return NewPalette(chars)
	}

	// If that fails, try the filesystem.
	data, fsErr := os.ReadFile(nameOrPath)
	if fsErr != nil {
		return Palette{}, fmt.Errorf("unknown palette %q: %w", nameOrPath, fsErr)
	}
	chars := strings.TrimRight(string(data), "\r\n")
	p, err := NewPalette(chars)
	if err != nil {
		return Palette{}, fmt.Errorf("palette file %s: %w", nameOrPath, err)
	}
	return p, nil
}
