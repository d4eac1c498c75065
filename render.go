package img2ascii

import (
	"bufio"
	"io"
	"strings"
)

// RenderOptions control orientation and tone of the rendered text. They
// do not affect accumulation.
type RenderOptions struct {
	FlipX  bool
	FlipY  bool
	Invert bool
}

// renderLine builds output line y of a normalized canvas.
func renderLine(line []rune, c *Canvas, p Palette, opts RenderOptions, y int) string {
	w, h := c.Width(), c.Height()
	srcY := y
	if opts.FlipY {
		srcY = h - y - 1
	}
	for x, v := range c.Row(srcY) {
		dst := x
		if opts.FlipX {
			dst = w - x - 1
		}
		line[dst] = p.Char(v, opts.Invert)
	}
	return string(line)
}

// RenderLines returns one string per canvas row, top to bottom as
// configured, without line terminators.
func RenderLines(c *Canvas, p Palette, opts RenderOptions) []string {
	lines := make([]string, c.Height())
	buf := make([]rune, c.Width())
	for y := range lines {
		lines[y] = renderLine(buf, c, p, opts, y)
	}
	return lines
}

// Render writes the canvas to w as newline-terminated lines.
func Render(w io.Writer, c *Canvas, p Palette, opts RenderOptions) error {
	bw := bufio.NewWriter(w)
	buf := make([]rune, c.Width())
	for y := 0; y < c.Height(); y++ {
		if _, err := bw.WriteString(renderLine(buf, c, p, opts, y)); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// JoinLines concatenates rendered lines with a newline after each.
func JoinLines(lines []string) string {
	var sb strings.Builder
	for _, l := range lines {
		sb.WriteString(l)
		sb.WriteByte('\n')
	}
	return sb.String()
}
