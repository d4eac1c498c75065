// Command jtoa prints images as ASCII art.
//
//	jtoa [OPTIONS] FILE...
//
// A FILE of "-" reads the image from standard input. Files are converted
// in order; the first failure stops the run with exit status 1.
package main

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/jessevdk/go-flags"

	"github.com/wbrown/img2ascii"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes jtoa with args and returns the process exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts Options
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Usage = "[OPTIONS] FILE..."

	files, err := parser.ParseArgs(args)
	if err != nil {
		if flags.WroteHelp(err) {
			fmt.Fprintln(stdout, err)
			return 0
		}
		fmt.Fprintf(stderr, "jtoa: %v\n", err)
		return 1
	}
	if len(files) == 0 {
		parser.WriteHelp(stderr)
		return 1
	}

	t, err := newTask(&opts, parser, stdin, stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "jtoa: %v\n", err)
		return 1
	}
	for _, path := range files {
		if err := t.convert(path); err != nil {
			fmt.Fprintf(stderr, "jtoa: %v\n", err)
			return 1
		}
	}
	return 0
}

// task is one jtoa run: a configured converter applied to each input.
type task struct {
	conv   *img2ascii.Converter
	decode decodeFunc
	opts   *Options
	fonts  *img2ascii.FontBitmaps
	logger *log.Logger
	stdin  io.Reader
	stdout io.Writer
}

func newTask(opts *Options, parser *flags.Parser, stdin io.Reader, stdout, stderr io.Writer) (*task, error) {
	size, err := opts.size(
		parser.FindOptionByLongName("width").IsSet(),
		parser.FindOptionByLongName("height").IsSet())
	if err != nil {
		return nil, err
	}
	palette, err := opts.palette()
	if err != nil {
		return nil, err
	}
	decode, ok := decoders[opts.Decoder]
	if !ok {
		return nil, fmt.Errorf("decoder %q is not built in (rebuild with -tags gocv)", opts.Decoder)
	}

	t := &task{
		decode: decode,
		opts:   opts,
		stdin:  stdin,
		stdout: stdout,
	}
	convOpts := []img2ascii.Option{
		img2ascii.WithPalette(palette),
		img2ascii.WithSize(size),
		img2ascii.WithInvert(opts.Invert),
		img2ascii.WithFlipX(opts.FlipX),
		img2ascii.WithFlipY(opts.FlipY),
	}
	if opts.Verbose {
		t.logger = log.New(stderr, "", 0)
		convOpts = append(convOpts, img2ascii.WithLogger(t.logger))
	}
	t.conv = img2ascii.NewConverter(convOpts...)

	if opts.Preview != "" {
		if err := os.MkdirAll(opts.Preview, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create preview directory: %w", err)
		}
		if t.fonts, err = img2ascii.LoadFontBitmaps(opts.Font); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// convert prints the ASCII rendition of one input and, when requested,
// writes its preview.
func (t *task) convert(path string) error {
	if t.logger != nil {
		t.logger.Printf("File: %s", path)
	}
	src, err := t.decode(path, t.stdin, t.opts.adjustments())
	if err != nil {
		return err
	}
	defer src.Close()

	if t.fonts == nil {
		return t.conv.Convert(src, t.stdout)
	}

	lines, err := t.conv.ConvertToLines(src)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(t.stdout, img2ascii.JoinLines(lines)); err != nil {
		return err
	}
	return t.writePreview(path, lines)
}

// writePreview renders lines to <preview dir>/<input name>.png. Inverted
// output is drawn light on dark.
func (t *task) writePreview(path string, lines []string) error {
	fg, bg := color.Color(color.Black), color.Color(color.White)
	if t.opts.Invert {
		fg, bg = bg, fg
	}
	img := t.fonts.RenderPreview(lines, t.opts.Scale, fg, bg)

	out := filepath.Join(t.opts.Preview, previewName(path))
	if err := img2ascii.SavePreviewPNG(img, out); err != nil {
		return err
	}
	if t.logger != nil {
		t.logger.Printf("Preview: %s (%s)", out, t.fonts.Name())
	}
	return nil
}

// previewName maps an input path to its preview file name.
func previewName(path string) string {
	if path == "-" {
		return "stdin.png"
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".png"
}
