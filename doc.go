// Package img2ascii converts decoded raster images into grayscale ASCII
// art. Scanlines are streamed into a character-grid canvas using
// nearest-column sampling and whole-row averaging, then quantized into a
// character palette.
//
// Start with NewConverter and pass it a ScanlineReader; the imageutil
// package provides readers for image files.
package img2ascii
