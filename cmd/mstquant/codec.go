package main

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	// Register decoders for image.Decode.
	_ "golang.org/x/image/webp"

	"github.com/katalvlaran/mstquant/pixgrid"
	"github.com/katalvlaran/mstquant/quantize"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// readImage decodes the image file at path. Supported formats are png,
// jpeg, gif, bmp, tiff and webp.
func readImage(path string) (*pixgrid.Grid, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("decoding %q: %w", path, err)
	}
	g, err := pixgrid.FromImage(img)
	if err != nil {
		return nil, format, fmt.Errorf("decoding %q: %w", path, err)
	}

	return g, format, nil
}

// outputExts lists the extensions writeImage can encode.
var outputExts = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".bmp": true, ".tif": true, ".tiff": true,
}

// checkOutput fails early for an output path writeImage cannot encode.
func checkOutput(path string) error {
	if ext := strings.ToLower(filepath.Ext(path)); !outputExts[ext] {
		return fmt.Errorf("unsupported output format %q", ext)
	}

	return nil
}

// writeImage encodes res.Image to path in the format named by its extension.
// GIF output indexes the palette directly when it fits in 256 colors.
func writeImage(path string, res *quantize.Result) error {
	if err := checkOutput(path); err != nil {
		return err
	}
	img := res.Image.Image()

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		err = png.Encode(f, img)
	case ".jpg", ".jpeg":
		err = jpeg.Encode(f, img, &jpeg.Options{Quality: 95})
	case ".gif":
		if p := res.Palette.ColorPalette(); len(p) <= quantize.MaxPaletteColors {
			err = gif.Encode(f, res.Image.Paletted(p), nil)
		} else {
			err = gif.Encode(f, img, &gif.Options{
				NumColors: quantize.MaxPaletteColors,
				Quantizer: quantize.Drawer{},
			})
		}
	case ".bmp":
		err = bmp.Encode(f, img)
	case ".tif", ".tiff":
		err = tiff.Encode(f, img, &tiff.Options{Compression: tiff.Deflate})
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		return fmt.Errorf("encoding %q: %w", path, err)
	}

	return nil
}
