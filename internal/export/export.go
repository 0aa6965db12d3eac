// Package export writes finished canvases to their two output formats:
// PNG with the alpha channel intact and JPEG flattened onto white.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// jpegQuality is the fixed encoder setting for the lossy output.
const jpegQuality = 95

// Exporter encodes canvases at a configured resolution.
type Exporter struct {
	DPI int
}

// EncodePNG returns the canvas as PNG bytes with the alpha channel preserved
// and the resolution recorded in a pHYs chunk.
func (e Exporter) EncodePNG(canvas *image.NRGBA) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return withPNGDensity(buf.Bytes(), e.DPI), nil
}

// EncodeJPEG flattens the canvas onto an opaque white background using the
// canvas alpha as compositing mask, then encodes it with the resolution
// recorded in the JFIF header.
func (e Exporter) EncodeJPEG(canvas *image.NRGBA) ([]byte, error) {
	b := canvas.Bounds()
	white := imaging.New(b.Dx(), b.Dy(), color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	flat := imaging.Overlay(white, canvas, image.Point{}, 1.0)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, flat, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return withJPEGDensity(buf.Bytes(), e.DPI), nil
}

// Export writes collage_NN.png and collage_NN.jpg for the given 1-based
// group index into dir. A failure in one format does not prevent the other;
// the paths of the files actually written are returned alongside the joined
// errors. There is no retry: a failed format leaves whatever partial output
// the filesystem retained.
func (e Exporter) Export(canvas *image.NRGBA, dir string, index int) (pngPath, jpgPath string, err error) {
	base := filepath.Join(dir, fmt.Sprintf("collage_%02d", index))

	var pngErr, jpgErr error

	if data, encErr := e.EncodePNG(canvas); encErr != nil {
		pngErr = encErr
	} else if writeErr := os.WriteFile(base+".png", data, 0o644); writeErr != nil {
		pngErr = fmt.Errorf("write %s.png: %w", base, writeErr)
	} else {
		pngPath = base + ".png"
	}

	if data, encErr := e.EncodeJPEG(canvas); encErr != nil {
		jpgErr = encErr
	} else if writeErr := os.WriteFile(base+".jpg", data, 0o644); writeErr != nil {
		jpgErr = fmt.Errorf("write %s.jpg: %w", base, writeErr)
	} else {
		jpgPath = base + ".jpg"
	}

	return pngPath, jpgPath, errors.Join(pngErr, jpgErr)
}
