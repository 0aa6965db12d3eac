package source

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/disintegration/imaging"

	// imaging registers JPEG, PNG, GIF, TIFF and BMP; WebP sources need the
	// decoder from x/image.
	_ "golang.org/x/image/webp"
)

// Load decodes the image at path and normalizes it to a 4-channel NRGBA
// buffer. It fails on unreadable paths, corrupt or unsupported streams, and
// decodes that produce a zero-dimension image.
func Load(path string) (*image.NRGBA, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	if img.Bounds().Dx() <= 0 || img.Bounds().Dy() <= 0 {
		return nil, fmt.Errorf("load %s: zero-dimension image", path)
	}
	return imaging.Clone(img), nil
}

// LoadGroup decodes every ref in order, splitting the outcome into the
// successfully decoded images and the refs that failed. A failed ref never
// aborts the group; it is logged and skipped. Input order is preserved on
// both sides.
func LoadGroup(refs []string) (decoded []*image.NRGBA, failed []string) {
	for _, ref := range refs {
		img, err := Load(ref)
		if err != nil {
			slog.Warn("skipping unreadable image", "path", ref, "error", err)
			failed = append(failed, ref)
			continue
		}
		decoded = append(decoded, img)
	}
	return decoded, failed
}
