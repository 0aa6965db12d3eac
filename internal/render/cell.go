// Package render implements per-photo cell treatment (crop, rounded corners,
// drop shadow) and canvas-level silhouette masks.
package render

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// SmartCrop center-crops img to the aspect ratio of (width, height) and
// resamples it to exactly that size with a Lanczos filter. The longer
// dimension is trimmed symmetrically; the result always has the requested
// dimensions.
func SmartCrop(img image.Image, width, height int) *image.NRGBA {
	b := img.Bounds()
	srcW, srcH := b.Dx(), b.Dy()

	srcRatio := float64(srcW) / float64(srcH)
	targetRatio := float64(width) / float64(height)

	var rect image.Rectangle
	if srcRatio > targetRatio {
		newW := int(float64(srcH) * targetRatio)
		if newW < 1 {
			newW = 1
		}
		left := (srcW - newW) / 2
		rect = image.Rect(b.Min.X+left, b.Min.Y, b.Min.X+left+newW, b.Max.Y)
	} else {
		newH := int(float64(srcW) / targetRatio)
		if newH < 1 {
			newH = 1
		}
		top := (srcH - newH) / 2
		rect = image.Rect(b.Min.X, b.Min.Y+top, b.Max.X, b.Min.Y+top+newH)
	}

	return imaging.Resize(imaging.Crop(img, rect), width, height, imaging.Lanczos)
}

// RoundCorners replaces the alpha channel of img with an opaque rectangle
// whose corners are rounded by radius. radius 0 leaves the image unchanged;
// a radius at or beyond min(w,h)/2 degenerates toward an ellipse-like shape.
func RoundCorners(img *image.NRGBA, radius int) *image.NRGBA {
	if radius <= 0 {
		return img
	}

	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	mask := roundedRectMask(w, h, radius)

	out := imaging.Clone(img)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out.Pix[y*out.Stride+x*4+3] = mask.Pix[y*mask.Stride+x]
		}
	}
	return out
}

// DropShadow renders img over a blurred shadow of its own alpha silhouette.
// The result grows to (w+|dx|+2*blur, h+|dy|+2*blur); callers must place the
// grown image, not the original size.
func DropShadow(img *image.NRGBA, offsetX, offsetY, blur int, shadowColor color.NRGBA) *image.NRGBA {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	outW := w + abs(offsetX) + 2*blur
	outH := h + abs(offsetY) + 2*blur

	shadow := image.NewNRGBA(image.Rect(0, 0, outW, outH))
	sx := blur + max(0, offsetX)
	sy := blur + max(0, offsetY)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			a := img.Pix[y*img.Stride+x*4+3]
			if a == 0 {
				continue
			}
			o := (sy+y)*shadow.Stride + (sx+x)*4
			shadow.Pix[o+0] = shadowColor.R
			shadow.Pix[o+1] = shadowColor.G
			shadow.Pix[o+2] = shadowColor.B
			shadow.Pix[o+3] = uint8(int(a) * int(shadowColor.A) / 255)
		}
	}
	blurred := imaging.Blur(shadow, float64(blur))

	px := blur + max(0, -offsetX)
	py := blur + max(0, -offsetY)
	return imaging.Overlay(blurred, img, image.Pt(px, py), 1.0)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
