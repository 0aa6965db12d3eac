package render

import (
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"
	"golang.org/x/image/vector"
)

// kappa is the control-point factor approximating a quarter circle with a
// cubic Bezier.
const kappa = 0.5522847498

// roundedRectMask rasterizes an opaque w x h rectangle with corners rounded
// by radius. The radius is clamped to half the shorter side.
func roundedRectMask(w, h, radius int) *image.Alpha {
	r := float32(radius)
	if m := float32(min(w, h)) / 2; r > m {
		r = m
	}
	c := r * kappa
	fw, fh := float32(w), float32(h)

	z := vector.NewRasterizer(w, h)
	z.MoveTo(r, 0)
	z.LineTo(fw-r, 0)
	z.CubeTo(fw-r+c, 0, fw, r-c, fw, r)
	z.LineTo(fw, fh-r)
	z.CubeTo(fw, fh-r+c, fw-r+c, fh, fw-r, fh)
	z.LineTo(r, fh)
	z.CubeTo(r-c, fh, 0, fh-r+c, 0, fh-r)
	z.LineTo(0, r)
	z.CubeTo(0, r-c, r-c, 0, r, 0)
	z.ClosePath()

	return rasterize(z, w, h)
}

// CircleMask returns a mask that is opaque on the disk inscribed in a w x h
// canvas: radius min(w,h)/2, centered.
func CircleMask(w, h int) *image.Alpha {
	r := float32(min(w, h)) / 2
	cx, cy := float32(w)/2, float32(h)/2
	c := r * kappa

	z := vector.NewRasterizer(w, h)
	z.MoveTo(cx+r, cy)
	z.CubeTo(cx+r, cy+c, cx+c, cy+r, cx, cy+r)
	z.CubeTo(cx-c, cy+r, cx-r, cy+c, cx-r, cy)
	z.CubeTo(cx-r, cy-c, cx-c, cy-r, cx, cy-r)
	z.CubeTo(cx+c, cy-r, cx+r, cy-c, cx+r, cy)
	z.ClosePath()

	return rasterize(z, w, h)
}

// HeartMask returns a heart-shaped mask bounded by the parametric curve
// x = 16 sin^3 t, y = -(13 cos t - 5 cos 2t - 2 cos 3t - cos 4t), sampled at
// 360 points, scaled by min(w,h)/2/18, horizontally centered and vertically
// anchored at 45% of the canvas height.
func HeartMask(w, h int) *image.Alpha {
	cx := float64(w) / 2
	baseY := float64(h) * 0.45
	scale := float64(min(w, h)) / 2 / 18

	z := vector.NewRasterizer(w, h)
	for i := 0; i < 360; i++ {
		t := float64(i) * math.Pi / 180
		s := math.Sin(t)
		x := 16 * s * s * s
		y := -(13*math.Cos(t) - 5*math.Cos(2*t) - 2*math.Cos(3*t) - math.Cos(4*t))

		px := float32(cx + x*scale)
		py := float32(baseY + y*scale)
		if i == 0 {
			z.MoveTo(px, py)
		} else {
			z.LineTo(px, py)
		}
	}
	z.ClosePath()

	return rasterize(z, w, h)
}

// CustomMask loads an external mask image, converts it to luminance and
// resizes it to w x h. Any load or decode error is returned to the caller,
// which falls back to the rectangle silhouette.
func CustomMask(path string, w, h int) (*image.Alpha, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("custom mask %s: %w", path, err)
	}

	gray := imaging.Resize(imaging.Grayscale(img), w, h, imaging.Lanczos)
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			// after Grayscale, R carries the luminance
			mask.Pix[y*mask.Stride+x] = gray.Pix[y*gray.Stride+x*4]
		}
	}
	return mask, nil
}

// ApplyMask replaces the alpha channel of canvas with the mask values.
// Pixels outside the mask become fully transparent but keep their color.
// The mask must have the canvas dimensions.
func ApplyMask(canvas *image.NRGBA, mask *image.Alpha) {
	w, h := canvas.Bounds().Dx(), canvas.Bounds().Dy()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			canvas.Pix[y*canvas.Stride+x*4+3] = mask.Pix[y*mask.Stride+x]
		}
	}
}

func rasterize(z *vector.Rasterizer, w, h int) *image.Alpha {
	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst
}
