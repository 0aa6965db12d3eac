// Package sample generates deterministic test photographs so the collage
// pipeline can be exercised without a real photo corpus.
package sample

import (
	"fmt"
	"image"
	"image/color"
	"math/rand"
	"path/filepath"
	"strconv"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/sync/errgroup"

	"github.com/Satbir-Singh-42/Photo-Collage-Generator/internal/util"
)

var palettes = [][2]color.NRGBA{
	{{R: 255, G: 107, B: 107, A: 255}, {R: 255, G: 230, B: 109, A: 255}},
	{{R: 78, G: 205, B: 196, A: 255}, {R: 199, G: 244, B: 100, A: 255}},
	{{R: 107, G: 185, B: 240, A: 255}, {R: 147, G: 112, B: 219, A: 255}},
	{{R: 255, G: 154, B: 162, A: 255}, {R: 255, G: 218, B: 193, A: 255}},
	{{R: 118, G: 200, B: 147, A: 255}, {R: 252, G: 238, B: 33, A: 255}},
	{{R: 255, G: 195, B: 113, A: 255}, {R: 255, G: 95, B: 109, A: 255}},
	{{R: 162, G: 155, B: 254, A: 255}, {R: 253, G: 255, B: 182, A: 255}},
	{{R: 97, G: 97, B: 97, A: 255}, {R: 155, G: 197, B: 61, A: 255}},
	{{R: 255, G: 87, B: 87, A: 255}, {R: 255, G: 189, B: 68, A: 255}},
	{{R: 58, G: 134, B: 255, A: 255}, {R: 131, G: 56, B: 236, A: 255}},
}

var sizes = []image.Point{
	{X: 400, Y: 400},
	{X: 600, Y: 400},
	{X: 400, Y: 600},
	{X: 500, Y: 500},
	{X: 800, Y: 600},
}

// Generate writes count gradient/pattern JPEGs named sample_NNNN.jpg into
// dir, creating it if needed. Images are derived from their index, so
// repeated runs produce identical files. Writes run concurrently; the
// sequential-pipeline constraint applies to collage generation, not to
// fixture generation.
func Generate(dir string, count int) error {
	if err := util.EnsureDir(dir); err != nil {
		return fmt.Errorf("sample folder %s: %w", dir, err)
	}

	var eg errgroup.Group
	eg.SetLimit(8)
	for i := 1; i <= count; i++ {
		i := i
		eg.Go(func() error {
			img := build(i)
			path := filepath.Join(dir, fmt.Sprintf("sample_%04d.jpg", i))
			if err := imaging.Save(img, path, imaging.JPEGQuality(90)); err != nil {
				return fmt.Errorf("save %s: %w", path, err)
			}
			return nil
		})
	}
	return eg.Wait()
}

func build(index int) *image.NRGBA {
	rng := rand.New(rand.NewSource(int64(index)))

	pal := palettes[rng.Intn(len(palettes))]
	size := sizes[rng.Intn(len(sizes))]

	img := gradient(size.X, size.Y, pal[0], pal[1])
	switch rng.Intn(5) {
	case 0:
		rings(img, rng)
	case 1:
		diagonals(img)
	case 2:
		dots(img, rng)
	case 3:
		boxes(img, rng)
	case 4:
		// plain gradient
	}
	label(img, strconv.Itoa(index))
	return img
}

// gradient blends vertically from c1 to c2.
func gradient(w, h int, c1, c2 color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		c := color.NRGBA{
			R: lerp(c1.R, c2.R, y, h),
			G: lerp(c1.G, c2.G, y, h),
			B: lerp(c1.B, c2.B, y, h),
			A: 255,
		}
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func lerp(a, b uint8, step, total int) uint8 {
	return uint8(int(a) + (int(b)-int(a))*step/total)
}

var white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

func rings(img *image.NRGBA, rng *rand.Rand) {
	b := img.Bounds()
	for i := 0; i < 5; i++ {
		cx := rng.Intn(b.Dx())
		cy := rng.Intn(b.Dy())
		r := 20 + rng.Intn(81)
		for y := cy - r; y <= cy+r; y++ {
			for x := cx - r; x <= cx+r; x++ {
				d := (x-cx)*(x-cx) + (y-cy)*(y-cy)
				if d <= r*r && d >= (r-3)*(r-3) {
					set(img, x, y, white)
				}
			}
		}
	}
}

func diagonals(img *image.NRGBA) {
	b := img.Bounds()
	for start := 0; start < b.Dx(); start += 30 {
		for y := 0; y < b.Dy(); y++ {
			x := start + y/2
			set(img, x, y, white)
			set(img, x+1, y, white)
		}
	}
}

func dots(img *image.NRGBA, rng *rand.Rand) {
	b := img.Bounds()
	for i := 0; i < 30; i++ {
		cx := rng.Intn(b.Dx())
		cy := rng.Intn(b.Dy())
		r := 3 + rng.Intn(6)
		for y := cy - r; y <= cy+r; y++ {
			for x := cx - r; x <= cx+r; x++ {
				if (x-cx)*(x-cx)+(y-cy)*(y-cy) <= r*r {
					set(img, x, y, white)
				}
			}
		}
	}
}

func boxes(img *image.NRGBA, rng *rand.Rand) {
	b := img.Bounds()
	for i := 0; i < 8; i++ {
		x0 := rng.Intn(max(1, b.Dx()-40))
		y0 := rng.Intn(max(1, b.Dy()-40))
		size := 20 + rng.Intn(41)
		for t := 0; t < 2; t++ {
			for x := x0; x <= x0+size; x++ {
				set(img, x, y0+t, white)
				set(img, x, y0+size-t, white)
			}
			for y := y0; y <= y0+size; y++ {
				set(img, x0+t, y, white)
				set(img, x0+size-t, y, white)
			}
		}
	}
}

// label draws the image index centered, so grid placement is visible in the
// finished collages.
func label(img *image.NRGBA, text string) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: basicfont.Face7x13,
	}
	w := d.MeasureString(text).Ceil()
	d.Dot = fixed.P((img.Bounds().Dx()-w)/2, img.Bounds().Dy()/2)
	d.DrawString(text)
}

func set(img *image.NRGBA, x, y int, c color.NRGBA) {
	if image.Pt(x, y).In(img.Bounds()) {
		img.SetNRGBA(x, y, c)
	}
}
