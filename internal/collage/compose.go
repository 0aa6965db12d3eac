package collage

import (
	"errors"
	"image"
	"log/slog"

	"github.com/disintegration/imaging"

	"github.com/Satbir-Singh-42/Photo-Collage-Generator/internal/layout"
	"github.com/Satbir-Singh-42/Photo-Collage-Generator/internal/render"
)

// ErrEmptyGroup reports a group in which no image could be decoded; the
// caller skips the group's export and continues the run.
var ErrEmptyGroup = errors.New("no decodable images in group")

// Fallback content size when a cell leaves no room after the shadow margin
// is reserved.
const minContentSize = 10

// Compose arranges the decoded images of one group onto a freshly allocated
// canvas: plan the grid, render each cell, place cells row-major, then apply
// the outer silhouette. Trailing unfilled cells keep the background color.
func Compose(images []*image.NRGBA, s Settings) (*image.NRGBA, error) {
	if len(images) == 0 {
		return nil, ErrEmptyGroup
	}

	grid := layout.PlanGrid(len(images))

	usableW := s.CanvasWidth - 2*s.FrameThickness - (grid.Cols-1)*s.Spacing
	usableH := s.CanvasHeight - 2*s.FrameThickness - (grid.Rows-1)*s.Spacing
	cellW := usableW / grid.Cols
	cellH := usableH / grid.Rows

	shadowMargin := 0
	if s.DropShadow {
		shadowMargin = s.ShadowBlur + max(abs(s.ShadowOffsetX), abs(s.ShadowOffsetY))
	}

	contentW := cellW - 2*shadowMargin
	contentH := cellH - 2*shadowMargin
	if contentW <= 0 || contentH <= 0 {
		// placement below centers on the rendered cell's own bounds, so no
		// margin needs reserving for the fallback size
		contentW = max(minContentSize, cellW-minContentSize)
		contentH = max(minContentSize, cellH-minContentSize)
	}

	canvas := imaging.New(s.CanvasWidth, s.CanvasHeight, s.Background)

	for i, img := range images {
		row := i / grid.Cols
		col := i % grid.Cols

		cell := render.SmartCrop(img, contentW, contentH)
		if s.RoundedCorners {
			cell = render.RoundCorners(cell, s.CornerRadius)
		}
		if s.DropShadow {
			cell = render.DropShadow(cell, s.ShadowOffsetX, s.ShadowOffsetY, s.ShadowBlur, s.ShadowColor)
		}

		x := s.FrameThickness + col*(cellW+s.Spacing) + floorHalf(cellW-cell.Bounds().Dx())
		y := s.FrameThickness + row*(cellH+s.Spacing) + floorHalf(cellH-cell.Bounds().Dy())
		canvas = imaging.Overlay(canvas, cell, image.Pt(x, y), 1.0)
	}

	if mask := buildMask(s); mask != nil {
		render.ApplyMask(canvas, mask)
	}

	return canvas, nil
}

// buildMask returns the silhouette mask for the configured shape, or nil when
// the canvas stays fully visible. A custom mask that fails to load degrades
// to the rectangle silhouette.
func buildMask(s Settings) *image.Alpha {
	switch shape := s.Shape.(type) {
	case Circle:
		return render.CircleMask(s.CanvasWidth, s.CanvasHeight)
	case Heart:
		return render.HeartMask(s.CanvasWidth, s.CanvasHeight)
	case Custom:
		mask, err := render.CustomMask(shape.MaskPath, s.CanvasWidth, s.CanvasHeight)
		if err != nil {
			slog.Warn("custom mask unavailable, keeping rectangle silhouette", "error", err)
			return nil
		}
		return mask
	default:
		// Rectangle and Square leave the canvas fully opaque.
		return nil
	}
}

// floorHalf halves v rounding toward negative infinity, so oversized cells
// (shadow growth beyond the slot) shift consistently instead of drifting.
func floorHalf(v int) int {
	if v < 0 {
		return (v - 1) / 2
	}
	return v / 2
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
