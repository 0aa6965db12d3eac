// Package collage assembles groups of photos into composite canvases.
package collage

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
)

// Shape selects the outer silhouette of a finished canvas. The set of
// implementations is closed; each variant carries only the data it needs.
type Shape interface {
	String() string
	shape()
}

type (
	// Rectangle keeps the full canvas visible.
	Rectangle struct{}
	// Square is identical to Rectangle; the canvas dimensions decide the
	// actual proportions.
	Square struct{}
	// Circle keeps the disk inscribed in the canvas.
	Circle struct{}
	// Heart keeps a parametric heart region.
	Heart struct{}
	// Custom keeps the region defined by an external grayscale mask image.
	Custom struct {
		MaskPath string
	}
)

func (Rectangle) shape() {}
func (Square) shape()    {}
func (Circle) shape()    {}
func (Heart) shape()     {}
func (Custom) shape()    {}

func (Rectangle) String() string { return "rectangle" }
func (Square) String() string    { return "square" }
func (Circle) String() string    { return "circle" }
func (Heart) String() string     { return "heart" }
func (c Custom) String() string  { return "custom(" + c.MaskPath + ")" }

// ParseShape maps a shape name to its variant. A non-empty maskPath forces
// the Custom variant regardless of name.
func ParseShape(name, maskPath string) (Shape, error) {
	if maskPath != "" {
		return Custom{MaskPath: maskPath}, nil
	}
	switch strings.ToLower(name) {
	case "", "square":
		return Square{}, nil
	case "rectangle":
		return Rectangle{}, nil
	case "circle":
		return Circle{}, nil
	case "heart":
		return Heart{}, nil
	case "custom":
		return nil, errors.New("custom shape requires a mask path")
	default:
		return nil, fmt.Errorf("unknown shape %q", name)
	}
}

// Default configuration values, matching the documented defaults of the
// generator.
const (
	DefaultCanvasWidth      = 3000
	DefaultCanvasHeight     = 3000
	DefaultDPI              = 300
	DefaultFrameThickness   = 20
	DefaultSpacing          = 5
	DefaultCornerRadius     = 10
	DefaultShadowOffsetX    = 5
	DefaultShadowOffsetY    = 5
	DefaultShadowBlur       = 10
	DefaultImagesPerCollage = 50
)

// Settings holds the full configuration of one run. Build it once, validate
// it, and treat it as immutable afterwards.
type Settings struct {
	CanvasWidth  int
	CanvasHeight int
	DPI          int
	Background   color.NRGBA

	FrameThickness int
	Spacing        int

	RoundedCorners bool
	CornerRadius   int

	DropShadow    bool
	ShadowOffsetX int
	ShadowOffsetY int
	ShadowBlur    int
	ShadowColor   color.NRGBA

	ImagesPerCollage int
	Shape            Shape
}

// DefaultSettings mirrors the defaults of the original generator: a 3000x3000
// white canvas at 300 DPI, 50 photos per collage, rounded corners and a soft
// drop shadow, square silhouette.
func DefaultSettings() Settings {
	return Settings{
		CanvasWidth:      DefaultCanvasWidth,
		CanvasHeight:     DefaultCanvasHeight,
		DPI:              DefaultDPI,
		Background:       color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		FrameThickness:   DefaultFrameThickness,
		Spacing:          DefaultSpacing,
		RoundedCorners:   true,
		CornerRadius:     DefaultCornerRadius,
		DropShadow:       true,
		ShadowOffsetX:    DefaultShadowOffsetX,
		ShadowOffsetY:    DefaultShadowOffsetY,
		ShadowBlur:       DefaultShadowBlur,
		ShadowColor:      color.NRGBA{A: 80},
		ImagesPerCollage: DefaultImagesPerCollage,
		Shape:            Square{},
	}
}

// Validate rejects settings the pipeline cannot honor.
func (s Settings) Validate() error {
	if s.CanvasWidth <= 0 || s.CanvasHeight <= 0 {
		return fmt.Errorf("canvas dimensions must be positive, got %dx%d", s.CanvasWidth, s.CanvasHeight)
	}
	if s.ImagesPerCollage <= 0 {
		return fmt.Errorf("images per collage must be positive, got %d", s.ImagesPerCollage)
	}
	if s.DPI <= 0 {
		return fmt.Errorf("dpi must be positive, got %d", s.DPI)
	}
	if s.FrameThickness < 0 {
		return fmt.Errorf("frame thickness must not be negative, got %d", s.FrameThickness)
	}
	if s.Spacing < 0 {
		return fmt.Errorf("spacing must not be negative, got %d", s.Spacing)
	}
	if s.ShadowBlur < 0 {
		return fmt.Errorf("shadow blur must not be negative, got %d", s.ShadowBlur)
	}
	if s.CornerRadius < 0 {
		return fmt.Errorf("corner radius must not be negative, got %d", s.CornerRadius)
	}
	if s.Shape == nil {
		return errors.New("shape must be set")
	}
	return nil
}
