package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Satbir-Singh-42/Photo-Collage-Generator/internal/collage"
	"github.com/Satbir-Singh-42/Photo-Collage-Generator/internal/source"
)

var generateOpts struct {
	input      string
	output     string
	perCollage int
	size       string
	dpi        int
	shape      string
	noCorners  bool
	noShadow   bool
	frame      int
	spacing    int
	customMask string
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render all collages for a folder of images",
	RunE:  runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringVarP(&generateOpts.input, "input", "i", "images", "input folder containing images")
	f.StringVarP(&generateOpts.output, "output", "o", "Auto-Generated-Collages", "output folder for collages")
	f.IntVarP(&generateOpts.perCollage, "images-per-collage", "n", collage.DefaultImagesPerCollage, "number of images per collage")
	f.StringVarP(&generateOpts.size, "size", "s", "3000x3000", "canvas size WIDTHxHEIGHT")
	f.IntVar(&generateOpts.dpi, "dpi", collage.DefaultDPI, "output resolution in DPI")
	f.StringVar(&generateOpts.shape, "shape", "square", "collage shape: square, rectangle, circle or heart")
	f.BoolVar(&generateOpts.noCorners, "no-rounded-corners", false, "disable rounded corners on images")
	f.BoolVar(&generateOpts.noShadow, "no-shadow", false, "disable drop shadow on images")
	f.IntVar(&generateOpts.frame, "frame", collage.DefaultFrameThickness, "outer frame thickness in pixels")
	f.IntVar(&generateOpts.spacing, "spacing", collage.DefaultSpacing, "inner spacing between images in pixels")
	f.StringVar(&generateOpts.customMask, "custom-mask", "", "path to a custom grayscale mask image")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	width, height, err := parseSize(generateOpts.size)
	if err != nil {
		return err
	}
	shape, err := collage.ParseShape(generateOpts.shape, generateOpts.customMask)
	if err != nil {
		return err
	}

	settings := collage.DefaultSettings()
	settings.CanvasWidth = width
	settings.CanvasHeight = height
	settings.DPI = generateOpts.dpi
	settings.ImagesPerCollage = generateOpts.perCollage
	settings.FrameThickness = generateOpts.frame
	settings.Spacing = generateOpts.spacing
	settings.RoundedCorners = !generateOpts.noCorners
	settings.DropShadow = !generateOpts.noShadow
	settings.Shape = shape

	gen, err := collage.NewGenerator(settings)
	if err != nil {
		return err
	}

	refs, err := source.ScanFolder(generateOpts.input)
	if err != nil {
		return err
	}
	if len(refs) == 0 {
		return fmt.Errorf("no images found in %s", generateOpts.input)
	}
	fmt.Printf("Found %d images in %s\n", len(refs), generateOpts.input)

	gen.OnGroup = func(res collage.GroupResult) {
		switch {
		case res.Empty():
			fmt.Printf("Collage %d: skipped, no decodable images\n", res.Index)
		case res.Err != nil:
			fmt.Printf("Collage %d: %d images, export incomplete: %v\n", res.Index, res.Rendered, res.Err)
		default:
			fmt.Printf("Collage %d: %d images -> %s, %s\n", res.Index, res.Rendered, res.PNGPath, res.JPGPath)
		}
	}

	report, err := gen.Run(cmd.Context(), refs, generateOpts.output)
	if err != nil {
		return err
	}

	fmt.Printf("\nTotal collages generated: %d/%d\n", report.GroupsProduced, report.GroupsAttempted)
	fmt.Printf("Output folder: %s\n", generateOpts.output)
	if n := len(report.Failed); n > 0 {
		fmt.Printf("Skipped %d corrupted/unreadable images:\n", n)
		for i, ref := range report.Failed {
			if i == 10 {
				fmt.Printf("  ... and %d more\n", n-10)
				break
			}
			fmt.Printf("  - %s\n", ref)
		}
	}
	return nil
}

func parseSize(s string) (width, height int, err error) {
	parts := strings.SplitN(strings.ToLower(s), "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid size %q, expected WIDTHxHEIGHT", s)
	}
	width, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid size %q: %w", s, err)
	}
	height, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid size %q: %w", s, err)
	}
	return width, height, nil
}
