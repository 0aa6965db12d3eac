// Command collage batch-renders photo collages from a folder of images.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Satbir-Singh-42/Photo-Collage-Generator/internal/collage"
)

var rootCmd = &cobra.Command{
	Use:           "collage",
	Short:         "Automated photo collage generator",
	Long:          "Arranges folders of photographs into composite canvases with grid layout, rounded corners, drop shadows and shaped silhouettes, exported as PNG and JPEG.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show the default generation settings",
	Run: func(cmd *cobra.Command, args []string) {
		s := collage.DefaultSettings()
		fmt.Printf("Canvas size:        %dx%d px\n", s.CanvasWidth, s.CanvasHeight)
		fmt.Printf("Resolution:         %d DPI\n", s.DPI)
		fmt.Printf("Images per collage: %d\n", s.ImagesPerCollage)
		fmt.Printf("Outer frame:        %d px\n", s.FrameThickness)
		fmt.Printf("Inner spacing:      %d px\n", s.Spacing)
		fmt.Printf("Rounded corners:    %v (radius %d px)\n", s.RoundedCorners, s.CornerRadius)
		fmt.Printf("Drop shadow:        %v (offset %d,%d blur %d)\n", s.DropShadow, s.ShadowOffsetX, s.ShadowOffsetY, s.ShadowBlur)
		fmt.Printf("Shape:              %s\n", s.Shape)
	},
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	rootCmd.AddCommand(generateCmd, samplesCmd, settingsCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
