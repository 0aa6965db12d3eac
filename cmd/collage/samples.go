package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Satbir-Singh-42/Photo-Collage-Generator/internal/sample"
)

var samplesOpts struct {
	output string
	count  int
}

var samplesCmd = &cobra.Command{
	Use:   "samples",
	Short: "Generate sample images for testing the generator",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("Generating %d sample images in %s...\n", samplesOpts.count, samplesOpts.output)
		if err := sample.Generate(samplesOpts.output, samplesOpts.count); err != nil {
			return err
		}
		fmt.Println("Done.")
		return nil
	},
}

func init() {
	f := samplesCmd.Flags()
	f.StringVarP(&samplesOpts.output, "output", "o", "images", "folder to write sample images into")
	f.IntVarP(&samplesOpts.count, "count", "c", 100, "number of sample images to generate")
}
