package collage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Satbir-Singh-42/Photo-Collage-Generator/internal/export"
	"github.com/Satbir-Singh-42/Photo-Collage-Generator/internal/layout"
	"github.com/Satbir-Singh-42/Photo-Collage-Generator/internal/source"
	"github.com/Satbir-Singh-42/Photo-Collage-Generator/internal/util"
)

// ErrNoInput reports a run started with an empty source list. It is the only
// condition that aborts a run before any group is processed.
var ErrNoInput = errors.New("no input images")

// GroupResult describes the outcome of one group, passed to the per-group
// callback after the export attempt.
type GroupResult struct {
	Index    int      // 1-based sequential group index
	Refs     []string // source refs assigned to the group
	Failed   []string // refs that failed to decode
	Rendered int      // images actually composed onto the canvas
	PNGPath  string   // written lossless output, empty on failure
	JPGPath  string   // written lossy output, empty on failure
	Err      error    // compose or export error, nil on full success
}

// Empty reports whether the whole group had zero decodable images.
func (r GroupResult) Empty() bool {
	return r.Rendered == 0
}

// Report summarizes a completed run.
type Report struct {
	GroupsAttempted int
	GroupsProduced  int      // groups with at least one output file written
	Failed          []string // every ref that failed to decode, in input order
}

// Generator drives the full pipeline: partition the source list, then load,
// compose and export each group strictly in sequence. A Generator holds no
// state across runs; concurrent runs need separate Settings only because the
// caller may mutate them.
type Generator struct {
	Settings Settings
	Exporter export.Exporter

	// OnGroup, when set, is invoked after each group's export attempt,
	// whether it succeeded or not.
	OnGroup func(GroupResult)
}

// NewGenerator validates the settings and returns a ready generator.
func NewGenerator(s Settings) (*Generator, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return &Generator{
		Settings: s,
		Exporter: export.Exporter{DPI: s.DPI},
	}, nil
}

// Run processes every group of refs and writes the outputs into outDir,
// creating it if needed. Groups are numbered sequentially from 1. The
// context is checked only at group boundaries; each completed group's output
// is already durably written when cancellation is observed.
func (g *Generator) Run(ctx context.Context, refs []string, outDir string) (Report, error) {
	var report Report

	if len(refs) == 0 {
		return report, ErrNoInput
	}
	if err := util.EnsureDir(outDir); err != nil {
		return report, fmt.Errorf("output folder %s: %w", outDir, err)
	}

	groups := layout.Partition(refs, g.Settings.ImagesPerCollage)
	slog.Info("starting run",
		"images", len(refs),
		"groups", len(groups),
		"per_collage", g.Settings.ImagesPerCollage,
		"shape", g.Settings.Shape.String(),
	)

	for i, group := range groups {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		res := g.runGroup(i+1, group, outDir)
		report.GroupsAttempted++
		report.Failed = append(report.Failed, res.Failed...)
		if res.PNGPath != "" || res.JPGPath != "" {
			report.GroupsProduced++
		}
		if g.OnGroup != nil {
			g.OnGroup(res)
		}
	}

	return report, nil
}

func (g *Generator) runGroup(index int, refs []string, outDir string) GroupResult {
	res := GroupResult{Index: index, Refs: refs}

	images, failed := source.LoadGroup(refs)
	res.Failed = failed
	res.Rendered = len(images)

	canvas, err := Compose(images, g.Settings)
	if err != nil {
		res.Err = err
		slog.Warn("group skipped", "group", index, "error", err)
		return res
	}

	res.PNGPath, res.JPGPath, res.Err = g.Exporter.Export(canvas, outDir, index)
	if res.Err != nil {
		slog.Warn("export incomplete", "group", index, "error", res.Err)
	} else {
		slog.Info("group complete", "group", index, "images", res.Rendered, "png", res.PNGPath, "jpg", res.JPGPath)
	}
	return res
}
