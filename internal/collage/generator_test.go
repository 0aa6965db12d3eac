package collage

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
)

func testSettings() Settings {
	s := DefaultSettings()
	s.CanvasWidth, s.CanvasHeight = 300, 300
	return s
}

// writeTestImages writes n decodable JPEGs into dir and returns their paths.
func writeTestImages(t *testing.T, dir string, n int) []string {
	t.Helper()
	paths := make([]string, n)
	for i := range paths {
		path := filepath.Join(dir, fmt.Sprintf("photo_%02d.jpg", i))
		img := imaging.New(100, 100, color.NRGBA{R: uint8(40 * i), G: 120, B: 200, A: 255})
		if err := imaging.Save(img, path); err != nil {
			t.Fatal(err)
		}
		paths[i] = path
	}
	return paths
}

func writeCorruptImage(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("this is not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunNoInput(t *testing.T) {
	gen, err := NewGenerator(testSettings())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := gen.Run(context.Background(), nil, t.TempDir()); !errors.Is(err, ErrNoInput) {
		t.Fatalf("err = %v, want ErrNoInput", err)
	}
}

func TestRunSingleGroupWithCorruptImage(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()

	refs := writeTestImages(t, in, 9)
	corrupt := writeCorruptImage(t, in, "broken.jpg")
	refs = append(refs, corrupt)

	gen, err := NewGenerator(testSettings())
	if err != nil {
		t.Fatal(err)
	}

	var results []GroupResult
	gen.OnGroup = func(r GroupResult) { results = append(results, r) }

	report, err := gen.Run(context.Background(), refs, out)
	if err != nil {
		t.Fatal(err)
	}

	if report.GroupsAttempted != 1 || report.GroupsProduced != 1 {
		t.Errorf("report = %+v, want 1 attempted, 1 produced", report)
	}
	if len(report.Failed) != 1 || report.Failed[0] != corrupt {
		t.Errorf("failed refs = %v, want exactly [%s]", report.Failed, corrupt)
	}
	if len(results) != 1 {
		t.Fatalf("callback fired %d times, want 1", len(results))
	}
	if results[0].Rendered != 9 {
		t.Errorf("rendered = %d, want 9", results[0].Rendered)
	}
	for _, name := range []string{"collage_01.png", "collage_01.jpg"} {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Errorf("missing output %s: %v", name, err)
		}
	}
}

func TestRunMultipleGroups(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	refs := writeTestImages(t, in, 5)

	s := testSettings()
	s.ImagesPerCollage = 2
	gen, err := NewGenerator(s)
	if err != nil {
		t.Fatal(err)
	}

	report, err := gen.Run(context.Background(), refs, out)
	if err != nil {
		t.Fatal(err)
	}
	if report.GroupsAttempted != 3 || report.GroupsProduced != 3 {
		t.Fatalf("report = %+v, want 3 attempted, 3 produced", report)
	}
	for i := 1; i <= 3; i++ {
		name := fmt.Sprintf("collage_%02d.png", i)
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Errorf("missing output %s: %v", name, err)
		}
	}
}

func TestRunAllCorruptGroupContinues(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()

	refs := []string{
		writeCorruptImage(t, in, "a.jpg"),
		writeCorruptImage(t, in, "b.jpg"),
	}
	refs = append(refs, writeTestImages(t, in, 1)...)

	s := testSettings()
	s.ImagesPerCollage = 2 // first group is entirely corrupt
	gen, err := NewGenerator(s)
	if err != nil {
		t.Fatal(err)
	}

	report, err := gen.Run(context.Background(), refs, out)
	if err != nil {
		t.Fatal(err)
	}
	if report.GroupsAttempted != 2 || report.GroupsProduced != 1 {
		t.Fatalf("report = %+v, want 2 attempted, 1 produced", report)
	}
	if len(report.Failed) != 2 {
		t.Errorf("failed refs = %v, want 2 entries", report.Failed)
	}
	if _, err := os.Stat(filepath.Join(out, "collage_01.png")); err == nil {
		t.Error("empty group must not produce output")
	}
	if _, err := os.Stat(filepath.Join(out, "collage_02.png")); err != nil {
		t.Errorf("second group output missing: %v", err)
	}
}

func TestRunCancelledBeforeStart(t *testing.T) {
	in := t.TempDir()
	refs := writeTestImages(t, in, 2)

	gen, err := NewGenerator(testSettings())
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := gen.Run(ctx, refs, t.TempDir())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if report.GroupsAttempted != 0 {
		t.Errorf("attempted %d groups after cancellation, want 0", report.GroupsAttempted)
	}
}

// Cancelling between groups stops the run at the next boundary; the groups
// already completed keep their files on disk.
func TestRunCancelledBetweenGroups(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	refs := writeTestImages(t, in, 4)

	s := testSettings()
	s.ImagesPerCollage = 2
	gen, err := NewGenerator(s)
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	gen.OnGroup = func(r GroupResult) {
		if r.Index == 1 {
			cancel()
		}
	}

	report, err := gen.Run(ctx, refs, out)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if report.GroupsAttempted != 1 || report.GroupsProduced != 1 {
		t.Errorf("report = %+v, want exactly the first group attempted and produced", report)
	}
	for _, name := range []string{"collage_01.png", "collage_01.jpg"} {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Errorf("completed group output %s missing: %v", name, err)
		}
	}
	if _, err := os.Stat(filepath.Join(out, "collage_02.png")); err == nil {
		t.Error("group after cancellation must not be attempted")
	}
}

func TestNewGeneratorRejectsInvalidSettings(t *testing.T) {
	s := testSettings()
	s.ImagesPerCollage = 0
	if _, err := NewGenerator(s); err == nil {
		t.Fatal("expected settings validation error")
	}
}
