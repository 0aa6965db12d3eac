// Package source locates and decodes the input photographs for a run.
package source

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// supportedExts are the file extensions accepted by ScanFolder.
var supportedExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".bmp":  true,
	".tiff": true,
	".webp": true,
}

// ScanFolder returns the paths of all supported image files directly inside
// dir, sorted by file name. Subdirectories are not descended into.
func ScanFolder(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scan folder %s: %w", dir, err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if supportedExts[ext] {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}
