package discover

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// WebPExt is the target extension for converted files.
const WebPExt = ".webp"

// Supported raster extensions (lowercase, with leading dot).
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	WebPExt: true,
}

// WorkItem describes one file to convert or copy. Items are created here and
// owned by the batch runner until consumed.
type WorkItem struct {
	// InputPath is the absolute or caller-relative path to the source file.
	InputPath string
	// OutputPath mirrors InputPath under the output root, with the extension
	// rewritten to .webp unless the source is already WebP.
	OutputPath string
	// RelPath is the source path relative to the input root.
	RelPath string
	// AlreadyWebP marks sources that are copied verbatim instead of encoded.
	AlreadyWebP bool
}

// Discover walks inputRoot and returns one WorkItem per supported image file,
// in lexicographic traversal order. Hidden directories are descended into.
// Any directory read failure aborts discovery: a partial file set would make
// the run's totals inconsistent.
func Discover(inputRoot, outputRoot string) ([]WorkItem, error) {
	var items []WorkItem
	err := filepath.WalkDir(inputRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if !imageExtensions[ext] {
			return nil
		}

		rel, err := filepath.Rel(inputRoot, path)
		if err != nil {
			return fmt.Errorf("relativize %s: %w", path, err)
		}

		item := WorkItem{
			InputPath:   path,
			RelPath:     rel,
			AlreadyWebP: ext == WebPExt,
		}
		if item.AlreadyWebP {
			item.OutputPath = filepath.Join(outputRoot, rel)
		} else {
			item.OutputPath = filepath.Join(outputRoot, replaceExt(rel, WebPExt))
		}
		items = append(items, item)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("discover %s: %w", inputRoot, err)
	}
	return items, nil
}

// DeriveOutputRoot returns the fixed output location for an input folder:
// a sibling directory named "<input-basename>-webp".
func DeriveOutputRoot(inputRoot string) string {
	cleaned := filepath.Clean(inputRoot)
	return filepath.Join(filepath.Dir(cleaned), filepath.Base(cleaned)+"-webp")
}

// replaceExt swaps the final extension of rel for newExt. rel is known to
// have a supported extension, so the result never doubles up.
func replaceExt(rel, newExt string) string {
	return strings.TrimSuffix(rel, filepath.Ext(rel)) + newExt
}
