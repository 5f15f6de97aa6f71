package chart

import (
	"fmt"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot/vg"
)

// Saver is implemented by *plot.Plot and *hplot.Plot.
type Saver interface {
	Save(w, h vg.Length, file string) error
}

// supportedFormats are the extensions gonum/plot can encode.
var supportedFormats = map[string]struct{}{
	"eps":  {},
	"jpg":  {},
	"jpeg": {},
	"pdf":  {},
	"png":  {},
	"svg":  {},
	"tex":  {},
	"tif":  {},
	"tiff": {},
}

// IsSupported reports whether path has an extension Render can write.
func IsSupported(path string) bool {
	_, ok := supportedFormats[strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))]
	return ok
}

// Render writes s to path with the given size. The image format is
// chosen from the file extension.
func Render(s Saver, path string, size Size) error {
	if !IsSupported(path) {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
	if err := s.Save(size.Width, size.Height, path); err != nil {
		return fmt.Errorf("failed to save chart to %s: %w", path, err)
	}
	return nil
}
