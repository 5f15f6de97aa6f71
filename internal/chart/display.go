package chart

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/browser"
)

// Opener opens a file in the system viewer.
type Opener func(path string) error

// Viewer shows charts by rendering them into a directory and handing the
// file to the system viewer.
type Viewer struct {
	dir  string
	open Opener
}

// ViewerOption configures a Viewer.
type ViewerOption func(*Viewer)

// WithOpener replaces the system viewer.
func WithOpener(open Opener) ViewerOption {
	return func(v *Viewer) {
		v.open = open
	}
}

// NewViewer creates a Viewer that renders into dir.
func NewViewer(dir string, opts ...ViewerOption) *Viewer {
	v := &Viewer{
		dir:  dir,
		open: browser.OpenFile,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Show renders s as name.png and opens it. The rendered path is returned
// even when opening fails, so the caller can point the user at it.
func (v *Viewer) Show(s Saver, name string, size Size) (string, error) {
	if err := os.MkdirAll(v.dir, 0o750); err != nil {
		return "", fmt.Errorf("failed to create directory %s: %w", v.dir, err)
	}

	path := filepath.Join(v.dir, name+".png")
	if err := Render(s, path, size); err != nil {
		return "", err
	}
	if err := v.open(path); err != nil {
		return path, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return path, nil
}
