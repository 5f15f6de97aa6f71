package source

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/cheggaaa/pb/v3"
)

// options holds the settings for Read.
type options struct {
	progress io.Writer
}

// Option configures Read.
type Option func(*options)

// WithProgress shows a byte progress bar on w while the file is read.
// A nil writer disables the bar.
func WithProgress(w io.Writer) Option {
	return func(o *options) {
		o.progress = w
	}
}

// Read returns the full text content of the file at path.
func Read(path string, opts ...Option) (string, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	f, err := os.Open(path) //nolint:gosec // User-provided input path is intentional
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", ErrNotFound, path)
	}

	var r io.Reader = f
	if o.progress != nil {
		bar := pb.New64(info.Size()).
			SetWriter(o.progress).
			Set(pb.Bytes, true).
			Start()
		defer bar.Finish()
		r = bar.NewProxyReader(f)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %s", ErrDecode, path)
	}

	return string(data), nil
}
