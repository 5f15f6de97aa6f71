package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/nao1215/wordhist/internal/model"
)

// filePerm is the permission used for exported files.
const filePerm = 0644

// ToFile passes a temporary file next to path to write, then renames it
// over path. A failed export leaves any previous file at path untouched
// and no partial output behind. The parent directory must already exist.
// Every failure is reported as ErrWrite.
func ToFile(path string, write func(io.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = os.Remove(tmpPath)
		}
	}()

	if err := write(tmp); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: %s: %w", ErrWrite, path, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: %s: %w", ErrWrite, path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWrite, path, err)
	}
	if err := os.Chmod(tmpPath, filePerm); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWrite, path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	success = true
	return nil
}

// WriteText writes list to path in the fixed-width text format.
func WriteText(list model.RankedList, path string) error {
	return ToFile(path, func(w io.Writer) error {
		_, err := NewTextWriter(w).Write(list)
		return err
	})
}

// WriteSpreadsheet writes list to path. The format is chosen from the file
// extension; unknown extensions return ErrUnsupportedFormat without
// touching the file system.
func WriteSpreadsheet(list model.RankedList, path string) error {
	format, err := DetectSpreadsheetFormat(path)
	if err != nil {
		return err
	}

	return ToFile(path, func(w io.Writer) error {
		sw, err := NewSpreadsheetWriter(format, w)
		if err != nil {
			return err
		}
		_, err = sw.Write(list)
		return err
	})
}

// WriteMarkdown writes the markdown report for analysis to path.
func WriteMarkdown(analysis *model.Analysis, path string, opts ...MarkdownWriterOption) error {
	return ToFile(path, func(w io.Writer) error {
		_, err := NewMarkdownWriter(w, opts...).WriteReport(analysis)
		return err
	})
}

// WriteJSON writes the pretty-printed JSON report for analysis to path.
func WriteJSON(analysis *model.Analysis, path string) error {
	return ToFile(path, func(w io.Writer) error {
		_, err := NewJSONWriter(w, WithPrettyPrint()).WriteReport(analysis)
		return err
	})
}
