package export

import (
	"io"

	"github.com/nao1215/wordhist/internal/model"
)

// Writer writes a ranked list in one output format.
// Returns the number of bytes written and any error encountered.
type Writer interface {
	Write(list model.RankedList) (int, error)
}

// ReportWriter writes a summary of a whole analysis.
type ReportWriter interface {
	WriteReport(analysis *model.Analysis) (int, error)
}

// baseWriter provides common functionality for writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
