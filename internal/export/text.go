package export

import (
	"bufio"
	"fmt"
	"io"

	"github.com/nao1215/wordhist/internal/model"
)

// TextWriter writes one line per entry: the count left-justified in a
// 10-character column, a space, then the word.
//
//	3          words
//	2          this
type TextWriter struct {
	baseWriter
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer) *TextWriter {
	return &TextWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs every entry of list in rank order.
func (w *TextWriter) Write(list model.RankedList) (int, error) {
	bw := bufio.NewWriter(w.output)

	total := 0
	for _, e := range list {
		n, err := fmt.Fprintf(bw, "%-10d %s\n", e.Count, e.Word)
		total += n
		if err != nil {
			return total, err
		}
	}

	return total, bw.Flush()
}
