package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/wordhist/internal/model"
)

// SummaryWriter outputs a human-readable summary for terminal display:
// the most frequent words in a small table followed by totals.
type SummaryWriter struct {
	baseWriter

	// top is the number of words listed. Zero hides the table.
	top int
}

// NewSummaryWriter creates a SummaryWriter that lists the top words.
func NewSummaryWriter(output io.Writer, top int) *SummaryWriter {
	return &SummaryWriter{
		baseWriter: newBaseWriter(output),
		top:        top,
	}
}

// WriteReport outputs the summary.
func (w *SummaryWriter) WriteReport(analysis *model.Analysis) (int, error) {
	var sb strings.Builder
	list := analysis.Ranked

	if w.top > 0 && len(list) > 0 {
		sb.WriteString("\nTop words by frequency:\n")
		sb.WriteString(strings.Repeat("-", 30) + "\n")
		fmt.Fprintf(&sb, "%-10s %s\n", "COUNT", "WORD")
		sb.WriteString(strings.Repeat("-", 30) + "\n")
		for _, e := range list.Top(w.top) {
			fmt.Fprintf(&sb, "%-10d %s\n", e.Count, e.Word)
		}
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "Found %d unique words from %d total words.\n", list.Unique(), list.Total())

	return io.WriteString(w.output, sb.String())
}
