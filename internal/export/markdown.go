package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
	"github.com/nao1215/wordhist/internal/model"
)

// DefaultMarkdownTop is the number of words listed in the markdown report
// when no limit is configured.
const DefaultMarkdownTop = 30

// maxPieSlices caps the pie chart; more slices make mermaid charts unreadable.
const maxPieSlices = 10

// MarkdownWriter outputs a summary report in GitHub Flavored Markdown.
type MarkdownWriter struct {
	baseWriter

	// top is the number of words listed in the table.
	top int

	// title is the report heading.
	title string
}

// MarkdownWriterOption configures a MarkdownWriter.
type MarkdownWriterOption func(*MarkdownWriter)

// WithMarkdownTop sets how many words are listed in the report.
// A non-positive value lists every word.
func WithMarkdownTop(top int) MarkdownWriterOption {
	return func(w *MarkdownWriter) {
		w.top = top
	}
}

// WithMarkdownTitle sets the report heading.
func WithMarkdownTitle(title string) MarkdownWriterOption {
	return func(w *MarkdownWriter) {
		if title != "" {
			w.title = title
		}
	}
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer, opts ...MarkdownWriterOption) *MarkdownWriter {
	w := &MarkdownWriter{
		baseWriter: newBaseWriter(output),
		top:        DefaultMarkdownTop,
		title:      "Word Frequency Report",
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// WriteReport outputs the analysis in Markdown format.
func (w *MarkdownWriter) WriteReport(analysis *model.Analysis) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, analysis)
	w.writeWords(md, analysis.Ranked)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the report title and the summary table.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, analysis *model.Analysis) {
	md.H1(w.title)
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Source", "`" + analysis.Source + "`"},
			{"Analyzed", analysis.StartedAt.Format("2006-01-02 15:04:05 MST")},
			{"Total Words", strconv.Itoa(analysis.Ranked.Total())},
			{"Unique Words", strconv.Itoa(analysis.Ranked.Unique())},
		},
	})
	md.PlainText("")
}

// writeWords writes the top words table and the pie chart.
func (w *MarkdownWriter) writeWords(md *markdown.Markdown, list model.RankedList) {
	md.H2("Top Words")
	md.PlainText("")

	if len(list) == 0 {
		md.Note("No words found in the input.")
		md.PlainText("")
		return
	}

	top := list.Top(w.top)
	total := list.Total()

	rows := make([][]string, len(top))
	for i, e := range top {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			e.Word,
			strconv.Itoa(e.Count),
			share(e.Count, total),
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Rank", "Word", "Count", "Share"},
		Rows:   rows,
	})
	md.PlainText("")

	if len(top) < len(list) {
		md.PlainTextf("Showing %d of %d unique words.", len(top), len(list))
		md.PlainText("")
	}

	w.writePieChart(md, list)
}

// writePieChart writes a mermaid pie chart of the most frequent words.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, list model.RankedList) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Most Frequent Words"),
		piechart.WithShowData(true),
	)

	for _, e := range list.Top(maxPieSlices) {
		chart.LabelAndIntValue(e.Word, uint64(e.Count)) //nolint:gosec // counts are always positive
	}

	md.H2("Distribution")
	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [wordhist](https://github.com/nao1215/wordhist)*")
}

// share formats count as a percentage of total with one decimal place.
func share(count, total int) string {
	if total == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", float64(count)*100/float64(total))
}
