package export

import (
	"encoding/json"
	"io"

	"github.com/nao1215/wordhist/internal/model"
)

// JSONWriter outputs the analysis in JSON format.
// This format is designed for tool integration and programmatic processing.
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	indent bool
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithPrettyPrint enables pretty-printed JSON with two-space indentation.
func WithPrettyPrint() JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// JSONReport is the document written by JSONWriter.
type JSONReport struct {
	// Source is the input file path.
	Source string `json:"source"`

	// TotalWords is the number of tokens after normalization.
	TotalWords int `json:"total_words"`

	// UniqueWords is the number of distinct tokens.
	UniqueWords int `json:"unique_words"`

	// Words holds every entry in rank order.
	Words model.RankedList `json:"words"`
}

// WriteReport outputs the analysis as a JSONReport document.
func (w *JSONWriter) WriteReport(analysis *model.Analysis) (int, error) {
	words := analysis.Ranked
	if words == nil {
		words = model.RankedList{}
	}

	doc := JSONReport{
		Source:      analysis.Source,
		TotalWords:  words.Total(),
		UniqueWords: words.Unique(),
		Words:       words,
	}

	var data []byte
	var err error
	if w.indent {
		data, err = json.MarshalIndent(doc, "", "  ")
	} else {
		data, err = json.Marshal(doc)
	}
	if err != nil {
		return 0, err
	}

	// Add trailing newline for better terminal output
	data = append(data, '\n')

	return w.output.Write(data)
}
