package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/nao1215/wordhist/internal/export"
	"github.com/nao1215/wordhist/internal/freq"
	"github.com/nao1215/wordhist/internal/model"
	"github.com/nao1215/wordhist/internal/source"
)

// stepConfig holds the settings shared by all steps.
type stepConfig struct {
	// logger receives diagnostics.
	logger *slog.Logger

	// out receives the user-facing progress lines.
	out io.Writer
}

// StepOption configures a step.
type StepOption func(*stepConfig)

// WithStepLogger sets the logger used by a step.
func WithStepLogger(logger *slog.Logger) StepOption {
	return func(c *stepConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithOutput sets where a step prints its progress lines.
func WithOutput(w io.Writer) StepOption {
	return func(c *stepConfig) {
		if w != nil {
			c.out = w
		}
	}
}

// newStepConfig applies opts over a silent default.
func newStepConfig(opts []StepOption) stepConfig {
	c := stepConfig{
		logger: slog.Default(),
		out:    io.Discard,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// printf writes a progress line. Terminal write errors are not actionable.
func (c stepConfig) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}

// ReadStep loads the input file into the analysis.
type ReadStep struct {
	stepConfig

	// progress receives the read progress bar. Nil disables it.
	progress io.Writer
}

// NewReadStep creates a ReadStep. A non-nil progress writer shows a
// progress bar while the file is read.
func NewReadStep(progress io.Writer, opts ...StepOption) *ReadStep {
	return &ReadStep{
		stepConfig: newStepConfig(opts),
		progress:   progress,
	}
}

// Name returns the step name.
func (s *ReadStep) Name() string {
	return "read"
}

// Do reads analysis.Source into analysis.Text.
func (s *ReadStep) Do(_ context.Context, analysis *model.Analysis) error {
	s.printf("Analyzing text from '%s'...\n", analysis.Source)

	text, err := source.Read(analysis.Source, source.WithProgress(s.progress))
	if err != nil {
		return fmt.Errorf("error reading file: %w", err)
	}
	analysis.Text = text

	s.logger.Debug("input loaded", "path", analysis.Source, "bytes", len(text))
	return nil
}

// CountStep tokenizes the text and ranks the words.
type CountStep struct {
	stepConfig
}

// NewCountStep creates a CountStep.
func NewCountStep(opts ...StepOption) *CountStep {
	return &CountStep{stepConfig: newStepConfig(opts)}
}

// Name returns the step name.
func (s *CountStep) Name() string {
	return "count"
}

// Do fills analysis.Ranked and analysis.TokenCount and releases the raw text.
func (s *CountStep) Do(_ context.Context, analysis *model.Analysis) error {
	table := freq.Count(analysis.Text)
	analysis.TokenCount = table.Total()
	analysis.Ranked = freq.Rank(table)
	analysis.Text = ""

	s.logger.Debug("words counted",
		"total", analysis.TokenCount,
		"unique", analysis.UniqueWords(),
	)
	return nil
}

// SummaryStep prints the most frequent words and the totals.
type SummaryStep struct {
	stepConfig

	// top is the number of words listed.
	top int
}

// NewSummaryStep creates a SummaryStep listing the top words.
func NewSummaryStep(top int, opts ...StepOption) *SummaryStep {
	return &SummaryStep{
		stepConfig: newStepConfig(opts),
		top:        top,
	}
}

// Name returns the step name.
func (s *SummaryStep) Name() string {
	return "summary"
}

// Do writes the summary to the step output.
func (s *SummaryStep) Do(_ context.Context, analysis *model.Analysis) error {
	if _, err := export.NewSummaryWriter(s.out, s.top).WriteReport(analysis); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}

// TextExportStep writes the fixed-width text export.
type TextExportStep struct {
	stepConfig
	path string
}

// NewTextExportStep creates a TextExportStep writing to path.
func NewTextExportStep(path string, opts ...StepOption) *TextExportStep {
	return &TextExportStep{
		stepConfig: newStepConfig(opts),
		path:       path,
	}
}

// Name returns the step name.
func (s *TextExportStep) Name() string {
	return "text_export"
}

// Do writes the ranked list to the text file.
func (s *TextExportStep) Do(_ context.Context, analysis *model.Analysis) error {
	if err := export.WriteText(analysis.Ranked, s.path); err != nil {
		return fmt.Errorf("error saving results: %w", err)
	}
	analysis.AddArtifact(model.ArtifactText, s.path)
	s.printf("Text results saved to '%s'\n", s.path)
	return nil
}

// SpreadsheetExportStep writes the xlsx or csv export.
type SpreadsheetExportStep struct {
	stepConfig
	path string
}

// NewSpreadsheetExportStep creates a SpreadsheetExportStep writing to path.
func NewSpreadsheetExportStep(path string, opts ...StepOption) *SpreadsheetExportStep {
	return &SpreadsheetExportStep{
		stepConfig: newStepConfig(opts),
		path:       path,
	}
}

// Name returns the step name.
func (s *SpreadsheetExportStep) Name() string {
	return "spreadsheet_export"
}

// Do writes the ranked list to the spreadsheet. An unsupported extension
// is skipped with a warning; any other failure stops the run.
func (s *SpreadsheetExportStep) Do(_ context.Context, analysis *model.Analysis) error {
	err := export.WriteSpreadsheet(analysis.Ranked, s.path)
	switch {
	case errors.Is(err, export.ErrUnsupportedFormat):
		s.logger.Warn("spreadsheet export skipped", "path", s.path, "error", err)
		analysis.AddSkip(s.Name(), err.Error())
		s.printf("Spreadsheet output skipped: %v\n", err)
		return nil
	case err != nil:
		return fmt.Errorf("error saving results: %w", err)
	}

	analysis.AddArtifact(model.ArtifactSpreadsheet, s.path)
	s.printf("Excel results saved to '%s'\n", s.path)
	return nil
}

// MarkdownExportStep writes the markdown report.
type MarkdownExportStep struct {
	stepConfig
	path   string
	mdOpts []export.MarkdownWriterOption
}

// NewMarkdownExportStep creates a MarkdownExportStep writing to path.
func NewMarkdownExportStep(path string, mdOpts []export.MarkdownWriterOption, opts ...StepOption) *MarkdownExportStep {
	return &MarkdownExportStep{
		stepConfig: newStepConfig(opts),
		path:       path,
		mdOpts:     mdOpts,
	}
}

// Name returns the step name.
func (s *MarkdownExportStep) Name() string {
	return "markdown_export"
}

// Do writes the markdown report.
func (s *MarkdownExportStep) Do(_ context.Context, analysis *model.Analysis) error {
	if err := export.WriteMarkdown(analysis, s.path, s.mdOpts...); err != nil {
		return fmt.Errorf("error saving report: %w", err)
	}
	analysis.AddArtifact(model.ArtifactMarkdown, s.path)
	s.printf("Markdown report saved to '%s'\n", s.path)
	return nil
}

// JSONExportStep writes the JSON report.
type JSONExportStep struct {
	stepConfig
	path string
}

// NewJSONExportStep creates a JSONExportStep writing to path.
func NewJSONExportStep(path string, opts ...StepOption) *JSONExportStep {
	return &JSONExportStep{
		stepConfig: newStepConfig(opts),
		path:       path,
	}
}

// Name returns the step name.
func (s *JSONExportStep) Name() string {
	return "json_export"
}

// Do writes the JSON report.
func (s *JSONExportStep) Do(_ context.Context, analysis *model.Analysis) error {
	if err := export.WriteJSON(analysis, s.path); err != nil {
		return fmt.Errorf("error saving report: %w", err)
	}
	analysis.AddArtifact(model.ArtifactJSON, s.path)
	s.printf("JSON report saved to '%s'\n", s.path)
	return nil
}
