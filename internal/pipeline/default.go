package pipeline

import (
	"io"

	"github.com/nao1215/wordhist/internal/chart"
	"github.com/nao1215/wordhist/internal/config"
	"github.com/nao1215/wordhist/internal/export"
)

// Streams are the terminal outputs a run writes to.
type Streams struct {
	// Out receives progress lines and the summary.
	Out io.Writer

	// Err receives the read progress bar.
	Err io.Writer
}

// DefaultPipeline creates the pipeline described by cfg: read, count,
// summary, then every enabled export and chart in a fixed order.
// Charts without a save path are shown with viewer; a nil viewer skips them.
func DefaultPipeline(cfg *config.Config, streams Streams, viewer *chart.Viewer, pipelineOpts ...Option) *Pipeline {
	p := New(pipelineOpts...)
	stepOpts := []StepOption{WithStepLogger(p.logger), WithOutput(streams.Out)}

	var progress io.Writer
	if cfg.Progress {
		progress = streams.Err
	}

	p.AddSteps(
		NewReadStep(progress, stepOpts...),
		NewCountStep(stepOpts...),
		NewSummaryStep(cfg.Top, stepOpts...),
	)

	if cfg.TextOutput != "" {
		p.AddStep(NewTextExportStep(cfg.TextOutput, stepOpts...))
	}
	if cfg.ExcelOutput != "" {
		p.AddStep(NewSpreadsheetExportStep(cfg.ExcelOutput, stepOpts...))
	}
	if cfg.MarkdownOutput != "" {
		mdOpts := []export.MarkdownWriterOption{export.WithMarkdownTop(cfg.Limit)}
		p.AddStep(NewMarkdownExportStep(cfg.MarkdownOutput, mdOpts, stepOpts...))
	}
	if cfg.JSONOutput != "" {
		p.AddStep(NewJSONExportStep(cfg.JSONOutput, stepOpts...))
	}

	chartOpts := []ChartOption{
		WithChartLimit(cfg.Limit),
		WithViewer(viewer),
		WithStepOptions(stepOpts...),
	}
	if !cfg.NoPlot {
		p.AddStep(NewBarChartStep(cfg.SavePlot, append(chartOpts, WithChartTitle(cfg.Title))...))
	}
	if cfg.WordCloud {
		p.AddStep(NewWordCloudStep(cfg.WordCloudPath(), chartOpts...))
	}
	if cfg.SaveDistribution != "" {
		p.AddStep(NewDistributionStep(cfg.SaveDistribution, stepOpts...))
	}

	return p
}
