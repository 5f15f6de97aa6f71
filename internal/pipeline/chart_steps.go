package pipeline

import (
	"context"
	"errors"

	"github.com/nao1215/wordhist/internal/chart"
	"github.com/nao1215/wordhist/internal/model"
)

// errNoDestination is recorded when a chart has neither an output path
// nor a viewer to show it in.
var errNoDestination = errors.New("no output path and no viewer")

// chartStep holds what every visualization step needs. A chart is written
// to path when one is set and shown with viewer otherwise.
type chartStep struct {
	stepConfig
	path   string
	viewer *chart.Viewer

	// title and limit are passed to the chart; zero values keep its defaults.
	title string
	limit int
}

// ChartOption configures a visualization step.
type ChartOption func(*chartStep)

// WithChartTitle sets the chart title.
func WithChartTitle(title string) ChartOption {
	return func(s *chartStep) {
		s.title = title
	}
}

// WithChartLimit sets the number of words drawn.
func WithChartLimit(limit int) ChartOption {
	return func(s *chartStep) {
		s.limit = limit
	}
}

// WithViewer shows the chart in v when no output path is set.
func WithViewer(v *chart.Viewer) ChartOption {
	return func(s *chartStep) {
		s.viewer = v
	}
}

// WithStepOptions applies step options to a visualization step.
func WithStepOptions(opts ...StepOption) ChartOption {
	return func(s *chartStep) {
		for _, opt := range opts {
			opt(&s.stepConfig)
		}
	}
}

// newChartStep creates the shared part of a visualization step.
func newChartStep(path string, opts []ChartOption) chartStep {
	s := chartStep{
		stepConfig: newStepConfig(nil),
		path:       path,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// chartOptions converts the step settings for the chart package.
func (s *chartStep) chartOptions() []chart.Option {
	return []chart.Option{chart.WithTitle(s.title), chart.WithLimit(s.limit)}
}

// present renders or shows the chart built by build. Every failure is
// recorded as a skip on the analysis; none of them stop the run. An empty
// word list is reported as a notice rather than an error.
func (s *chartStep) present(
	analysis *model.Analysis,
	step, label string,
	kind model.ArtifactKind,
	size chart.Size,
	build func() (chart.Saver, error),
) {
	skip := func(err error) {
		s.logger.Warn("visualization skipped", "step", step, "error", err)
		analysis.AddSkip(step, err.Error())
		s.printf("Error creating %s: %v\n", label, err)
	}

	p, err := build()
	switch {
	case errors.Is(err, chart.ErrNoData):
		s.logger.Info("visualization skipped", "step", step, "reason", err)
		analysis.AddSkip(step, err.Error())
		s.printf("No words to display in %s\n", label)
		return
	case err != nil:
		skip(err)
		return
	}

	switch {
	case s.path != "":
		if err := chart.Render(p, s.path, size); err != nil {
			skip(err)
			return
		}
		analysis.AddArtifact(kind, s.path)
		s.printf("Saved %s to '%s'\n", label, s.path)
	case s.viewer != nil:
		shown, err := s.viewer.Show(p, step, size)
		if shown == "" {
			skip(err)
			return
		}
		analysis.AddArtifact(kind, shown)
		if err != nil {
			s.logger.Warn("could not open viewer", "path", shown, "error", err)
			s.printf("Could not open a viewer, %s rendered to '%s'\n", label, shown)
			return
		}
		s.logger.Debug("chart displayed", "step", step, "path", shown)
	default:
		skip(errNoDestination)
	}
}

// BarChartStep draws the histogram of the most frequent words.
type BarChartStep struct {
	chartStep
}

// NewBarChartStep creates a BarChartStep. An empty path shows the chart
// in the viewer instead of saving it.
func NewBarChartStep(path string, opts ...ChartOption) *BarChartStep {
	return &BarChartStep{chartStep: newChartStep(path, opts)}
}

// Name returns the step name.
func (s *BarChartStep) Name() string {
	return "histogram"
}

// Do builds and presents the bar chart.
func (s *BarChartStep) Do(_ context.Context, analysis *model.Analysis) error {
	if s.path == "" {
		limit := s.limit
		if limit <= 0 {
			limit = chart.DefaultLimit
		}
		s.printf("Displaying histogram of the %d most common words...\n", limit)
	}
	s.present(analysis, s.Name(), "histogram", model.ArtifactBarChart, chart.BarSize,
		func() (chart.Saver, error) {
			return chart.Bar(analysis.Ranked, s.chartOptions()...)
		})
	return nil
}

// WordCloudStep draws the word cloud.
type WordCloudStep struct {
	chartStep
}

// NewWordCloudStep creates a WordCloudStep. An empty path shows the cloud
// in the viewer instead of saving it. The title is not drawn on the cloud.
func NewWordCloudStep(path string, opts ...ChartOption) *WordCloudStep {
	return &WordCloudStep{chartStep: newChartStep(path, opts)}
}

// Name returns the step name.
func (s *WordCloudStep) Name() string {
	return "wordcloud"
}

// Do builds and presents the word cloud.
func (s *WordCloudStep) Do(_ context.Context, analysis *model.Analysis) error {
	s.printf("Generating word cloud visualization...\n")
	s.present(analysis, s.Name(), "word cloud", model.ArtifactWordCloud, chart.CloudSize,
		func() (chart.Saver, error) {
			return chart.WordCloud(analysis.Ranked, chart.WithLimit(s.limit))
		})
	return nil
}

// DistributionStep draws the histogram of word counts.
type DistributionStep struct {
	chartStep
}

// NewDistributionStep creates a DistributionStep writing to path.
// Only step options are honored; the distribution has its own title and
// always covers every word.
func NewDistributionStep(path string, opts ...StepOption) *DistributionStep {
	return &DistributionStep{chartStep: newChartStep(path, []ChartOption{WithStepOptions(opts...)})}
}

// Name returns the step name.
func (s *DistributionStep) Name() string {
	return "distribution"
}

// Do builds and saves the distribution histogram.
func (s *DistributionStep) Do(_ context.Context, analysis *model.Analysis) error {
	s.present(analysis, s.Name(), "distribution", model.ArtifactDistribution, chart.DistributionSize,
		func() (chart.Saver, error) {
			return chart.Distribution(analysis.Ranked)
		})
	return nil
}
