package pipeline

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/nao1215/wordhist/internal/chart"
	"github.com/nao1215/wordhist/internal/export"
	"github.com/nao1215/wordhist/internal/model"
	"github.com/nao1215/wordhist/internal/source"
)

// cancelStep cancels the run when it executes.
type cancelStep struct {
	cancel context.CancelFunc
}

func (s cancelStep) Do(_ context.Context, _ *model.Analysis) error {
	s.cancel()
	return nil
}

func (s cancelStep) Name() string {
	return "cancel"
}

// TestPipelineNew tests the Pipeline constructor.
func TestPipelineNew(t *testing.T) {
	t.Parallel()

	t.Run("creates empty pipeline", func(t *testing.T) {
		t.Parallel()

		p := New()
		if p.StepCount() != 0 {
			t.Errorf("expected 0 steps, got %d", p.StepCount())
		}
		if names := p.StepNames(); len(names) != 0 {
			t.Errorf("expected no names, got %v", names)
		}
	})

	t.Run("empty pipeline leaves analysis untouched", func(t *testing.T) {
		t.Parallel()

		analysis := model.NewAnalysis("input.txt")
		if err := New().Execute(context.Background(), analysis); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(analysis.PerformedSteps) != 0 {
			t.Errorf("expected no performed steps, got %v", analysis.PerformedSteps)
		}
	})
}

// TestPipelineAddStep tests that steps keep the order they are added in.
func TestPipelineAddStep(t *testing.T) {
	t.Parallel()

	p := New()
	p.AddStep(NewReadStep(nil))
	p.AddSteps(NewCountStep(), NewSummaryStep(10))
	p.AddStep(NewTextExportStep("out.txt"))

	want := []string{"read", "count", "summary", "text_export"}
	if p.StepCount() != len(want) {
		t.Errorf("expected %d steps, got %d", len(want), p.StepCount())
	}
	if got := p.StepNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

// TestPipelineExecute tests running real steps through the pipeline.
func TestPipelineExecute(t *testing.T) {
	t.Parallel()

	t.Run("runs read count and export in order", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer
		input := writeInput(t, sampleText)
		textPath := filepath.Join(t.TempDir(), "out.txt")

		p := New()
		p.AddSteps(
			NewReadStep(nil, WithOutput(&out)),
			NewCountStep(),
			NewSummaryStep(3, WithOutput(&out)),
			NewTextExportStep(textPath, WithOutput(&out)),
		)

		analysis := model.NewAnalysis(input)
		if err := p.Execute(context.Background(), analysis); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !reflect.DeepEqual(analysis.PerformedSteps, p.StepNames()) {
			t.Errorf("performed %v, want %v", analysis.PerformedSteps, p.StepNames())
		}
		if analysis.TokenCount != 11 || analysis.UniqueWords() != 7 {
			t.Errorf("expected 11 tokens and 7 unique words, got %d and %d",
				analysis.TokenCount, analysis.UniqueWords())
		}
		if analysis.Text != "" {
			t.Error("expected raw text to be released after counting")
		}
		if got, ok := analysis.ArtifactPath(model.ArtifactText); !ok || got != textPath {
			t.Errorf("expected text artifact %q, got %q", textPath, got)
		}

		data, err := os.ReadFile(textPath)
		if err != nil {
			t.Fatalf("expected text export: %v", err)
		}
		if !strings.HasPrefix(string(data), "3          words\n") {
			t.Errorf("unexpected text export: %q", data)
		}

		// Progress lines appear in step order.
		output := out.String()
		readAt := strings.Index(output, "Analyzing text from")
		summaryAt := strings.Index(output, "Found 7 unique words from 11 total words.")
		savedAt := strings.Index(output, "Text results saved to")
		if readAt < 0 || summaryAt < readAt || savedAt < summaryAt {
			t.Errorf("unexpected output order: %q", output)
		}
	})

	t.Run("stops at first error", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		textPath := filepath.Join(dir, "out.txt")

		p := New()
		p.AddSteps(
			NewReadStep(nil),
			NewCountStep(),
			NewTextExportStep(textPath),
		)

		analysis := model.NewAnalysis(filepath.Join(dir, "missing.txt"))
		err := p.Execute(context.Background(), analysis)
		if !errors.Is(err, source.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
		if len(analysis.PerformedSteps) != 0 {
			t.Errorf("expected no performed steps, got %v", analysis.PerformedSteps)
		}
		if _, err := os.Stat(textPath); !os.IsNotExist(err) {
			t.Error("export should not run after a failed read")
		}
	})

	t.Run("failed step is not recorded as performed", func(t *testing.T) {
		t.Parallel()

		p := New()
		p.AddSteps(
			NewReadStep(nil),
			NewCountStep(),
			NewTextExportStep(filepath.Join(t.TempDir(), "missing", "out.txt")),
			NewSummaryStep(10),
		)

		analysis := model.NewAnalysis(writeInput(t, sampleText))
		err := p.Execute(context.Background(), analysis)
		if !errors.Is(err, export.ErrWrite) {
			t.Fatalf("expected ErrWrite, got %v", err)
		}
		want := []string{"read", "count"}
		if !reflect.DeepEqual(analysis.PerformedSteps, want) {
			t.Errorf("performed %v, want %v", analysis.PerformedSteps, want)
		}
	})

	t.Run("skipped visualization does not stop the run", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer
		p := New()
		p.AddSteps(
			NewReadStep(nil),
			NewCountStep(),
			NewBarChartStep(filepath.Join(t.TempDir(), "chart.png"), WithStepOptions(WithOutput(&out))),
			NewSummaryStep(10, WithOutput(&out)),
		)

		analysis := model.NewAnalysis(writeInput(t, "!!! ... ???"))
		if err := p.Execute(context.Background(), analysis); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(analysis.PerformedSteps) != 4 {
			t.Errorf("expected 4 performed steps, got %v", analysis.PerformedSteps)
		}
		if len(analysis.Skipped) != 1 || analysis.Skipped[0].Step != "histogram" {
			t.Errorf("expected histogram skip, got %v", analysis.Skipped)
		}
		if !strings.Contains(out.String(), "Found 0 unique words from 0 total words.") {
			t.Errorf("expected summary after the skip, got %q", out.String())
		}
	})
}

// TestPipelineCancellation tests that cancellation is honored between steps.
func TestPipelineCancellation(t *testing.T) {
	t.Parallel()

	t.Run("cancelled before start", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		p := New()
		p.AddSteps(NewReadStep(nil), NewCountStep())

		analysis := model.NewAnalysis(writeInput(t, sampleText))
		if err := p.Execute(ctx, analysis); !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
		if analysis.Text != "" || len(analysis.PerformedSteps) != 0 {
			t.Error("no step should run after cancellation")
		}
	})

	t.Run("cancelled between steps", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		p := New()
		p.AddSteps(NewReadStep(nil), cancelStep{cancel: cancel}, NewCountStep())

		analysis := model.NewAnalysis(writeInput(t, sampleText))
		if err := p.Execute(ctx, analysis); !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
		want := []string{"read", "cancel"}
		if !reflect.DeepEqual(analysis.PerformedSteps, want) {
			t.Errorf("performed %v, want %v", analysis.PerformedSteps, want)
		}
		if analysis.Ranked != nil {
			t.Error("count should not run after cancellation")
		}
	})
}

// TestPipelineWithLogger tests the WithLogger option.
func TestPipelineWithLogger(t *testing.T) {
	t.Parallel()

	t.Run("logs each step", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		p := New(WithLogger(logger))
		p.AddSteps(NewReadStep(nil), NewCountStep())

		if err := p.Execute(context.Background(), model.NewAnalysis(writeInput(t, sampleText))); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, want := range []string{"executing step", "step=read", "step=count"} {
			if !strings.Contains(buf.String(), want) {
				t.Errorf("expected log to contain %q, got %q", want, buf.String())
			}
		}
	})

	t.Run("logs cancellation as warning", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		p := New(WithLogger(logger))
		p.AddStep(NewReadStep(nil))
		_ = p.Execute(ctx, model.NewAnalysis("input.txt"))

		if !strings.Contains(buf.String(), "level=WARN") || !strings.Contains(buf.String(), "pipeline cancelled") {
			t.Errorf("expected cancellation warning, got %q", buf.String())
		}
	})

	t.Run("nil logger keeps default", func(t *testing.T) {
		t.Parallel()

		p := New(WithLogger(nil))
		p.AddStep(NewDistributionStep("", WithOutput(&bytes.Buffer{})))

		analysis := model.NewAnalysis("input.txt")
		analysis.Ranked = model.RankedList{{Word: "a", Count: 1}}
		if err := p.Execute(context.Background(), analysis); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(analysis.Skipped) != 1 || analysis.Skipped[0].Reason != errNoDestination.Error() {
			t.Errorf("expected no-destination skip, got %v", analysis.Skipped)
		}
	})
}

// TestChartStepLogger tests that chart steps log through the step logger.
func TestChartStepLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	s := NewBarChartStep("", WithStepOptions(WithStepLogger(logger)))
	analysis := model.NewAnalysis("input.txt")
	if err := s.Do(context.Background(), analysis); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "visualization skipped") ||
		!strings.Contains(buf.String(), chart.ErrNoData.Error()) {
		t.Errorf("expected skip warning in step logger, got %q", buf.String())
	}
}
