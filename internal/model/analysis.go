package model

import "time"

// ArtifactKind identifies what kind of output an artifact is.
type ArtifactKind string

const (
	// ArtifactText is the fixed-width text export.
	ArtifactText ArtifactKind = "text"

	// ArtifactSpreadsheet is the xlsx or csv export.
	ArtifactSpreadsheet ArtifactKind = "spreadsheet"

	// ArtifactMarkdown is the markdown summary report.
	ArtifactMarkdown ArtifactKind = "markdown"

	// ArtifactJSON is the JSON summary report.
	ArtifactJSON ArtifactKind = "json"

	// ArtifactBarChart is the rendered bar chart image.
	ArtifactBarChart ArtifactKind = "bar_chart"

	// ArtifactWordCloud is the rendered word cloud image.
	ArtifactWordCloud ArtifactKind = "word_cloud"

	// ArtifactDistribution is the rendered count distribution histogram.
	ArtifactDistribution ArtifactKind = "distribution"
)

// Artifact is a file written during a run.
type Artifact struct {
	Kind ArtifactKind `json:"kind"`
	Path string       `json:"path"`
}

// Skip records an optional feature that was not produced and why.
type Skip struct {
	Step   string `json:"step"`
	Reason string `json:"reason"`
}

// Analysis is the result of one run over one input file.
// Each pipeline step reads what earlier steps produced and adds its own
// output, so the struct is filled in roughly top to bottom.
type Analysis struct {
	// Source is the path of the input file.
	Source string `json:"source"`

	// Text is the raw file content. It is released once counting is done.
	Text string `json:"-"`

	// TokenCount is the number of tokens after normalization.
	TokenCount int `json:"token_count"`

	// Ranked holds the word counts, most frequent first.
	Ranked RankedList `json:"words"`

	// Artifacts lists every file written by exporters and charts.
	Artifacts []Artifact `json:"artifacts,omitempty"`

	// Skipped lists optional features that were not produced.
	Skipped []Skip `json:"skipped,omitempty"`

	// PerformedSteps lists the names of the steps that ran.
	PerformedSteps []string `json:"performed_steps,omitempty"`

	// StartedAt is when the analysis began.
	StartedAt time.Time `json:"started_at"`
}

// NewAnalysis creates an Analysis for the given input path.
func NewAnalysis(source string) *Analysis {
	return &Analysis{
		Source:    source,
		StartedAt: time.Now(),
	}
}

// AddArtifact records a written output file.
func (a *Analysis) AddArtifact(kind ArtifactKind, path string) {
	a.Artifacts = append(a.Artifacts, Artifact{Kind: kind, Path: path})
}

// AddSkip records an optional feature that was skipped.
func (a *Analysis) AddSkip(step, reason string) {
	a.Skipped = append(a.Skipped, Skip{Step: step, Reason: reason})
}

// UniqueWords returns the number of distinct words.
func (a *Analysis) UniqueWords() int {
	return a.Ranked.Unique()
}

// ArtifactPath returns the path of the first artifact of the given kind.
func (a *Analysis) ArtifactPath(kind ArtifactKind) (string, bool) {
	for _, art := range a.Artifacts {
		if art.Kind == kind {
			return art.Path, true
		}
	}
	return "", false
}
