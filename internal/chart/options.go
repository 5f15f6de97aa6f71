package chart

import (
	"image/color"

	"gonum.org/v1/plot/vg"
)

// Default chart settings.
const (
	// DefaultLimit is the number of words drawn when no limit is given.
	DefaultLimit = 30

	// DefaultTitle is the bar chart title.
	DefaultTitle = "Word Frequency Histogram"

	// DefaultCloudWords caps the word cloud when no limit is given.
	DefaultCloudWords = 100
)

// Size is the output size of a rendered chart.
type Size struct {
	Width  vg.Length
	Height vg.Length
}

var (
	// BarSize is the default bar chart size (12x8 inches).
	BarSize = Size{Width: 12 * vg.Inch, Height: 8 * vg.Inch}

	// CloudSize is the default word cloud size (10x10 inches).
	CloudSize = Size{Width: 10 * vg.Inch, Height: 10 * vg.Inch}

	// DistributionSize is the default distribution histogram size.
	DistributionSize = Size{Width: 10 * vg.Inch, Height: 6 * vg.Inch}
)

// barColor is a half-transparent blue.
var barColor = color.NRGBA{R: 31, G: 119, B: 180, A: 128}

// options holds the settings shared by all charts.
type options struct {
	title string
	limit int
}

// Option configures a chart.
type Option func(*options)

// WithTitle sets the chart title. An empty title keeps the default.
func WithTitle(title string) Option {
	return func(o *options) {
		if title != "" {
			o.title = title
		}
	}
}

// WithLimit sets the maximum number of words drawn.
// A non-positive limit keeps the default.
func WithLimit(limit int) Option {
	return func(o *options) {
		if limit > 0 {
			o.limit = limit
		}
	}
}

// newOptions applies opts over the given defaults.
func newOptions(title string, limit int, opts ...Option) *options {
	o := &options{title: title, limit: limit}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
