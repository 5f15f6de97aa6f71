package chart

import "errors"

var (
	// ErrUnsupportedFormat is returned when the output extension does not
	// correspond to an image format gonum/plot can write.
	ErrUnsupportedFormat = errors.New("unsupported image format")

	// ErrNoData is returned when there are no words to draw.
	ErrNoData = errors.New("no words to display")
)
