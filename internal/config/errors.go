package config

import "errors"

// Configuration validation errors returned by Config.Validate.
var (
	// ErrNoInput is returned when no input file is specified.
	ErrNoInput = errors.New("no input file specified")

	// ErrInvalidLimit is returned when the visualization limit is not positive.
	ErrInvalidLimit = errors.New("invalid limit: must be positive")

	// ErrInvalidTop is returned when the summary size is negative.
	// Zero hides the top words table.
	ErrInvalidTop = errors.New("invalid top: must be non-negative")

	// ErrSamePlotPath is returned when two charts would be saved to the
	// same file and one would overwrite the other.
	ErrSamePlotPath = errors.New("charts cannot be saved to the same file")
)
