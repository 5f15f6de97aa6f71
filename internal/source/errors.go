package source

import "errors"

var (
	// ErrNotFound is returned when the input path does not exist or is a directory.
	ErrNotFound = errors.New("input file not found")

	// ErrDecode is returned when the input is not valid UTF-8 text.
	ErrDecode = errors.New("input file is not valid UTF-8 text")
)
