package export

import "errors"

var (
	// ErrWrite is returned when an output destination cannot be created or written,
	// for example because of missing permissions or a missing directory.
	ErrWrite = errors.New("write error")

	// ErrUnsupportedFormat is returned when no writer exists for the requested
	// file extension. Callers can treat it as "skip this export".
	ErrUnsupportedFormat = errors.New("unsupported format")
)
