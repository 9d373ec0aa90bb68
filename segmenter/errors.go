package segmenter

import "errors"

// Sentinel errors for segmenter operations.
var (
	// ErrInvalidInput indicates malformed configuration or data: a
	// non-positive size, or data shorter than the effective window size.
	ErrInvalidInput = errors.New("segmenter: invalid input")
)
