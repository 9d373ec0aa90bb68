package discretiser

import "errors"

// Sentinel errors for discretiser operations.
var (
	// ErrInvalidInput indicates a malformed window or an out-of-range frame
	// count at some depth (F(d) outside [1, N]).
	ErrInvalidInput = errors.New("discretiser: invalid input")
)
