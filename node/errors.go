package node

import "errors"

// Sentinel errors for node construction and comparison.
var (
	// ErrInvalidInput indicates malformed arguments to a Node constructor:
	// wrong field lengths, non-positive frame counts, missing breakpoints.
	ErrInvalidInput = errors.New("node: invalid input")

	// ErrIncomparable indicates an attempt to compare nodes of different
	// variants, depths, or threshold configurations.
	ErrIncomparable = errors.New("node: incomparable")

	// ErrInternal indicates a required property was missing at construction
	// time that should have been guaranteed by the caller (the discretiser).
	ErrInternal = errors.New("node: internal error")
)
