package nestedword

import "errors"

// Sentinel errors for MatchingRelation and NestedWord operations, following
// spec.md §7's three-way split.
var (
	// ErrInvalidInput indicates a malformed argument: both sides of a match
	// absent, a call/return used for both sides of the same position, a
	// call that does not precede its return, or an out-of-bounds slice.
	ErrInvalidInput = errors.New("nestedword: invalid input")

	// ErrIncomparable indicates a new match would cross an existing one,
	// violating the matching-relation's no-crossing invariant.
	ErrIncomparable = errors.New("nestedword: crossing match")

	// ErrInternal indicates a position argument fell outside [0, length).
	ErrInternal = errors.New("nestedword: position out of bounds")
)
