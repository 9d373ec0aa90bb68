package nwset

import "errors"

// ErrInvalidInput reports malformed arguments: wrong chain count, an empty
// chain, or a non-positive context size. The set is left unmutated.
var ErrInvalidInput = errors.New("nwset: invalid input")
