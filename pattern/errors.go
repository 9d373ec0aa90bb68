package pattern

import "errors"

// Sentinel errors for pattern model operations.
var (
	// ErrInvalidInput indicates a malformed chain: empty, containing a nil
	// element, or (for PatternSet) containing a node that is not
	// node.Hashable.
	ErrInvalidInput = errors.New("pattern: invalid input")
)
