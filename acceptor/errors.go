package acceptor

import "errors"

// ErrInvalidInput reports an unknown state or symbol id, or an attempt to
// set a transition that already exists.
var ErrInvalidInput = errors.New("acceptor: invalid input")
