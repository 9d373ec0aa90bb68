package hpm

import "errors"

// ErrInvalidInput reports a Run call left with neither a pattern.Model nor a
// NestedWordSet. Errors from the segmenter/discretiser/model components are
// returned as-is, carrying those packages' own sentinels.
var ErrInvalidInput = errors.New("hpm: invalid input")

// ErrTooShort reports that test is shorter than twice the configured window
// size: too little data to produce a meaningful score series. Run's caller
// (typically a benchmark harness iterating several configurations) should
// treat this as a skip for the current configuration, not a hard failure.
var ErrTooShort = errors.New("hpm: test series too short for window size")
