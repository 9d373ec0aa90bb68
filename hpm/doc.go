// Package hpm wires segmenter, discretiser, and a pattern model (or a
// nwset.NestedWordSet) into the Hierarchical Pattern Matching anomaly score
// driver.
//
// Grounded on original_source/src/pbsf/algorithms/hpm.py: the defaults
// (StructuralProminence nodes, max_depth = floor(log N), frame count 2^d,
// thresholds 0.5, a 200-sample sliding window) and the two scoring modes —
// one chain at a time against a plain pattern.Model, or a sliding context
// window of chains against a *nwset.NestedWordSet — are carried over
// exactly, expressed through Go's functional-options idiom instead of a
// parameters dict.
package hpm
