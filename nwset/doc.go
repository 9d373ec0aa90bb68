// Package nwset combines a sliding context window of pattern-model chains
// into a single NestedWord, tracking which combined words have been seen.
//
// Grounded on original_source/src/pbsf/models/nw_set.py: each chain is first
// turned into a small NestedWord over the underlying pattern model's vertex
// ids (a run of pending calls followed by one internal symbol), then a
// sliding window of context_size such words is folded left to right with
// combine, which closes whichever pending calls diverge between consecutive
// words and splices in the remainder of the newer one.
package nwset
