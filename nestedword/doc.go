// Package nestedword implements MatchingRelation and NestedWord: a word
// (package word) paired with a call/return matching discipline over its
// positions, as specified in spec.md §4.4-4.5. A call at position c can be
// matched to a later return at position r (c < r); either side may be left
// pending (no counterpart yet). Matches never cross: for closed matches
// (i, j) and (c, r), the configurations i < c <= j <= r and c < i <= r <= j
// are both illegal.
//
// Grounded on original_source/src/pbsf/utils/nested_word.py, ported
// field-for-field: Python's three-state encoding (not-a-call, pending,
// matched-to-index) is reproduced here with two sentinel ints
// (notApplicable, pendingMark) per position, rather than a pointer-to-int or an
// interface{}, to keep MatchingRelation a flat, allocation-light pair of
// int slices in the teacher's style of plain indexed slices over pointer
// graphs (see graphstore.Digraph's adjacency sets for the same preference).
package nestedword
