// Package acceptor provides deterministic finite acceptors over word.Word.
//
// Grounded on original_source/src/pbsf/utils/acceptors/{acceptors,dfa,bidfa}.py.
// The Python originals label states and symbols with arbitrary hashable
// objects via a bidict, so callers can build an automaton over characters,
// strings, or any other domain object and still address it by a stable
// integer id. Nothing in SPEC_FULL.md's scope needs that indirection: every
// caller already works in terms of the integer vertex/symbol ids that
// pattern and nestedword hand out, so states and symbols here are plain,
// densely-allocated integers with no separate label layer.
package acceptor
