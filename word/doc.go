// Package word implements Word, an immutable finite sequence of integer
// symbols. It is the shared primitive between the finite acceptors
// (package acceptor) and the nested-word model (package nestedword), which
// both recognise or build on sequences of symbols identified by small
// integers (alphabet ids, or graphstore vertex ids).
package word
