package nestedword

import (
	"fmt"
	"sort"
	"strings"

	"github.com/segmetric/hpm/word"
)

// TokenKind distinguishes a tagged-sequence element: a bare symbol, or a
// call/return bracket around the adjacent symbol.
type TokenKind int

const (
	// TokSymbol carries an actual word symbol.
	TokSymbol TokenKind = iota
	// TokCall is the "<" bracket preceding a call position's symbol.
	TokCall
	// TokReturn is the ">" bracket following a return position's symbol.
	TokReturn
)

// Token is one element of a tagged sequence; Symbol is only meaningful
// when Kind is TokSymbol.
type Token struct {
	Kind   TokenKind
	Symbol int
}

// NestedWord pairs a Word with a MatchingRelation of the same length,
// describing which positions are calls, returns, or internal.
type NestedWord struct {
	Word     word.Word
	Matching *MatchingRelation
}

// Empty returns the zero-length NestedWord.
func Empty() NestedWord {
	return NestedWord{Word: word.New(), Matching: NewMatching(0)}
}

// New builds a NestedWord from a word and a matching relation of the same
// length.
func New(w word.Word, m *MatchingRelation) (NestedWord, error) {
	if w.Len() != m.Len() {
		return NestedWord{}, fmt.Errorf("%w: word length %d != matching length %d", ErrInvalidInput, w.Len(), m.Len())
	}
	return NestedWord{Word: w, Matching: m}, nil
}

// Len reports the number of positions.
func (nw NestedWord) Len() int { return nw.Word.Len() }

// FromTagged parses a tagged sequence into a NestedWord. A "<" marks a call
// position on the symbol that follows it; a ">" marks a return position on
// the symbol that precedes it. Unclosed calls become pending.
func FromTagged(tagged []Token) (NestedWord, error) {
	symbols := make([]int, 0, len(tagged))
	for _, t := range tagged {
		if t.Kind == TokSymbol {
			symbols = append(symbols, t.Symbol)
		}
	}
	m := NewMatching(len(symbols))

	var stack []int
	counter := 0
	for _, t := range tagged {
		switch t.Kind {
		case TokCall:
			stack = append(stack, counter)
		case TokReturn:
			call := NoPosition
			if len(stack) > 0 {
				call = stack[len(stack)-1]
				stack = stack[:len(stack)-1]
			}
			retPos := counter - 1
			if retPos < 0 {
				retPos = 0
			}
			if err := m.SetMatch(call, retPos); err != nil {
				return NestedWord{}, err
			}
		default:
			counter++
		}
	}
	for len(stack) > 0 {
		call := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if err := m.SetMatch(call, NoPosition); err != nil {
			return NestedWord{}, err
		}
	}
	return NestedWord{Word: word.New(symbols...), Matching: m}, nil
}

// ToTagged emits the tagged-sequence encoding of nw: "<" before a call's
// symbol, ">" after a return's symbol.
func (nw NestedWord) ToTagged() []Token {
	out := make([]Token, 0, nw.Len()*2)
	for i := 0; i < nw.Len(); i++ {
		if nw.Matching.IsCall(i) {
			out = append(out, Token{Kind: TokCall})
		}
		out = append(out, Token{Kind: TokSymbol, Symbol: nw.Word.At(i)})
		if nw.Matching.IsReturn(i) {
			out = append(out, Token{Kind: TokReturn})
		}
	}
	return out
}

// AddInternals appends each symbol as a new internal position.
func (nw *NestedWord) AddInternals(symbols []int) {
	nw.Word = nw.Word.Concat(word.New(symbols...))
	nw.Matching.Extend(len(symbols))
}

// AddInternal appends a single internal position.
func (nw *NestedWord) AddInternal(symbol int) { nw.AddInternals([]int{symbol}) }

// AddCalls appends symbols as internal positions, then marks the last
// len(symbols) of them as pending calls.
func (nw *NestedWord) AddCalls(symbols []int) error {
	nw.AddInternals(symbols)
	n := nw.Len()
	for i := 1; i <= len(symbols); i++ {
		if err := nw.Matching.SetMatch(n-i, NoPosition); err != nil {
			return err
		}
	}
	return nil
}

// AddCall appends a single pending-call position.
func (nw *NestedWord) AddCall(symbol int) error { return nw.AddCalls([]int{symbol}) }

// AddReturns appends symbols as internal positions, then matches them to
// the most-recent pending calls in reverse order; any return beyond the
// number of pending calls remains pending.
func (nw *NestedWord) AddReturns(symbols []int) error {
	nw.AddInternals(symbols)
	pending := nw.Matching.GetPendingCalls()
	sort.Sort(sort.Reverse(sort.IntSlice(pending)))
	n := nw.Len()
	for i := 0; i < len(symbols); i++ {
		call := NoPosition
		if i < len(pending) {
			call = pending[i]
		}
		ret := n - len(symbols) + i
		if err := nw.Matching.SetMatch(call, ret); err != nil {
			return err
		}
	}
	return nil
}

// AddReturn appends a single return position, matched to the most recent
// pending call if any.
func (nw *NestedWord) AddReturn(symbol int) error { return nw.AddReturns([]int{symbol}) }

// Slice returns the nested subword over [a, b).
func (nw NestedWord) Slice(a, b int) (NestedWord, error) {
	m, err := nw.Matching.Slice(a, b)
	if err != nil {
		return NestedWord{}, err
	}
	return NestedWord{Word: nw.Word.Slice(a, b), Matching: m}, nil
}

// Concat returns the tagged-sequence splice of nw and other: to_tagged(nw)
// followed by to_tagged(other), reparsed. This is how a call pending in nw
// can be closed by a return appearing in other.
func (nw NestedWord) Concat(other NestedWord) (NestedWord, error) {
	tagged := append(append([]Token{}, nw.ToTagged()...), other.ToTagged()...)
	return FromTagged(tagged)
}

// Equal reports whether nw and other hold the same word and matching
// relation.
func (nw NestedWord) Equal(other NestedWord) bool {
	return nw.Word.Equal(other.Word) && nw.Matching.Equal(other.Matching)
}

// Key returns a value suitable for use as a map key, uniquely identifying
// nw's tagged representation (its equality basis).
func (nw NestedWord) Key() string {
	var b strings.Builder
	for _, t := range nw.ToTagged() {
		switch t.Kind {
		case TokCall:
			b.WriteByte('<')
		case TokReturn:
			b.WriteByte('>')
		default:
			fmt.Fprintf(&b, "s%d;", t.Symbol)
		}
	}
	return b.String()
}

// String renders nw's tagged form for diagnostics.
func (nw NestedWord) String() string {
	var b strings.Builder
	b.WriteString("NestedWord(")
	for _, t := range nw.ToTagged() {
		switch t.Kind {
		case TokCall:
			b.WriteByte('<')
		case TokReturn:
			b.WriteByte('>')
		default:
			fmt.Fprintf(&b, "%d", t.Symbol)
		}
	}
	b.WriteByte(')')
	return b.String()
}
