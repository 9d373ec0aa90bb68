package acceptor

import (
	"fmt"

	"github.com/segmetric/hpm/word"
)

// BiDFA is a bidirectional deterministic finite automaton: states are
// partitioned into left and right, and Follow consumes a word from the left
// end while in a left state and from the right end while in a right state.
// biDFAs recognise symmetric languages such as a^n b^n.
type BiDFA struct {
	*DFA
	left  map[int]bool
	right map[int]bool
}

// NewBiDFA returns a BiDFA with a single left state (the initial state, id
// 0), an empty alphabet, and no transitions.
func NewBiDFA() *BiDFA {
	return &BiDFA{DFA: NewDFA(), left: map[int]bool{0: true}, right: make(map[int]bool)}
}

// AddLeft allocates a new left state.
func (b *BiDFA) AddLeft() int {
	id := b.AddState()
	b.left[id] = true
	return id
}

// AddRight allocates a new right state.
func (b *BiDFA) AddRight() int {
	id := b.AddState()
	b.right[id] = true
	return id
}

// Swap moves state from left to right or vice versa.
func (b *BiDFA) Swap(state int) error {
	switch {
	case b.left[state]:
		delete(b.left, state)
		b.right[state] = true
	case b.right[state]:
		delete(b.right, state)
		b.left[state] = true
	default:
		return fmt.Errorf("%w: state %d is not a valid state", ErrInvalidInput, state)
	}
	return nil
}

// IsLeft reports whether state is currently a left state.
func (b *BiDFA) IsLeft(state int) bool { return b.left[state] }

// IsRight reports whether state is currently a right state.
func (b *BiDFA) IsRight(state int) bool { return b.right[state] }

// Follow consumes w from state, taking its leftmost remaining symbol while
// in a left state and its rightmost remaining symbol while in a right
// state, until w is exhausted or a symbol has no outgoing transition.
func (b *BiDFA) Follow(state int, w word.Word) (int, bool, error) {
	if err := b.validateState(state); err != nil {
		return 0, false, err
	}
	symbols := append([]int(nil), w.Symbols()...)
	for len(symbols) > 0 {
		var symbol int
		if b.left[state] {
			symbol = symbols[0]
			symbols = symbols[1:]
		} else {
			symbol = symbols[len(symbols)-1]
			symbols = symbols[:len(symbols)-1]
		}
		next, ok, err := b.Step(state, symbol)
		if err != nil {
			return 0, false, err
		}
		if !ok {
			return 0, false, nil
		}
		state = next
	}
	return state, true, nil
}

// Accept reports whether w is recognised from the initial state.
func (b *BiDFA) Accept(w word.Word) bool {
	for _, symbol := range w.Symbols() {
		if !b.hasSymbol(symbol) {
			return false
		}
	}
	state, ok, err := b.Follow(b.Initial(), w)
	if err != nil || !ok {
		return false
	}
	return b.IsFinal(state)
}
