package acceptor

import (
	"fmt"

	"github.com/segmetric/hpm/word"
)

// FiniteAcceptor is the shared contract of DFA and BiDFA.
type FiniteAcceptor interface {
	// Size reports the number of states and transitions.
	Size() (states, transitions int)

	// Step returns the state reachable from state on symbol, if any.
	Step(state, symbol int) (next int, ok bool, err error)

	// Follow returns the state reached by consuming w from state, if every
	// symbol has a transition.
	Follow(state int, w word.Word) (next int, ok bool, err error)

	// Accept reports whether w is recognised starting from the initial
	// state.
	Accept(w word.Word) bool
}

// DFA is a deterministic finite automaton over densely-allocated integer
// state and symbol identifiers. State 0 is always the initial state.
type DFA struct {
	numStates   int
	numSymbols  int
	final       map[int]bool
	transitions map[int]map[int]int
}

// NewDFA returns a DFA with a single state (the initial state, id 0), an
// empty alphabet, and no transitions.
func NewDFA() *DFA {
	return &DFA{
		numStates:   1,
		final:       make(map[int]bool),
		transitions: make(map[int]map[int]int),
	}
}

// AddState allocates and returns a new state id.
func (d *DFA) AddState() int {
	id := d.numStates
	d.numStates++
	return id
}

// AddSymbol allocates and returns a new symbol id.
func (d *DFA) AddSymbol() int {
	id := d.numSymbols
	d.numSymbols++
	return id
}

// SetFinal marks state as an accepting state.
func (d *DFA) SetFinal(state int) error {
	if err := d.validateState(state); err != nil {
		return err
	}
	d.final[state] = true
	return nil
}

// Initial returns the initial state id, always 0.
func (d *DFA) Initial() int { return 0 }

// IsFinal reports whether state is an accepting state.
func (d *DFA) IsFinal(state int) bool { return d.final[state] }

func (d *DFA) validateState(state int) error {
	if state < 0 || state >= d.numStates {
		return fmt.Errorf("%w: state %d is not a valid state", ErrInvalidInput, state)
	}
	return nil
}

func (d *DFA) validateSymbol(symbol int) error {
	if symbol < 0 || symbol >= d.numSymbols {
		return fmt.Errorf("%w: symbol %d is not in the alphabet", ErrInvalidInput, symbol)
	}
	return nil
}

func (d *DFA) hasSymbol(symbol int) bool {
	return symbol >= 0 && symbol < d.numSymbols
}

// SetTransition adds a transition from s1 to s2 labelled symbol. Fails if
// either state or the symbol is unknown, or a transition from s1 labelled
// symbol already exists.
func (d *DFA) SetTransition(s1, s2, symbol int) error {
	if err := d.validateState(s1); err != nil {
		return err
	}
	if err := d.validateState(s2); err != nil {
		return err
	}
	if err := d.validateSymbol(symbol); err != nil {
		return err
	}
	if d.transitions[s1] == nil {
		d.transitions[s1] = make(map[int]int)
	}
	if _, exists := d.transitions[s1][symbol]; exists {
		return fmt.Errorf("%w: transition from %d labelled %d already exists", ErrInvalidInput, s1, symbol)
	}
	d.transitions[s1][symbol] = s2
	return nil
}

// Size reports the number of states and transitions.
func (d *DFA) Size() (states, transitions int) {
	states = d.numStates
	for _, m := range d.transitions {
		transitions += len(m)
	}
	return states, transitions
}

// Step returns the state reachable from state on symbol, if a transition
// exists.
func (d *DFA) Step(state, symbol int) (int, bool, error) {
	if err := d.validateState(state); err != nil {
		return 0, false, err
	}
	if err := d.validateSymbol(symbol); err != nil {
		return 0, false, err
	}
	next, ok := d.transitions[state][symbol]
	return next, ok, nil
}

// Follow returns the state reached by consuming w's symbols left to right
// from state, or ok=false if any symbol has no outgoing transition.
func (d *DFA) Follow(state int, w word.Word) (int, bool, error) {
	if err := d.validateState(state); err != nil {
		return 0, false, err
	}
	for _, symbol := range w.Symbols() {
		next, ok, err := d.Step(state, symbol)
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

// Accept reports whether w is recognised: every symbol is in the alphabet,
// following it from the initial state succeeds, and the resulting state is
// final. Unlike Step/Follow, Accept never errors: an unrecognised symbol or
// a dead end simply means rejection.
func (d *DFA) Accept(w word.Word) bool {
	for _, symbol := range w.Symbols() {
		if !d.hasSymbol(symbol) {
			return false
		}
	}
	state, ok, err := d.Follow(d.Initial(), w)
	if err != nil || !ok {
		return false
	}
	return d.IsFinal(state)
}
