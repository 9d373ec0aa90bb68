package word

import (
	"fmt"
	"strings"
)

// Word is an immutable finite sequence of int symbols. The zero value is
// the empty word. Words compare and hash by value, so two Words built from
// equal-length, equal-content sequences are interchangeable.
type Word struct {
	seq []int
}

// New returns a Word over a copy of seq; nil or empty seq produces the
// empty word.
func New(seq ...int) Word {
	if len(seq) == 0 {
		return Word{}
	}
	cp := make([]int, len(seq))
	copy(cp, seq)
	return Word{seq: cp}
}

// Len reports the number of symbols in the word.
func (w Word) Len() int { return len(w.seq) }

// At returns the symbol at position i.
func (w Word) At(i int) int { return w.seq[i] }

// Symbols returns the underlying symbols. Callers must not mutate the
// result.
func (w Word) Symbols() []int { return w.seq }

// Slice returns the subword w[a:b).
func (w Word) Slice(a, b int) Word { return New(w.seq[a:b]...) }

// Concat returns the concatenation of w and other.
func (w Word) Concat(other Word) Word {
	out := make([]int, 0, len(w.seq)+len(other.seq))
	out = append(out, w.seq...)
	out = append(out, other.seq...)
	return Word{seq: out}
}

// Repeat returns w concatenated with itself n times; Repeat(0) is the empty
// word.
func (w Word) Repeat(n int) Word {
	if n <= 0 {
		return Word{}
	}
	out := make([]int, 0, len(w.seq)*n)
	for i := 0; i < n; i++ {
		out = append(out, w.seq...)
	}
	return Word{seq: out}
}

// Equal reports whether w and other hold the same symbols in the same
// order.
func (w Word) Equal(other Word) bool {
	if len(w.seq) != len(other.seq) {
		return false
	}
	for i := range w.seq {
		if w.seq[i] != other.seq[i] {
			return false
		}
	}
	return true
}

// Key returns a value suitable for use as a map key, uniquely identifying
// w's content.
func (w Word) Key() string {
	var b strings.Builder
	for i, s := range w.seq {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%d", s)
	}
	return b.String()
}

// String renders w for diagnostics.
func (w Word) String() string {
	return fmt.Sprintf("Word(%v)", w.seq)
}
