package acceptor_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/segmetric/hpm/acceptor"
	"github.com/segmetric/hpm/word"
)

func TestBiDFACreation(t *testing.T) {
	d := acceptor.NewBiDFA()
	require.Equal(t, 0, d.Initial())
	require.True(t, d.IsLeft(0))
	require.False(t, d.IsRight(0))
	states, transitions := d.Size()
	require.Equal(t, 1, states)
	require.Equal(t, 0, transitions)
}

func TestBiDFASwap(t *testing.T) {
	d := acceptor.NewBiDFA()
	require.NoError(t, d.Swap(0))
	require.False(t, d.IsLeft(0))
	require.True(t, d.IsRight(0))
	require.NoError(t, d.Swap(0))
	require.True(t, d.IsLeft(0))

	require.ErrorIs(t, d.Swap(999), acceptor.ErrInvalidInput)
}

// buildAnBn builds the a^n b^n biDFA from the original test suite: symbol
// a=0, b=1; q1 (right) accepts after equal a's and b's consumed from the
// outside in, q2 (left) is a sink for any mismatch.
func buildAnBn(t *testing.T) *acceptor.BiDFA {
	t.Helper()
	d := acceptor.NewBiDFA()
	q1 := d.AddRight()
	q2 := d.AddLeft()
	a := d.AddSymbol()
	b := d.AddSymbol()
	require.NoError(t, d.SetTransition(d.Initial(), q1, a))
	require.NoError(t, d.SetTransition(q1, d.Initial(), b))
	require.NoError(t, d.SetTransition(d.Initial(), q2, b))
	require.NoError(t, d.SetTransition(q1, q2, a))
	require.NoError(t, d.SetTransition(q2, q2, a))
	require.NoError(t, d.SetTransition(q2, q2, b))
	require.NoError(t, d.SetFinal(d.Initial()))
	return d
}

func aAndB(n int) word.Word {
	seq := make([]int, 0, 2*n)
	for i := 0; i < n; i++ {
		seq = append(seq, 0) // a
	}
	for i := 0; i < n; i++ {
		seq = append(seq, 1) // b
	}
	return word.New(seq...)
}

func TestBiDFAAcceptsAnBn(t *testing.T) {
	d := buildAnBn(t)
	for n := 0; n < 20; n++ {
		require.True(t, d.Accept(aAndB(n)), "a^%d b^%d should be accepted", n, n)
	}

	require.False(t, d.Accept(word.New(0)))
	require.False(t, d.Accept(word.New(1)))
	require.False(t, d.Accept(word.New(0, 0, 1)))
	require.False(t, d.Accept(word.New(0, 1, 1)))
	require.False(t, d.Accept(word.New(1, 0)))
	require.False(t, d.Accept(word.New(1, 0, 1, 0)))
}

func TestBiDFAFollow(t *testing.T) {
	d := buildAnBn(t)
	state, ok, err := d.Follow(d.Initial(), word.New())
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, d.Initial(), state)

	state, ok, err = d.Follow(d.Initial(), aAndB(4))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, d.Initial(), state)
}
