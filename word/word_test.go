package word_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/segmetric/hpm/word"
)

func TestWordCreationAndLength(t *testing.T) {
	empty := word.New()
	require.Equal(t, 0, empty.Len())
	require.Empty(t, empty.Symbols())

	w := word.New(1, 2, 3, 4)
	require.Equal(t, 4, w.Len())
	require.Equal(t, []int{1, 2, 3, 4}, w.Symbols())

	twenty := word.New(makeRange(20)...)
	require.Equal(t, 20, twenty.Len())
}

func makeRange(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestWordEquality(t *testing.T) {
	w1, w2 := word.New(), word.New()
	require.True(t, w1.Equal(w2))

	w3 := word.New(1, 2, 3, 4)
	w4 := word.New(1, 2, 3, 4)
	require.True(t, w3.Equal(w4))
	require.False(t, w3.Equal(w1))

	w5 := word.New(1, 2, 3, 4, 5)
	require.False(t, w5.Equal(w1))
	require.False(t, w5.Equal(w3))
	require.True(t, w5.Equal(w5))
}

func TestWordSlicing(t *testing.T) {
	empty := word.New()
	require.True(t, empty.Slice(0, 0).Equal(word.New()))

	w := word.New(1, 2, 3, 4)
	require.Equal(t, 1, w.At(0))
	require.Equal(t, 2, w.At(1))
	require.Equal(t, 3, w.At(2))
	require.Equal(t, 4, w.At(3))

	require.True(t, w.Slice(0, 2).Equal(word.New(1, 2)))
	require.True(t, w.Slice(1, 3).Equal(word.New(2, 3)))
	require.True(t, w.Slice(2, 4).Equal(word.New(3, 4)))
}

func TestWordString(t *testing.T) {
	require.Equal(t, "Word([])", word.New().String())
	require.Equal(t, "Word([1 2 3 4])", word.New(1, 2, 3, 4).String())
}

func TestWordConcatenation(t *testing.T) {
	empty := word.New()
	require.True(t, empty.Concat(empty).Equal(word.New()))

	w := word.New(1, 2, 3, 4)
	require.True(t, w.Concat(empty).Equal(w))
	require.True(t, w.Concat(w).Equal(word.New(1, 2, 3, 4, 1, 2, 3, 4)))
	require.True(t, w.Concat(empty).Concat(w).Equal(word.New(1, 2, 3, 4, 1, 2, 3, 4)))
}

func TestWordRepeat(t *testing.T) {
	empty := word.New()
	require.True(t, empty.Repeat(1).Equal(word.New()))
	require.True(t, empty.Repeat(10).Equal(word.New()))

	w := word.New(1, 2, 3, 4)
	require.True(t, w.Repeat(0).Equal(word.New()))
	require.True(t, w.Repeat(1).Equal(w))
	require.True(t, w.Repeat(3).Equal(word.New(1, 2, 3, 4, 1, 2, 3, 4, 1, 2, 3, 4)))
	require.True(t, w.Repeat(-1).Equal(word.New()))
}

func TestWordKeyMatchesEquality(t *testing.T) {
	w1 := word.New(1, 2, 3)
	w2 := word.New(1, 2, 3)
	w3 := word.New(1, 2)
	require.Equal(t, w1.Key(), w2.Key())
	require.NotEqual(t, w1.Key(), w3.Key())
}
