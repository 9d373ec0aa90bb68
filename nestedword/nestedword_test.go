package nestedword_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/segmetric/hpm/nestedword"
	"github.com/segmetric/hpm/word"
)

func sym(tagged ...interface{}) []nestedword.Token {
	out := make([]nestedword.Token, 0, len(tagged))
	for _, t := range tagged {
		switch v := t.(type) {
		case string:
			if v == "<" {
				out = append(out, nestedword.Token{Kind: nestedword.TokCall})
			} else if v == ">" {
				out = append(out, nestedword.Token{Kind: nestedword.TokReturn})
			}
		case int:
			out = append(out, nestedword.Token{Kind: nestedword.TokSymbol, Symbol: v})
		}
	}
	return out
}

func TestFromTaggedAndToTaggedRoundTrip(t *testing.T) {
	// "<1 <2 3> 4>" : call at 1, call at 2, 3 returns to call-2, 4 returns to call-1
	tagged := sym("<", 1, "<", 2, 3, ">", 4, ">")
	nw, err := nestedword.FromTagged(tagged)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 4}, nw.Word.Symbols())

	call, ret, ok := nw.Matching.GetMatch(0)
	require.True(t, ok)
	require.Equal(t, 0, call)
	require.Equal(t, 3, ret)

	call, ret, ok = nw.Matching.GetMatch(1)
	require.True(t, ok)
	require.Equal(t, 1, call)
	require.Equal(t, 2, ret)

	round := nw.ToTagged()
	require.Equal(t, tagged, round)
}

func TestFromTaggedUnclosedCallIsPending(t *testing.T) {
	tagged := sym("<", 1, 2)
	nw, err := nestedword.FromTagged(tagged)
	require.NoError(t, err)
	require.True(t, nw.Matching.IsCall(0))
	require.True(t, nw.Matching.IsPending(0))
}

func TestAddInternalsCallsReturns(t *testing.T) {
	nw := nestedword.Empty()
	nw.AddInternal(10)
	require.NoError(t, nw.AddCalls([]int{20, 21}))
	require.NoError(t, nw.AddReturns([]int{22, 23}))

	require.Equal(t, []int{10, 20, 21, 22, 23}, nw.Word.Symbols())
	// most recent pending calls matched in reverse: 21 <-> 22 (pos2<->pos3), 20 <-> 23 (pos1<->pos4)
	// positions: 0=10(internal) 1=20(call) 2=21(call) 3=22(return) 4=23(return)
	call, ret, ok := nw.Matching.GetMatch(2)
	require.True(t, ok)
	require.Equal(t, 2, call)
	require.Equal(t, 3, ret)

	call, ret, ok = nw.Matching.GetMatch(1)
	require.True(t, ok)
	require.Equal(t, 1, call)
	require.Equal(t, 4, ret)
}

func TestNestedWordSliceAndEqual(t *testing.T) {
	nw, err := nestedword.New(word.New(1, 2, 3), nestedword.NewMatching(3))
	require.NoError(t, err)
	require.NoError(t, nw.Matching.SetMatch(0, 2))

	sub, err := nw.Slice(1, 3)
	require.NoError(t, err)
	require.Equal(t, []int{2, 3}, sub.Word.Symbols())
	require.True(t, sub.Matching.IsReturn(1))

	other, err := nestedword.New(word.New(2, 3), nestedword.NewMatching(2))
	require.NoError(t, err)
	require.NoError(t, other.Matching.SetMatch(nestedword.NoPosition, 1))
	require.True(t, sub.Equal(other))
}

func TestNestedWordConcat(t *testing.T) {
	a, err := nestedword.FromTagged(sym("<", 1))
	require.NoError(t, err)
	b, err := nestedword.FromTagged(sym(2, ">"))
	require.NoError(t, err)

	combined, err := a.Concat(b)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, combined.Word.Symbols())
	call, ret, ok := combined.Matching.GetMatch(0)
	require.True(t, ok)
	require.Equal(t, 0, call)
	require.Equal(t, 1, ret)
}
