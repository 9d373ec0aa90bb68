package nestedword_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/segmetric/hpm/nestedword"
)

func TestMatchingBasicRoles(t *testing.T) {
	m := nestedword.NewMatching(5)
	require.NoError(t, m.SetMatch(0, 3))
	require.NoError(t, m.SetMatch(1, nestedword.NoPosition)) // pending call
	require.NoError(t, m.SetMatch(nestedword.NoPosition, 4)) // pending return

	require.True(t, m.IsCall(0))
	require.True(t, m.IsReturn(3))
	require.True(t, m.IsInternal(2))
	require.True(t, m.IsCall(1))
	require.True(t, m.IsPending(1))
	require.True(t, m.IsReturn(4))
	require.True(t, m.IsPending(4))

	call, ret, ok := m.GetMatch(0)
	require.True(t, ok)
	require.Equal(t, 0, call)
	require.Equal(t, 3, ret)

	call, ret, ok = m.GetMatch(2)
	require.False(t, ok)
	_, _, _ = call, ret, ok
}

func TestMatchingRejectsBothNone(t *testing.T) {
	m := nestedword.NewMatching(3)
	err := m.SetMatch(nestedword.NoPosition, nestedword.NoPosition)
	require.ErrorIs(t, err, nestedword.ErrInvalidInput)
}

func TestMatchingRejectsBackwardOrder(t *testing.T) {
	m := nestedword.NewMatching(3)
	require.ErrorIs(t, m.SetMatch(2, 1), nestedword.ErrInvalidInput)
	require.ErrorIs(t, m.SetMatch(1, 1), nestedword.ErrInvalidInput)
}

func TestMatchingOutOfBounds(t *testing.T) {
	m := nestedword.NewMatching(3)
	require.ErrorIs(t, m.SetMatch(0, 5), nestedword.ErrInternal)
}

// TestMatchingNoCrossing exercises every case in the §4.4 crossing rule,
// including the pending-side "extends to infinity" cases.
func TestMatchingNoCrossing(t *testing.T) {
	t.Run("two closed matches crossing", func(t *testing.T) {
		m := nestedword.NewMatching(10)
		require.NoError(t, m.SetMatch(0, 3))
		require.ErrorIs(t, m.SetMatch(1, 4), nestedword.ErrIncomparable)
	})
	t.Run("two closed matches nested is fine", func(t *testing.T) {
		m := nestedword.NewMatching(10)
		require.NoError(t, m.SetMatch(0, 5))
		require.NoError(t, m.SetMatch(1, 4))
	})
	t.Run("two closed matches sequential is fine", func(t *testing.T) {
		m := nestedword.NewMatching(10)
		require.NoError(t, m.SetMatch(0, 1))
		require.NoError(t, m.SetMatch(2, 3))
	})
	t.Run("pending return crosses pending call", func(t *testing.T) {
		// (None, r) crosses (c', None) iff c' < r
		m := nestedword.NewMatching(10)
		require.NoError(t, m.SetMatch(2, nestedword.NoPosition)) // pending call at 2
		require.ErrorIs(t, m.SetMatch(nestedword.NoPosition, 5), nestedword.ErrIncomparable)
	})
	t.Run("pending return does not cross later pending call", func(t *testing.T) {
		m := nestedword.NewMatching(10)
		require.NoError(t, m.SetMatch(nestedword.NoPosition, 2)) // pending return at 2
		require.NoError(t, m.SetMatch(5, nestedword.NoPosition)) // pending call at 5, 5 > 2
	})
	t.Run("pending call crosses closed match", func(t *testing.T) {
		// (c, None) crosses (c', r') iff c' < c < r'
		m := nestedword.NewMatching(10)
		require.NoError(t, m.SetMatch(0, 5))
		require.ErrorIs(t, m.SetMatch(2, nestedword.NoPosition), nestedword.ErrIncomparable)
	})
}

func TestMatchingRemoveAndExtend(t *testing.T) {
	m := nestedword.NewMatching(3)
	require.NoError(t, m.SetMatch(0, 2))
	require.NoError(t, m.RemoveMatch(0))
	require.True(t, m.IsInternal(0))
	require.True(t, m.IsInternal(2))
	require.ErrorIs(t, m.RemoveMatch(1), nestedword.ErrInvalidInput)

	require.NoError(t, m.Extend(2))
	require.Equal(t, 5, m.Len())
	require.True(t, m.IsInternal(4))
}

func TestMatchingSliceInsideAndCrossing(t *testing.T) {
	m := nestedword.NewMatching(6)
	require.NoError(t, m.SetMatch(0, 4)) // call outside the slice, return inside it
	require.NoError(t, m.SetMatch(2, 3)) // entirely inside [1,5)

	sub, err := m.Slice(1, 5)
	require.NoError(t, err)
	require.Equal(t, 4, sub.Len())

	// position 0 (call, outside) -> position 4 (return, inside): pending return at 3 (4-1)
	require.True(t, sub.IsReturn(4-1))
	call, ret, ok := sub.GetMatch(4 - 1)
	require.True(t, ok)
	require.Equal(t, nestedword.NoPosition, call)
	require.Equal(t, 3, ret)

	// position 2,3 entirely inside -> (1,2) in the subslice
	call, ret, ok = sub.GetMatch(1)
	require.True(t, ok)
	require.Equal(t, 1, call)
	require.Equal(t, 2, ret)
}

func TestMatchingEqual(t *testing.T) {
	a := nestedword.NewMatching(3)
	require.NoError(t, a.SetMatch(0, 2))
	b := nestedword.NewMatching(3)
	require.NoError(t, b.SetMatch(0, 2))
	require.True(t, a.Equal(b))

	c := nestedword.NewMatching(3)
	require.False(t, a.Equal(c))
}
