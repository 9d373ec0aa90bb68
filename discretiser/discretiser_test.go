package discretiser_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/segmetric/hpm/discretiser"
	"github.com/segmetric/hpm/node"
)

func sineWindow(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = math.Sin(2 * math.Pi * float64(i) / float64(n))
	}
	return w
}

func TestPAAChainLength(t *testing.T) {
	w := sineWindow(64)
	d := discretiser.NewPAA()
	chain, err := d.Discretise(w)
	require.NoError(t, err)
	require.Len(t, chain, discretiser.DefaultMaxDepth(w))
	for i, n := range chain {
		require.Equal(t, i, n.Depth())
	}
}

func TestSlopeSignOnePeriodSine(t *testing.T) {
	w := make([]float64, 200)
	for i := range w {
		w[i] = math.Sin(2 * math.Pi * float64(i) / 199)
	}
	d := discretiser.NewSlopeSign(
		discretiser.WithSlopeSignMaxDepth(func([]float64) int { return 1 }),
		discretiser.WithSlopeSignFrameCount(func(int) int { return 8 }),
	)
	chain, err := d.Discretise(w)
	require.NoError(t, err)
	require.Len(t, chain, 1)
}

func TestPAANormalisationProperty(t *testing.T) {
	w := []float64{1, 5, 2, 8, 3, 9, 0, 4}
	d := discretiser.NewPAA(discretiser.WithPAAFrameCount(func(int) int { return 1 }))
	chain, err := d.Discretise(w)
	require.NoError(t, err)
	require.NotEmpty(t, chain)
	// one frame over the z-normalised window: its mean is 0
	require.InDelta(t, 0, chain[0].(*node.PAA).Means()[0], 1e-9)
}

func TestConstantWindowYieldsZeroVector(t *testing.T) {
	w := make([]float64, 16)
	for i := range w {
		w[i] = 7.0
	}
	d := discretiser.NewSum()
	chain, err := d.Discretise(w)
	require.NoError(t, err)
	sums := chain[len(chain)-1].(*node.Sum).Sums()
	for _, s := range sums {
		require.Zero(t, s)
	}
}
