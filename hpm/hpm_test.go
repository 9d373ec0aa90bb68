package hpm_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/segmetric/hpm/discretiser"
	"github.com/segmetric/hpm/hpm"
	"github.com/segmetric/hpm/nwset"
	"github.com/segmetric/hpm/segmenter"
)

func sine(n int, step float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Sin(float64(i) * step)
	}
	return out
}

// TestHPMScoresEveryPoint mirrors original_source's test_hpm: a sine train
// series, and a test series that is identical except for an injected noise
// burst.
func TestHPMScoresEveryPoint(t *testing.T) {
	train := sine(100, 0.1)
	test := append([]float64(nil), train...)
	rng := rand.New(rand.NewSource(1))
	for i := 10; i < 15; i++ {
		test[i] = rng.Float64()
	}

	seg, err := segmenter.New(5)
	require.NoError(t, err)
	disc := discretiser.NewStructuralProminence(
		discretiser.WithStructuralProminenceMaxDepth(func([]float64) int { return 2 }),
		discretiser.WithStructuralProminenceFrameCount(func(d int) int { return 1 << uint(d) }),
		discretiser.WithStructuralThreshold(func(int) float64 { return 0.1 }),
		discretiser.WithProminenceThreshold(func(int) float64 { return 0.1 }),
	)

	scores, err := hpm.Run(train, test, hpm.WithSegmenter(seg), hpm.WithDiscretiser(disc))
	require.NoError(t, err)
	require.Len(t, scores, len(test))
	for _, s := range scores {
		require.GreaterOrEqual(t, s, 0.0)
		require.LessOrEqual(t, s, 1.0)
	}
}

func TestHPMWithNestedWordSet(t *testing.T) {
	train := sine(100, 0.1)
	test := sine(100, 0.1)

	seg, err := segmenter.New(5)
	require.NoError(t, err)
	ns, err := nwset.New(nwset.WithContextSize(2))
	require.NoError(t, err)

	scores, err := hpm.Run(train, test, hpm.WithSegmenter(seg), hpm.WithNestedWordSet(ns))
	require.NoError(t, err)
	require.Len(t, scores, len(test))
	for _, s := range scores {
		require.GreaterOrEqual(t, s, 0.0)
		require.LessOrEqual(t, s, 1.0)
	}
}

func TestHPMTooShortIsSkipped(t *testing.T) {
	seg, err := segmenter.New(50)
	require.NoError(t, err)
	train := sine(200, 0.1)
	test := sine(40, 0.1) // shorter than 2*windowSize

	_, err = hpm.Run(train, test, hpm.WithSegmenter(seg))
	require.ErrorIs(t, err, hpm.ErrTooShort)
}
