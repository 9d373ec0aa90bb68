package main

import (
	"errors"
	"fmt"

	"github.com/segmetric/hpm/discretiser"
	"github.com/segmetric/hpm/hpm"
	"github.com/segmetric/hpm/pattern"
	"github.com/segmetric/hpm/segmenter"
)

// algorithm names and builds one HPM configuration. windowSize is read back
// after the segmenter is built so the caller can apply the same too-short
// and scoring-margin rules the reference harness uses.
type algorithm struct {
	name       string
	newOptions func() (windowSize int, opts []hpm.Option, err error)
}

// defaultAlgorithms mirrors eval/ucr/benchmark.py's __main__ configuration:
// a PatternGraph model over StructuralProminence chains, with and without
// first-differencing ahead of the autocorrelation-sized window.
func defaultAlgorithms() []algorithm {
	newStructuralProminence := func() *discretiser.StructuralProminence {
		return discretiser.NewStructuralProminence(
			discretiser.WithStructuralThreshold(func(int) float64 { return 0.25 }),
			discretiser.WithProminenceThreshold(func(int) float64 { return 0.25 }),
		)
	}

	build := func(differentiate bool) func() (int, []hpm.Option, error) {
		return func() (int, []hpm.Option, error) {
			segOpts := []segmenter.Option{segmenter.WithAutocorrelation()}
			if differentiate {
				segOpts = append(segOpts, segmenter.WithDifferentiation())
			}
			seg, err := segmenter.New(200, segOpts...)
			if err != nil {
				return 0, nil, err
			}
			return seg.WindowSize(), []hpm.Option{
				hpm.WithSegmenter(seg),
				hpm.WithDiscretiser(newStructuralProminence()),
				hpm.WithModel(pattern.NewPatternGraph(pattern.FirstMatch)),
			}, nil
		}
	}

	return []algorithm{
		{name: "HPM_PatternGraph_auto_diff", newOptions: build(true)},
		{name: "HPM_PatternGraph_auto", newOptions: build(false)},
	}
}

// evaluate runs alg against d and reports whether the predicted anomaly
// location falls within margin of the ground-truth range. predictedHit is
// false, with a nil error, whenever the run is a skip (too-short score
// series), matching the reference harness's `results.append(False)` path.
func evaluate(alg algorithm, d dataset) (predictedHit bool, err error) {
	windowSize, opts, err := alg.newOptions()
	if err != nil {
		return false, fmt.Errorf("hpmbench: %s: building config: %w", alg.name, err)
	}

	scores, err := hpm.Run(d.train, d.test, opts...)
	if errors.Is(err, hpm.ErrTooShort) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("hpmbench: %s on %s: %w", alg.name, d.id, err)
	}
	if len(scores) < 2*windowSize {
		return false, nil
	}

	minIdx := argmin(scores[windowSize:len(scores)-windowSize]) + windowSize
	predicted := minIdx + len(d.train)

	anomalyLength := d.anomalyEnd - d.anomalyStart + 1
	margin := anomalyLength
	if margin < 100 {
		margin = 100
	}
	lo := d.anomalyStart - margin
	hi := d.anomalyEnd + margin
	return lo < predicted && predicted < hi, nil
}

// argmin returns the index of the smallest value in xs. xs must be
// non-empty.
func argmin(xs []float64) int {
	best := 0
	for i, v := range xs {
		if v < xs[best] {
			best = i
		}
	}
	return best
}
