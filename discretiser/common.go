package discretiser

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/segmetric/hpm/node"
)

// MaxDepthFunc maps a window to the number of depths, D, a chain should
// have. DefaultMaxDepth implements ⌊log N⌋.
type MaxDepthFunc func(window []float64) int

// FrameCountFunc maps a depth to F(d), the number of frames at that depth.
// DefaultFrameCount implements 2^d.
type FrameCountFunc func(depth int) int

// ThresholdFunc maps a depth to a distance threshold, evaluated once at
// node construction time.
type ThresholdFunc func(depth int) float64

// DefaultMaxDepth returns ⌊log N⌋ (natural log), the HPM driver default.
func DefaultMaxDepth(window []float64) int {
	n := len(window)
	if n < 1 {
		return 0
	}
	return int(math.Floor(math.Log(float64(n))))
}

// DefaultFrameCount returns 2^depth, the HPM driver default.
func DefaultFrameCount(depth int) int {
	return 1 << uint(depth)
}

// divide partitions [0, n) into f contiguous, as-equal-as-possible
// half-open frames; the first n%f frames get one extra element, matching a
// numpy-style array_split.
func divide(n, f int) ([]node.Frame, error) {
	if f < 1 || f > n {
		return nil, fmt.Errorf("%w: frame count %d outside [1, %d]", ErrInvalidInput, f, n)
	}
	frames := make([]node.Frame, f)
	base := n / f
	rem := n % f
	start := 0
	for i := 0; i < f; i++ {
		size := base
		if i < rem {
			size++
		}
		frames[i] = node.Frame{Start: start, End: start + size}
		start += size
	}
	return frames, nil
}

// normalise z-normalises window (zero mean, unit variance), returning the
// zero vector when the window has zero variance. It also reports the
// window's standard deviation as computed before normalisation, which
// StructuralProminence needs as a prominence signal (normalisation would
// otherwise erase it).
func normalise(window []float64) (normalised []float64, std float64) {
	mean := stat.Mean(window, nil)
	std = stat.StdDev(window, nil)
	out := make([]float64, len(window))
	if std == 0 {
		return out, 0
	}
	for i, x := range window {
		out[i] = (x - mean) / std
	}
	return out, std
}

// frameMeans computes the mean of window over each frame.
func frameMeans(window []float64, frames []node.Frame) []float64 {
	means := make([]float64, len(frames))
	for i, f := range frames {
		means[i] = stat.Mean(window[f.Start:f.End], nil)
	}
	return means
}

// frameSums computes the sum of window over each frame.
func frameSums(window []float64, frames []node.Frame) []float64 {
	sums := make([]float64, len(frames))
	for i, f := range frames {
		var s float64
		for _, x := range window[f.Start:f.End] {
			s += x
		}
		sums[i] = s
	}
	return sums
}

// frameLinearFit fits an OLS line y = alpha + beta*x, x = 0..L-1, per frame,
// returning per-frame (slope, intercept).
func frameLinearFit(window []float64, frames []node.Frame) (slopes, intercepts []float64) {
	slopes = make([]float64, len(frames))
	intercepts = make([]float64, len(frames))
	for i, f := range frames {
		y := window[f.Start:f.End]
		x := make([]float64, len(y))
		for j := range x {
			x[j] = float64(j)
		}
		alpha, beta := stat.LinearRegression(x, y, nil, false)
		slopes[i] = beta
		intercepts[i] = alpha
	}
	return slopes, intercepts
}
