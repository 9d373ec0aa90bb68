package segmenter

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Option configures a SlidingWindow at construction time.
type Option func(*SlidingWindow)

// WithStepSize sets the stride between consecutive windows (default 1).
func WithStepSize(step int) Option {
	if step <= 0 {
		panic("segmenter: step size must be positive")
	}
	return func(s *SlidingWindow) { s.stepSize = step }
}

// WithDifferentiation enables first-differencing before windowing.
func WithDifferentiation() Option {
	return func(s *SlidingWindow) { s.differentiation = true }
}

// WithAutocorrelation enables autocorrelation-derived window sizing on the
// first Segment call.
func WithAutocorrelation() Option {
	return func(s *SlidingWindow) { s.autocorrelation = true }
}

// WithMinimumLag overrides the minimum lag considered by autocorrelation
// period detection (default 10).
func WithMinimumLag(min int) Option {
	if min < 1 {
		panic("segmenter: minimum lag must be at least 1")
	}
	return func(s *SlidingWindow) { s.minimumLag = min }
}

// SlidingWindow segments a series into overlapping fixed-length windows.
type SlidingWindow struct {
	windowSize      int
	stepSize        int
	differentiation bool
	autocorrelation bool
	minimumLag      int

	resolved       bool
	resolvedWindow int
}

// New builds a SlidingWindow with the given fallback/configured window size.
func New(windowSize int, opts ...Option) (*SlidingWindow, error) {
	if windowSize <= 0 {
		return nil, fmt.Errorf("%w: window size must be positive, got %d", ErrInvalidInput, windowSize)
	}
	s := &SlidingWindow{
		windowSize: windowSize,
		stepSize:   1,
		minimumLag: 10,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// WindowSize reports the configured (not yet resolved) window size.
func (s *SlidingWindow) WindowSize() int { return s.windowSize }

// StepSize reports the stride between windows.
func (s *SlidingWindow) StepSize() int { return s.stepSize }

// Segment partitions data into overlapping windows of the effective window
// size, strided by StepSize. On the first call, if autocorrelation is
// enabled, the effective window size is replaced by the autocorrelation
// period (falling back to the configured size on failure) and the result is
// cached for every later call on this instance.
func (s *SlidingWindow) Segment(data []float64) ([][]float64, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty data", ErrInvalidInput)
	}

	series := data
	if s.differentiation {
		series = diff(data)
	}

	effective := s.effectiveWindowSize(series)
	if len(series) < effective {
		return nil, fmt.Errorf("%w: data length %d shorter than effective window %d", ErrInvalidInput, len(series), effective)
	}

	n := (len(series)-effective)/s.stepSize + 1
	windows := make([][]float64, n)
	for i := 0; i < n; i++ {
		start := i * s.stepSize
		w := make([]float64, effective)
		copy(w, series[start:start+effective])
		windows[i] = w
	}
	return windows, nil
}

func (s *SlidingWindow) effectiveWindowSize(series []float64) int {
	if !s.autocorrelation {
		return s.windowSize
	}
	if s.resolved {
		return s.resolvedWindow
	}
	period, ok := autocorrelationWindowSize(series, s.minimumLag)
	if !ok {
		period = s.windowSize
	}
	s.resolvedWindow = period
	s.resolved = true
	return period
}

// diff returns the first differences of data: len(data)-1 values.
func diff(data []float64) []float64 {
	if len(data) < 2 {
		return nil
	}
	out := make([]float64, len(data)-1)
	for i := 1; i < len(data); i++ {
		out[i-1] = data[i] - data[i-1]
	}
	return out
}

// demean returns data shifted to zero mean, using gonum's mean.
func demean(data []float64) []float64 {
	mean := stat.Mean(data, nil)
	out := make([]float64, len(data))
	for i, x := range data {
		out[i] = x - mean
	}
	return out
}
