package discretiser

import (
	"fmt"

	"github.com/segmetric/hpm/node"
)

// Sum discretises a window into a chain of per-frame sums, with no
// per-frame averaging (unlike PAA).
type Sum struct {
	maxDepth  MaxDepthFunc
	frames    FrameCountFunc
	threshold ThresholdFunc
}

// SumOption configures a Sum discretiser.
type SumOption func(*Sum)

func WithSumMaxDepth(f MaxDepthFunc) SumOption     { return func(s *Sum) { s.maxDepth = f } }
func WithSumFrameCount(f FrameCountFunc) SumOption { return func(s *Sum) { s.frames = f } }
func WithSumThreshold(f ThresholdFunc) SumOption   { return func(s *Sum) { s.threshold = f } }

// NewSum builds a Sum discretiser with defaults: D=⌊log N⌋, F(d)=2^d,
// threshold(d)=0.5.
func NewSum(opts ...SumOption) *Sum {
	s := &Sum{
		maxDepth:  DefaultMaxDepth,
		frames:    DefaultFrameCount,
		threshold: func(int) float64 { return 0.5 },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Sum) Discretise(window []float64) (Chain, error) {
	normed, _ := normalise(window)
	d := s.maxDepth(normed)
	chain := make(Chain, d)
	for depth := 0; depth < d; depth++ {
		f := s.frames(depth)
		frames, err := divide(len(normed), f)
		if err != nil {
			return nil, fmt.Errorf("discretiser: sum depth %d: %w", depth, err)
		}
		sums := frameSums(normed, frames)
		n, err := node.NewSum(depth, sums, s.threshold(depth))
		if err != nil {
			return nil, err
		}
		chain[depth] = n
	}
	return chain, nil
}
