package discretiser

import (
	"fmt"

	"github.com/segmetric/hpm/node"
)

// PAA discretises a window into a chain of piecewise-aggregate-approximation
// nodes.
type PAA struct {
	maxDepth  MaxDepthFunc
	frames    FrameCountFunc
	threshold ThresholdFunc
}

// PAAOption configures a PAA discretiser.
type PAAOption func(*PAA)

// WithPAAMaxDepth overrides the default D = ⌊log N⌋ depth function.
func WithPAAMaxDepth(f MaxDepthFunc) PAAOption { return func(p *PAA) { p.maxDepth = f } }

// WithPAAFrameCount overrides the default F(d) = 2^d frame-count function.
func WithPAAFrameCount(f FrameCountFunc) PAAOption { return func(p *PAA) { p.frames = f } }

// WithPAAThreshold overrides the default distance threshold function.
func WithPAAThreshold(f ThresholdFunc) PAAOption { return func(p *PAA) { p.threshold = f } }

// NewPAA builds a PAA discretiser with defaults: D=⌊log N⌋, F(d)=2^d,
// threshold(d)=0.5.
func NewPAA(opts ...PAAOption) *PAA {
	p := &PAA{
		maxDepth:  DefaultMaxDepth,
		frames:    DefaultFrameCount,
		threshold: func(int) float64 { return 0.5 },
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *PAA) Discretise(window []float64) (Chain, error) {
	normed, _ := normalise(window)
	d := p.maxDepth(normed)
	chain := make(Chain, d)
	for depth := 0; depth < d; depth++ {
		f := p.frames(depth)
		frames, err := divide(len(normed), f)
		if err != nil {
			return nil, fmt.Errorf("discretiser: paa depth %d: %w", depth, err)
		}
		means := frameMeans(normed, frames)
		n, err := node.NewPAA(depth, len(normed), f, frames, means, p.threshold(depth))
		if err != nil {
			return nil, err
		}
		chain[depth] = n
	}
	return chain, nil
}
