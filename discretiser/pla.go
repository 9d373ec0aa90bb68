package discretiser

import (
	"fmt"

	"github.com/segmetric/hpm/node"
)

// PLA discretises a window into a chain of piecewise-linear-approximation
// nodes, fitting an OLS line per frame.
type PLA struct {
	maxDepth  MaxDepthFunc
	frames    FrameCountFunc
	threshold ThresholdFunc
}

// PLAOption configures a PLA discretiser.
type PLAOption func(*PLA)

func WithPLAMaxDepth(f MaxDepthFunc) PLAOption     { return func(p *PLA) { p.maxDepth = f } }
func WithPLAFrameCount(f FrameCountFunc) PLAOption { return func(p *PLA) { p.frames = f } }
func WithPLAThreshold(f ThresholdFunc) PLAOption   { return func(p *PLA) { p.threshold = f } }

// NewPLA builds a PLA discretiser with defaults: D=⌊log N⌋, F(d)=2^d,
// threshold(d)=0.5.
func NewPLA(opts ...PLAOption) *PLA {
	p := &PLA{
		maxDepth:  DefaultMaxDepth,
		frames:    DefaultFrameCount,
		threshold: func(int) float64 { return 0.5 },
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *PLA) Discretise(window []float64) (Chain, error) {
	normed, _ := normalise(window)
	d := p.maxDepth(normed)
	chain := make(Chain, d)
	for depth := 0; depth < d; depth++ {
		f := p.frames(depth)
		frames, err := divide(len(normed), f)
		if err != nil {
			return nil, fmt.Errorf("discretiser: pla depth %d: %w", depth, err)
		}
		slopes, intercepts := frameLinearFit(normed, frames)
		n, err := node.NewPLA(depth, slopes, intercepts, frames, p.threshold(depth))
		if err != nil {
			return nil, err
		}
		chain[depth] = n
	}
	return chain, nil
}
