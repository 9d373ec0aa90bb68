package discretiser

import (
	"fmt"

	"github.com/segmetric/hpm/node"
)

// StructuralProminence discretises a window into a chain of
// StructuralProminence nodes: reuses PLA's per-frame OLS fit for the
// structural component, and the window's pre-normalisation standard
// deviation for the prominence component (normalisation would otherwise
// make every window's std exactly 1, erasing the signal).
//
// Supplemented beyond spec.md §4.2's explicit four variants: hpm's
// documented default node_type is StructuralProminence, so a discretiser
// producing that variant must exist.
type StructuralProminence struct {
	maxDepth    MaxDepthFunc
	frames      FrameCountFunc
	tStructural ThresholdFunc
	tProminence ThresholdFunc
}

// StructuralProminenceOption configures a StructuralProminence discretiser.
type StructuralProminenceOption func(*StructuralProminence)

func WithStructuralProminenceMaxDepth(f MaxDepthFunc) StructuralProminenceOption {
	return func(s *StructuralProminence) { s.maxDepth = f }
}
func WithStructuralProminenceFrameCount(f FrameCountFunc) StructuralProminenceOption {
	return func(s *StructuralProminence) { s.frames = f }
}
func WithStructuralThreshold(f ThresholdFunc) StructuralProminenceOption {
	return func(s *StructuralProminence) { s.tStructural = f }
}
func WithProminenceThreshold(f ThresholdFunc) StructuralProminenceOption {
	return func(s *StructuralProminence) { s.tProminence = f }
}

// NewStructuralProminence builds a StructuralProminence discretiser with
// hpm's documented defaults: D=⌊log N⌋, F(d)=2^d,
// structural/prominence_threshold(d)=0.5.
func NewStructuralProminence(opts ...StructuralProminenceOption) *StructuralProminence {
	s := &StructuralProminence{
		maxDepth:    DefaultMaxDepth,
		frames:      DefaultFrameCount,
		tStructural: func(int) float64 { return 0.5 },
		tProminence: func(int) float64 { return 0.5 },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *StructuralProminence) Discretise(window []float64) (Chain, error) {
	normed, std := normalise(window)
	d := s.maxDepth(normed)
	chain := make(Chain, d)
	for depth := 0; depth < d; depth++ {
		f := s.frames(depth)
		frames, err := divide(len(normed), f)
		if err != nil {
			return nil, fmt.Errorf("discretiser: structuralprominence depth %d: %w", depth, err)
		}
		slopes, intercepts := frameLinearFit(normed, frames)
		n, err := node.NewStructuralProminence(depth, std, slopes, intercepts, s.tStructural(depth), s.tProminence(depth))
		if err != nil {
			return nil, err
		}
		chain[depth] = n
	}
	return chain, nil
}
