package discretiser

import (
	"fmt"

	"github.com/segmetric/hpm/node"
)

// SlopeSign discretises a window into a chain of per-frame slope-sign
// nodes, reusing PLA's OLS fit and keeping only the sign of each slope.
//
// Supplemented beyond spec.md §4.2's explicit four variants: section 3's
// node table and property S2 both require a SlopeSign chain to exist.
type SlopeSign struct {
	maxDepth MaxDepthFunc
	frames   FrameCountFunc
}

// SlopeSignOption configures a SlopeSign discretiser.
type SlopeSignOption func(*SlopeSign)

func WithSlopeSignMaxDepth(f MaxDepthFunc) SlopeSignOption {
	return func(s *SlopeSign) { s.maxDepth = f }
}
func WithSlopeSignFrameCount(f FrameCountFunc) SlopeSignOption {
	return func(s *SlopeSign) { s.frames = f }
}

// NewSlopeSign builds a SlopeSign discretiser with defaults: D=⌊log N⌋,
// F(d)=2^d.
func NewSlopeSign(opts ...SlopeSignOption) *SlopeSign {
	s := &SlopeSign{maxDepth: DefaultMaxDepth, frames: DefaultFrameCount}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *SlopeSign) Discretise(window []float64) (Chain, error) {
	normed, _ := normalise(window)
	d := s.maxDepth(normed)
	chain := make(Chain, d)
	for depth := 0; depth < d; depth++ {
		f := s.frames(depth)
		frames, err := divide(len(normed), f)
		if err != nil {
			return nil, fmt.Errorf("discretiser: slopesign depth %d: %w", depth, err)
		}
		slopes, _ := frameLinearFit(normed, frames)
		n, err := node.NewSlopeSign(depth, slopes)
		if err != nil {
			return nil, err
		}
		chain[depth] = n
	}
	return chain, nil
}
