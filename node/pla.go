package node

import (
	"fmt"
	"math"
)

// PLA is a piecewise linear approximation node: per-frame (slope, intercept)
// pairs fit by ordinary least squares over local frame coordinates 0..L-1.
type PLA struct {
	depth       int
	slopes      []float64
	intercepts  []float64
	breakpoints []Frame
	threshold   float64
}

// NewPLA builds a PLA node. slopes, intercepts, and breakpoints must agree
// in length.
func NewPLA(depth int, slopes, intercepts []float64, breakpoints []Frame, threshold float64) (*PLA, error) {
	if len(slopes) == 0 || len(slopes) != len(intercepts) || len(slopes) != len(breakpoints) {
		return nil, fmt.Errorf("node: pla %w: slopes=%d intercepts=%d breakpoints=%d must agree and be non-empty",
			ErrInvalidInput, len(slopes), len(intercepts), len(breakpoints))
	}
	return &PLA{depth: depth, slopes: slopes, intercepts: intercepts, breakpoints: breakpoints, threshold: threshold}, nil
}

func (p *PLA) Depth() int { return p.depth }

func (p *PLA) sameConfig(o *PLA) bool {
	return p.depth == o.depth && p.threshold == o.threshold
}

// distanceRaw integrates the squared difference between the two piecewise
// linear reconstructions, frame by frame, over each frame's local
// coordinates j = 1..L.
func (p *PLA) distanceRaw(o *PLA) (float64, error) {
	if len(p.slopes) != len(o.slopes) {
		return 0, fmt.Errorf("node: pla %w: mismatched frame count", ErrIncomparable)
	}
	var sumSq float64
	for i := range p.slopes {
		da := p.slopes[i] - o.slopes[i]
		db := p.intercepts[i] - o.intercepts[i]
		l := p.breakpoints[i].Len()
		for j := 1; j <= l; j++ {
			v := da*float64(j) + db
			sumSq += v * v
		}
	}
	return math.Sqrt(sumSq), nil
}

func (p *PLA) Eq(other Node) (bool, error) {
	o, ok := other.(*PLA)
	if !ok || !p.sameConfig(o) {
		return false, fmt.Errorf("node: pla %w", ErrIncomparable)
	}
	d, err := p.distanceRaw(o)
	if err != nil {
		return false, err
	}
	return d <= p.threshold, nil
}

func (p *PLA) Distance(other Node) (float64, error) {
	o, ok := other.(*PLA)
	if !ok || !p.sameConfig(o) {
		return 0, fmt.Errorf("node: pla %w", ErrIncomparable)
	}
	return p.distanceRaw(o)
}

func (p *PLA) String() string {
	return fmt.Sprintf("PLA(d=%d, slopes=%v, intercepts=%v)", p.depth, round4(p.slopes), round4(p.intercepts))
}
