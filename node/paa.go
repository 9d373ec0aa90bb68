package node

import (
	"fmt"
	"math"
)

// PAA is a piecewise aggregate approximation node: the per-frame means of a
// window at depth d.
type PAA struct {
	depth       int
	n           int // window length
	f           int // frame count, F(d)
	breakpoints []Frame
	mu          []float64
	threshold   float64
}

// NewPAA builds a PAA node. mu and breakpoints must both have length f.
func NewPAA(depth, n, f int, breakpoints []Frame, mu []float64, threshold float64) (*PAA, error) {
	if f <= 0 || n <= 0 {
		return nil, fmt.Errorf("node: paa %w: n=%d f=%d must be positive", ErrInvalidInput, n, f)
	}
	if len(breakpoints) != f || len(mu) != f {
		return nil, fmt.Errorf("node: paa %w: want %d breakpoints/means, got %d/%d", ErrInvalidInput, f, len(breakpoints), len(mu))
	}
	return &PAA{depth: depth, n: n, f: f, breakpoints: breakpoints, mu: mu, threshold: threshold}, nil
}

func (p *PAA) Depth() int { return p.depth }

func (p *PAA) Means() []float64 { return p.mu }

func (p *PAA) distanceRaw(o *PAA) (float64, error) {
	if len(p.mu) != len(o.mu) {
		return 0, fmt.Errorf("node: paa %w: mismatched frame count", ErrIncomparable)
	}
	var sumSq float64
	for i := range p.mu {
		d := p.mu[i] - o.mu[i]
		sumSq += d * d
	}
	return math.Sqrt(float64(p.n)/float64(p.f)) * math.Sqrt(sumSq), nil
}

func (p *PAA) sameConfig(o *PAA) bool {
	return p.depth == o.depth && p.threshold == o.threshold
}

func (p *PAA) Eq(other Node) (bool, error) {
	o, ok := other.(*PAA)
	if !ok || !p.sameConfig(o) {
		return false, fmt.Errorf("node: paa %w", ErrIncomparable)
	}
	d, err := p.distanceRaw(o)
	if err != nil {
		return false, err
	}
	return d <= p.threshold, nil
}

func (p *PAA) Distance(other Node) (float64, error) {
	o, ok := other.(*PAA)
	if !ok || !p.sameConfig(o) {
		return 0, fmt.Errorf("node: paa %w", ErrIncomparable)
	}
	return p.distanceRaw(o)
}

func (p *PAA) String() string {
	return fmt.Sprintf("PAA(d=%d, f=%d, mu=%v)", p.depth, p.f, round4(p.mu))
}

func round4(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = math.Round(x*1e4) / 1e4
	}
	return out
}
