package node

import (
	"fmt"
	"math"
)

// StructuralProminence pairs a coarse structural summary (mean slope and
// intercept across frames) with a prominence summary (the standard
// deviation of the window before normalisation), each with its own
// threshold.
type StructuralProminence struct {
	depth       int
	std         float64
	slopes      []float64
	intercepts  []float64
	tStructural float64
	tProminence float64
}

// NewStructuralProminence builds a StructuralProminence node.
func NewStructuralProminence(depth int, std float64, slopes, intercepts []float64, tStructural, tProminence float64) (*StructuralProminence, error) {
	if len(slopes) == 0 || len(slopes) != len(intercepts) {
		return nil, fmt.Errorf("node: structuralprominence %w: slopes=%d intercepts=%d must agree and be non-empty",
			ErrInvalidInput, len(slopes), len(intercepts))
	}
	if std < 0 {
		return nil, fmt.Errorf("node: structuralprominence %w: negative std", ErrInvalidInput)
	}
	return &StructuralProminence{
		depth: depth, std: std, slopes: slopes, intercepts: intercepts,
		tStructural: tStructural, tProminence: tProminence,
	}, nil
}

func (s *StructuralProminence) Depth() int { return s.depth }

func (s *StructuralProminence) sameConfig(o *StructuralProminence) bool {
	return s.depth == o.depth && s.tStructural == o.tStructural && s.tProminence == o.tProminence
}

// structuralDistance returns the signed mean of (Δslope + Δintercept) across
// frames — no absolute value taken here; that happens only in Distance.
func (s *StructuralProminence) structuralDistance(o *StructuralProminence) (float64, error) {
	if len(s.slopes) != len(o.slopes) {
		return 0, fmt.Errorf("node: structuralprominence %w: mismatched frame count", ErrIncomparable)
	}
	var sum float64
	for i := range s.slopes {
		sum += (s.slopes[i] - o.slopes[i]) + (s.intercepts[i] - o.intercepts[i])
	}
	return sum / float64(len(s.slopes)), nil
}

// prominenceDistance returns max(σ,σ')/min(σ,σ')-1, unsigned by construction
// since std is never negative.
func (s *StructuralProminence) prominenceDistance(o *StructuralProminence) (float64, error) {
	if s.std == 0 || o.std == 0 {
		if s.std == o.std {
			return 0, nil
		}
		return 0, fmt.Errorf("node: structuralprominence %w: zero std on one side only", ErrIncomparable)
	}
	hi, lo := s.std, o.std
	if lo > hi {
		hi, lo = lo, hi
	}
	return hi/lo - 1, nil
}

func (s *StructuralProminence) Eq(other Node) (bool, error) {
	o, ok := other.(*StructuralProminence)
	if !ok || !s.sameConfig(o) {
		return false, fmt.Errorf("node: structuralprominence %w", ErrIncomparable)
	}
	dS, err := s.structuralDistance(o)
	if err != nil {
		return false, err
	}
	dP, err := s.prominenceDistance(o)
	if err != nil {
		return false, err
	}
	return math.Abs(dS) <= s.tStructural && math.Abs(dP) <= s.tProminence, nil
}

// Distance is |dS| + |dP|: absolute value is taken on each component only
// when they are summed, preserving the signed structural distance elsewhere.
func (s *StructuralProminence) Distance(other Node) (float64, error) {
	o, ok := other.(*StructuralProminence)
	if !ok || !s.sameConfig(o) {
		return 0, fmt.Errorf("node: structuralprominence %w", ErrIncomparable)
	}
	dS, err := s.structuralDistance(o)
	if err != nil {
		return 0, err
	}
	dP, err := s.prominenceDistance(o)
	if err != nil {
		return 0, err
	}
	return math.Abs(dS) + math.Abs(dP), nil
}

func (s *StructuralProminence) String() string {
	return fmt.Sprintf("StructuralProminence(d=%d, std=%.4f, slopes=%v, intercepts=%v)",
		s.depth, s.std, round4(s.slopes), round4(s.intercepts))
}
