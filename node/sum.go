package node

import (
	"fmt"
	"math"
)

// Sum is the toy variant: per-frame sums with no normalisation.
type Sum struct {
	depth     int
	sums      []float64
	threshold float64
}

// NewSum builds a Sum node.
func NewSum(depth int, sums []float64, threshold float64) (*Sum, error) {
	if len(sums) == 0 {
		return nil, fmt.Errorf("node: sum %w: empty sums", ErrInvalidInput)
	}
	return &Sum{depth: depth, sums: sums, threshold: threshold}, nil
}

func (s *Sum) Depth() int { return s.depth }

func (s *Sum) Sums() []float64 { return s.sums }

func (s *Sum) sameConfig(o *Sum) bool {
	return s.depth == o.depth && s.threshold == o.threshold
}

func (s *Sum) distanceRaw(o *Sum) (float64, error) {
	if len(s.sums) != len(o.sums) {
		return 0, fmt.Errorf("node: sum %w: mismatched frame count", ErrIncomparable)
	}
	var total float64
	for i := range s.sums {
		total += math.Abs(s.sums[i] - o.sums[i])
	}
	return total / float64(len(s.sums)), nil
}

func (s *Sum) Eq(other Node) (bool, error) {
	o, ok := other.(*Sum)
	if !ok || !s.sameConfig(o) {
		return false, fmt.Errorf("node: sum %w", ErrIncomparable)
	}
	d, err := s.distanceRaw(o)
	if err != nil {
		return false, err
	}
	return d <= s.threshold, nil
}

func (s *Sum) Distance(other Node) (float64, error) {
	o, ok := other.(*Sum)
	if !ok || !s.sameConfig(o) {
		return 0, fmt.Errorf("node: sum %w", ErrIncomparable)
	}
	return s.distanceRaw(o)
}

func (s *Sum) String() string {
	return fmt.Sprintf("Sum(d=%d, sums=%v)", s.depth, round4(s.sums))
}
