package node

import "fmt"

// SlopeSign records only the sign of each frame's slope: -1, 0, or +1. It is
// the one variant cheap and exact enough to hash, so it is the only variant
// usable directly inside PatternSet.
type SlopeSign struct {
	depth int
	signs []int8
}

// NewSlopeSign builds a SlopeSign node from per-frame slopes, reducing each
// to its sign.
func NewSlopeSign(depth int, slopes []float64) (*SlopeSign, error) {
	if len(slopes) == 0 {
		return nil, fmt.Errorf("node: slopesign %w: empty slopes", ErrInvalidInput)
	}
	signs := make([]int8, len(slopes))
	for i, s := range slopes {
		switch {
		case s > 0:
			signs[i] = 1
		case s < 0:
			signs[i] = -1
		default:
			signs[i] = 0
		}
	}
	return &SlopeSign{depth: depth, signs: signs}, nil
}

func (s *SlopeSign) Depth() int { return s.depth }

func (s *SlopeSign) Signs() []int8 { return s.signs }

func (s *SlopeSign) Eq(other Node) (bool, error) {
	o, ok := other.(*SlopeSign)
	if !ok || o.depth != s.depth || len(o.signs) != len(s.signs) {
		return false, fmt.Errorf("node: slopesign %w", ErrIncomparable)
	}
	for i := range s.signs {
		if s.signs[i] != o.signs[i] {
			return false, nil
		}
	}
	return true, nil
}

func (s *SlopeSign) Distance(other Node) (float64, error) {
	o, ok := other.(*SlopeSign)
	if !ok || o.depth != s.depth || len(o.signs) != len(s.signs) {
		return 0, fmt.Errorf("node: slopesign %w", ErrIncomparable)
	}
	mismatches := 0
	for i := range s.signs {
		if s.signs[i] != o.signs[i] {
			mismatches++
		}
	}
	return float64(mismatches) / float64(len(s.signs)), nil
}

// Hash combines depth and the sign sequence into a single uint64, by the
// FNV-1a algorithm over the raw sign bytes.
func (s *SlopeSign) Hash() uint64 {
	var h uint64 = 14695981039346656037
	const prime = 1099511628211
	h ^= uint64(s.depth)
	h *= prime
	for _, sign := range s.signs {
		h ^= uint64(byte(sign))
		h *= prime
	}
	return h
}

func (s *SlopeSign) String() string {
	return fmt.Sprintf("SlopeSign(d=%d, signs=%v)", s.depth, s.signs)
}
