package pattern

import (
	"fmt"

	"github.com/segmetric/hpm/node"
)

// PatternSet stores, per depth, the set of distinct (by equivalence) nodes
// observed during training. It requires node.Hashable elements — today only
// node.SlopeSign — since it uses hashing plus a same-bucket equivalence scan
// to decide set membership; other variants are usable only in PatternTree
// or PatternGraph.
type PatternSet struct {
	depths []map[uint64][]node.Hashable
}

// NewPatternSet returns an empty PatternSet.
func NewPatternSet() *PatternSet {
	return &PatternSet{}
}

func (s *PatternSet) ensureDepth(d int) {
	for len(s.depths) <= d {
		s.depths = append(s.depths, make(map[uint64][]node.Hashable))
	}
}

func asHashable(n node.Node) (node.Hashable, error) {
	h, ok := n.(node.Hashable)
	if !ok {
		return nil, fmt.Errorf("%w: node %s is not hashable, PatternSet requires node.Hashable", ErrInvalidInput, n)
	}
	return h, nil
}

// memberOf reports whether an equivalent node already exists in bucket,
// inserting h if not.
func memberOf(bucket map[uint64][]node.Hashable, h node.Hashable) (wasPresent bool, err error) {
	key := h.Hash()
	for _, existing := range bucket[key] {
		eq, err := h.Eq(existing)
		if err != nil {
			return false, err
		}
		if eq {
			return true, nil
		}
	}
	bucket[key] = append(bucket[key], h)
	return false, nil
}

// Update ensures nodes[d] exists for every depth in chain, then for each
// (depth, node) records whether it was already present and inserts it if
// new, returning the list of was_present booleans.
func (s *PatternSet) Update(chain Chain) (any, error) {
	if err := validateChain(chain); err != nil {
		return nil, err
	}
	hashables := make([]node.Hashable, len(chain))
	for i, n := range chain {
		h, err := asHashable(n)
		if err != nil {
			return nil, err
		}
		hashables[i] = h
	}

	s.ensureDepth(len(chain) - 1)
	wasPresent := make([]bool, len(chain))
	for d, h := range hashables {
		present, err := memberOf(s.depths[d], h)
		if err != nil {
			return nil, err
		}
		wasPresent[d] = present
	}
	return wasPresent, nil
}

// Learn folds Update over chains in order.
func (s *PatternSet) Learn(chains []Chain) ([]any, error) {
	traces := make([]any, len(chains))
	for i, c := range chains {
		t, err := s.Update(c)
		if err != nil {
			return nil, err
		}
		traces[i] = t
	}
	return traces, nil
}

// Contains reports true iff every node of chain is present at its depth;
// depths beyond what has been learned count as absent, not an error.
func (s *PatternSet) Contains(chain Chain) (bool, error) {
	if err := validateChain(chain); err != nil {
		return false, err
	}
	for d, n := range chain {
		h, err := asHashable(n)
		if err != nil {
			return false, err
		}
		if d >= len(s.depths) {
			return false, nil
		}
		found := false
		for _, existing := range s.depths[d][h.Hash()] {
			eq, err := h.Eq(existing)
			if err != nil {
				return false, err
			}
			if eq {
				found = true
				break
			}
		}
		if !found {
			return false, nil
		}
	}
	return true, nil
}

// DepthSize reports the number of distinct nodes recorded at depth d.
func (s *PatternSet) DepthSize(d int) int {
	if d >= len(s.depths) {
		return 0
	}
	n := 0
	for _, bucket := range s.depths[d] {
		n += len(bucket)
	}
	return n
}
