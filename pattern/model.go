package pattern

import (
	"fmt"

	"github.com/segmetric/hpm/node"
)

// Chain is a finite sequence of nodes of one variant, depth(chain[i]) = i.
type Chain []node.Node

// MatchMode selects how a model's traversal picks among several equivalent
// candidate children: the first one found (insertion/vertex-id order), or
// the one with the smallest distance, ties broken by the same order.
type MatchMode int

const (
	// FirstMatch picks the first equivalent candidate in ascending vertex-id
	// order. This is the default.
	FirstMatch MatchMode = iota
	// ClosestMatch picks the equivalent candidate with the smallest
	// distance, ties broken by ascending vertex-id order.
	ClosestMatch
)

// Model is the shared contract of PatternSet, PatternTree, and
// PatternGraph.
type Model interface {
	// Update adds chain if not already present, returning a model-specific
	// trace of what happened. Never partially mutates on failure.
	Update(chain Chain) (any, error)

	// Learn folds Update over chains, in order.
	Learn(chains []Chain) ([]any, error)

	// Contains reports whether chain is fully recognised.
	Contains(chain Chain) (bool, error)
}

// VertexLookup is implemented by models (PatternTree, PatternGraph) whose
// internal representation assigns one vertex id per chain position, which
// NestedWordSet needs to build a NestedWord over.
type VertexLookup interface {
	// ChainVertexIDs returns the vertex id matched to each chain position,
	// without mutating the model. A position that matches nothing is
	// reported as NoVertex.
	ChainVertexIDs(chain Chain) ([]int, error)
}

// NoVertex is the sentinel "no matching vertex" id, analogous to Python's
// None in chain_to_vertices.
const NoVertex = -1

func validateChain(chain Chain) error {
	if len(chain) == 0 {
		return fmt.Errorf("%w: empty chain", ErrInvalidInput)
	}
	for i, n := range chain {
		if n == nil {
			return fmt.Errorf("%w: nil node at depth %d", ErrInvalidInput, i)
		}
	}
	return nil
}

// findCandidate scans candidates (already in ascending-vertex-id order) for
// one equivalent to target, returning its index or -1 if none match.
// Incomparable pairs (Eq or Distance returning an error, e.g. two
// StructuralProminence nodes where only one has zero std) are skipped as
// non-matches, so the returned error is always nil.
func findCandidate(target node.Node, candidates []node.Node, mode MatchMode) (int, error) {
	best := -1
	bestDist := 0.0
	for i, c := range candidates {
		eq, err := target.Eq(c)
		if err != nil {
			continue
		}
		if !eq {
			continue
		}
		if mode == FirstMatch {
			return i, nil
		}
		dist, err := target.Distance(c)
		if err != nil {
			continue
		}
		if best == -1 || dist < bestDist {
			best, bestDist = i, dist
		}
	}
	return best, nil
}
