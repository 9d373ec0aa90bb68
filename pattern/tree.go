package pattern

import (
	"github.com/segmetric/hpm/graphstore"
	"github.com/segmetric/hpm/node"
)

// PatternTree is a rooted Digraph: each path from the root is one learned
// chain. Children of a vertex at depth d are all nodes of depth d+1 observed
// after it.
type PatternTree struct {
	g    *graphstore.Digraph
	root int
	mode MatchMode
}

// NewPatternTree returns an empty PatternTree that looks up equivalent
// children with the given mode.
func NewPatternTree(mode MatchMode) *PatternTree {
	g := graphstore.NewDigraph()
	root := g.AddVertex(nil)
	return &PatternTree{g: g, root: root, mode: mode}
}

func (t *PatternTree) childPayloads(vertexIDs []int) []node.Node {
	out := make([]node.Node, len(vertexIDs))
	for i, id := range vertexIDs {
		v, _ := t.g.Vertex(id)
		out[i] = v.Payload
	}
	return out
}

// traverse walks from the root, matching as many leading chain positions as
// possible. It returns the full matched path (including the root, so
// len(path) = consumed+1) and how many chain positions were consumed.
func (t *PatternTree) traverse(chain Chain) (path []int, consumed int, err error) {
	path = []int{t.root}
	current := t.root
	for _, n := range chain {
		children := t.g.Children(current)
		payloads := t.childPayloads(children)
		idx, err := findCandidate(n, payloads, t.mode)
		if err != nil {
			return path, consumed, err
		}
		if idx == -1 {
			break
		}
		current = children[idx]
		path = append(path, current)
		consumed++
	}
	return path, consumed, nil
}

// Update appends new vertices for the chain's unmatched tail, connecting
// them as a path from the last matched vertex, and returns the full vertex
// path including the root.
func (t *PatternTree) Update(chain Chain) (any, error) {
	if err := validateChain(chain); err != nil {
		return nil, err
	}
	path, consumed, err := t.traverse(chain)
	if err != nil {
		return nil, err
	}
	current := path[len(path)-1]
	for d := consumed; d < len(chain); d++ {
		id := t.g.AddVertex(chain[d])
		if err := t.g.AddEdge(current, id); err != nil {
			return nil, err
		}
		path = append(path, id)
		current = id
	}
	return path, nil
}

// Learn folds Update over chains in order.
func (t *PatternTree) Learn(chains []Chain) ([]any, error) {
	traces := make([]any, len(chains))
	for i, c := range chains {
		tr, err := t.Update(c)
		if err != nil {
			return nil, err
		}
		traces[i] = tr
	}
	return traces, nil
}

// Contains reports true iff the traversal from root consumes the whole
// chain.
func (t *PatternTree) Contains(chain Chain) (bool, error) {
	if err := validateChain(chain); err != nil {
		return false, err
	}
	_, consumed, err := t.traverse(chain)
	if err != nil {
		return false, err
	}
	return consumed == len(chain), nil
}

// ChainVertexIDs returns, for each chain position, the vertex id matched
// during a traversal that does not mutate the tree; positions past the
// first non-match are NoVertex.
func (t *PatternTree) ChainVertexIDs(chain Chain) ([]int, error) {
	if err := validateChain(chain); err != nil {
		return nil, err
	}
	path, consumed, err := t.traverse(chain)
	if err != nil {
		return nil, err
	}
	ids := make([]int, len(chain))
	for i := range ids {
		if i < consumed {
			ids[i] = path[i+1]
		} else {
			ids[i] = NoVertex
		}
	}
	return ids, nil
}

// VertexCount reports the total number of vertices, including the root.
func (t *PatternTree) VertexCount() int { return t.g.Len() }
