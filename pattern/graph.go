package pattern

import (
	"github.com/segmetric/hpm/graphstore"
	"github.com/segmetric/hpm/node"
)

// PatternGraph is a LayeredDigraph: each learned chain contributes one
// vertex per depth (reused if equivalent) and edges connecting successive
// nodes in the chain, allowing cross-branch vertex reuse.
type PatternGraph struct {
	g    *graphstore.LayeredDigraph
	mode MatchMode
}

// NewPatternGraph returns an empty PatternGraph that looks up equivalent
// vertices with the given mode.
func NewPatternGraph(mode MatchMode) *PatternGraph {
	return &PatternGraph{g: graphstore.NewLayeredDigraph(), mode: mode}
}

func (g *PatternGraph) payloadsOf(ids []int) []node.Node {
	out := make([]node.Node, len(ids))
	for i, id := range ids {
		v, _ := g.g.Vertex(id)
		out[i] = v.Payload
	}
	return out
}

// matchAmong scans ids (already in a deterministic order) for one whose
// payload is equivalent to target, returning its id or NoVertex.
func (g *PatternGraph) matchAmong(target node.Node, ids []int) (int, error) {
	if len(ids) == 0 {
		return NoVertex, nil
	}
	payloads := g.payloadsOf(ids)
	idx, err := findCandidate(target, payloads, g.mode)
	if err != nil {
		return NoVertex, err
	}
	if idx == -1 {
		return NoVertex, nil
	}
	return ids[idx], nil
}

// chainToVertices produces the two aligned sequences described in the
// component design: traversal[d] is the vertex matching chain[d] (or
// NoVertex), found by first searching the previous matched vertex's
// children, then falling back to the whole layer; connection[d] reports
// whether an edge traversal[d] -> traversal[d+1] exists.
func (g *PatternGraph) chainToVertices(chain Chain) (traversal []int, connection []bool, err error) {
	traversal = make([]int, len(chain))
	for d, n := range chain {
		var id int
		if d > 0 && traversal[d-1] != NoVertex {
			id, err = g.matchAmong(n, g.g.Children(traversal[d-1]))
			if err != nil {
				return nil, nil, err
			}
		} else {
			id = NoVertex
		}
		if id == NoVertex {
			id, err = g.matchAmong(n, g.g.LayerVertices(d))
			if err != nil {
				return nil, nil, err
			}
		}
		traversal[d] = id
	}

	connection = make([]bool, 0)
	if len(chain) > 1 {
		connection = make([]bool, len(chain)-1)
		for d := 0; d < len(chain)-1; d++ {
			if traversal[d] == NoVertex || traversal[d+1] == NoVertex {
				connection[d] = false
				continue
			}
			connection[d] = g.g.HasEdge(traversal[d], traversal[d+1])
		}
	}
	return traversal, connection, nil
}

// Update fills each NoVertex position by allocating a new vertex at the
// right layer (the LayeredDigraph invariant lifts it via the edge), then
// adds the missing edge for every disconnected consecutive pair.
func (g *PatternGraph) Update(chain Chain) (any, error) {
	if err := validateChain(chain); err != nil {
		return nil, err
	}
	traversal, connection, err := g.chainToVertices(chain)
	if err != nil {
		return nil, err
	}
	for d, id := range traversal {
		if id == NoVertex {
			traversal[d] = g.g.AddVertex(chain[d])
		}
	}
	for d := 0; d < len(traversal)-1; d++ {
		if d < len(connection) && connection[d] {
			continue
		}
		if err := g.g.AddEdge(traversal[d], traversal[d+1]); err != nil {
			return nil, err
		}
	}
	return traversal, nil
}

// Learn folds Update over chains in order.
func (g *PatternGraph) Learn(chains []Chain) ([]any, error) {
	traces := make([]any, len(chains))
	for i, c := range chains {
		tr, err := g.Update(c)
		if err != nil {
			return nil, err
		}
		traces[i] = tr
	}
	return traces, nil
}

// Contains reports true iff every chain position matched a vertex and every
// consecutive connection exists.
func (g *PatternGraph) Contains(chain Chain) (bool, error) {
	if err := validateChain(chain); err != nil {
		return false, err
	}
	traversal, connection, err := g.chainToVertices(chain)
	if err != nil {
		return false, err
	}
	for _, id := range traversal {
		if id == NoVertex {
			return false, nil
		}
	}
	for _, ok := range connection {
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// ChainVertexIDs returns chainToVertices' traversal without mutating the
// graph; NoVertex positions are possible before the chain has been learned.
func (g *PatternGraph) ChainVertexIDs(chain Chain) ([]int, error) {
	if err := validateChain(chain); err != nil {
		return nil, err
	}
	traversal, _, err := g.chainToVertices(chain)
	return traversal, err
}

// VertexCount reports the total number of vertices across all layers.
func (g *PatternGraph) VertexCount() int { return g.g.Len() }

// MaxDepth reports the number of allocated layers.
func (g *PatternGraph) MaxDepth() int { return g.g.MaxDepth() }
