package graphstore

import (
	"sort"
	"sync"

	"github.com/segmetric/hpm/node"
)

// Vertex is a single node in a Digraph: a dense integer ID carrying an
// opaque payload (at minimum the node.Node it was created for).
type Vertex struct {
	ID      int
	Payload node.Node
}

// Digraph is a directed graph with set-semantics edges (no multi-edges, no
// weights; self-loops are not rejected) and int vertex identifiers
// allocated sequentially.
//
// muVert guards vertices; muEdgeAdj guards adjacency. The two locks are
// never held together.
type Digraph struct {
	muVert    sync.RWMutex
	muEdgeAdj sync.RWMutex

	nextID    int
	vertices  map[int]*Vertex
	adjacency map[int]map[int]struct{} // from -> set of to
}

// NewDigraph returns an empty Digraph.
func NewDigraph() *Digraph {
	return &Digraph{
		vertices:  make(map[int]*Vertex),
		adjacency: make(map[int]map[int]struct{}),
	}
}

// AddVertex allocates a new vertex carrying payload and returns its ID.
// Complexity: O(1).
func (g *Digraph) AddVertex(payload node.Node) int {
	g.muVert.Lock()
	id := g.nextID
	g.nextID++
	g.vertices[id] = &Vertex{ID: id, Payload: payload}
	g.muVert.Unlock()

	g.muEdgeAdj.Lock()
	g.adjacency[id] = make(map[int]struct{})
	g.muEdgeAdj.Unlock()
	return id
}

// Vertex returns the vertex with the given id.
func (g *Digraph) Vertex(id int) (*Vertex, bool) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[id]
	return v, ok
}

// AddEdge adds a directed edge from -> to if it does not already exist.
// It is a no-op (not an error) when the edge already exists, matching the
// Digraph's set semantics.
func (g *Digraph) AddEdge(from, to int) error {
	if _, ok := g.Vertex(from); !ok {
		return ErrVertexNotFound
	}
	if _, ok := g.Vertex(to); !ok {
		return ErrVertexNotFound
	}
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	g.adjacency[from][to] = struct{}{}
	return nil
}

// HasEdge reports whether a from -> to edge exists.
func (g *Digraph) HasEdge(from, to int) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.adjacency[from][to]
	return ok
}

// Children returns the outgoing neighbours of from, in ascending vertex-id
// order — the deterministic tie-break iteration order required by the spec
// for first-match / closest-match scans.
func (g *Digraph) Children(from int) []int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]int, 0, len(g.adjacency[from]))
	for to := range g.adjacency[from] {
		out = append(out, to)
	}
	sort.Ints(out)
	return out
}

// VertexIDs returns every vertex id currently allocated, in ascending order.
func (g *Digraph) VertexIDs() []int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	out := make([]int, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

// Len reports the number of vertices.
func (g *Digraph) Len() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	return len(g.vertices)
}
