package graphstore

import (
	"fmt"
	"sort"
	"sync"

	"github.com/segmetric/hpm/node"
)

// LayeredDigraph is a Digraph that partitions vertices into layers 0..L-1
// under the invariant that every edge goes from layer ℓ to layer ℓ+1. A
// freshly added vertex starts in layer 0 and is promoted to layer(parent)+1
// the first time an edge into it is added from a layer-ℓ vertex; once
// promoted, a vertex's layer is fixed.
type LayeredDigraph struct {
	*Digraph

	muLayer   sync.RWMutex
	layer     map[int]int // vertex id -> layer
	promoted  map[int]bool
	byLayer   map[int][]int // layer -> vertex ids in insertion (promotion/allocation) order
	maxLayers int           // highest layer index + 1 seen so far
}

// NewLayeredDigraph returns an empty LayeredDigraph.
func NewLayeredDigraph() *LayeredDigraph {
	return &LayeredDigraph{
		Digraph: NewDigraph(),
		layer:   make(map[int]int),
		promoted: make(map[int]bool),
		byLayer: make(map[int][]int),
	}
}

// AddVertex allocates a new vertex in layer 0.
func (g *LayeredDigraph) AddVertex(payload node.Node) int {
	id := g.Digraph.AddVertex(payload)
	g.muLayer.Lock()
	g.layer[id] = 0
	g.promoted[id] = false
	g.byLayer[0] = append(g.byLayer[0], id)
	if g.maxLayers == 0 {
		g.maxLayers = 1
	}
	g.muLayer.Unlock()
	return id
}

// Layer reports the layer a vertex currently occupies.
func (g *LayeredDigraph) Layer(id int) (int, bool) {
	g.muLayer.RLock()
	defer g.muLayer.RUnlock()
	l, ok := g.layer[id]
	return l, ok
}

// LayerVertices returns every vertex id in the given layer, in the order
// they were promoted (or allocated, for layer 0) into it.
func (g *LayeredDigraph) LayerVertices(layer int) []int {
	g.muLayer.RLock()
	defer g.muLayer.RUnlock()
	out := make([]int, len(g.byLayer[layer]))
	copy(out, g.byLayer[layer])
	return out
}

// MaxDepth reports the number of allocated layers.
func (g *LayeredDigraph) MaxDepth() int {
	g.muLayer.RLock()
	defer g.muLayer.RUnlock()
	return g.maxLayers
}

// AddEdge adds a from -> to edge, promoting to into layer(from)+1 the first
// time it receives an incoming edge. A second edge into an already-promoted
// vertex from a source at a different layer violates the layered invariant
// and returns ErrLayerMismatch.
func (g *LayeredDigraph) AddEdge(from, to int) error {
	fromLayer, ok := g.Layer(from)
	if !ok {
		return ErrVertexNotFound
	}
	if _, ok := g.Layer(to); !ok {
		return ErrVertexNotFound
	}

	g.muLayer.Lock()
	wantLayer := fromLayer + 1
	if g.promoted[to] {
		if g.layer[to] != wantLayer {
			g.muLayer.Unlock()
			return fmt.Errorf("%w: vertex %d is in layer %d, edge from layer %d wants layer %d",
				ErrLayerMismatch, to, g.layer[to], fromLayer, wantLayer)
		}
	} else {
		g.promoteLocked(to, wantLayer)
	}
	g.muLayer.Unlock()

	return g.Digraph.AddEdge(from, to)
}

// promoteLocked moves `to` out of layer 0 into `layer`. Caller holds muLayer.
func (g *LayeredDigraph) promoteLocked(to, layer int) {
	old := g.layer[to]
	if old == layer {
		g.promoted[to] = true
		return
	}
	verts := g.byLayer[old]
	for i, v := range verts {
		if v == to {
			g.byLayer[old] = append(verts[:i], verts[i+1:]...)
			break
		}
	}
	g.layer[to] = layer
	g.promoted[to] = true
	g.byLayer[layer] = append(g.byLayer[layer], to)
	if layer+1 > g.maxLayers {
		g.maxLayers = layer + 1
	}
}

// sortedLayers is a test/debug helper returning the set of non-empty layer
// indices in ascending order.
func (g *LayeredDigraph) sortedLayers() []int {
	g.muLayer.RLock()
	defer g.muLayer.RUnlock()
	out := make([]int, 0, len(g.byLayer))
	for l := range g.byLayer {
		out = append(out, l)
	}
	sort.Ints(out)
	return out
}
