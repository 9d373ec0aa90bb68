// Package graphstore provides the thread-safe vertex/edge substrate the
// pattern package builds its models on top of: a plain Digraph and a
// LayeredDigraph that enforces the "every edge crosses exactly one layer"
// invariant used by PatternGraph.
//
// This is a generalisation of the teacher library's core.Graph: vertex
// identifiers are dense integers rather than strings, vertex payloads are
// node.Node values rather than free-form metadata, and edges are a plain
// directed set (no weights, no multi-edges; self-loops are not rejected,
// though the pattern models never add one).
//
// Concurrency: Digraph and LayeredDigraph use separate sync.RWMutex locks
// for vertices and edges/adjacency, following core.Graph's muVert/muEdgeAdj
// split, and the two locks are never held simultaneously by any method here.
// Callers above this package (the pattern models) are themselves documented
// single-threaded, so this thread-safety is a defensive floor, not a
// requirement of the spec.
package graphstore
