package graphstore

import "errors"

// Sentinel errors for graphstore operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("graphstore: vertex not found")

	// ErrLayerMismatch indicates an edge would violate the LayeredDigraph
	// invariant that every edge goes from layer ℓ to layer ℓ+1: the
	// destination vertex was already promoted to a layer incompatible with
	// this edge's source.
	ErrLayerMismatch = errors.New("graphstore: edge would violate layer invariant")
)
