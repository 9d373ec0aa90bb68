package graphstore_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/segmetric/hpm/graphstore"
	"github.com/segmetric/hpm/node"
)

func mustSlopeSign(t *testing.T, depth int, slopes ...float64) node.Node {
	t.Helper()
	n, err := node.NewSlopeSign(depth, slopes)
	require.NoError(t, err)
	return n
}

func TestDigraphAddEdgeIsSet(t *testing.T) {
	g := graphstore.NewDigraph()
	a := g.AddVertex(mustSlopeSign(t, 0, 1))
	b := g.AddVertex(mustSlopeSign(t, 1, -1))

	require.NoError(t, g.AddEdge(a, b))
	require.NoError(t, g.AddEdge(a, b)) // idempotent
	require.Equal(t, []int{b}, g.Children(a))
}

func TestDigraphAddEdgeUnknownVertex(t *testing.T) {
	g := graphstore.NewDigraph()
	a := g.AddVertex(mustSlopeSign(t, 0, 1))
	require.ErrorIs(t, g.AddEdge(a, 999), graphstore.ErrVertexNotFound)
}

func TestLayeredDigraphPromotion(t *testing.T) {
	g := graphstore.NewLayeredDigraph()
	root := g.AddVertex(mustSlopeSign(t, 0, 1))
	child := g.AddVertex(mustSlopeSign(t, 1, -1))

	l, ok := g.Layer(child)
	require.True(t, ok)
	require.Zero(t, l) // unpromoted, still layer 0

	require.NoError(t, g.AddEdge(root, child))
	l, ok = g.Layer(child)
	require.True(t, ok)
	require.Equal(t, 1, l)
	require.Equal(t, 2, g.MaxDepth())
}

func TestLayeredDigraphInvariantEveryEdgeCrossesOneLayer(t *testing.T) {
	g := graphstore.NewLayeredDigraph()
	a := g.AddVertex(mustSlopeSign(t, 0, 1))
	b := g.AddVertex(mustSlopeSign(t, 1, -1))
	c := g.AddVertex(mustSlopeSign(t, 2, 1))

	require.NoError(t, g.AddEdge(a, b))
	require.NoError(t, g.AddEdge(b, c))

	la, _ := g.Layer(a)
	lb, _ := g.Layer(b)
	lc, _ := g.Layer(c)
	require.Equal(t, la+1, lb)
	require.Equal(t, lb+1, lc)
}

func TestLayeredDigraphRejectsMismatchedRepromotion(t *testing.T) {
	g := graphstore.NewLayeredDigraph()
	a := g.AddVertex(mustSlopeSign(t, 0, 1))  // layer 0
	b := g.AddVertex(mustSlopeSign(t, 1, -1)) // layer 0
	c := g.AddVertex(mustSlopeSign(t, 1, -1)) // layer 0

	require.NoError(t, g.AddEdge(a, c)) // c promoted to layer 1

	// b is still layer 0; an edge b -> c would require c to be in layer 1,
	// which it already is, so this should succeed...
	require.NoError(t, g.AddEdge(b, c))

	// ...but promoting c again from a layer-1 source should fail, since c
	// is fixed at layer 1 and a layer-1 source demands layer 2.
	require.ErrorIs(t, g.AddEdge(c, c), graphstore.ErrLayerMismatch)
}
