package pattern_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/segmetric/hpm/node"
	"github.com/segmetric/hpm/pattern"
)

func mustSum(t *testing.T, depth int, sums ...float64) node.Node {
	t.Helper()
	n, err := node.NewSum(depth, sums, 1e-9)
	require.NoError(t, err)
	return n
}

func mustSlopeSign(t *testing.T, depth int, slopes ...float64) node.Node {
	t.Helper()
	n, err := node.NewSlopeSign(depth, slopes)
	require.NoError(t, err)
	return n
}

func TestPatternSetDuplicateInsert(t *testing.T) {
	s := pattern.NewPatternSet()
	chain := pattern.Chain{mustSlopeSign(t, 0, 1, -1), mustSlopeSign(t, 1, 1, 1)}

	trace1, err := s.Update(chain)
	require.NoError(t, err)
	require.Equal(t, []bool{false, false}, trace1)

	trace2, err := s.Update(chain)
	require.NoError(t, err)
	require.Equal(t, []bool{true, true}, trace2)

	require.Equal(t, 1, s.DepthSize(0))
	require.Equal(t, 1, s.DepthSize(1))

	ok, err := s.Contains(chain)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestPatternTreeMembershipAfterInsert(t *testing.T) {
	tr := pattern.NewPatternTree(pattern.FirstMatch)
	chain := pattern.Chain{mustSum(t, 0, 1), mustSum(t, 1, 2, 3)}

	_, err := tr.Update(chain)
	require.NoError(t, err)

	ok, err := tr.Contains(chain)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestPatternTreeDivergence(t *testing.T) {
	tr := pattern.NewPatternTree(pattern.FirstMatch)
	base := func(last float64) pattern.Chain {
		return pattern.Chain{mustSum(t, 0, 1), mustSum(t, 1, 2), mustSum(t, 2, last)}
	}

	_, err := tr.Update(base(10))
	require.NoError(t, err)
	_, err = tr.Update(base(20))
	require.NoError(t, err)
	_, err = tr.Update(base(30))
	require.NoError(t, err)

	require.Equal(t, 6, tr.VertexCount()) // root + depth0 + depth1 + 3*depth2
}

func TestPatternGraphCrossBranchReuse(t *testing.T) {
	g := pattern.NewPatternGraph(pattern.FirstMatch)
	chainA := pattern.Chain{mustSum(t, 0, 1), mustSum(t, 1, 2), mustSum(t, 2, 3)}
	_, err := g.Update(chainA)
	require.NoError(t, err)
	require.Equal(t, 3, g.VertexCount())

	chainB := pattern.Chain{mustSum(t, 0, 1), mustSum(t, 1, 99), mustSum(t, 2, 3)}
	idsB, err := g.Update(chainB)
	require.NoError(t, err)
	require.NoError(t, err)

	idsA, err := g.ChainVertexIDs(chainA)
	require.NoError(t, err)

	require.Equal(t, idsA[0], idsB.([]int)[0]) // depth-0 vertex shared
	require.Equal(t, idsA[2], idsB.([]int)[2]) // depth-2 vertex reused
	require.NotEqual(t, idsA[1], idsB.([]int)[1])
	require.Equal(t, 4, g.VertexCount()) // 3 from A + 1 new depth-1 vertex
}

func TestPatternGraphLayerInvariant(t *testing.T) {
	g := pattern.NewPatternGraph(pattern.ClosestMatch)
	chain := pattern.Chain{mustSum(t, 0, 1), mustSum(t, 1, 2), mustSum(t, 2, 3)}
	_, err := g.Update(chain)
	require.NoError(t, err)
	require.Equal(t, 3, g.MaxDepth()) // one layer per depth

	ok, err := g.Contains(chain)
	require.NoError(t, err)
	require.True(t, ok)
}
