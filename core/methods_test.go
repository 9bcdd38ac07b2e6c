package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/lvwalk/core"
)

func TestMakeUndirected_ThreeLineExample(t *testing.T) {
	g := core.FromAdjacency(map[int64][]int64{
		N1: {N2, N3},
		N2: {N1},
		N3: {N1},
	})
	g.MakeUndirected().MakeConsistent()

	require.Equal(t, map[int64][]int64{
		N1: {N2, N3},
		N2: {N1},
		N3: {N1},
	}, g.AdjacencyList())
	require.Equal(t, 2, g.NumberOfEdges())
}

func TestMakeUndirected_Symmetric(t *testing.T) {
	for seed := int64(0); seed < 5; seed++ {
		g := randomArcs(seed).MakeUndirected()
		requireSymmetric(t, g)
		requireStrictlySorted(t, g)
		require.False(t, g.CheckSelfLoops())
		require.True(t, g.Stats().Symmetric)
	}
}

func TestMakeUndirected_MirrorsNeighborOnlyNodes(t *testing.T) {
	g := triangleWithTail()
	require.False(t, g.HasNode(N4))

	g.MakeUndirected()
	nbrs, err := g.Neighbors(N4)
	require.NoError(t, err)
	require.Equal(t, []int64{N3}, nbrs)
	require.Equal(t, 4, g.NumberOfEdges())
}

func TestMakeUndirected_Idempotent(t *testing.T) {
	g := randomArcs(RandomSeed).MakeUndirected()
	first := g.AdjacencyList()
	g.MakeUndirected()
	require.Equal(t, first, g.AdjacencyList())
}

func TestMakeConsistent(t *testing.T) {
	g := core.FromAdjacency(map[int64][]int64{
		N1: {N3, N1, N2, N3, N1},
		N2: {},
	})
	g.MakeConsistent()
	requireStrictlySorted(t, g)
	require.Equal(t, map[int64][]int64{N1: {N2, N3}, N2: {}}, g.AdjacencyList())

	again := g.MakeConsistent().AdjacencyList()
	require.Equal(t, map[int64][]int64{N1: {N2, N3}, N2: {}}, again)
}

func TestRemoveSelfLoops(t *testing.T) {
	g := core.FromAdjacency(map[int64][]int64{
		N1: {N1, N2, N1},
		N2: {N1, N2},
		N3: {N3},
	})
	require.True(t, g.CheckSelfLoops())

	require.Equal(t, 4, g.RemoveSelfLoops())
	once := g.AdjacencyList()
	require.False(t, g.CheckSelfLoops())

	require.Equal(t, 0, g.RemoveSelfLoops())
	require.Equal(t, once, g.AdjacencyList())
	require.True(t, g.HasNode(N3), "stripping loops never drops the node")
}

func TestRemoveSelfLoops_Logged(t *testing.T) {
	obs, logs := observer.New(zapcore.DebugLevel)
	g := core.FromAdjacency(map[int64][]int64{N1: {N1, N2}}, core.WithLogger(zap.New(obs)))

	g.RemoveSelfLoops()
	entries := logs.FilterMessage("removed self loops").All()
	require.Len(t, entries, 1)
	require.EqualValues(t, 1, entries[0].ContextMap()["count"])
}

func TestSubgraph(t *testing.T) {
	g := triangleWithTail().MakeUndirected()
	sub := g.Subgraph([]int64{N1, N3, N4, NMissing})

	require.Equal(t, []int64{N1, N3, N4}, sub.Nodes())
	require.Equal(t, map[int64][]int64{
		N1: {N3},
		N3: {N1, N4},
		N4: {N3},
	}, sub.AdjacencyList())
	require.Equal(t, 4, g.Order(), "source graph is untouched")
}

func TestClone_Independent(t *testing.T) {
	g := triangleWithTail().MakeUndirected()
	c := g.Clone()
	c.AddEdge(N1, N5)

	require.False(t, g.HasNode(N5))
	require.Equal(t, g.NumberOfEdges()+1, c.NumberOfEdges())
}

func TestStats(t *testing.T) {
	g := core.FromAdjacency(map[int64][]int64{
		N1: {N2, N1},
		N2: {},
		N3: {},
	})
	st := g.Stats()
	require.Equal(t, 3, st.Nodes)
	require.Equal(t, 2, st.Isolated)
	require.Equal(t, 1, st.SelfLoops)
	require.Equal(t, 2, st.MaxDegree)
	require.False(t, st.Symmetric)

	st = g.MakeUndirected().Stats()
	require.Equal(t, core.GraphStats{Nodes: 3, Edges: 1, Isolated: 1, MaxDegree: 1, Symmetric: true}, st)
}
