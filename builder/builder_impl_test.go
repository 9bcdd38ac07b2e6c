// File: builder_impl_test.go
// Package builder_test contains functional tests for all Constructor
// implementations, verifying topology, counts, determinism and the
// adjacency-list round trip through the loader.
package builder_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvwalk/builder"
	"github.com/katalvlaran/lvwalk/core"
	"github.com/katalvlaran/lvwalk/loader"
)

// TestBuilders_Functional runs table-driven topology checks for each builder.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		ctor      builder.Constructor
		wantNodes int
		wantEdges int
		maxDegree int
		isolated  int
	}{
		{"Path1", builder.Path(1), 1, 0, 0, 1},
		{"Path5", builder.Path(5), 5, 4, 2, 0},
		{"Cycle3", builder.Cycle(3), 3, 3, 2, 0},
		{"Cycle6", builder.Cycle(6), 6, 6, 2, 0},
		{"Star2", builder.Star(2), 2, 1, 1, 0},
		{"Star7", builder.Star(7), 7, 6, 6, 0},
		{"Complete1", builder.Complete(1), 1, 0, 0, 1},
		{"Complete5", builder.Complete(5), 5, 10, 4, 0},
		{"RandomSparseEmpty", builder.RandomSparse(4, 0), 4, 0, 0, 4},
		{"RandomSparseFull", builder.RandomSparse(4, 1), 4, 6, 3, 0},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, nil, tc.ctor)
			require.NoError(t, err)

			st := g.Stats()
			require.Equal(t, tc.wantNodes, st.Nodes)
			require.Equal(t, tc.wantEdges, st.Edges)
			require.Equal(t, tc.maxDegree, st.MaxDegree)
			require.Equal(t, tc.isolated, st.Isolated)
			require.True(t, st.Symmetric)
			require.Zero(t, st.SelfLoops)
		})
	}
}

func TestBuilders_TooFewVertices(t *testing.T) {
	for name, ctor := range map[string]builder.Constructor{
		"Path0":         builder.Path(0),
		"Cycle2":        builder.Cycle(2),
		"Star1":         builder.Star(1),
		"Complete0":     builder.Complete(0),
		"RandomSparse0": builder.RandomSparse(0, 0.5),
	} {
		_, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(1)}, ctor)
		require.ErrorIs(t, err, builder.ErrTooFewVertices, name)
	}
}

func TestRandomSparse_Validation(t *testing.T) {
	_, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(5, 1.5))
	require.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(5, -0.1))
	require.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.BuildGraph(nil, nil, builder.RandomSparse(5, 0.5))
	require.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestRandomSparse_Deterministic(t *testing.T) {
	build := func(seed int64) map[int64][]int64 {
		g, err := builder.BuildGraph(nil,
			[]builder.BuilderOption{builder.WithSeed(seed)},
			builder.RandomSparse(40, 0.2))
		require.NoError(t, err)
		return g.AdjacencyList()
	}

	require.Equal(t, build(42), build(42))
	require.NotEqual(t, build(42), build(43))
}

func TestBuildGraph_NilConstructor(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.Path(2), nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestBuildGraph_Compose(t *testing.T) {
	// Two disjoint components: a path on 0..3 and a cycle on 10..13.
	g, err := builder.BuildGraph(nil, nil, builder.Path(4))
	require.NoError(t, err)
	h, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithIDOffset(10)},
		builder.Cycle(4))
	require.NoError(t, err)

	g.Merge(h.AdjacencyList())
	g.MakeUndirected()
	require.Equal(t, []int64{0, 1, 2, 3, 10, 11, 12, 13}, g.Nodes())
	require.Equal(t, 3+4, g.NumberOfEdges())
}

func TestWriteAdjacencyList_RoundTrip(t *testing.T) {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithCapacity(64)},
		[]builder.BuilderOption{builder.WithSeed(3)},
		builder.RandomSparse(60, 0.05),
	)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, builder.WriteAdjacencyList(&buf, g))

	got, err := loader.LoadAdjacencyList(context.Background(), &buf, loader.WithChunkSize(7), loader.WithWorkers(3))
	require.NoError(t, err)
	require.Equal(t, g.AdjacencyList(), got.AdjacencyList())
}

func TestWriteAdjacencyList_Format(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Star(3))
	require.NoError(t, err)
	g.AddNode(9)

	var buf bytes.Buffer
	require.NoError(t, builder.WriteAdjacencyList(&buf, g))
	require.Equal(t, "0 1 2\n1 0\n2 0\n9\n", buf.String())
}
