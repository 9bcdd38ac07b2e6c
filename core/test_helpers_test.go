// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for lvwalk/core.

package core_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvwalk/core"
)

// Common node IDs used across core tests.
const (
	N1 int64 = 1
	N2 int64 = 2
	N3 int64 = 3
	N4 int64 = 4
	N5 int64 = 5

	NMissing int64 = 999
)

// Sizes for generated fixtures.
const (
	RandomNodes = 60
	RandomArcs  = 400
	RandomSeed  = 7
)

// triangleWithTail returns the raw (asymmetric) adjacency of 1-2-3 plus 3→4.
func triangleWithTail() *core.Graph {
	return core.FromAdjacency(map[int64][]int64{
		N1: {N2, N3},
		N2: {N3},
		N3: {N4},
	})
}

// randomArcs returns an asymmetric graph with duplicates and self loops.
func randomArcs(seed int64) *core.Graph {
	rng := rand.New(rand.NewSource(seed))
	g := core.NewGraph()
	for i := 0; i < RandomArcs; i++ {
		v := int64(rng.Intn(RandomNodes))
		u := int64(rng.Intn(RandomNodes))
		g.AppendNeighbors(v, u)
	}

	return g
}

// requireSymmetric asserts v ∈ adj[u] ⇔ u ∈ adj[v] for every pair.
func requireSymmetric(t *testing.T, g *core.Graph) {
	t.Helper()
	adj := g.AdjacencyList()
	for u, nbrs := range adj {
		for _, v := range nbrs {
			back, ok := adj[v]
			require.Truef(t, ok, "neighbor %d of %d is not a key", v, u)
			require.Containsf(t, back, u, "arc %d→%d has no mirror", u, v)
		}
	}
}

// requireStrictlySorted asserts every list is ascending with no repeats.
func requireStrictlySorted(t *testing.T, g *core.Graph) {
	t.Helper()
	for v, nbrs := range g.AdjacencyList() {
		require.Truef(t, slices.IsSorted(nbrs), "list of %d not sorted: %v", v, nbrs)
		require.Equalf(t, len(nbrs), len(slices.Compact(slices.Clone(nbrs))), "list of %d has duplicates: %v", v, nbrs)
	}
}
