// File: view.go
// Role: Non-mutating graph views and copies.
// Concurrency:
//   - Read lock on the source; the result is a fresh Graph sharing no slices.

package core

import "go.uber.org/zap"

// Subgraph returns the graph induced by nodes: only IDs in nodes that are
// keys of g are kept, and every neighbor list is filtered to the kept set.
// IDs that are not keys are skipped silently. The input is not mutated and
// the result inherits g's logger.
//
// Complexity: O(len(nodes) + Σ d) over the kept nodes.
func (g *Graph) Subgraph(nodes []int64) *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	keep := make(map[int64]struct{}, len(nodes))
	for _, v := range nodes {
		if _, ok := g.adj[v]; ok {
			keep[v] = struct{}{}
		}
	}

	out := NewGraph(WithLogger(g.log), WithCapacity(len(keep)))
	for v := range keep {
		nbrs := make([]int64, 0, len(g.adj[v]))
		for _, u := range g.adj[v] {
			if _, ok := keep[u]; ok {
				nbrs = append(nbrs, u)
			}
		}
		out.adj[v] = nbrs
	}

	return out
}

// Clone returns a deep copy of g with the same logger.
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	return FromAdjacency(g.AdjacencyList(), WithLogger(g.logger()))
}

func (g *Graph) logger() *zap.Logger {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.log
}
