// File: methods_vertices.go
// Role: Node ingestion and node-level queries.
//
// Determinism:
//   - Nodes() returns IDs in ascending order.
//
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import (
	"fmt"
	"slices"
)

// AddNode inserts v with an empty neighbor list if it is missing (idempotent).
// Complexity: O(1) amortized.
func (g *Graph) AddNode(v int64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.adj[v]; !ok {
		g.adj[v] = []int64{}
	}
}

// HasNode reports whether v is a key of the Graph.
func (g *Graph) HasNode(v int64) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adj[v]

	return ok
}

// Nodes returns all node IDs in ascending order.
//
// The ordering is what makes seeded walks reproducible: callers that draw a
// uniform node index from Nodes() see the same slice for the same content.
//
// Complexity: O(V log V) time, O(V) space.
func (g *Graph) Nodes() []int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]int64, 0, len(g.adj))
	for id := range g.adj {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids
}

// Order returns the number of nodes.
// Complexity: O(1).
func (g *Graph) Order() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj)
}

// NumberOfNodes is an alias of Order.
func (g *Graph) NumberOfNodes() int { return g.Order() }

// Degree returns the length of v's neighbor list.
//
// On a graph that has not been made consistent the value counts duplicate
// and self-referencing entries as stored.
//
// Errors:
//   - ErrNodeNotFound if v is not a key.
//
// Complexity: O(1).
func (g *Graph) Degree(v int64) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adj[v]
	if !ok {
		return 0, fmt.Errorf("Degree(%d): %w", v, ErrNodeNotFound)
	}

	return len(nbrs), nil
}

// Degrees returns the degree of every ID in vs. The first unknown ID aborts
// the call with ErrNodeNotFound and no partial map is returned.
// Complexity: O(len(vs)).
func (g *Graph) Degrees(vs []int64) (map[int64]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[int64]int, len(vs))
	for _, v := range vs {
		nbrs, ok := g.adj[v]
		if !ok {
			return nil, fmt.Errorf("Degrees(%d): %w", v, ErrNodeNotFound)
		}
		out[v] = len(nbrs)
	}

	return out, nil
}

// Neighbors returns a copy of v's neighbor list in stored order.
//
// Errors:
//   - ErrNodeNotFound if v is not a key.
func (g *Graph) Neighbors(v int64) ([]int64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adj[v]
	if !ok {
		return nil, fmt.Errorf("Neighbors(%d): %w", v, ErrNodeNotFound)
	}

	return slices.Clone(nbrs), nil
}
