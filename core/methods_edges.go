// File: methods_edges.go
// Role: Edge ingestion (AddEdge, AppendNeighbors, Merge) and edge queries.
//
// Concurrency:
//   - Mutations under mu write lock.
//   - Read queries under mu read lock.

package core

import (
	"fmt"
	"slices"
)

// AddEdge appends v to adj[u] and u to adj[v], creating both nodes if needed.
// Duplicates and self loops are stored as given; MakeConsistent collapses them.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.adj[u] = append(g.adj[u], v)
	g.adj[v] = append(g.adj[v], u)
}

// AppendNeighbors appends nbrs to adj[v] in one direction, creating v if it is
// missing (an empty nbrs still registers v). Neighbor IDs are not registered
// as keys here; MakeUndirected does that when it mirrors the arcs.
// Complexity: O(len(nbrs)) amortized.
func (g *Graph) AppendNeighbors(v int64, nbrs ...int64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.appendLocked(v, nbrs)
}

// Merge folds a partial node → neighbors mapping into g: each list is
// appended to the existing one. Merging is commutative and associative up to
// list order, which MakeConsistent normalises.
// Complexity: O(Σ|part[v]|).
func (g *Graph) Merge(part map[int64][]int64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for v, nbrs := range part {
		g.appendLocked(v, nbrs)
	}
}

func (g *Graph) appendLocked(v int64, nbrs []int64) {
	cur, ok := g.adj[v]
	if !ok {
		cur = make([]int64, 0, len(nbrs))
	}
	g.adj[v] = append(cur, nbrs...)
}

// HasEdge reports whether v ∈ adj[u] or u ∈ adj[v].
//
// Errors:
//   - ErrNodeNotFound if u or v is not a key.
//
// Complexity: O(deg(u)+deg(v)).
func (g *Graph) HasEdge(u, v int64) (bool, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nu, ok := g.adj[u]
	if !ok {
		return false, fmt.Errorf("HasEdge(%d,%d): node %d: %w", u, v, u, ErrNodeNotFound)
	}
	nv, ok := g.adj[v]
	if !ok {
		return false, fmt.Errorf("HasEdge(%d,%d): node %d: %w", u, v, v, ErrNodeNotFound)
	}

	return slices.Contains(nu, v) || slices.Contains(nv, u), nil
}

// NumberOfEdges returns half the total neighbor-list length. The value is the
// undirected edge count only once the graph has been made undirected.
// Complexity: O(V).
func (g *Graph) NumberOfEdges() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	total := 0
	for _, nbrs := range g.adj {
		total += len(nbrs)
	}

	return total / 2
}

// AdjacencyList returns a deep copy of the node → neighbors mapping.
// Complexity: O(V+E).
func (g *Graph) AdjacencyList() map[int64][]int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[int64][]int64, len(g.adj))
	for v, nbrs := range g.adj {
		out[v] = append(make([]int64, 0, len(nbrs)), nbrs...)
	}

	return out
}
