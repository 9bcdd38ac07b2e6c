// SPDX-License-Identifier: MIT
//
// File: methods_consistency.go
// Role: Normalisation passes that turn raw ingested lists into a simple,
//       symmetric graph: MakeConsistent, RemoveSelfLoops, MakeUndirected.
//
// Determinism:
//   - Every pass visits nodes in ascending ID order so the logged counts and
//     resulting lists do not depend on map iteration order.
//
// Concurrency:
//   - All passes hold the mu write lock for their full duration.

package core

import (
	"slices"

	"go.uber.org/zap"
)

// MakeConsistent sorts and de-duplicates every neighbor list, then strips
// self loops. It mutates g in place and returns g for chaining.
// Idempotent.
//
// Complexity: O(Σ d·log d).
func (g *Graph) MakeConsistent() *Graph {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.makeConsistentLocked()

	return g
}

func (g *Graph) makeConsistentLocked() {
	for v, nbrs := range g.adj {
		slices.Sort(nbrs)
		g.adj[v] = slices.Compact(nbrs)
	}
	g.removeSelfLoopsLocked()
}

// RemoveSelfLoops deletes every occurrence of v from adj[v] and returns the
// number of entries removed. The count is also logged at debug level.
// Applying it twice leaves the graph unchanged after the first call.
//
// Complexity: O(V+E).
func (g *Graph) RemoveSelfLoops() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.removeSelfLoopsLocked()
}

func (g *Graph) removeSelfLoopsLocked() int {
	removed := 0
	for v, nbrs := range g.adj {
		n := len(nbrs)
		nbrs = slices.DeleteFunc(nbrs, func(u int64) bool { return u == v })
		removed += n - len(nbrs)
		g.adj[v] = nbrs
	}
	g.log.Debug("removed self loops", zap.Int("count", removed))

	return removed
}

// CheckSelfLoops reports whether any node lists itself as a neighbor.
// Complexity: O(V+E).
func (g *Graph) CheckSelfLoops() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for v, nbrs := range g.adj {
		if slices.Contains(nbrs, v) {
			return true
		}
	}

	return false
}

// MakeUndirected mirrors every arc v→u as u→v (creating u if it was only
// ever seen as a neighbor), then runs MakeConsistent. The result is
// symmetric whatever the input asymmetry; a second call only re-sorts.
//
// Implementation:
//   - Stage 1: snapshot the arc count of every node so the mirror pass only
//     walks arcs that existed before it started.
//   - Stage 2: append v to adj[u] for each snapshotted arc v→u with u != v.
//   - Stage 3: dedupe + sort + self-loop strip.
//
// Complexity: O(Σ d·log d).
func (g *Graph) MakeUndirected() *Graph {
	g.mu.Lock()
	defer g.mu.Unlock()

	keys := make([]int64, 0, len(g.adj))
	for v := range g.adj {
		keys = append(keys, v)
	}
	slices.Sort(keys)
	arcs := make([]int, len(keys))
	for i, v := range keys {
		arcs[i] = len(g.adj[v])
	}

	for i, v := range keys {
		for _, u := range g.adj[v][:arcs[i]] {
			if u != v {
				g.adj[u] = append(g.adj[u], v)
			}
		}
	}
	g.makeConsistentLocked()

	return g
}

// Stats returns a diagnostic snapshot. Symmetric is computed exactly.
// Complexity: O(Σ d²) worst case.
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	st := GraphStats{Nodes: len(g.adj), Symmetric: true}
	arcs := 0
	for v, nbrs := range g.adj {
		arcs += len(nbrs)
		if len(nbrs) == 0 {
			st.Isolated++
		}
		if len(nbrs) > st.MaxDegree {
			st.MaxDegree = len(nbrs)
		}
		for _, u := range nbrs {
			if u == v {
				st.SelfLoops++
				continue
			}
			if st.Symmetric && !slices.Contains(g.adj[u], v) {
				st.Symmetric = false
			}
		}
	}
	st.Edges = arcs / 2

	return st
}
