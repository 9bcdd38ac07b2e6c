// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph type, construction options and sentinel errors.

package core

import (
	"errors"
	"sync"

	"go.uber.org/zap"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates a query referenced an ID that is not a key of the Graph.
	ErrNodeNotFound = errors.New("core: node not found")
)

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithLogger attaches a structured logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) GraphOption {
	return func(g *Graph) {
		if l != nil {
			g.log = l
		}
	}
}

// WithCapacity pre-sizes the node map for n entries.
func WithCapacity(n int) GraphOption {
	if n < 0 {
		panic("core: WithCapacity(n<0)")
	}
	return func(g *Graph) { g.adj = make(map[int64][]int64, n) }
}

// Graph is an adjacency-list graph over int64 node IDs.
//
// adj[v] is the ordered neighbor list of v. The lists are raw until
// MakeConsistent or MakeUndirected is called.
type Graph struct {
	mu  sync.RWMutex // guards adj
	adj map[int64][]int64
	log *zap.Logger
}

// GraphStats is a read-only diagnostic snapshot of a Graph.
type GraphStats struct {
	Nodes     int  // number of keys
	Edges     int  // half the arc count
	Isolated  int  // nodes with an empty list
	MaxDegree int  // longest list
	SelfLoops int  // arcs v→v
	Symmetric bool // v ∈ adj[u] ⇔ u ∈ adj[v]
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		adj: make(map[int64][]int64),
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// FromAdjacency builds a Graph from a node → neighbors mapping. The input
// lists are copied; no consistency pass is run.
// Complexity: O(V+E).
func FromAdjacency(m map[int64][]int64, opts ...GraphOption) *Graph {
	g := NewGraph(append([]GraphOption{WithCapacity(len(m))}, opts...)...)
	for v, nbrs := range m {
		g.adj[v] = append(make([]int64, 0, len(nbrs)), nbrs...)
	}

	return g
}
