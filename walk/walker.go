// SPDX-License-Identifier: MIT
// Package: lvwalk/walk
//
// walker.go — truncated random walks with restart.
//
// Per-walk state machine (cur, remaining steps):
//   • start = From(...) if given, else a uniform draw over ascending node IDs.
//   • while len(walk) < pathLength:
//       – deg(cur) == 0          → stop early;
//       – r := rng.Float64(); r ≥ α → cur = uniform neighbor of cur;
//       – otherwise             → cur = start (restart, the step still counts);
//       append cur.
//
// Determinism:
//   • The Walker snapshots the graph once; node order is ascending and
//     neighbor lists keep the order of the (consistent) graph, so a seeded
//     rng fully determines every walk.
//   • RNG draws per step: one Float64, then one Intn iff the walk advances.

package walk

import (
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvwalk/core"
	"github.com/katalvlaran/lvwalk/metrics"
)

// Walk is an ordered sequence of visited node IDs.
type Walk []int64

// Walker generates walks over a read-only snapshot of a Graph.
// A Walker is safe for concurrent use as long as each goroutine brings its
// own *rand.Rand.
type Walker struct {
	adj   map[int64][]int64
	nodes []int64 // ascending
	log   *zap.Logger
}

// NewWalker snapshots g. Later mutations of g are not observed.
// Complexity: O(V log V + E).
func NewWalker(g *core.Graph, opts ...WalkerOption) *Walker {
	w := &Walker{
		adj:   g.AdjacencyList(),
		nodes: g.Nodes(),
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Order returns the number of nodes in the snapshot.
func (w *Walker) Order() int { return len(w.nodes) }

// Walk generates one walk of at most pathLength nodes.
//
// Errors:
//   - ErrNeedRandSource, ErrBadPathLength, ErrInvalidProbability on bad input.
//   - ErrEmptyGraph when no start is given and the snapshot is empty.
//   - core.ErrNodeNotFound when the given start is not a node.
func (w *Walker) Walk(pathLength int, alpha float64, rng *rand.Rand, opts ...WalkOption) (Walk, error) {
	if rng == nil {
		return nil, fmt.Errorf("Walk: %w", ErrNeedRandSource)
	}
	if err := validateStep(pathLength, alpha); err != nil {
		return nil, fmt.Errorf("Walk: %w", err)
	}

	var cfg walkConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	start := cfg.start
	switch {
	case cfg.hasStart:
		if _, ok := w.adj[start]; !ok {
			return nil, fmt.Errorf("Walk: start %d: %w", start, core.ErrNodeNotFound)
		}
	case len(w.nodes) == 0:
		return nil, fmt.Errorf("Walk: %w", ErrEmptyGraph)
	default:
		start = w.nodes[rng.Intn(len(w.nodes))]
	}

	path := w.walk(start, pathLength, alpha, rng)
	metrics.WalksGenerated.Inc()
	metrics.WalkSteps.Add(float64(len(path)))

	return path, nil
}

// walk assumes validated input and a known start.
func (w *Walker) walk(start int64, pathLength int, alpha float64, rng *rand.Rand) Walk {
	path := make(Walk, 1, pathLength)
	path[0] = start
	cur := start
	for len(path) < pathLength {
		nbrs := w.adj[cur]
		if len(nbrs) == 0 {
			break
		}
		if rng.Float64() >= alpha {
			cur = nbrs[rng.Intn(len(nbrs))]
		} else {
			cur = start
		}
		path = append(path, cur)
	}

	return path
}

// RandomWalk is a one-shot helper: NewWalker(g).Walk(...). Build a Walker
// once when generating many walks.
func RandomWalk(g *core.Graph, pathLength int, alpha float64, rng *rand.Rand, opts ...WalkOption) (Walk, error) {
	return NewWalker(g).Walk(pathLength, alpha, rng, opts...)
}
