// SPDX-License-Identifier: MIT
// Package: lvwalk/builder
//
// impl_topologies.go - Path, Cycle, Star and Complete constructors.
//
// Contract (all four):
//   - Nodes are cfg.idFn(0..n-1), registered in ascending index order so even
//     n==1 paths keep their node.
//   - Edges are emitted in ascending index order.
//
// Complexity:
//   - Path/Cycle/Star: O(n). Complete: O(n²).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvwalk/core"
)

// File-local constants (stable method tags and domains).
const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodComplete = "Complete"

	minPathNodes     = 1
	minCycleNodes    = 3
	minStarNodes     = 2
	minCompleteNodes = 1
)

// Path returns a Constructor for the path 0–1–…–(n-1). Requires n ≥ 1.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		addNodes(g, cfg, n)
		for i := 0; i+1 < n; i++ {
			g.AddEdge(cfg.idFn(i), cfg.idFn(i+1))
		}
		return nil
	}
}

// Cycle returns a Constructor for the n-cycle. Requires n ≥ 3.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		addNodes(g, cfg, n)
		for i := 0; i < n; i++ {
			g.AddEdge(cfg.idFn(i), cfg.idFn((i+1)%n))
		}
		return nil
	}
}

// Star returns a Constructor for a star with hub idFn(0) and n-1 leaves.
// Requires n ≥ 2.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		hub := cfg.idFn(0)
		addNodes(g, cfg, n)
		for i := 1; i < n; i++ {
			g.AddEdge(hub, cfg.idFn(i))
		}
		return nil
	}
}

// Complete returns a Constructor for K_n. Requires n ≥ 1.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		addNodes(g, cfg, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				g.AddEdge(cfg.idFn(i), cfg.idFn(j))
			}
		}
		return nil
	}
}

func addNodes(g *core.Graph, cfg builderConfig, n int) {
	for i := 0; i < n; i++ {
		g.AddNode(cfg.idFn(i))
	}
}
