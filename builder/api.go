// SPDX-License-Identifier: MIT
// Package: lvwalk/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves
//     cfg, runs cons in order, then symmetrizes once.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvwalk/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate early and return wrapped sentinels.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a Graph with gopts, resolves bopts, applies every
// constructor in order and returns the symmetrized result. The first
// constructor error aborts the build.
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - any constructor sentinel, wrapped as "BuildGraph: %w".
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g.MakeUndirected(), nil
}
