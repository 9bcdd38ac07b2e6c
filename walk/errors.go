// SPDX-License-Identifier: MIT
// Package: lvwalk/walk
//
// errors.go — sentinel errors for the walk package.
//
// Callers branch with errors.Is; implementations add method context with
// fmt.Errorf("%s: ...: %w", method, ...). An unknown start node surfaces as
// core.ErrNodeNotFound.

package walk

import "errors"

// ErrEmptyGraph indicates a walk needs a random start but the graph has no nodes.
var ErrEmptyGraph = errors.New("walk: graph has no nodes")

// ErrBadPathLength indicates a path length below 1.
var ErrBadPathLength = errors.New("walk: path length must be at least 1")

// ErrBadPasses indicates a number of passes below 1.
var ErrBadPasses = errors.New("walk: number of passes must be at least 1")

// ErrInvalidProbability indicates a restart probability outside [0,1].
var ErrInvalidProbability = errors.New("walk: restart probability out of range")

// ErrNeedRandSource indicates a nil *rand.Rand.
var ErrNeedRandSource = errors.New("walk: rng is required")
