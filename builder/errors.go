// SPDX-License-Identifier: MIT
// Package: lvwalk/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Constructors attach context with "%s: ...: %w" (method tag first).
//   • Option constructors panic on meaningless values; constructors never do.

package builder

import "errors"

// ErrTooFewVertices indicates n is below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates p outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a structural problem such as a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
