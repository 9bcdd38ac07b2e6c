// SPDX-License-Identifier: MIT
// Package: lvwalk/builder
//
// config.go — builder configuration, options and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • idFn = identity (index i → node ID i)
//   • rng  = nil      (pure/deterministic unless seeded)

package builder

import "math/rand"

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	idFn func(int) int64
	rng  *rand.Rand
}

// WithIDScheme sets the index → node ID mapping. Panics on nil.
func WithIDScheme(fn func(int) int64) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithIDOffset maps index i to base+i. Panics if base < 0.
func WithIDOffset(base int64) BuilderOption {
	if base < 0 {
		panic("builder: WithIDOffset(base<0)")
	}
	return func(c *builderConfig) {
		c.idFn = func(i int) int64 { return base + int64(i) }
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// newBuilderConfig applies options in order over the defaults (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{idFn: identityID}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func identityID(i int) int64 { return int64(i) }
