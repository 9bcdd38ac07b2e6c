// Package builder provides deterministic synthetic edge producers: small
// canonical topologies (Path, Cycle, Star, Complete) and an Erdős–Rényi
// sampler (RandomSparse), composed through BuildGraph.
//
// Builders are producers in the same sense as an ETL job that emits an
// adjacency list: they only use core.Graph's public ingestion API, and
// WriteAdjacencyList renders any graph in the text format the loader reads.
//
// The package offers:
//
//   - Configuration primitives:
//     – BuilderOption: a function that mutates builderConfig before use.
//     – WithSeed / WithRand: RNG for stochastic constructors.
//     – WithIDOffset / WithIDScheme: index → node ID mapping.
//   - Constructors: Path, Cycle, Star, Complete, RandomSparse.
//   - Errors: ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
//     ErrConstructFailed.
//
// Guarantees:
//
//   - Same inputs, options, seed and constructor order ⇒ identical graphs.
//   - BuildGraph runs MakeUndirected once after all constructors, so results
//     are simple and symmetric.
//   - Fast-fail on invalid option parameters via panics in option constructors;
//     constructors themselves return wrapped sentinels.
package builder
