// Package lvwalk turns large undirected graphs into random-walk corpora for
// skip-gram style node embedding (DeepWalk).
//
// What is in the box?
//
//	• Ingestion: adjacency lists (parallel, chunked), edge lists and
//	  in-process sparse coordinate matrices, all landing in one core.Graph
//	• Normalisation: sort + dedupe, self-loop removal, symmetrisation
//	• Walks: truncated random walks with restart, shuffled per pass,
//	  streamed or built in parallel with deterministic per-pass seeds
//	• Interop: gonum/graph converters, synthetic builders for fixtures
//	• Ops: zap logging, Prometheus counters, YAML config, cobra CLI
//
// Under the hood, everything is organized under these subpackages:
//
//	core/       — Graph (node → neighbor list) and its consistency passes
//	parser/     — line parsers for the text formats (checked/unchecked)
//	loader/     — chunked errgroup loaders and the Source dispatch
//	walk/       — Walker, corpus iterator, parallel corpus, writers
//	builder/    — Path, Cycle, Star, Complete, RandomSparse producers
//	converters/ — core.Graph ⇄ gonum simple graphs
//	metrics/    — promauto collectors
//	config/     — YAML run configuration
//	cmd/lvwalk  — walk, stats, synth and version commands
//
// Quick start:
//
//	g, err := loader.LoadFile(ctx, "graph.adjlist", loader.AdjacencyList)
//	if err != nil { … }
//	it, err := walk.NewIterator(ctx, g, walk.Params{NumPasses: 10, PathLength: 40}, walk.NewRand(42))
//	if err != nil { … }
//	n, err := walk.WriteCorpus(os.Stdout, it)
package lvwalk
