// SPDX-License-Identifier: MIT
// Package: lvwalk/loader
//
// options.go — functional options and resolved configuration.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors panic on meaningless values (chunk size < 1,
//     workers < 1); loaders themselves never panic.
//   • No hidden globals: parser mode, chunk size, pool size and logger all
//     travel through config for each invocation.

package loader

import (
	"runtime"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvwalk/parser"
)

// DefaultChunkSize is the number of lines handed to one worker.
const DefaultChunkSize = 10000

// maxLineBytes bounds a single input line (hub nodes can have very long lists).
const maxLineBytes = 64 << 20

// Option customises a load.
type Option func(*config)

type config struct {
	chunkSize int
	workers   int
	mode      parser.Mode
	log       *zap.Logger
}

// WithChunkSize sets the number of lines per chunk. Panics if n < 1.
func WithChunkSize(n int) Option {
	if n < 1 {
		panic("loader: WithChunkSize(n<1)")
	}
	return func(c *config) { c.chunkSize = n }
}

// WithWorkers sets the parser pool size. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("loader: WithWorkers(n<1)")
	}
	return func(c *config) { c.workers = n }
}

// WithMode selects checked or unchecked parsing.
func WithMode(m parser.Mode) Option {
	return func(c *config) { c.mode = m }
}

// WithLogger attaches a logger to the load and to the resulting Graph.
// Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("loader: WithLogger(nil)")
	}
	return func(c *config) { c.log = l }
}

func newConfig(opts ...Option) config {
	cfg := config{
		chunkSize: DefaultChunkSize,
		workers:   runtime.GOMAXPROCS(0),
		mode:      parser.Checked,
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
