// SPDX-License-Identifier: MIT
// Package: lvwalk/loader
//
// adjacency.go — parallel adjacency-list loader.
//
// Pipeline:
//   reader goroutine ──chunks──▶ N parser workers ──partials──▶ coordinator
//
//   • The reader cuts the line stream into fixed-size chunks.
//   • Each worker parses a chunk into a chunk-local node → neighbors map and
//     hands it off; workers never touch the shared Graph.
//   • The coordinator (the calling goroutine) merges partials in completion
//     order, then runs MakeUndirected once.
//
// Failure: the first error cancels the errgroup context; the reader and the
// remaining workers stop, the coordinator drains and the partially merged
// Graph is dropped. Loads are all-or-nothing.
//
// Determinism: merge is per-node list append followed by sort + dedupe, so
// the final Graph does not depend on chunk size or completion order.

package loader

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvwalk/core"
	"github.com/katalvlaran/lvwalk/metrics"
	"github.com/katalvlaran/lvwalk/parser"
)

type chunk struct {
	first int // 1-based line number of lines[0]
	lines []string
}

// partial is a worker's immutable result; it is only read after hand-off.
type partial map[int64][]int64

// LoadAdjacencyList reads an adjacency list from r and returns the
// symmetrized Graph.
//
// Errors:
//   - *parser.ParseError on the first malformed line of any chunk.
//   - the reader's error, or ctx.Err() on cancellation.
func LoadAdjacencyList(ctx context.Context, r io.Reader, opts ...Option) (*core.Graph, error) {
	cfg := newConfig(opts...)
	started := time.Now()

	g, err := loadAdjacency(ctx, r, cfg)
	if err != nil {
		metrics.LoadFailures.WithLabelValues(AdjacencyList.String()).Inc()
		cfg.log.Warn("adjacency list load failed", zap.Error(err))
		return nil, err
	}

	metrics.LoadDuration.WithLabelValues(AdjacencyList.String()).Observe(time.Since(started).Seconds())
	cfg.log.Info("adjacency list loaded",
		zap.Int("nodes", g.Order()),
		zap.Int("edges", g.NumberOfEdges()),
		zap.Int("workers", cfg.workers),
		zap.Int("chunk_size", cfg.chunkSize),
		zap.Duration("took", time.Since(started)),
	)

	return g, nil
}

func loadAdjacency(ctx context.Context, r io.Reader, cfg config) (*core.Graph, error) {
	eg, ctx := errgroup.WithContext(ctx)
	chunks := make(chan chunk)
	parts := make(chan partial, cfg.workers)
	p := parser.ForMode(cfg.mode)

	eg.Go(func() error {
		defer close(chunks)
		return readChunks(ctx, r, cfg.chunkSize, chunks)
	})

	var workers sync.WaitGroup
	for i := 0; i < cfg.workers; i++ {
		workers.Add(1)
		eg.Go(func() error {
			defer workers.Done()
			return parseChunks(ctx, p, chunks, parts)
		})
	}
	go func() {
		workers.Wait()
		close(parts)
	}()

	g := core.NewGraph(core.WithLogger(cfg.log))
	merged := 0
	for part := range parts {
		g.Merge(part)
		merged++
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	cfg.log.Debug("merged partial graphs", zap.Int("chunks", merged))

	return g.MakeUndirected(), nil
}

// readChunks scans r into chunks of at most size lines.
func readChunks(ctx context.Context, r io.Reader, size int, out chan<- chunk) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	send := func(c chunk) error {
		select {
		case out <- c:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	cur := chunk{first: 1, lines: make([]string, 0, size)}
	lineNo := 0
	for sc.Scan() {
		lineNo++
		cur.lines = append(cur.lines, sc.Text())
		if len(cur.lines) == size {
			if err := send(cur); err != nil {
				return err
			}
			cur = chunk{first: lineNo + 1, lines: make([]string, 0, size)}
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("loader: read line %d: %w", lineNo+1, err)
	}
	if len(cur.lines) > 0 {
		return send(cur)
	}

	return nil
}

// parseChunks is one pool worker.
func parseChunks(ctx context.Context, p parser.Parser, in <-chan chunk, out chan<- partial) error {
	for c := range in {
		if err := ctx.Err(); err != nil {
			return err
		}
		recs, err := p.Parse(c.lines, c.first)
		if err != nil {
			return err
		}
		metrics.ChunksParsed.Inc()
		metrics.LinesParsed.WithLabelValues(AdjacencyList.String()).Add(float64(len(c.lines)))

		part := make(partial, len(recs))
		for _, rec := range recs {
			part[rec.Node] = append(part[rec.Node], rec.Neighbors...)
		}
		select {
		case out <- part:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return nil
}
