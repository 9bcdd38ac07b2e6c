// SPDX-License-Identifier: MIT
// Package: lvwalk/walk
//
// corpus.go — pass-major corpus generation, eager and lazy.
//
// Order of the corpus:
//   for pass in 1..NumPasses:
//       shuffle(order) with rng      // order starts ascending, shuffles accumulate
//       for v in order: emit Walk(From(v))
//
// BuildCorpus is implemented on top of Iterator, so both yield the same
// sequence for the same rng state. Iterator is restartable only by creating a
// new one with an identically seeded rng.

package walk

import (
	"context"
	"fmt"
	"math/rand"
	"slices"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvwalk/core"
	"github.com/katalvlaran/lvwalk/metrics"
)

// Iterator lazily yields the corpus one walk at a time.
//
//	it, err := w.Iterator(ctx, p, rng)
//	for it.Next() {
//	    consume(it.Walk())
//	}
//	err = it.Err()
type Iterator struct {
	ctx   context.Context
	w     *Walker
	p     Params
	rng   *rand.Rand
	order []int64
	pass  int // passes started so far
	idx   int // next position in order
	cur   Walk
	err   error
}

// Iterator validates p and returns a lazy corpus over w.
func (w *Walker) Iterator(ctx context.Context, p Params, rng *rand.Rand) (*Iterator, error) {
	if rng == nil {
		return nil, fmt.Errorf("Iterator: %w", ErrNeedRandSource)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("Iterator: %w", err)
	}

	return &Iterator{
		ctx:   ctx,
		w:     w,
		p:     p,
		rng:   rng,
		order: slices.Clone(w.nodes),
		idx:   len(w.nodes), // forces a shuffle on the first Next
	}, nil
}

// Next advances to the next walk. It returns false once every pass is done
// or the context is canceled; Err tells the two apart.
func (it *Iterator) Next() bool {
	if it.err != nil || len(it.order) == 0 {
		it.cur = nil
		return false
	}
	if err := it.ctx.Err(); err != nil {
		it.err = fmt.Errorf("Iterator: pass %d: %w", it.pass, err)
		it.cur = nil
		return false
	}
	if it.idx == len(it.order) {
		if it.pass == it.p.NumPasses {
			it.cur = nil
			return false
		}
		it.pass++
		it.rng.Shuffle(len(it.order), func(i, j int) {
			it.order[i], it.order[j] = it.order[j], it.order[i]
		})
		it.idx = 0
	}

	it.cur = it.w.walk(it.order[it.idx], it.p.PathLength, it.p.RestartProbability, it.rng)
	it.idx++
	metrics.WalksGenerated.Inc()
	metrics.WalkSteps.Add(float64(len(it.cur)))

	return true
}

// Walk returns the walk produced by the last successful Next. The slice is
// owned by the caller.
func (it *Iterator) Walk() Walk { return it.cur }

// Pass returns the 1-based pass of the current walk.
func (it *Iterator) Pass() int { return it.pass }

// Err returns the cancellation error that stopped Next, if any.
func (it *Iterator) Err() error { return it.err }

// Corpus materialises every walk of the Iterator that p and rng describe.
func (w *Walker) Corpus(ctx context.Context, p Params, rng *rand.Rand) ([]Walk, error) {
	it, err := w.Iterator(ctx, p, rng)
	if err != nil {
		return nil, err
	}

	out := make([]Walk, 0, p.NumPasses*w.Order())
	for it.Next() {
		out = append(out, it.Walk())
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	w.log.Debug("corpus built",
		zap.Int("walks", len(out)),
		zap.Int("passes", p.NumPasses),
		zap.Int("path_length", p.PathLength),
		zap.Float64("restart_probability", p.RestartProbability),
	)

	return out, nil
}

// BuildCorpus is NewWalker(g, opts...).Corpus(ctx, p, rng).
func BuildCorpus(ctx context.Context, g *core.Graph, p Params, rng *rand.Rand, opts ...WalkerOption) ([]Walk, error) {
	return NewWalker(g, opts...).Corpus(ctx, p, rng)
}

// NewIterator is NewWalker(g, opts...).Iterator(ctx, p, rng).
func NewIterator(ctx context.Context, g *core.Graph, p Params, rng *rand.Rand, opts ...WalkerOption) (*Iterator, error) {
	return NewWalker(g, opts...).Iterator(ctx, p, rng)
}
