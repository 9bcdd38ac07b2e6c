package walk

import (
	"context"
	"fmt"
	"slices"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvwalk/metrics"
)

// ParallelCorpus generates passes concurrently on at most workers goroutines.
//
// Pass k (1-based) shuffles the ascending node list with its own stream
// deriveRand(seed, k) and walks with that same stream, so the output is
// pass-major and identical for any workers ≥ 1. It is a different corpus
// from Corpus with NewRand(seed): the per-pass streams are not the single
// sequential stream.
func (w *Walker) ParallelCorpus(ctx context.Context, p Params, seed int64, workers int) ([]Walk, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("ParallelCorpus: %w", err)
	}
	if workers < 1 {
		workers = 1
	}

	passes := make([][]Walk, p.NumPasses)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for k := range passes {
		eg.Go(func() error {
			rng := deriveRand(seed, uint64(k+1))
			order := slices.Clone(w.nodes)
			rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

			out := make([]Walk, 0, len(order))
			for _, v := range order {
				if err := ctx.Err(); err != nil {
					return err
				}
				out = append(out, w.walk(v, p.PathLength, p.RestartProbability, rng))
			}
			passes[k] = out
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("ParallelCorpus: %w", err)
	}

	corpus := slices.Concat(passes...)
	steps := 0
	for _, wk := range corpus {
		steps += len(wk)
	}
	metrics.WalksGenerated.Add(float64(len(corpus)))
	metrics.WalkSteps.Add(float64(steps))
	w.log.Debug("parallel corpus built",
		zap.Int("walks", len(corpus)),
		zap.Int("passes", p.NumPasses),
		zap.Int("workers", workers),
	)

	return corpus, nil
}
