package walk

import (
	"fmt"

	"go.uber.org/zap"
)

// Params are the corpus parameters.
type Params struct {
	NumPasses          int     // walks started per node
	PathLength         int     // maximum walk length, ≥ 1
	RestartProbability float64 // α ∈ [0,1]
}

// Validate checks Params in the order passes, path length, probability.
func (p Params) Validate() error {
	if p.NumPasses < 1 {
		return fmt.Errorf("Params: passes=%d: %w", p.NumPasses, ErrBadPasses)
	}
	return validateStep(p.PathLength, p.RestartProbability)
}

func validateStep(pathLength int, alpha float64) error {
	if pathLength < 1 {
		return fmt.Errorf("path length=%d: %w", pathLength, ErrBadPathLength)
	}
	// NaN fails both comparisons, so test the accepted range.
	if !(alpha >= 0 && alpha <= 1) {
		return fmt.Errorf("alpha=%v not in [0,1]: %w", alpha, ErrInvalidProbability)
	}
	return nil
}

// WalkerOption configures a Walker.
type WalkerOption func(*Walker)

// WithLogger attaches a logger. Panics on nil.
func WithLogger(l *zap.Logger) WalkerOption {
	if l == nil {
		panic("walk: WithLogger(nil)")
	}
	return func(w *Walker) { w.log = l }
}

// WalkOption configures a single walk.
type WalkOption func(*walkConfig)

type walkConfig struct {
	start    int64
	hasStart bool
}

// From fixes the start node instead of drawing one uniformly.
func From(start int64) WalkOption {
	return func(c *walkConfig) { c.start, c.hasStart = start, true }
}
