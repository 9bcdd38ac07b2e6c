// SPDX-License-Identifier: MIT
// Package: lvwalk/loader
//
// sparse.go — coordinate (row/col/data) sparse matrices as an edge source.
//
// COO implements gonum's mat.Matrix so a matrix assembled elsewhere can be
// passed around with gonum types, but LoadSparse only walks the stored
// triples; any other mat.Matrix (notably *mat.Dense) is rejected.

package loader

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvwalk/core"
	"github.com/katalvlaran/lvwalk/metrics"
)

// COO is a sparse matrix in coordinate form. Entry k is (Row[k], Col[k]) with
// value Data[k]; duplicate coordinates add up.
type COO struct {
	r, c int
	row  []int
	col  []int
	data []float64
}

var _ mat.Matrix = (*COO)(nil)

// NewCOO validates and wraps a row/col/data triple of an r×c matrix.
// The slices are retained, not copied.
func NewCOO(r, c int, row, col []int, data []float64) (*COO, error) {
	if r < 0 || c < 0 {
		return nil, fmt.Errorf("NewCOO: negative dims %dx%d: %w", r, c, ErrUnsupportedInput)
	}
	if len(row) != len(col) || len(row) != len(data) {
		return nil, fmt.Errorf("NewCOO: len(row)=%d len(col)=%d len(data)=%d: %w",
			len(row), len(col), len(data), ErrUnsupportedInput)
	}
	for k := range row {
		if row[k] < 0 || row[k] >= r || col[k] < 0 || col[k] >= c {
			return nil, fmt.Errorf("NewCOO: entry %d at (%d,%d) outside %dx%d: %w",
				k, row[k], col[k], r, c, ErrUnsupportedInput)
		}
	}

	return &COO{r: r, c: c, row: row, col: col, data: data}, nil
}

// Dims returns the matrix shape.
func (m *COO) Dims() (r, c int) { return m.r, m.c }

// At sums the stored values at (i, j). It is O(nnz) and exists to satisfy
// mat.Matrix; LoadSparse never calls it.
func (m *COO) At(i, j int) float64 {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		panic(mat.ErrIndexOutOfRange)
	}
	var v float64
	for k := range m.row {
		if m.row[k] == i && m.col[k] == j {
			v += m.data[k]
		}
	}

	return v
}

// T returns the implicit transpose.
func (m *COO) T() mat.Matrix { return mat.Transpose{Matrix: m} }

// NNZ returns the number of stored triples.
func (m *COO) NNZ() int { return len(m.data) }

// DoNonZero calls fn for every stored triple with a non-zero value, in
// storage order.
func (m *COO) DoNonZero(fn func(i, j int, v float64)) {
	for k := range m.data {
		if m.data[k] != 0 {
			fn(m.row[k], m.col[k], m.data[k])
		}
	}
}

// LoadSparse turns every non-zero (i, j) of m into an edge i–j and returns
// the symmetrized Graph. Only *COO is accepted.
//
// Errors:
//   - ErrUnsupportedInput for nil, dense or otherwise non-COO matrices.
func LoadSparse(m mat.Matrix, opts ...Option) (*core.Graph, error) {
	cfg := newConfig(opts...)
	started := time.Now()

	coo, ok := m.(*COO)
	if !ok || coo == nil {
		metrics.LoadFailures.WithLabelValues(SparseMatrix.String()).Inc()
		return nil, fmt.Errorf("LoadSparse(%T): only *loader.COO is supported: %w", m, ErrUnsupportedInput)
	}

	g := core.NewGraph(core.WithLogger(cfg.log))
	coo.DoNonZero(func(i, j int, _ float64) {
		g.AddEdge(int64(i), int64(j))
	})
	g.MakeUndirected()

	metrics.LoadDuration.WithLabelValues(SparseMatrix.String()).Observe(time.Since(started).Seconds())
	cfg.log.Info("sparse matrix loaded",
		zap.Int("nnz", coo.NNZ()),
		zap.Int("nodes", g.Order()),
		zap.Int("edges", g.NumberOfEdges()),
	)

	return g, nil
}
