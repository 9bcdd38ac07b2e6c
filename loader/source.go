// SPDX-License-Identifier: MIT
// Package: lvwalk/loader
//
// source.go — input-source kinds and the single Load entry point that maps
// each kind to its parsing strategy.

package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvwalk/core"
)

// ErrUnsupportedInput indicates a source the loader cannot turn into a graph,
// such as a dense matrix where only sparse ones are accepted.
var ErrUnsupportedInput = errors.New("loader: unsupported input")

// Format enumerates the input-source kinds.
type Format int

const (
	// AdjacencyList is "<node> <nbr>..." per line, loaded in parallel.
	AdjacencyList Format = iota
	// EdgeList is "<u> <v>" per line, loaded sequentially.
	EdgeList
	// SparseMatrix is an in-process coordinate matrix.
	SparseMatrix
)

// String returns the config spelling of f.
func (f Format) String() string {
	switch f {
	case AdjacencyList:
		return "adjlist"
	case EdgeList:
		return "edgelist"
	case SparseMatrix:
		return "sparse"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat is the inverse of Format.String.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "adjlist", "":
		return AdjacencyList, nil
	case "edgelist":
		return EdgeList, nil
	case "sparse":
		return SparseMatrix, nil
	default:
		return AdjacencyList, fmt.Errorf("loader: unknown format %q: %w", s, ErrUnsupportedInput)
	}
}

// Source is a tagged edge source. Reader is used by the text formats,
// Matrix by SparseMatrix.
type Source struct {
	Format Format
	Reader io.Reader
	Matrix mat.Matrix
}

// Load dispatches src to the loader for its Format.
func Load(ctx context.Context, src Source, opts ...Option) (*core.Graph, error) {
	switch src.Format {
	case AdjacencyList, EdgeList:
		if src.Reader == nil {
			return nil, fmt.Errorf("Load(%s): nil reader: %w", src.Format, ErrUnsupportedInput)
		}
		if src.Format == EdgeList {
			return LoadEdgeList(ctx, src.Reader, opts...)
		}
		return LoadAdjacencyList(ctx, src.Reader, opts...)
	case SparseMatrix:
		return LoadSparse(src.Matrix, opts...)
	default:
		return nil, fmt.Errorf("Load(%s): %w", src.Format, ErrUnsupportedInput)
	}
}

// LoadFile opens path and loads it as a text format. Sparse matrices have no
// file encoding here and are rejected with ErrUnsupportedInput.
func LoadFile(ctx context.Context, path string, f Format, opts ...Option) (*core.Graph, error) {
	if f == SparseMatrix {
		return nil, fmt.Errorf("LoadFile(%s): %s from file: %w", path, f, ErrUnsupportedInput)
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadFile: %w", err)
	}
	defer fh.Close()

	return Load(ctx, Source{Format: f, Reader: fh}, opts...)
}
