// Package metrics holds the Prometheus collectors shared by the loader and
// the walker. Collectors are registered on the default registry through
// promauto, so any process that exposes /metrics picks them up.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// LinesParsed counts input lines handed to a parser, labeled by format.
	LinesParsed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lvwalk_lines_parsed_total",
			Help: "Total number of input lines handed to a parser",
		},
		[]string{"format"},
	)

	// ChunksParsed counts adjacency-list chunks parsed by the worker pool.
	ChunksParsed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "lvwalk_chunks_parsed_total",
			Help: "Total number of adjacency-list chunks parsed",
		},
	)

	// LoadFailures counts aborted loads, labeled by format.
	LoadFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lvwalk_load_failures_total",
			Help: "Total number of graph loads aborted by an error",
		},
		[]string{"format"},
	)

	// LoadDuration measures wall time of successful loads.
	LoadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lvwalk_load_duration_seconds",
			Help:    "Duration of graph loads in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
		},
		[]string{"format"},
	)

	// WalksGenerated counts emitted walks.
	WalksGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "lvwalk_walks_generated_total",
			Help: "Total number of random walks emitted",
		},
	)

	// WalkSteps counts node visits across all emitted walks.
	WalkSteps = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "lvwalk_walk_steps_total",
			Help: "Total number of node visits across emitted walks",
		},
	)
)
