// Package metrics declares the prometheus collectors of lvfst. Collectors
// register on the default registry at init through promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Cache names used as the "cache" label of the compose counters.
const (
	CacheInEdges          = "in_edges"
	CacheOutEdges         = "out_edges"
	CacheInEdgesByInput   = "in_edges_by_input"
	CacheInEdgesByOutput  = "in_edges_by_output"
	CacheOutEdgesByInput  = "out_edges_by_input"
	CacheOutEdgesByOutput = "out_edges_by_output"
)

// =============================================================================
// Composition
// =============================================================================

var (
	// ComposeCacheHits counts single-slot adjacency cache hits of lazy
	// compositions.
	ComposeCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lvfst_compose_cache_hits_total",
			Help: "Single-slot adjacency cache hits of lazy compositions",
		},
		[]string{"cache"},
	)

	// ComposeCacheMisses counts single-slot adjacency cache misses.
	ComposeCacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lvfst_compose_cache_misses_total",
			Help: "Single-slot adjacency cache misses of lazy compositions",
		},
		[]string{"cache"},
	)

	// ComposeMatchedEdges counts composed edges produced by matching.
	ComposeMatchedEdges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lvfst_compose_matched_edges_total",
			Help: "Composed edges produced, by matching mode",
		},
		[]string{"mode"},
	)
)

// =============================================================================
// Decode pipeline
// =============================================================================

var (
	// DecodeRunsTotal counts decode runs by kind ("best", "kbest",
	// "posteriors", "prune", "compose") and result ("ok", "no_path", "error").
	DecodeRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lvfst_decode_runs_total",
			Help: "Decode runs by kind and result",
		},
		[]string{"kind", "result"},
	)

	// DecodeDurationSeconds observes decode latency by kind.
	DecodeDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lvfst_decode_duration_seconds",
			Help:    "Decode latency by kind",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		},
		[]string{"kind"},
	)

	// DecodePathLength observes the number of edges of returned paths.
	DecodePathLength = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "lvfst_decode_path_edges",
			Help:    "Edges per decoded path",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		},
	)

	// BeamKeptRatio observes the share of edges kept by beam pruning.
	BeamKeptRatio = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "lvfst_beam_kept_ratio",
			Help:    "Fraction of automaton edges kept by beam pruning",
			Buckets: prometheus.LinearBuckets(0.1, 0.1, 10),
		},
	)
)

// =============================================================================
// Logging
// =============================================================================

// LogEntriesTotal counts log entries by level.
var LogEntriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "lvfst_log_entries_total",
		Help: "Total number of log entries by level",
	},
	[]string{"level"},
)
