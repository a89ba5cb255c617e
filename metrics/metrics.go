// Package metrics exports A* search statistics to Prometheus.
//
// A Collector implements astar.Observer; pass it with astar.WithObserver and
// every finished search updates its counters and histograms.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/gridpath/astar"
)

// Outcome label values of gridpath_searches_total.
const (
	OutcomeFound       = "found"
	OutcomePartial     = "partial"
	OutcomeUnreachable = "unreachable"
)

// Collector holds the search metrics registered on one registry.
type Collector struct {
	SearchesTotal  *prometheus.CounterVec
	ExpandedNodes  prometheus.Histogram
	PathLength     prometheus.Histogram
	SearchDuration prometheus.Histogram
}

var _ astar.Observer = (*Collector)(nil)

// NewCollector registers the search metrics on reg. A nil reg uses a fresh
// private registry, which keeps tests independent of the default one.
func NewCollector(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	factory := promauto.With(reg)

	return &Collector{
		SearchesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gridpath_searches_total",
				Help: "Total number of A* searches by outcome",
			},
			[]string{"outcome"},
		),
		ExpandedNodes: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "gridpath_search_expanded_nodes",
				Help:    "Number of nodes expanded per search",
				Buckets: prometheus.ExponentialBuckets(1, 4, 10),
			},
		),
		PathLength: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "gridpath_search_path_length",
				Help:    "Number of steps in the returned path",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		SearchDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "gridpath_search_duration_seconds",
				Help:    "Search duration in seconds",
				Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1.0},
			},
		),
	}
}

// ObserveSearch records one finished search.
func (c *Collector) ObserveSearch(st astar.Stats) {
	c.SearchesTotal.WithLabelValues(Outcome(st)).Inc()
	c.ExpandedNodes.Observe(float64(st.Expanded))
	c.PathLength.Observe(float64(st.PathLen))
	c.SearchDuration.Observe(st.Duration.Seconds())
}

// Outcome maps stats to the outcome label.
func Outcome(st astar.Stats) string {
	switch {
	case st.Found:
		return OutcomeFound
	case st.Partial:
		return OutcomePartial
	default:
		return OutcomeUnreachable
	}
}
