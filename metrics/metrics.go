// Package metrics records per-search statistics as Prometheus collectors.
//
// A *Metrics is created once per process (or per registry) and injected into
// searches with astar.WithMetrics / dijkstra.WithMetrics. A nil *Metrics is
// valid and records nothing, which is what searches use by default.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Algorithm label values.
const (
	AlgorithmAStar    = "astar"
	AlgorithmDijkstra = "dijkstra"
)

// Outcome label values.
const (
	OutcomeReached     = "reached"     // goal/target found
	OutcomeUnreachable = "unreachable" // frontier exhausted without the goal/target
	OutcomeComplete    = "complete"    // single-source run with no target
	OutcomeError       = "error"       // invalid input, option violation or cancellation
)

// Sample is the summary of one finished search.
type Sample struct {
	Algorithm string
	Outcome   string
	Expanded  int // nodes/vertices finalized
	Pushed    int // frontier pushes
	Stale     int // frontier pops discarded by lazy deletion
	Elapsed   time.Duration
}

// Metrics holds the registered collectors.
type Metrics struct {
	searches *prometheus.CounterVec
	expanded *prometheus.HistogramVec
	pushed   *prometheus.CounterVec
	stale    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg.
// It panics if registration fails, like prometheus.MustRegister.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pathfind",
			Name:      "searches_total",
			Help:      "The total number of finished searches",
		}, []string{"algorithm", "outcome"}),
		expanded: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "pathfind",
			Name:      "expanded_nodes",
			Help:      "Nodes finalized per search",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}, []string{"algorithm"}),
		pushed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pathfind",
			Name:      "frontier_pushes_total",
			Help:      "The total number of frontier pushes",
		}, []string{"algorithm"}),
		stale: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pathfind",
			Name:      "stale_pops_total",
			Help:      "Frontier entries discarded at pop time because a better entry superseded them",
		}, []string{"algorithm"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "pathfind",
			Name:      "search_duration_seconds",
			Help:      "Wall time of one search",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs .. ~2.6s
		}, []string{"algorithm"}),
	}
	reg.MustRegister(m.searches, m.expanded, m.pushed, m.stale, m.duration)

	return m
}

// Observe records one finished search. Safe on a nil receiver.
func (m *Metrics) Observe(s Sample) {
	if m == nil {
		return
	}
	m.searches.WithLabelValues(s.Algorithm, s.Outcome).Inc()
	if s.Outcome == OutcomeError {
		return
	}
	m.expanded.WithLabelValues(s.Algorithm).Observe(float64(s.Expanded))
	m.pushed.WithLabelValues(s.Algorithm).Add(float64(s.Pushed))
	m.stale.WithLabelValues(s.Algorithm).Add(float64(s.Stale))
	m.duration.WithLabelValues(s.Algorithm).Observe(s.Elapsed.Seconds())
}
