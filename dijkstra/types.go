package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/pathfind/log"
	"github.com/katalvlaran/pathfind/metrics"
)

// Infinity is the distance reported for vertices not reached from the source.
const Infinity int64 = math.MaxInt64

// NoVertex is the predecessor reported for vertices not reached from the source.
const NoVertex = -1

// ErrInvalidInput is the umbrella error for malformed input.
var ErrInvalidInput = errors.New("dijkstra: invalid input")

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = fmt.Errorf("%w: graph is nil", ErrInvalidInput)

	// ErrVertexNotFound indicates a vertex id outside 0..N-1.
	ErrVertexNotFound = fmt.Errorf("%w: vertex not found in graph", ErrInvalidInput)

	// ErrNegativeWeight indicates that a negative edge weight was found.
	ErrNegativeWeight = fmt.Errorf("%w: negative edge weight encountered", ErrInvalidInput)

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = fmt.Errorf("%w: invalid option supplied", ErrInvalidInput)

	// ErrUnreachable is returned by Result.PathTo for a vertex the search
	// never finalized.
	ErrUnreachable = errors.New("dijkstra: vertex unreachable from source")
)

// Stats counts the work done by one run.
type Stats struct {
	Finalized int
	Pushed    int
	Stale     int
}

// Result holds per-vertex outputs indexed by vertex id.
//
// Distances[v] is the shortest distance from Source, or Infinity.
// Predecessors[v] is the vertex preceding v on one shortest path, Source for
// the source itself, or NoVertex when v was not finalized.
type Result struct {
	Source       int
	Distances    []int64
	Predecessors []int
	Stats        Stats
}

// Reachable reports whether v was finalized, i.e. PathTo(v) succeeds.
// A vertex left with only a provisional distance by WithTarget is not
// reachable.
func (r *Result) Reachable(v int) bool {
	return v >= 0 && v < len(r.Predecessors) && r.Predecessors[v] != NoVertex
}

// DistanceTo returns the distance to v, or Infinity if v is unreachable or
// out of range.
func (r *Result) DistanceTo(v int) int64 {
	if v < 0 || v >= len(r.Distances) {
		return Infinity
	}

	return r.Distances[v]
}

// PathTo returns the vertices on the shortest path Source…v.
func (r *Result) PathTo(v int) ([]int, error) {
	if v < 0 || v >= len(r.Predecessors) {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, v)
	}
	if r.Predecessors[v] == NoVertex {
		return nil, fmt.Errorf("%w: %d", ErrUnreachable, v)
	}

	var rev []int
	for cur := v; ; cur = r.Predecessors[cur] {
		rev = append(rev, cur)
		if cur == r.Source {
			break
		}
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev, nil
}

// Options configures ShortestPaths.
//
// Ctx         – cancellation, checked once per frontier pop.
// Logger      – receives Debug/Warn lines; NoOpLogger by default.
// Metrics     – receives one Sample per run; nil records nothing.
// Target      – stop once this vertex is finalized; NoVertex (default) runs
// to completion.
// MaxDistance – vertices farther than this are never finalized. Default
// Infinity (no cap).
type Options struct {
	Ctx         context.Context
	Logger      log.Logger
	Metrics     *metrics.Metrics
	Target      int
	MaxDistance int64

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring ShortestPaths.
type Option func(*Options)

// DefaultOptions returns the options used when none are supplied.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		Logger:      log.NoOpLogger{},
		Target:      NoVertex,
		MaxDistance: Infinity,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger routes diagnostics to l.
func WithLogger(l log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics records every run into m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *Options) {
		o.Metrics = m
	}
}

// WithTarget stops the search once t is finalized. Vertices not finalized by
// then keep provisional distances and NoVertex predecessors.
// t is validated against the graph in ShortestPaths.
func WithTarget(t int) Option {
	return func(o *Options) {
		o.Target = t
	}
}

// WithMaxDistance caps exploration at d.
// Negative d is recorded as ErrOptionViolation.
func WithMaxDistance(d int64) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDistance cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDistance = d
	}
}
