package astar

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/pathfind/gridgraph"
	"github.com/katalvlaran/pathfind/log"
	"github.com/katalvlaran/pathfind/metrics"
)

// ErrInvalidInput is the umbrella error for malformed search input.
var ErrInvalidInput = errors.New("astar: invalid input")

// Sentinel errors returned by the A* implementation.
var (
	// ErrNilGrid indicates that a nil *gridgraph.Grid was passed.
	ErrNilGrid = fmt.Errorf("%w: grid is nil", ErrInvalidInput)

	// ErrStartOutOfBounds indicates a start position outside the grid.
	ErrStartOutOfBounds = fmt.Errorf("%w: start position out of bounds", ErrInvalidInput)

	// ErrGoalOutOfBounds indicates a goal position outside the grid.
	ErrGoalOutOfBounds = fmt.Errorf("%w: goal position out of bounds", ErrInvalidInput)

	// ErrBlockedStart indicates that the start cell is Blocked.
	ErrBlockedStart = fmt.Errorf("%w: start position is blocked", ErrInvalidInput)

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = fmt.Errorf("%w: invalid option supplied", ErrInvalidInput)

	// ErrExpansionLimit indicates the search hit its MaxExpansions budget
	// before reaching or ruling out the goal.
	ErrExpansionLimit = errors.New("astar: expansion limit reached")
)

// Stats counts the work done by one search.
type Stats struct {
	Expanded int // cells closed
	Pushed   int // frontier pushes, including the start
	Stale    int // pops discarded by lazy deletion
}

// Result is the outcome of Search.
//
// Path lists the cells from start to goal inclusive and is nil when the goal
// is unreachable. Cost is the number of moves, len(Path)-1, or 0 when Found
// is false.
type Result struct {
	Path  []gridgraph.Position
	Cost  int
	Found bool
	Stats Stats
}

// Options configures a search.
//
// Ctx           – cancellation, checked once per frontier pop.
// Logger        – receives search diagnostics; NoOpLogger by default.
// Metrics       – receives one Sample per search; nil records nothing.
// Heuristic     – overrides the connectivity default; admissible and consistent.
// OnExpand      – called for every cell as it is closed.
// MaxExpansions – abort with ErrExpansionLimit past this many; 0 is unlimited.
type Options struct {
	Ctx           context.Context
	Logger        log.Logger
	Metrics       *metrics.Metrics
	Heuristic     Heuristic
	OnExpand      func(p gridgraph.Position, g int)
	MaxExpansions int

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// DefaultOptions returns background context, a NoOpLogger, no metrics,
// the connectivity-derived heuristic, a no-op OnExpand, and no expansion cap.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Logger:   log.NoOpLogger{},
		OnExpand: func(gridgraph.Position, int) {},
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

// WithLogger routes search diagnostics to l.
func WithLogger(l log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics records every search into m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *Options) {
		o.Metrics = m
	}
}

// WithHeuristic replaces the default heuristic.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithOnExpand registers a callback invoked for every closed cell with its g.
func WithOnExpand(fn func(p gridgraph.Position, g int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithMaxExpansions caps the number of expanded cells.
//
//	n > 0: abort with ErrExpansionLimit once n cells have been expanded
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}
