// Package bfs provides tunable options and error definitions
// for breadth-first search over a gridgraph.Grid.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/pathfind/gridgraph"
)

// Sentinel errors for BFS execution.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("bfs: grid is nil")

	// ErrStartOutOfBounds is returned when the start lies outside the grid.
	ErrStartOutOfBounds = errors.New("bfs: start position out of bounds")

	// ErrBlockedStart is returned when the start cell is Blocked.
	ErrBlockedStart = errors.New("bfs: start position is blocked")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrUnreached is returned by PathTo for a cell the search did not reach.
	ErrUnreached = errors.New("bfs: position not reached")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when Distances is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a cell. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(p gridgraph.Position, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
// context.Background(), no depth limit, no-op OnVisit.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:      context.Background(),
		OnVisit:  func(gridgraph.Position, int) error { return nil },
		MaxDepth: 0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(p gridgraph.Position, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result holds the outcome of a BFS run over a grid:
//   - Order: cells visited, in visit sequence.
//   - Depth: per row-major cell index, steps from start, or -1 if unreached.
//   - Parent: per row-major cell index, the predecessor's index, or -1.
type Result struct {
	Start  gridgraph.Position
	Order  []gridgraph.Position
	Depth  []int
	Parent []int

	grid *gridgraph.Grid
}

// DepthAt returns the step distance from Start to p, or -1 when p is out of
// bounds or was not reached.
func (r *Result) DepthAt(p gridgraph.Position) int {
	if !r.grid.InBounds(p) {
		return -1
	}

	return r.Depth[r.grid.Index(p)]
}

// PathTo reconstructs the path from Start to dest, both inclusive.
// Returns ErrUnreached if dest was not reached.
func (r *Result) PathTo(dest gridgraph.Position) ([]gridgraph.Position, error) {
	if r.DepthAt(dest) < 0 {
		return nil, fmt.Errorf("%w: %v", ErrUnreached, dest)
	}
	path := make([]gridgraph.Position, r.DepthAt(dest)+1)
	at := r.grid.Index(dest)
	for i := len(path) - 1; i >= 0; i-- {
		path[i] = r.grid.Position(at)
		at = r.Parent[at]
	}

	return path, nil
}
