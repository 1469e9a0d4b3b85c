package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/pathfind/gridgraph"
)

// walker encapsulates mutable BFS state.
type walker struct {
	grid  *gridgraph.Grid
	opts  BFSOptions
	ctx   context.Context
	queue []int // row-major cell indices; head advances, tail appends
	head  int
	nbuf  []gridgraph.Position
	res   *Result
}

// Distances runs breadth-first search on grid from start, applying any
// number of functional Options.
// Returns ErrNilGrid, ErrStartOutOfBounds or ErrBlockedStart for invalid
// input, ErrOptionViolation for bad options, ctx.Err() on cancellation,
// or any OnVisit error.
func Distances(grid *gridgraph.Grid, start gridgraph.Position, opts ...Option) (*Result, error) {
	if grid == nil {
		return nil, ErrNilGrid
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if !grid.InBounds(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartOutOfBounds, start)
	}
	if !grid.Walkable(start) {
		return nil, fmt.Errorf("%w: %v", ErrBlockedStart, start)
	}

	n := grid.Len()
	w := &walker{
		grid:  grid,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]int, 0, n),
		res: &Result{
			Start:  start,
			Order:  make([]gridgraph.Position, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
			grid:   grid,
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i] = -1
		w.res.Parent[i] = -1
	}

	// Seed queue with start cell (no parent)
	w.enqueue(grid.Index(start), 0, -1)

	return w.res, w.loop()
}

// enqueue labels idx with depth d and parent, and appends it to the queue.
func (w *walker) enqueue(idx, d, parent int) {
	w.res.Depth[idx] = d
	w.res.Parent[idx] = parent
	w.queue = append(w.queue, idx)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for w.head < len(w.queue) {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		idx := w.queue[w.head]
		w.head++
		p := w.grid.Position(idx)
		d := w.res.Depth[idx]

		w.res.Order = append(w.res.Order, p)
		if err := w.opts.OnVisit(p, d); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", p, err)
		}
		if w.opts.MaxDepth > 0 && d >= w.opts.MaxDepth {
			continue
		}

		w.nbuf = w.grid.Neighbors(p, w.nbuf)
		for _, nb := range w.nbuf {
			ni := w.grid.Index(nb)
			if w.res.Depth[ni] < 0 {
				w.enqueue(ni, d+1, idx)
			}
		}
	}

	return nil
}
