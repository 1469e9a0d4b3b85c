package astar

import (
	"container/heap"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rhartert/sparsesets"

	"github.com/katalvlaran/pathfind/gridgraph"
	"github.com/katalvlaran/pathfind/metrics"
)

// FindPath returns a shortest path from start to goal on grid, both
// inclusive, in traversal order. An empty (nil) path means the goal is
// unreachable; that is not an error.
//
// See Search for validation rules and options.
func FindPath(grid *gridgraph.Grid, start, goal gridgraph.Position, opts ...Option) ([]gridgraph.Position, error) {
	res, err := Search(grid, start, goal, opts...)
	if err != nil {
		return nil, err
	}

	return res.Path, nil
}

// Search runs A* from start to goal on grid and reports the path together
// with its cost and search statistics.
//
// Preconditions and validation (in order):
//  1. grid must be non-nil (ErrNilGrid).
//  2. Options must be valid (ErrOptionViolation).
//  3. start must be in bounds (ErrStartOutOfBounds).
//  4. goal must be in bounds (ErrGoalOutOfBounds).
//  5. start must be Walkable (ErrBlockedStart).
//
// A Blocked goal yields Found=false without searching.
func Search(grid *gridgraph.Grid, start, goal gridgraph.Position, opts ...Option) (*Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	began := time.Now()
	res, err := search(grid, start, goal, cfg)
	elapsed := time.Since(began)

	// 2) Report
	sample := metrics.Sample{Algorithm: metrics.AlgorithmAStar, Elapsed: elapsed}
	switch {
	case errors.Is(err, ErrInvalidInput):
		sample.Outcome = metrics.OutcomeError
		cfg.Logger.Warn("astar: search %v→%v rejected: %v", start, goal, err)
	case err != nil:
		sample.Outcome = metrics.OutcomeError
		cfg.Logger.Error("astar: search %v→%v aborted: %v", start, goal, err)
	case res.Found:
		sample.Outcome = metrics.OutcomeReached
	default:
		sample.Outcome = metrics.OutcomeUnreachable
		cfg.Logger.Info("astar: goal %v unreachable from %v", goal, start)
	}
	if res != nil {
		sample.Expanded = res.Stats.Expanded
		sample.Pushed = res.Stats.Pushed
		sample.Stale = res.Stats.Stale
		cfg.Logger.Debug("astar: %v→%v found=%t cost=%d expanded=%d pushed=%d stale=%d in %s",
			start, goal, res.Found, res.Cost, res.Stats.Expanded, res.Stats.Pushed, res.Stats.Stale, elapsed)
	}
	cfg.Metrics.Observe(sample)

	return res, err
}

// search validates input and drives one searcher.
func search(grid *gridgraph.Grid, start, goal gridgraph.Position, cfg Options) (*Result, error) {
	if grid == nil {
		return nil, ErrNilGrid
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if !grid.InBounds(start) {
		return nil, fmt.Errorf("%w: %v in %dx%d grid", ErrStartOutOfBounds, start, grid.Rows(), grid.Cols())
	}
	if !grid.InBounds(goal) {
		return nil, fmt.Errorf("%w: %v in %dx%d grid", ErrGoalOutOfBounds, goal, grid.Rows(), grid.Cols())
	}
	if !grid.Walkable(start) {
		return nil, fmt.Errorf("%w: %v", ErrBlockedStart, start)
	}
	if !grid.Walkable(goal) {
		return &Result{}, nil
	}
	if cfg.Heuristic == nil {
		cfg.Heuristic = heuristicFor(grid.Conn())
	}

	s := newSearcher(grid, goal, cfg)
	s.push(grid.Index(start), 0, noParent)

	return s.run()
}

// searcher holds the mutable state for a single A* execution.
type searcher struct {
	grid    *gridgraph.Grid
	goal    gridgraph.Position
	goalIdx int
	opts    Options
	ctx     context.Context

	arena  arena
	open   frontier
	closed *sparsesets.Set
	best   []int // cell → handle of the cheapest node so far, or -1
	seq    uint64
	nbuf   []gridgraph.Position
	stats  Stats
}

func newSearcher(grid *gridgraph.Grid, goal gridgraph.Position, cfg Options) *searcher {
	n := grid.Len()
	best := make([]int, n)
	for i := range best {
		best[i] = noParent
	}

	return &searcher{
		grid:    grid,
		goal:    goal,
		goalIdx: grid.Index(goal),
		opts:    cfg,
		ctx:     cfg.Ctx,
		closed:  sparsesets.New(n),
		best:    best,
		nbuf:    make([]gridgraph.Position, 0, 8),
	}
}

// push allocates a node for cell reached with cost g from parent, records
// it as the cell's best-known node and adds it to the frontier.
func (s *searcher) push(cell, g, parent int) {
	h := s.opts.Heuristic(s.grid.Position(cell), s.goal)
	handle := s.arena.alloc(node{cell: cell, g: g, h: h, parent: parent})
	s.best[cell] = handle
	s.seq++
	heap.Push(&s.open, entry{f: g + h, h: h, seq: s.seq, handle: handle})
	s.stats.Pushed++
}

// stale reports whether n has been superseded: its cell is already closed,
// or a node with a smaller g has been recorded for it since n was pushed.
func (s *searcher) stale(n node) bool {
	if s.closed.Contains(n.cell) {
		return true
	}

	return n.g > s.arena.nodes[s.best[n.cell]].g
}

// run is the main loop: pop the lowest-f entry, drop it if stale, finish
// on the goal, otherwise close the cell and relax its neighbors.
func (s *searcher) run() (*Result, error) {
	for s.open.Len() > 0 {
		if err := s.ctx.Err(); err != nil {
			return nil, err
		}

		e := heap.Pop(&s.open).(entry)
		cur := s.arena.nodes[e.handle]
		if s.stale(cur) {
			s.stats.Stale++
			continue
		}

		if cur.cell == s.goalIdx {
			return &Result{
				Path:  s.arena.path(s.grid, e.handle),
				Cost:  cur.g,
				Found: true,
				Stats: s.stats,
			}, nil
		}

		if s.opts.MaxExpansions > 0 && s.stats.Expanded >= s.opts.MaxExpansions {
			return nil, fmt.Errorf("%w: %d cells expanded", ErrExpansionLimit, s.stats.Expanded)
		}
		s.closed.Insert(cur.cell)
		s.stats.Expanded++
		p := s.grid.Position(cur.cell)
		s.opts.OnExpand(p, cur.g)

		s.relax(p, cur.g, e.handle)
	}

	// Frontier exhausted: the goal is unreachable.
	return &Result{Stats: s.stats}, nil
}

// relax offers every walkable, unclosed neighbor of p a route costing g+1.
// A node is created only when the neighbor has none yet or the new g is
// strictly better than its best-known g.
func (s *searcher) relax(p gridgraph.Position, g, handle int) {
	s.nbuf = s.grid.Neighbors(p, s.nbuf)
	next := g + 1
	for _, nb := range s.nbuf {
		ni := s.grid.Index(nb)
		if s.closed.Contains(ni) {
			continue
		}
		if b := s.best[ni]; b != noParent && s.arena.nodes[b].g <= next {
			continue
		}
		s.push(ni, next, handle)
	}
}
