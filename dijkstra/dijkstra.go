package dijkstra

import (
	"container/heap"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rhartert/sparsesets"

	"github.com/katalvlaran/pathfind/core"
	"github.com/katalvlaran/pathfind/metrics"
)

// ShortestPaths computes shortest distances and predecessors from source to
// every vertex of g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Options must be valid (ErrOptionViolation).
//  3. source, and the target if one is set, must be vertices of g
//     (ErrVertexNotFound).
//  4. No edge may have a negative weight (ErrNegativeWeight).
//
// An unreachable vertex is not an error: it keeps Infinity and NoVertex.
//
// Complexity:
//
//   - Time:  O((V + E) log E)
//   - Space: O(V + E)
func ShortestPaths(g *core.Graph, source int, opts ...Option) (*Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	began := time.Now()
	res, outcome, err := shortestPaths(g, source, cfg)
	elapsed := time.Since(began)

	// 2) Report
	sample := metrics.Sample{Algorithm: metrics.AlgorithmDijkstra, Outcome: outcome, Elapsed: elapsed}
	switch {
	case errors.Is(err, ErrInvalidInput):
		sample.Outcome = metrics.OutcomeError
		cfg.Logger.Warn("dijkstra: source %d rejected: %v", source, err)
	case err != nil:
		sample.Outcome = metrics.OutcomeError
		cfg.Logger.Error("dijkstra: source %d aborted: %v", source, err)
	default:
		if outcome == metrics.OutcomeUnreachable {
			cfg.Logger.Info("dijkstra: target %d unreachable from %d", cfg.Target, source)
		}
		sample.Expanded = res.Stats.Finalized
		sample.Pushed = res.Stats.Pushed
		sample.Stale = res.Stats.Stale
		cfg.Logger.Debug("dijkstra: source %d %s finalized=%d pushed=%d stale=%d in %s",
			source, outcome, res.Stats.Finalized, res.Stats.Pushed, res.Stats.Stale, elapsed)
	}
	cfg.Metrics.Observe(sample)

	return res, err
}

// shortestPaths validates input and drives one runner. The returned outcome
// is a metrics label.
func shortestPaths(g *core.Graph, source int, cfg Options) (*Result, string, error) {
	if g == nil {
		return nil, "", ErrNilGraph
	}
	if cfg.err != nil {
		return nil, "", cfg.err
	}
	if !g.HasVertex(source) {
		return nil, "", fmt.Errorf("%w: source %d (order %d)", ErrVertexNotFound, source, g.Order())
	}
	if cfg.Target != NoVertex && !g.HasVertex(cfg.Target) {
		return nil, "", fmt.Errorf("%w: target %d (order %d)", ErrVertexNotFound, cfg.Target, g.Order())
	}

	// Snapshot once: the run never takes the graph lock again.
	adj := g.Snapshot()
	for u, row := range adj {
		for _, e := range row {
			if e.Weight < 0 {
				return nil, "", fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, u, e.To, e.Weight)
			}
		}
	}

	r := newRunner(adj, source, cfg)
	if err := r.process(); err != nil {
		return nil, "", err
	}

	outcome := metrics.OutcomeComplete
	if cfg.Target != NoVertex {
		outcome = metrics.OutcomeUnreachable
		if r.finalized.Contains(cfg.Target) {
			outcome = metrics.OutcomeReached
		}
	}

	return r.res, outcome, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	adj       [][]core.Edge
	opts      Options
	ctx       context.Context
	finalized *sparsesets.Set
	pq        nodePQ
	seq       uint64
	res       *Result
}

// newRunner sets every distance to Infinity and every predecessor to
// NoVertex, then seeds the frontier with the source as its own predecessor.
func newRunner(adj [][]core.Edge, source int, cfg Options) *runner {
	n := len(adj)
	res := &Result{
		Source:       source,
		Distances:    make([]int64, n),
		Predecessors: make([]int, n),
	}
	for v := 0; v < n; v++ {
		res.Distances[v] = Infinity
		res.Predecessors[v] = NoVertex
	}
	res.Distances[source] = 0

	r := &runner{
		adj:       adj,
		opts:      cfg,
		ctx:       cfg.Ctx,
		finalized: sparsesets.New(n),
		pq:        make(nodePQ, 0, n),
		res:       res,
	}
	r.push(0, source, source)

	return r
}

// push adds a frontier entry for v at dist reached via u.
func (r *runner) push(dist int64, v, via int) {
	r.seq++
	heap.Push(&r.pq, nodeItem{dist: dist, vertex: v, via: via, seq: r.seq})
	r.res.Stats.Pushed++
}

// process finalizes at most N vertices, one per iteration. Each iteration
// pops until it finds an unfinalized vertex; an empty frontier ends the run
// with whatever has been settled.
func (r *runner) process() error {
	n := len(r.adj)
	for r.res.Stats.Finalized < n {
		item, ok, err := r.next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if item.dist > r.opts.MaxDistance {
			return nil
		}

		u := item.vertex
		r.finalized.Insert(u)
		r.res.Predecessors[u] = item.via
		r.res.Stats.Finalized++

		if u == r.opts.Target {
			return nil
		}
		r.relax(u)
	}

	return nil
}

// next pops entries until one names an unfinalized vertex. ok is false when
// the frontier runs dry.
func (r *runner) next() (nodeItem, bool, error) {
	for r.pq.Len() > 0 {
		if err := r.ctx.Err(); err != nil {
			return nodeItem{}, false, err
		}
		item := heap.Pop(&r.pq).(nodeItem)
		if r.finalized.Contains(item.vertex) {
			r.res.Stats.Stale++
			continue
		}

		return item, true, nil
	}

	return nodeItem{}, false, nil
}

// relax offers every unfinalized successor v of u the distance dist[u]+w,
// keeping it only when strictly smaller than dist[v] and within MaxDistance.
// A sum that would overflow int64 leaves v unreached.
func (r *runner) relax(u int) {
	du := r.res.Distances[u]
	for _, e := range r.adj[u] {
		v := e.To
		if r.finalized.Contains(v) {
			continue
		}
		if e.Weight > Infinity-du {
			continue
		}
		nd := du + e.Weight
		if nd > r.opts.MaxDistance || nd >= r.res.Distances[v] {
			continue
		}
		r.res.Distances[v] = nd
		r.push(nd, v, u)
	}
}

// nodeItem is a frontier entry: vertex reached at dist via the vertex via.
type nodeItem struct {
	dist   int64
	vertex int
	via    int
	seq    uint64 // insertion order, breaks distance ties
}

// nodePQ is a min-heap of nodeItem ordered by dist, then seq.
// Superseded entries stay in the heap and are skipped once their vertex is
// finalized.
type nodePQ []nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist first, older entry on ties.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type nodeItem.
func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(nodeItem)) }

// Pop removes and returns the last element; heap.Pop has already moved the
// minimum there.
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
