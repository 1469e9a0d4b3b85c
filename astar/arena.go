package astar

import "github.com/katalvlaran/pathfind/gridgraph"

// noParent marks the start node, which has no predecessor.
const noParent = -1

// node is one relaxation event: the cheapest route to cell found at the
// moment it was created. parent is the handle of the node it was reached
// from.
type node struct {
	cell   int // row-major index
	g, h   int
	parent int
}

// arena owns every node created by one search. A handle is an index into
// nodes; a node's parent handle is always smaller than its own.
type arena struct {
	nodes []node
}

// alloc stores n and returns its handle.
func (a *arena) alloc(n node) int {
	a.nodes = append(a.nodes, n)

	return len(a.nodes) - 1
}

// path walks parent handles back from h and returns the cells in
// start-to-h order.
func (a *arena) path(grid *gridgraph.Grid, h int) []gridgraph.Position {
	steps := a.nodes[h].g
	out := make([]gridgraph.Position, steps+1)
	for i := steps; h != noParent; i-- {
		out[i] = grid.Position(a.nodes[h].cell)
		h = a.nodes[h].parent
	}

	return out
}

// entry is what the frontier stores: a node handle plus the keys it is
// ordered by, copied so the heap never chases handles while sifting.
type entry struct {
	f, h   int
	seq    uint64 // insertion order, last tie-breaker
	handle int
}

// frontier is a min-heap of entries ordered by f, then h, then seq.
// Stale entries are left in place and filtered when popped.
type frontier []entry

// Len returns the number of entries in the heap.
func (q frontier) Len() int { return len(q) }

// Less orders by smaller f; on equal f, prefers the entry closer to the goal
// (smaller h); on equal h, the older entry.
func (q frontier) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	if q[i].h != q[j].h {
		return q[i].h < q[j].h
	}

	return q[i].seq < q[j].seq
}

// Swap swaps two elements in the heap.
func (q frontier) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type entry.
func (q *frontier) Push(x any) { *q = append(*q, x.(entry)) }

// Pop removes and returns the last element; heap.Pop has already moved the
// minimum there.
func (q *frontier) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]

	return item
}
