// File: graph.go
// Role: vertex/edge lifecycle and read queries.
// Determinism:
//   - Edges(v) preserves insertion order; searches rely on it for stable tie-breaks.

package core

import "fmt"

// AddVertex appends a new isolated vertex and returns its ID.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.adj = append(g.adj, nil)

	return len(g.adj) - 1
}

// AddEdge appends the directed edge from→to with the given weight.
// Parallel edges and self-loops are allowed; both are harmless to
// shortest-path searches.
//
// Returns ErrVertexNotFound for an unknown endpoint and
// ErrNegativeWeight for weight < 0.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int, weight int64) error {
	if weight < 0 {
		return fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, from, to, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	n := len(g.adj)
	if from < 0 || from >= n {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, from)
	}
	if to < 0 || to >= n {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, to)
	}
	g.adj[from] = append(g.adj[from], Edge{To: to, Weight: weight})
	g.size++

	return nil
}

// Order returns the number of vertices.
func (g *Graph) Order() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj)
}

// Size returns the number of edges.
func (g *Graph) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.size
}

// HasVertex reports whether v is a valid vertex ID.
func (g *Graph) HasVertex(v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return v >= 0 && v < len(g.adj)
}

// Edges returns a copy of the outgoing edges of v in insertion order.
// Returns ErrVertexNotFound if v is out of range.
// Complexity: O(deg(v)).
func (g *Graph) Edges(v int) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if v < 0 || v >= len(g.adj) {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, v)
	}
	out := make([]Edge, len(g.adj[v]))
	copy(out, g.adj[v])

	return out, nil
}

// Snapshot returns the adjacency table as it is now.
//
// The outer slice is freshly allocated, the inner slices are shared with g.
// Because edges are only ever appended, the returned rows stay valid and
// unchanged even if g grows later; callers must treat them as read-only.
// Searches use Snapshot to walk the graph without taking the lock per vertex.
// Complexity: O(V).
func (g *Graph) Snapshot() [][]Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([][]Edge, len(g.adj))
	for v, row := range g.adj {
		out[v] = row[:len(row):len(row)]
	}

	return out
}

// Clone returns a deep copy of g.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{adj: make([][]Edge, len(g.adj)), size: g.size}
	for v, row := range g.adj {
		if len(row) == 0 {
			continue
		}
		clone.adj[v] = make([]Edge, len(row))
		copy(clone.adj[v], row)
	}

	return clone
}
