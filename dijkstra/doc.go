// Package dijkstra computes single-source shortest paths on a core.Graph:
// a directed graph over integer vertices 0..N-1 with non-negative int64
// edge weights.
//
// Overview:
//
//   - ShortestPaths returns, for every vertex, the minimum total weight from
//     the source (Infinity when unreachable) and the predecessor on one
//     shortest path (NoVertex when unreachable; the source is its own
//     predecessor).
//   - The frontier is a binary min-heap with lazy deletion: an improved
//     distance pushes a fresh entry and the superseded one is discarded when
//     it surfaces for an already finalized vertex.
//   - Result.PathTo rebuilds the vertex sequence source…v from the
//     predecessor table.
//
// Options:
//
//   - WithTarget(t):      stop as soon as t is finalized.
//   - WithMaxDistance(d): never finalize a vertex farther than d.
//   - WithContext(ctx):   cancellation, checked once per pop.
//   - WithLogger(l), WithMetrics(m): diagnostics sinks; both off by default.
//
// Complexity:
//
//   - Time:  O((V + E) log E). Each edge relaxation may push one entry.
//   - Space: O(V + E).
//
// Errors:
//
//   - ErrNilGraph, ErrVertexNotFound, ErrNegativeWeight, ErrOptionViolation,
//     all matching errors.Is(err, ErrInvalidInput).
//   - ErrUnreachable from Result.PathTo.
//   - ctx.Err() on cancellation.
//
// Thread safety:
//
//   - ShortestPaths snapshots the adjacency under the graph's read lock and
//     keeps all working state local, so concurrent calls are safe.
package dijkstra
