// Package core provides the index-based weighted directed Graph consumed by
// the shortest-path packages of pathfind.
//
// The Graph G = (V,E) is deliberately small:
//
//   - Vertices are dense integer IDs 0..N-1, allocated in order.
//   - Every vertex owns an ordered slice of outgoing Edge{To, Weight}.
//   - Weights are non-negative int64 values; AddEdge rejects anything else.
//   - Edges are append-only. There is no removal API, so a Graph handed to a
//     search never changes shape underneath it.
//   - A single sync.RWMutex guards the adjacency table, so a Graph may be
//     built from several goroutines and searched from several more.
//
// Core Methods:
//
//	NewGraph(n int) (*Graph, error)              // O(n)
//	FromAdjacency(adj [][]Edge) (*Graph, error)  // O(V+E)
//	AddVertex() int                              // O(1) amortized
//	AddEdge(from, to int, weight int64) error    // O(1) amortized
//	Edges(v int) ([]Edge, error)                 // O(deg(v)) copy
//	Order() int / Size() int / HasVertex(v int) bool
//	Clone() *Graph                               // O(V+E)
//
// Errors:
//
//	ErrInvalidInput   - umbrella for every boundary violation below.
//	ErrBadOrder       - negative vertex count.
//	ErrVertexNotFound - vertex ID outside 0..N-1.
//	ErrNegativeWeight - negative edge weight.
package core
