// File: types.go
// Role: Graph and Edge declarations, sentinel errors, constructors.
// Concurrency:
//   - mu guards adj and size; every exported method takes it.

package core

import (
	"errors"
	"fmt"
	"sync"
)

// ErrInvalidInput is the umbrella error for malformed graph input.
// Every other sentinel in this package wraps it.
var ErrInvalidInput = errors.New("core: invalid input")

// Sentinel errors for core graph operations.
var (
	// ErrBadOrder indicates a negative vertex count was requested.
	ErrBadOrder = fmt.Errorf("%w: vertex count must be non-negative", ErrInvalidInput)

	// ErrVertexNotFound indicates an operation referenced a vertex outside 0..N-1.
	ErrVertexNotFound = fmt.Errorf("%w: vertex not found", ErrInvalidInput)

	// ErrNegativeWeight indicates an edge weight below zero.
	ErrNegativeWeight = fmt.Errorf("%w: negative edge weight", ErrInvalidInput)
)

// Edge is one outgoing arc of a vertex.
type Edge struct {
	// To is the destination vertex ID.
	To int

	// Weight is the non-negative traversal cost.
	Weight int64
}

// Graph is a weighted directed graph over dense integer vertex IDs.
//
// adj[v] holds the outgoing edges of v in insertion order; size counts
// all edges. The zero value is an empty, usable graph.
type Graph struct {
	mu   sync.RWMutex
	adj  [][]Edge
	size int
}

// NewGraph returns a Graph with n vertices and no edges.
// Returns ErrBadOrder if n < 0.
// Complexity: O(n).
func NewGraph(n int) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadOrder, n)
	}

	return &Graph{adj: make([][]Edge, n)}, nil
}

// FromAdjacency builds a Graph whose vertex v has the outgoing edges adj[v].
// The table is deep-copied; every edge is validated exactly as AddEdge does.
// Complexity: O(V + E).
func FromAdjacency(adj [][]Edge) (*Graph, error) {
	g, _ := NewGraph(len(adj))
	var from int
	var e Edge
	for from = range adj {
		for _, e = range adj[from] {
			if err := g.AddEdge(from, e.To, e.Weight); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}
