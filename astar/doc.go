// Package astar finds shortest step paths on a gridgraph.Grid with the A*
// algorithm.
//
// Overview:
//
//   - Best-first search ordered by f = g + h, where g is the number of moves
//     from the start and h is an admissible, consistent estimate of the moves
//     left: Manhattan distance on four-connected grids, Chebyshev distance on
//     eight-connected ones. Every move costs one step.
//   - The frontier is a binary min-heap on f, ties broken by smaller h and
//     then by insertion order. Tie-breaking never changes the path length.
//   - A closed set (sparse set over cell indices) holds finalized cells; they
//     are never expanded twice.
//   - A best-known table maps each cell to the cheapest node discovered for
//     it so far.
//
// Lazy deletion:
//
//	When a strictly cheaper g is found for a cell, a new node is pushed and
//	recorded as best-known; the superseded entry stays in the heap. At pop
//	time an entry whose g is worse than the best-known g for its cell, or
//	whose cell is already closed, is discarded and counted in Stats.Stale.
//	The heap never needs a decrease-key operation.
//
// Node arena:
//
//	Nodes live in a per-call slice and refer to their predecessor by integer
//	handle. Handles always point at earlier nodes, so predecessor chains are
//	acyclic and end at the start node. The arena, heap, closed set and
//	best-known table all belong to one call and are dropped when it returns,
//	whatever the outcome.
//
// Results:
//
//   - FindPath returns the path from start to goal, both inclusive, or an
//     empty path when the goal cannot be reached. Unreachability is a
//     result, not an error.
//   - Search returns the same path plus its cost and expansion statistics.
//
// Errors (all but ErrExpansionLimit and context errors wrap ErrInvalidInput):
//
//   - ErrNilGrid:          grid pointer is nil.
//   - ErrStartOutOfBounds: start outside the grid.
//   - ErrGoalOutOfBounds:  goal outside the grid.
//   - ErrBlockedStart:     start cell is Blocked. A blocked goal is not an
//     error; it is simply unreachable.
//   - ErrOptionViolation:  invalid option value.
//   - ErrExpansionLimit:   WithMaxExpansions budget exhausted.
//
// Complexity: O(N log N) time and O(N) memory for N = Rows×Cols in the
// worst case; far less when the heuristic is informative.
//
// Searches hold no package-level state and may run concurrently on shared
// grids.
package astar
