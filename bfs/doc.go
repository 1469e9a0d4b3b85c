// Package bfs computes breadth-first step distances over a gridgraph.Grid.
//
// Distances(grid, start) labels every reachable walkable cell with its
// minimum number of moves from start under the grid's connectivity, records
// a parent link per cell for path reconstruction, and returns the visit
// order. Because every move costs one step, these depths are exact shortest
// path lengths, which makes this package the reference the astar tests
// check against.
//
// Options:
//
//   - WithContext(ctx): cancellation, checked once per dequeued cell.
//   - WithMaxDepth(d):  stop expanding beyond depth d (d > 0; 0 = no limit).
//   - WithOnVisit(fn):  called for every visited cell; an error aborts.
//
// Errors:
//
//   - ErrNilGrid, ErrStartOutOfBounds, ErrBlockedStart: invalid input.
//   - ErrOptionViolation: invalid option value.
//   - ErrUnreached: PathTo was asked for a cell BFS never reached.
//
// Complexity: O(R×C×d) time, O(R×C) memory.
package bfs
