// Package gridgraph models an immutable 2-D walkability grid: the map that
// the astar and bfs packages search.
//
// What:
//
//   - Grid wraps a rectangular table of cells, each Walkable or Blocked.
//   - Positions are (Row, Col) pairs; Row grows downwards, Col to the right.
//   - Movement is four-connected (Conn4, default) or eight-connected (Conn8).
//     Every move costs exactly one step. Diagonal moves under Conn8 are not
//     restricted by blocked orthogonal neighbors (no corner-cutting rule).
//   - A position is traversable iff it lies inside the grid AND its cell is
//     Walkable. Walkable(p) is the single place that rule is encoded.
//   - ToGraph converts the grid into a *core.Graph so that weighted-graph
//     algorithms (dijkstra) can run on the same map.
//
// Construction:
//
//   - NewGrid([][]int, GridOptions): values >= BlockedThreshold are Blocked.
//     With DefaultGridOptions (threshold 1), 0 is walkable and 1 is blocked.
//   - NewGridFromCells([][]Cell, Connectivity): cells given directly.
//
// Both constructors deep-copy their input; a Grid never changes afterwards
// and may be shared freely between goroutines.
//
// Complexity:
//
//   - NewGrid / NewGridFromCells: O(R×C) time and memory.
//   - InBounds, Walkable, At, Index, Position: O(1).
//   - Neighbors: O(d), d = 4 or 8.
//   - ToGraph: O(R×C×d).
//
// Errors (all wrap ErrInvalidInput):
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadThreshold: BlockedThreshold < 1.
//   - ErrBadConnectivity: unknown Connectivity value.
//   - ErrBadCell: a cell is neither Walkable nor Blocked.
//   - ErrOutOfBounds: At was asked for a position outside the grid.
package gridgraph
