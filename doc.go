// Package pathfind is a small shortest-path toolkit: A* over 2-D
// walkability grids and Dijkstra over weighted directed graphs.
//
// 🚀 What is inside?
//
//	• gridgraph/: Grid, Position and Cell; 4- or 8-connected moves; ToGraph
//	• astar/    : FindPath and Search on a Grid (Manhattan / Chebyshev)
//	• core/     : Graph over dense int vertices with non-negative int64 weights
//	• dijkstra/ : ShortestPaths: distances and predecessors from one source
//	• bfs/      : unit-step distance field on a Grid
//	• log/      : leveled Logger interface backed by kataras/golog
//	• metrics/  : Prometheus collectors for per-search statistics
//
// ✨ Conventions
//
//   - Every search is a plain function call. All working state is local, so
//     concurrent searches over shared read-only inputs are safe.
//   - Unreachable is a result, not an error: an empty path or Infinity.
//   - Malformed input fails fast with a package sentinel that matches
//     errors.Is(err, pkg.ErrInvalidInput).
//   - Behavior is tuned with functional options (WithContext, WithLogger,
//     WithMetrics, ...). Nothing is logged or recorded unless asked.
//
// Quick start:
//
//	gg, _ := gridgraph.NewGrid([][]int{
//		{0, 0, 0},
//		{1, 1, 0},
//		{0, 0, 0},
//	}, gridgraph.DefaultGridOptions())
//	path, err := astar.FindPath(gg, gridgraph.Position{}, gridgraph.Position{Row: 2, Col: 0})
//
//	g, _ := core.NewGraph(4)
//	_ = g.AddEdge(0, 1, 1)
//	res, err := dijkstra.ShortestPaths(g, 0)
//
// Install:
//
//	go get github.com/katalvlaran/pathfind
package pathfind
