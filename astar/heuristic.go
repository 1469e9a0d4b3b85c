package astar

import "github.com/katalvlaran/pathfind/gridgraph"

// Heuristic estimates the number of moves from a to b.
type Heuristic func(a, b gridgraph.Position) int

// Manhattan is the sum of absolute coordinate differences: the exact move
// count on an empty four-connected grid.
func Manhattan(a, b gridgraph.Position) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

// Chebyshev is the larger absolute coordinate difference: the exact move
// count on an empty eight-connected grid.
func Chebyshev(a, b gridgraph.Position) int {
	return max(abs(a.Row-b.Row), abs(a.Col-b.Col))
}

// Zero always returns 0, turning A* into uniform-cost search.
func Zero(_, _ gridgraph.Position) int { return 0 }

// heuristicFor returns the tightest admissible heuristic for conn.
func heuristicFor(conn gridgraph.Connectivity) Heuristic {
	if conn == gridgraph.Conn8 {
		return Chebyshev
	}

	return Manhattan
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
