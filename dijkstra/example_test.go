package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/pathfind/core"
	"github.com/katalvlaran/pathfind/dijkstra"
)

// ExampleShortestPaths runs on a four-vertex chain where the direct edge
// 0→2 loses to the detour through 1.
func ExampleShortestPaths() {
	g, _ := core.NewGraph(4)
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(1, 2, 2)
	_ = g.AddEdge(0, 2, 5)
	_ = g.AddEdge(2, 3, 1)

	res, err := dijkstra.ShortestPaths(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Distances)
	fmt.Println(res.Predecessors)

	path, _ := res.PathTo(3)
	fmt.Println(path)
	// Output:
	// [0 1 3 4]
	// [0 0 1 2]
	// [0 1 2 3]
}

// ExampleWithTarget stops once the target is settled.
func ExampleWithTarget() {
	g, _ := core.NewGraph(3)
	_ = g.AddEdge(0, 1, 4)
	_ = g.AddEdge(1, 2, 4)

	res, _ := dijkstra.ShortestPaths(g, 0, dijkstra.WithTarget(1))
	fmt.Println(res.DistanceTo(1), res.Reachable(2))
	// Output: 4 false
}
