package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/rectmaze/builder"
	"github.com/katalvlaran/rectmaze/dijkstra"
	"github.com/katalvlaran/rectmaze/graph"
	"github.com/katalvlaran/rectmaze/gridgraph"
)

// ExampleDijkstra solves a T-shaped maze after pruning its dead-end branch.
func ExampleDijkstra() {
	m := builder.MustBuild(builder.TJunction())
	grid, _ := gridgraph.NewGrid(m.Cells)
	es, _ := gridgraph.ExtractGraph(grid, m.Start, m.Goal)

	dg, err := dijkstra.Dijkstra(graph.ToAdjacency(graph.Prune(es)))
	if err != nil {
		fmt.Println(err)
		return
	}
	path, _ := dg.Path()
	fmt.Println("distance:", dg.GoalDistance())
	for _, id := range path {
		r, _ := dg.Node(id)
		fmt.Println(id, r)
	}
	// Output:
	// distance: 2
	// 1 [0,0)-(3,1)
	// 2 [2,1)-(3,5)
	// 3 [3,2)-(7,3)
}
