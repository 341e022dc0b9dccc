package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/rectmaze/builder"
	"github.com/katalvlaran/rectmaze/gridgraph"
)

// ExampleExtractGraph decomposes a T-shaped maze and prints its rectangles.
func ExampleExtractGraph() {
	m := builder.MustBuild(builder.TJunction())
	g, _ := gridgraph.NewGrid(m.Cells)
	es, _ := gridgraph.ExtractGraph(g, m.Start, m.Goal)

	for _, id := range es.NodeIDs() {
		r, _ := es.Node(id)
		fmt.Println(id, r)
	}
	fmt.Println(es.Edges())
	// Output:
	// 1 [0,0)-(3,1)
	// 2 [2,1)-(3,5)
	// 3 [3,2)-(7,3)
	// 4 [3,4)-(6,5)
	// 5 [5,5)-(6,7)
	// [{1 2} {2 3} {2 4} {4 5}]
}
