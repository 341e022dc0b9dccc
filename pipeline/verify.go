package pipeline

import (
	"context"
	"fmt"

	"github.com/katalvlaran/rectmaze/bfs"
	"github.com/katalvlaran/rectmaze/graph"
	"github.com/katalvlaran/rectmaze/spatial"
)

// Verify re-checks a solved result with independent tools:
//
//  1. The R-tree index finds no two overlapping rectangles.
//  2. Every edge joins rectangles that share a border.
//  3. Start and goal cells map back to the graph's terminal nodes.
//  4. A breadth-first search reaches the goal in exactly Distance() hops.
//  5. Consecutive path rectangles share a border.
//
// All failures wrap ErrVerify.
func Verify(ctx context.Context, res *Result) error {
	if res == nil || res.Graph == nil {
		return fmt.Errorf("%w: nothing to verify", ErrVerify)
	}
	dg := res.Graph

	ix, err := spatial.NewIndex(dg.Nodes())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrVerify, err)
	}
	if err := ix.CheckDisjoint(); err != nil {
		return fmt.Errorf("%w: %w", ErrVerify, err)
	}

	for _, u := range dg.NodeIDs() {
		ru, _ := dg.Node(u)
		for _, v := range dg.Neighbors(u) {
			if v < u {
				continue
			}
			rv, _ := dg.Node(v)
			if !spatial.Adjacent(ru, rv) {
				return fmt.Errorf("%w: edge %d-%d joins %v and %v", ErrVerify, u, v, ru, rv)
			}
		}
	}

	if id, ok := ix.NodeAt(res.Start); !ok || id != dg.Start() {
		return fmt.Errorf("%w: start %v maps to node %d, graph says %d", ErrVerify, res.Start, id, dg.Start())
	}
	if id, ok := ix.NodeAt(res.Goal); !ok || id != dg.Goal() {
		return fmt.Errorf("%w: goal %v maps to node %d, graph says %d", ErrVerify, res.Goal, id, dg.Goal())
	}

	walk, err := bfs.BFS(dg, dg.Start(), bfs.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrVerify, err)
	}
	hops, ok := walk.Depth[dg.Goal()]
	if !ok {
		hops = graph.Infinite
	}
	if hops != dg.GoalDistance() && dg.GoalDistance() != graph.Infinite {
		return fmt.Errorf("%w: bfs reaches goal in %d hops, dijkstra in %d", ErrVerify, hops, dg.GoalDistance())
	}

	for i := 1; i < len(res.Path); i++ {
		a, _ := dg.Node(res.Path[i-1])
		b, _ := dg.Node(res.Path[i])
		if !spatial.Adjacent(a, b) {
			return fmt.Errorf("%w: path step %d→%d is not adjacent", ErrVerify, res.Path[i-1], res.Path[i])
		}
	}
	return nil
}
