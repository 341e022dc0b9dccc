package graph

// PruneStats summarizes one Prune run.
type PruneStats struct {
	Rounds       int // rounds that removed at least one node
	NodesRemoved int
	EdgesRemoved int
}

// Prune repeatedly removes every non-terminal node of degree < 2, together
// with its edges, until no such node remains. Start and goal are never removed.
// The input is left untouched; the result owns fresh maps.
// Complexity: O(R·(V + E)), R = number of rounds.
func Prune[T any](g *EdgeSetGraph[T]) *EdgeSetGraph[T] {
	out, _ := PruneWithStats(g)
	return out
}

// PruneWithStats is Prune that also reports how much was removed.
func PruneWithStats[T any](g *EdgeSetGraph[T]) (*EdgeSetGraph[T], PruneStats) {
	nodes := make(map[NodeID]T, len(g.nodes))
	for id, v := range g.nodes {
		nodes[id] = v
	}
	edges := make(map[Edge]struct{}, len(g.edges))
	for e := range g.edges {
		edges[e] = struct{}{}
	}

	var stats PruneStats
	degrees := make(map[NodeID]int, len(nodes))
	deadEnds := make(map[NodeID]struct{})
	for {
		clear(degrees)
		for id := range nodes {
			degrees[id] = 0
		}
		for e := range edges {
			degrees[e.Min]++
			degrees[e.Max]++
		}

		clear(deadEnds)
		for id, d := range degrees {
			if d < 2 && id != g.start && id != g.goal {
				deadEnds[id] = struct{}{}
			}
		}
		if len(deadEnds) == 0 {
			break
		}

		for e := range edges {
			_, dMin := deadEnds[e.Min]
			_, dMax := deadEnds[e.Max]
			if dMin || dMax {
				delete(edges, e)
				stats.EdgesRemoved++
			}
		}
		for id := range deadEnds {
			delete(nodes, id)
		}
		stats.NodesRemoved += len(deadEnds)
		stats.Rounds++
	}

	com := common[T]{nodes: nodes, start: g.start, goal: g.goal}
	return &EdgeSetGraph[T]{common: com, edges: edges}, stats
}
