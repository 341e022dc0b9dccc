package graph

import (
	"fmt"
	"slices"
)

// EdgeSetGraph stores nodes plus an unordered edge set.
type EdgeSetGraph[T any] struct {
	common[T]
	edges map[Edge]struct{}
}

// NewEdgeSetGraph validates and wraps the given maps. The graph takes
// ownership of nodes and edges; a nil edge map is treated as empty.
// Returns ErrTerminalMissing, ErrSelfEdge or ErrDanglingEdge on bad input.
// Complexity: O(E).
func NewEdgeSetGraph[T any](nodes map[NodeID]T, start, goal NodeID, edges map[Edge]struct{}) (*EdgeSetGraph[T], error) {
	com, err := newCommon(nodes, start, goal)
	if err != nil {
		return nil, err
	}
	if edges == nil {
		edges = make(map[Edge]struct{})
	}
	for e := range edges {
		if e.Min == e.Max {
			return nil, fmt.Errorf("%w: %d", ErrSelfEdge, e.Min)
		}
		if !com.HasNode(e.Min) || !com.HasNode(e.Max) {
			return nil, fmt.Errorf("%w: %d-%d", ErrDanglingEdge, e.Min, e.Max)
		}
	}
	return &EdgeSetGraph[T]{common: com, edges: edges}, nil
}

// HasEdge reports whether a and b are connected.
func (g *EdgeSetGraph[T]) HasEdge(a, b NodeID) bool {
	_, ok := g.edges[NewEdge(a, b)]
	return ok
}

// EdgeCount returns |E|.
func (g *EdgeSetGraph[T]) EdgeCount() int { return len(g.edges) }

// Edges returns every edge sorted by (Min, Max).
func (g *EdgeSetGraph[T]) Edges() []Edge {
	out := make([]Edge, 0, len(g.edges))
	for e := range g.edges {
		out = append(out, e)
	}
	slices.SortFunc(out, compareEdges)
	return out
}

// Degrees counts incident edges for every node; isolated nodes map to 0.
// Complexity: O(V + E).
func (g *EdgeSetGraph[T]) Degrees() map[NodeID]int {
	deg := make(map[NodeID]int, len(g.nodes))
	for id := range g.nodes {
		deg[id] = 0
	}
	for e := range g.edges {
		deg[e.Min]++
		deg[e.Max]++
	}
	return deg
}

func compareEdges(a, b Edge) int {
	if a.Min != b.Min {
		if a.Min < b.Min {
			return -1
		}
		return 1
	}
	switch {
	case a.Max < b.Max:
		return -1
	case a.Max > b.Max:
		return 1
	}
	return 0
}
