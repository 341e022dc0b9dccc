package graph

import (
	"fmt"
	"slices"
)

// AdjacencyGraph stores a symmetric neighbor set per node.
type AdjacencyGraph[T any] struct {
	common[T]
	adj map[NodeID]map[NodeID]struct{}
}

// NewAdjacencyGraph validates and wraps the given maps. Nodes missing from adj
// receive an empty neighbor set. Returns ErrTerminalMissing, ErrDanglingEdge,
// ErrSelfEdge or ErrAsymmetric on bad input.
// Complexity: O(V + E).
func NewAdjacencyGraph[T any](nodes map[NodeID]T, start, goal NodeID, adj map[NodeID]map[NodeID]struct{}) (*AdjacencyGraph[T], error) {
	com, err := newCommon(nodes, start, goal)
	if err != nil {
		return nil, err
	}
	if adj == nil {
		adj = make(map[NodeID]map[NodeID]struct{}, len(nodes))
	}
	for u, nbrs := range adj {
		if !com.HasNode(u) {
			return nil, fmt.Errorf("%w: %d", ErrDanglingEdge, u)
		}
		for v := range nbrs {
			if u == v {
				return nil, fmt.Errorf("%w: %d", ErrSelfEdge, u)
			}
			if !com.HasNode(v) {
				return nil, fmt.Errorf("%w: %d-%d", ErrDanglingEdge, u, v)
			}
			if _, ok := adj[v][u]; !ok {
				return nil, fmt.Errorf("%w: %d-%d", ErrAsymmetric, u, v)
			}
		}
	}
	for id := range nodes {
		if _, ok := adj[id]; !ok {
			adj[id] = make(map[NodeID]struct{})
		}
	}
	return &AdjacencyGraph[T]{common: com, adj: adj}, nil
}

// ToAdjacency converts an edge-set graph by inserting both directions of every
// edge. It consumes es: the node map is shared with the result.
// Complexity: O(V + E).
func ToAdjacency[T any](es *EdgeSetGraph[T]) *AdjacencyGraph[T] {
	adj := make(map[NodeID]map[NodeID]struct{}, len(es.nodes))
	for id := range es.nodes {
		adj[id] = make(map[NodeID]struct{})
	}
	for e := range es.edges {
		adj[e.Min][e.Max] = struct{}{}
		adj[e.Max][e.Min] = struct{}{}
	}
	return &AdjacencyGraph[T]{common: es.common, adj: adj}
}

// Neighbors returns the neighbors of id sorted ascending; nil for unknown ids.
func (g *AdjacencyGraph[T]) Neighbors(id NodeID) []NodeID {
	set, ok := g.adj[id]
	if !ok {
		return nil
	}
	out := make([]NodeID, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}

// Degree returns the number of neighbors of id.
func (g *AdjacencyGraph[T]) Degree(id NodeID) int { return len(g.adj[id]) }

// HasEdge reports whether v is a neighbor of u.
func (g *AdjacencyGraph[T]) HasEdge(u, v NodeID) bool {
	_, ok := g.adj[u][v]
	return ok
}

// EdgeCount returns the number of undirected edges.
func (g *AdjacencyGraph[T]) EdgeCount() int {
	n := 0
	for _, nbrs := range g.adj {
		n += len(nbrs)
	}
	return n / 2
}
