package graph

import "fmt"

// DistanceGraph is an adjacency graph annotated with the distance of every
// node from start and the predecessor on one shortest path.
type DistanceGraph[T any] struct {
	*AdjacencyGraph[T]
	dist map[NodeID]int
	prev map[NodeID]NodeID
}

// NewDistanceGraph wraps adj with distances and predecessors. Nodes absent
// from dist are treated as Infinite. It consumes adj.
func NewDistanceGraph[T any](adj *AdjacencyGraph[T], dist map[NodeID]int, prev map[NodeID]NodeID) *DistanceGraph[T] {
	if dist == nil {
		dist = make(map[NodeID]int)
	}
	if prev == nil {
		prev = make(map[NodeID]NodeID)
	}
	return &DistanceGraph[T]{AdjacencyGraph: adj, dist: dist, prev: prev}
}

// Distance returns the distance of id from start, or Infinite.
func (g *DistanceGraph[T]) Distance(id NodeID) int {
	d, ok := g.dist[id]
	if !ok {
		return Infinite
	}
	return d
}

// GoalDistance returns Distance(Goal()).
func (g *DistanceGraph[T]) GoalDistance() int {
	return g.Distance(g.goal)
}

// Reachable reports whether id has a finite distance.
func (g *DistanceGraph[T]) Reachable(id NodeID) bool {
	return g.Distance(id) != Infinite
}

// Predecessor returns the node preceding id on its shortest path.
// The start node and unreachable nodes have no predecessor.
func (g *DistanceGraph[T]) Predecessor(id NodeID) (NodeID, bool) {
	p, ok := g.prev[id]
	return p, ok
}

// PathTo walks predecessors back from id and returns the node sequence
// start → … → id. Returns ErrNoPath when id is unknown or unreachable.
// Complexity: O(path length).
func (g *DistanceGraph[T]) PathTo(id NodeID) ([]NodeID, error) {
	if !g.HasNode(id) || !g.Reachable(id) {
		return nil, fmt.Errorf("%w: node %d", ErrNoPath, id)
	}
	path := []NodeID{id}
	for cur := id; cur != g.start; {
		p, ok := g.prev[cur]
		if !ok || len(path) > g.Len() {
			// broken chain: the walk ended before start
			return nil, fmt.Errorf("%w: predecessor chain of %d stops at %d", ErrNoPath, id, cur)
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

// Path returns PathTo(Goal()).
func (g *DistanceGraph[T]) Path() ([]NodeID, error) {
	return g.PathTo(g.goal)
}
