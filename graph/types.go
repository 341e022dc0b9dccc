package graph

import (
	"errors"
	"math"
	"slices"
)

// Sentinel errors for graph construction and queries.
var (
	// ErrTerminalMissing indicates start or goal is not among the nodes.
	ErrTerminalMissing = errors.New("graph: start or goal node missing")
	// ErrDanglingEdge indicates an edge endpoint is not among the nodes.
	ErrDanglingEdge = errors.New("graph: edge references unknown node")
	// ErrSelfEdge indicates an edge from a node to itself.
	ErrSelfEdge = errors.New("graph: self-edge not allowed")
	// ErrAsymmetric indicates v ∈ adj[u] without u ∈ adj[v].
	ErrAsymmetric = errors.New("graph: adjacency is not symmetric")
	// ErrNoPath indicates the requested node is not reachable from start.
	ErrNoPath = errors.New("graph: no path from start")
)

// NodeID identifies a node. Valid ids are positive; NoNode is the zero value.
type NodeID uint32

// NoNode is the absent node id.
const NoNode NodeID = 0

// Infinite is the distance of a node that was never reached.
const Infinite = math.MaxInt

// Edge is an unordered pair of node ids stored as (Min, Max).
type Edge struct {
	Min, Max NodeID
}

// NewEdge returns the canonical edge between a and b, so NewEdge(a, b) == NewEdge(b, a).
func NewEdge(a, b NodeID) Edge {
	if b < a {
		a, b = b, a
	}
	return Edge{Min: a, Max: b}
}

// Other returns the endpoint of e that is not id.
func (e Edge) Other(id NodeID) NodeID {
	if e.Min == id {
		return e.Max
	}
	return e.Min
}

// Touches reports whether id is an endpoint of e.
func (e Edge) Touches(id NodeID) bool {
	return e.Min == id || e.Max == id
}

// Graph is the read-only view shared by all three representations.
type Graph[T any] interface {
	// Node returns the payload stored under id.
	Node(id NodeID) (T, bool)
	// Start returns the start node id.
	Start() NodeID
	// Goal returns the goal node id.
	Goal() NodeID
	// NodeIDs returns all node ids in ascending order.
	NodeIDs() []NodeID
	// Len returns the number of nodes.
	Len() int
}

// common carries the node payloads and terminals of every representation.
type common[T any] struct {
	nodes map[NodeID]T
	start NodeID
	goal  NodeID
}

func newCommon[T any](nodes map[NodeID]T, start, goal NodeID) (common[T], error) {
	if _, ok := nodes[start]; !ok || start == NoNode {
		return common[T]{}, ErrTerminalMissing
	}
	if _, ok := nodes[goal]; !ok || goal == NoNode {
		return common[T]{}, ErrTerminalMissing
	}
	return common[T]{nodes: nodes, start: start, goal: goal}, nil
}

// Node returns the payload of id.
func (c *common[T]) Node(id NodeID) (T, bool) {
	v, ok := c.nodes[id]
	return v, ok
}

// HasNode reports whether id is a node.
func (c *common[T]) HasNode(id NodeID) bool {
	_, ok := c.nodes[id]
	return ok
}

// Start returns the start node id.
func (c *common[T]) Start() NodeID { return c.start }

// Goal returns the goal node id.
func (c *common[T]) Goal() NodeID { return c.goal }

// Len returns the node count.
func (c *common[T]) Len() int { return len(c.nodes) }

// IsTerminal reports whether id is the start or the goal.
func (c *common[T]) IsTerminal(id NodeID) bool {
	return id == c.start || id == c.goal
}

// NodeIDs returns all node ids sorted ascending.
func (c *common[T]) NodeIDs() []NodeID {
	ids := make([]NodeID, 0, len(c.nodes))
	for id := range c.nodes {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Nodes returns the payload map. Callers must treat it as read-only.
func (c *common[T]) Nodes() map[NodeID]T { return c.nodes }
