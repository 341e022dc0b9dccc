// Package graph holds the three progressively richer views of a decomposed
// maze and the one-way conversions between them.
//
// What:
//
//   - EdgeSetGraph[T]:  nodes, designated start/goal, and a set of unordered edges.
//   - AdjacencyGraph[T]: same nodes/start/goal plus a symmetric neighbor set per node.
//   - DistanceGraph[T]:  an adjacency graph annotated with per-node distance from
//     start and a predecessor map for path reconstruction.
//
// Flow:
//
//	EdgeSetGraph ──Prune──▶ EdgeSetGraph ──ToAdjacency──▶ AdjacencyGraph ──dijkstra──▶ DistanceGraph
//
// Ownership:
//
//   - Every conversion consumes its input. Prune returns a fresh graph and leaves
//     its input intact; ToAdjacency reuses the input's node map, so the input must
//     not be used afterwards.
//
// Invariants:
//
//   - Start and goal are always present in Nodes.
//   - Edges are stored canonically as (min, max); self-edges are rejected.
//   - Adjacency is symmetric: v ∈ Adj[u] ⇔ u ∈ Adj[v]; every node has an entry.
//
// Complexity:
//
//   - ToAdjacency: O(V + E).
//   - Prune:       O(R·(V + E)) where R is the number of pruning rounds.
//
// Errors:
//
//   - ErrTerminalMissing: start or goal is not a node of the graph.
//   - ErrDanglingEdge:    an edge references a node that does not exist.
//   - ErrSelfEdge:        an edge connects a node to itself.
//   - ErrAsymmetric:      an adjacency map is not symmetric.
//   - ErrNoPath:          a node is unreachable from start.
package graph
