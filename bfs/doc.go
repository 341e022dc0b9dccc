// Package bfs implements breadth-first search over any graph exposing sorted
// neighbor lists, such as *graph.AdjacencyGraph.
//
// Because every rectangle-to-rectangle move costs one hop, BFS depths equal
// Dijkstra distances on the same graph. The solver uses this to verify its
// results; tests use it as an oracle.
//
// Features:
//
//   - Visit order, depth and parent maps in a single BFSResult.
//   - PathTo rebuilds the start → node route from parent links.
//   - Hooks (OnEnqueue, OnVisit), neighbor filtering, depth limits.
//   - Context cancellation checked once per dequeued node.
//
// Complexity:
//
//   - Time:  O(V + E)
//   - Space: O(V)
package bfs
