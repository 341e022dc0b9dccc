// Package dijkstra computes hop distances over a graph.AdjacencyGraph.
//
// Every edge weighs 1, so the distance of a node is the minimum number of
// rectangle-to-rectangle moves from start. The result is a
// graph.DistanceGraph carrying the distance of every node and one
// predecessor per reachable node, from which PathTo rebuilds the route.
//
// Queue:
//
//   - All nodes are queued up front in an indexed binary heap keyed by
//     (distance, id). Relaxation lowers a key in place with heap.Fix instead
//     of pushing duplicates, so the heap never holds more than V items.
//   - A node popped with key Infinite ends the search: every node left in the
//     queue is disconnected from start and keeps distance Infinite. No
//     distance is ever derived from an unreached node.
//
// Options:
//
//   - WithMaxDistance(n): stop once the closest queued node is farther than n.
//   - WithOnSettle(fn):  observe each node as its distance becomes final.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V)
//
// Errors:
//
//   - ErrNilGraph        the graph pointer is nil.
//   - ErrBadMaxDistance  (panic) WithMaxDistance was given a negative value.
package dijkstra
