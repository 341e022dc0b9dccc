// Package gridgraph turns a binary bitmap into a graph of rectangles.
//
// What:
//
//   - Grid wraps a rectangular pixel grid as per-cell state: Clear, Wall, or
//     Covered by a decomposition node.
//   - ExtractGraph floods clear space from the start cell, covering it with
//     disjoint rectangles and linking rectangles that share a border.
//   - ReachableFrom lists the clear cells 4-connected to a point.
//
// Why:
//
//   - A maze with long corridors has far fewer rectangles than pixels, so the
//     shortest-path search runs on a graph that is orders of magnitude smaller.
//
// Decomposition order:
//
//  1. Pop a seed from a FIFO queue (initially the start cell); skip it unless Clear.
//  2. Grow left, then right along the seed row, then up, then down while the
//     whole current row is Clear. The result is maximal for this scan order,
//     not the largest rectangle containing the seed.
//  3. Mark every cell Covered(id).
//  4. Walk the four one-cell strips around the rectangle. Each run of equal
//     state ends in: an edge (Covered by another node), a new seed at its last
//     cell (Clear), or nothing (Wall).
//  5. Record the rectangle; note it as start or goal if it contains them.
//
// Complexity:
//
//   - NewGrid, ReachableFrom: O(W×H) time and memory.
//   - ExtractGraph: O(W×H) cell visits for claiming plus O(perimeter) per rectangle.
//
// Errors:
//
//   - ErrEmptyGrid:        input grid has no rows or no columns.
//   - ErrNonRectangular:   rows have differing lengths.
//   - ErrStartNotClear:    start lies outside the grid or on a wall.
//   - ErrGoalNotClear:     goal lies outside the grid or on a wall.
//   - ErrTerminalConflict: a second rectangle claimed start or goal.
//   - ErrNoPath:           the goal was never covered by the flood from start.
package gridgraph
