// Package pipeline wires the maze solver stages together.
//
// A Solver takes a bitmap (image.Image, [][]uint8 or a prepared
// gridgraph.Grid) and runs:
//
//  1. Terminal resolution: explicit cells from the Request, or AutoTerminals.
//  2. gridgraph.ExtractGraph: rectangle decomposition from start.
//  3. graph.Prune: dead-end removal to a fixed point (unless disabled).
//  4. graph.ToAdjacency and dijkstra.Dijkstra: hop distances from start.
//  5. PathTo(goal) and, when enabled, Verify.
//
// Every Result carries a fresh RunID (UUID v4) which also appears in logs and
// in ErrNoPath messages, so batch output can be correlated.
//
// Errors:
//
//   - ErrNoPath      goal not connected to start; wraps the stage cause.
//   - ErrNoTerminal  automatic terminal selection found no clear border cell.
//   - ErrVerify      a self-check failed (overlap, bad edge, BFS mismatch).
//   - gridgraph and dijkstra sentinels pass through wrapped.
package pipeline
