// Package rectmaze solves black-and-white bitmap mazes by decomposing free
// space into rectangles and searching the much smaller rectangle graph.
//
// What is rectmaze?
//
//	A small pipeline of focused packages:
//		• geom      - integer points and half-open rectangles
//		• gridgraph - bitmap grid and the rectangle decomposition
//		• graph     - edge-set, adjacency and distance graphs; dead-end pruning
//		• dijkstra  - unit-weight shortest paths with an indexed heap
//		• bfs       - breadth-first search used as an independent check
//		• spatial   - R-tree over rectangles for point lookup and overlap checks
//		• render    - PNG overlay and GeoJSON export
//		• pipeline  - Solver wiring the stages, terminals, verification
//		• report, metrics, config, logger - CLI plumbing
//		• builder   - deterministic maze fixtures for tests and benchmarks
//
// Flow:
//
//	bitmap → gridgraph.Grid → ExtractGraph → graph.Prune → ToAdjacency
//	       → dijkstra.Dijkstra → DistanceGraph.Path → render / report
//
// The command in cmd/rectmaze runs the pipeline over a batch of PNG files.
package rectmaze
