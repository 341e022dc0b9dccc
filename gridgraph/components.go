package gridgraph

import "github.com/katalvlaran/rectmaze/geom"

// neighborOffsets are the 4-connected steps: N, E, S, W.
var neighborOffsets = [4]geom.Point{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}}

// ReachableFrom returns every Clear cell 4-connected to p through Clear
// cells, including p itself, in BFS order. Returns nil if p is not Clear.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) ReachableFrom(p geom.Point) []geom.Point {
	if !g.IsClear(p) {
		return nil
	}
	seen := make([]bool, len(g.cells))
	i0 := g.index(p.X, p.Y)
	seen[i0] = true
	queue := []int{i0}

	for qi := 0; qi < len(queue); qi++ {
		u := g.Coordinate(queue[qi])
		for _, d := range neighborOffsets {
			v := u.Add(d)
			if !g.IsClear(v) {
				continue
			}
			vi := g.index(v.X, v.Y)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}

	out := make([]geom.Point, len(queue))
	for i, idx := range queue {
		out[i] = g.Coordinate(idx)
	}
	return out
}
