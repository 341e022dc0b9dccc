package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/rectmaze/geom"
	"github.com/katalvlaran/rectmaze/graph"
)

var (
	stepRight = geom.Pt(1, 0)
	stepDown  = geom.Pt(0, 1)
)

// extractor holds the mutable state of one ExtractGraph run.
type extractor struct {
	grid  *Grid
	opts  extractOptions
	queue []geom.Point // FIFO of seeds; head advances, tail appends
	head  int

	nodes map[graph.NodeID]geom.Rect
	edges map[graph.Edge]struct{}
	next  graph.NodeID

	start, goal     geom.Point
	startID, goalID graph.NodeID
}

// ExtractGraph decomposes the clear space reachable from start into disjoint
// rectangles and returns them as an edge-set graph whose node payload is the
// rectangle. Node ids start at 1 and follow discovery order.
//
// The grid is consumed: every claimed cell is left Covered.
//
// Returns ErrStartNotClear or ErrGoalNotClear if a terminal is out of bounds or
// not Clear, ErrTerminalConflict if two rectangles claim a terminal, and
// ErrNoPath if the goal was never covered.
func ExtractGraph(g *Grid, start, goal geom.Point, opts ...ExtractOption) (*graph.EdgeSetGraph[geom.Rect], error) {
	if !g.IsClear(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartNotClear, start)
	}
	if !g.IsClear(goal) {
		return nil, fmt.Errorf("%w: %v", ErrGoalNotClear, goal)
	}
	o := defaultExtractOptions()
	for _, opt := range opts {
		opt(&o)
	}

	x := &extractor{
		grid:  g,
		opts:  o,
		nodes: make(map[graph.NodeID]geom.Rect),
		edges: make(map[graph.Edge]struct{}),
		next:  1,
		start: start,
		goal:  goal,
	}

	x.push(start)
	if err := x.drain(); err != nil {
		return nil, err
	}
	if o.coverAll {
		for i := range g.cells {
			if g.cells[i] != clearState {
				continue
			}
			x.push(g.Coordinate(i))
			if err := x.drain(); err != nil {
				return nil, err
			}
		}
	}

	if x.goalID == graph.NoNode {
		return nil, fmt.Errorf("%w: start %v, goal %v", ErrNoPath, start, goal)
	}

	return graph.NewEdgeSetGraph(x.nodes, x.startID, x.goalID, x.edges)
}

func (x *extractor) push(p geom.Point) {
	x.queue = append(x.queue, p)
}

// drain claims a rectangle for every pending seed that is still Clear.
func (x *extractor) drain() error {
	for x.head < len(x.queue) {
		seed := x.queue[x.head]
		x.head++
		if x.grid.Get(seed) != clearState {
			continue
		}

		id := x.next
		x.next++

		r := x.grow(seed)
		x.claim(id, r)
		x.scanBoundary(id, r)
		x.nodes[id] = r
		x.opts.onClaim(id, r)

		if r.Contains(x.start) {
			if x.startID != graph.NoNode {
				return fmt.Errorf("%w: start %v in nodes %d and %d", ErrTerminalConflict, x.start, x.startID, id)
			}
			x.startID = id
		}
		if r.Contains(x.goal) {
			if x.goalID != graph.NoNode {
				return fmt.Errorf("%w: goal %v in nodes %d and %d", ErrTerminalConflict, x.goal, x.goalID, id)
			}
			x.goalID = id
		}
	}
	// release the consumed prefix
	x.queue = x.queue[:0]
	x.head = 0
	return nil
}

// grow extends a rectangle from seed: x-min, x-max along the seed row, then
// y-min and y-max while every cell of the candidate row is Clear.
func (x *extractor) grow(seed geom.Point) geom.Rect {
	g := x.grid
	lo := seed
	hi := seed.Add(geom.Pt(1, 1))

	for g.IsClear(geom.Pt(lo.X-1, seed.Y)) {
		lo.X--
	}
	for g.IsClear(geom.Pt(hi.X, seed.Y)) {
		hi.X++
	}
	for x.rowClear(lo.Y-1, lo.X, hi.X) {
		lo.Y--
	}
	for x.rowClear(hi.Y, lo.X, hi.X) {
		hi.Y++
	}

	return geom.NewRectUnchecked(lo, hi)
}

// rowClear reports whether cells [x0, x1) of row y are all in bounds and Clear.
func (x *extractor) rowClear(y, x0, x1 int) bool {
	if !x.grid.InBounds(geom.Pt(x0, y)) {
		return false
	}
	for cx := x0; cx < x1; cx++ {
		if !x.grid.IsClear(geom.Pt(cx, y)) {
			return false
		}
	}
	return true
}

func (x *extractor) claim(id graph.NodeID, r geom.Rect) {
	covered := CoveredBy(id)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for cx := r.Min.X; cx < r.Max.X; cx++ {
			x.grid.Set(geom.Pt(cx, y), covered)
		}
	}
}

// scanBoundary walks the strips above, below, left of and right of r.
func (x *extractor) scanBoundary(id graph.NodeID, r geom.Rect) {
	x.scanStrip(id, geom.Pt(r.Min.X, r.Min.Y-1), stepRight, r.Width())
	x.scanStrip(id, geom.Pt(r.Min.X, r.Max.Y), stepRight, r.Width())
	x.scanStrip(id, geom.Pt(r.Min.X-1, r.Min.Y), stepDown, r.Height())
	x.scanStrip(id, geom.Pt(r.Max.X, r.Min.Y), stepDown, r.Height())
}

// scanStrip visits count cells from `from` along step, finalizing each run of
// equal state when it ends and once more for the trailing run. The strip stops
// at the first out-of-bounds cell.
func (x *extractor) scanStrip(id graph.NodeID, from, step geom.Point, count int) {
	pos := from
	prev := wallState
	for i := 0; i < count; i++ {
		if !x.grid.InBounds(pos) {
			break
		}
		s := x.grid.Get(pos)
		if s != prev {
			x.finishRun(id, prev, pos.Sub(step))
			prev = s
		}
		pos = pos.Add(step)
	}
	x.finishRun(id, prev, pos.Sub(step))
}

// finishRun acts on a run of state s whose last cell is last.
func (x *extractor) finishRun(id graph.NodeID, s CellState, last geom.Point) {
	switch s.Kind {
	case Covered:
		x.edges[graph.NewEdge(id, s.Node)] = struct{}{}
	case Clear:
		x.push(last)
	case Wall:
	}
}
