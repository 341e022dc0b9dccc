package pipeline

import (
	"fmt"

	"github.com/katalvlaran/rectmaze/geom"
	"github.com/katalvlaran/rectmaze/gridgraph"
)

// AutoTerminals picks a start and goal on the border of g. Start is the first
// clear cell of the top row scanning left to right. Goal is the last clear
// cell of the bottom row, or failing that the lowest clear cell of the right
// column. Returns ErrNoTerminal when either search finds nothing.
func AutoTerminals(g *gridgraph.Grid) (start, goal geom.Point, err error) {
	if start, err = autoStart(g); err != nil {
		return start, goal, err
	}
	goal, err = autoGoal(g)
	return start, goal, err
}

func autoStart(g *gridgraph.Grid) (geom.Point, error) {
	for x := 0; x < g.Width(); x++ {
		if p := geom.Pt(x, 0); g.IsClear(p) {
			return p, nil
		}
	}
	return geom.Point{}, fmt.Errorf("%w: start on top row", ErrNoTerminal)
}

func autoGoal(g *gridgraph.Grid) (geom.Point, error) {
	w, h := g.Width(), g.Height()
	for x := w - 1; x >= 0; x-- {
		if p := geom.Pt(x, h-1); g.IsClear(p) {
			return p, nil
		}
	}
	for y := h - 1; y >= 0; y-- {
		if p := geom.Pt(w-1, y); g.IsClear(p) {
			return p, nil
		}
	}
	return geom.Point{}, fmt.Errorf("%w: goal on bottom row or right column", ErrNoTerminal)
}

// resolveTerminals uses the explicit terminals of req and fills the missing
// ones automatically.
func resolveTerminals(g *gridgraph.Grid, req Request) (start, goal geom.Point, err error) {
	if req.Start != nil {
		start = *req.Start
	} else if start, err = autoStart(g); err != nil {
		return start, goal, err
	}
	if req.Goal != nil {
		goal = *req.Goal
	} else if goal, err = autoGoal(g); err != nil {
		return start, goal, err
	}
	return start, goal, nil
}
