package gridgraph

import (
	"fmt"
	"image"
	"image/color"

	"github.com/katalvlaran/rectmaze/geom"
)

// NewGrid builds a Grid from a non-empty, rectangular 2D slice indexed
// values[y][x]. A cell is Clear iff its value equals ClearValue.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func NewGrid(values [][]uint8, opts ...GridOption) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for y, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}
	o := DefaultGridOptions()
	for _, opt := range opts {
		opt(&o)
	}

	g := &Grid{width: w, height: h, cells: make([]CellState, w*h)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if values[y][x] == o.ClearValue {
				g.cells[g.index(x, y)] = clearState
			} else {
				g.cells[g.index(x, y)] = wallState
			}
		}
	}

	return g, nil
}

// FromImage builds a Grid from any image by converting each pixel to 8-bit
// gray and comparing it against ClearValue.
// Returns ErrEmptyGrid for a zero-area image.
func FromImage(img image.Image, opts ...GridOption) (*Grid, error) {
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, ErrEmptyGrid
	}
	values := make([][]uint8, b.Dy())
	gray, isGray := img.(*image.Gray)
	for y := 0; y < b.Dy(); y++ {
		row := make([]uint8, b.Dx())
		for x := 0; x < b.Dx(); x++ {
			if isGray {
				row[x] = gray.GrayAt(b.Min.X+x, b.Min.Y+y).Y
				continue
			}
			row[x] = color.GrayModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray).Y
		}
		values[y] = row
	}

	return NewGrid(values, opts...)
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Bounds returns the grid extent as a rectangle anchored at the origin.
func (g *Grid) Bounds() geom.Rect {
	return geom.NewRectUnchecked(geom.Pt(0, 0), geom.Pt(g.width, g.height))
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p geom.Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// Get returns the state of p. p must be in bounds; callers check InBounds first.
func (g *Grid) Get(p geom.Point) CellState {
	if !g.InBounds(p) {
		panic(fmt.Sprintf("gridgraph: Get(%v) out of bounds %dx%d", p, g.width, g.height))
	}
	return g.cells[g.index(p.X, p.Y)]
}

// Set overwrites the state of p. p must be in bounds.
func (g *Grid) Set(p geom.Point, s CellState) {
	if !g.InBounds(p) {
		panic(fmt.Sprintf("gridgraph: Set(%v) out of bounds %dx%d", p, g.width, g.height))
	}
	g.cells[g.index(p.X, p.Y)] = s
}

// IsClear reports whether p is in bounds and Clear.
func (g *Grid) IsClear(p geom.Point) bool {
	return g.InBounds(p) && g.cells[g.index(p.X, p.Y)] == clearState
}

// Count returns the number of cells of the given kind.
func (g *Grid) Count(kind CellKind) int {
	n := 0
	for _, c := range g.cells {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

// index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

// Coordinate converts a row-major index back to a point.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) geom.Point {
	return geom.Pt(idx%g.width, idx/g.width)
}
