// Package geom provides the integer point and half-open rectangle types
// shared by the grid, the decomposer, and the renderers.
//
// All rectangles are half-open: Rect{Min, Max} covers every cell (x, y) with
// Min.X ≤ x < Max.X and Min.Y ≤ y < Max.Y. An empty rectangle has zero width
// or zero height; a negative extent is never constructed.
package geom

import "fmt"

// Point is a zero-based cell coordinate.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// String formats the point as "x,y", the same form ParsePoint accepts.
func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// ParsePoint parses "x,y" into a Point.
func ParsePoint(s string) (Point, error) {
	var p Point
	if _, err := fmt.Sscanf(s, "%d,%d", &p.X, &p.Y); err != nil {
		return Point{}, fmt.Errorf("geom: parse point %q: %w", s, err)
	}
	return p, nil
}

// Rect is a half-open axis-aligned rectangle [Min, Max).
type Rect struct {
	Min, Max Point
}

// NewRect builds the rectangle spanned by two corners in any order.
func NewRect(a, b Point) Rect {
	return Rect{
		Min: Point{X: min(a.X, b.X), Y: min(a.Y, b.Y)},
		Max: Point{X: max(a.X, b.X), Y: max(a.Y, b.Y)},
	}
}

// NewRectUnchecked takes min and max as given.
// Panics if max lies left of or above min; that is a programming error.
func NewRectUnchecked(minPt, maxPt Point) Rect {
	r := Rect{Min: minPt, Max: maxPt}
	if r.Max.X < r.Min.X || r.Max.Y < r.Min.Y {
		panic(fmt.Sprintf("geom: negative extent rect %v", r))
	}
	return r
}

// Width returns Max.X - Min.X.
func (r Rect) Width() int { return r.Max.X - r.Min.X }

// Height returns Max.Y - Min.Y.
func (r Rect) Height() int { return r.Max.Y - r.Min.Y }

// Area returns the number of cells covered by r.
func (r Rect) Area() int { return r.Width() * r.Height() }

// Empty reports whether r covers no cells.
func (r Rect) Empty() bool { return r.Width() <= 0 || r.Height() <= 0 }

// Contains reports whether the cell p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.Y >= r.Min.Y && p.X < r.Max.X && p.Y < r.Max.Y
}

// Intersect returns the overlap of r and o. When they do not overlap the
// result is clamped to an empty rectangle rather than a negative one.
func (r Rect) Intersect(o Rect) Rect {
	out := Rect{
		Min: Point{X: max(r.Min.X, o.Min.X), Y: max(r.Min.Y, o.Min.Y)},
		Max: Point{X: min(r.Max.X, o.Max.X), Y: min(r.Max.Y, o.Max.Y)},
	}
	if out.Max.X < out.Min.X {
		out.Max.X = out.Min.X
	}
	if out.Max.Y < out.Min.Y {
		out.Max.Y = out.Min.Y
	}
	return out
}

// Overlaps reports whether r and o share at least one cell.
func (r Rect) Overlaps(o Rect) bool {
	return !r.Intersect(o).Empty()
}

// String formats r as "[x0,y0)-(x1,y1)".
func (r Rect) String() string {
	return fmt.Sprintf("[%d,%d)-(%d,%d)", r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
}
