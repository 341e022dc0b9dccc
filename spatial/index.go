// Package spatial indexes decomposition rectangles in an R-tree so cells can
// be mapped back to nodes and decompositions can be checked without a
// quadratic scan.
package spatial

import (
	"errors"
	"fmt"
	"slices"

	"github.com/dhconnelly/rtreego"

	"github.com/katalvlaran/rectmaze/geom"
	"github.com/katalvlaran/rectmaze/graph"
)

var (
	// ErrEmptyRect indicates a node whose rectangle covers no cells.
	ErrEmptyRect = errors.New("spatial: rectangle is empty")
	// ErrOverlap indicates two nodes claim a common cell.
	ErrOverlap = errors.New("spatial: rectangles overlap")
)

// inset shrinks cell-aligned boxes before they reach the tree so rectangles
// that only share a border never register as intersecting.
const inset = 0.25

// entry wraps a node rectangle for R-tree storage.
type entry struct {
	id   graph.NodeID
	rect geom.Rect
	bbox rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *entry) Bounds() rtreego.Rect {
	return e.bbox
}

// Index answers point and region queries over node rectangles.
type Index struct {
	tree    *rtreego.Rtree
	entries map[graph.NodeID]*entry
}

// NewIndex builds an index over nodes. Returns ErrEmptyRect if any
// rectangle covers no cells.
func NewIndex(nodes map[graph.NodeID]geom.Rect) (*Index, error) {
	tree := rtreego.NewTree(2, 25, 50) // 2D, min 25, max 50 entries per node
	entries := make(map[graph.NodeID]*entry, len(nodes))
	for id, r := range nodes {
		bbox, err := boxOf(r, inset)
		if err != nil {
			return nil, fmt.Errorf("%w: node %d %v", ErrEmptyRect, id, r)
		}
		e := &entry{id: id, rect: r, bbox: bbox}
		tree.Insert(e)
		entries[id] = e
	}
	return &Index{tree: tree, entries: entries}, nil
}

// Len returns the number of indexed rectangles.
func (ix *Index) Len() int { return len(ix.entries) }

// NodeAt returns the node whose rectangle contains cell p.
func (ix *Index) NodeAt(p geom.Point) (graph.NodeID, bool) {
	cell := geom.NewRect(p, p.Add(geom.Pt(1, 1)))
	for _, id := range ix.Query(cell) {
		if r := ix.entries[id].rect; r.Contains(p) {
			return id, true
		}
	}
	return graph.NoNode, false
}

// Query returns the ids of every node sharing at least one cell with r, in
// ascending order.
func (ix *Index) Query(r geom.Rect) []graph.NodeID {
	bbox, err := boxOf(r, inset)
	if err != nil {
		return nil
	}
	var out []graph.NodeID
	for _, item := range ix.tree.SearchIntersect(bbox) {
		e := item.(*entry)
		if e.rect.Overlaps(r) {
			out = append(out, e.id)
		}
	}
	slices.Sort(out)
	return out
}

// Touching returns the nodes whose rectangles share a border segment with
// node id, in ascending order. Corner contact does not count.
func (ix *Index) Touching(id graph.NodeID) []graph.NodeID {
	e, ok := ix.entries[id]
	if !ok {
		return nil
	}
	// grow by half a cell so border neighbors intersect the query box
	bbox, err := boxOf(e.rect, -0.5)
	if err != nil {
		return nil
	}
	var out []graph.NodeID
	for _, item := range ix.tree.SearchIntersect(bbox) {
		o := item.(*entry)
		if o.id != id && Adjacent(e.rect, o.rect) {
			out = append(out, o.id)
		}
	}
	slices.Sort(out)
	return out
}

// CheckDisjoint returns ErrOverlap naming the first pair of nodes, in id
// order, whose rectangles share a cell.
func (ix *Index) CheckDisjoint() error {
	ids := make([]graph.NodeID, 0, len(ix.entries))
	for id := range ix.entries {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		for _, other := range ix.Query(ix.entries[id].rect) {
			if other != id {
				return fmt.Errorf("%w: nodes %d and %d", ErrOverlap, min(id, other), max(id, other))
			}
		}
	}
	return nil
}

// Adjacent reports whether a and b share a border segment of at least one
// cell without overlapping.
func Adjacent(a, b geom.Rect) bool {
	if a.Overlaps(b) {
		return false
	}
	horiz := (a.Max.X == b.Min.X || b.Max.X == a.Min.X) &&
		a.Min.Y < b.Max.Y && b.Min.Y < a.Max.Y
	vert := (a.Max.Y == b.Min.Y || b.Max.Y == a.Min.Y) &&
		a.Min.X < b.Max.X && b.Min.X < a.Max.X
	return horiz || vert
}

// boxOf converts r to an R-tree box shrunk by pad on every side. A negative
// pad grows the box.
func boxOf(r geom.Rect, pad float64) (rtreego.Rect, error) {
	if r.Empty() {
		return rtreego.Rect{}, ErrEmptyRect
	}
	return rtreego.NewRect(
		rtreego.Point{float64(r.Min.X) + pad, float64(r.Min.Y) + pad},
		[]float64{float64(r.Width()) - 2*pad, float64(r.Height()) - 2*pad},
	)
}
