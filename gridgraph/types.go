package gridgraph

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/rectmaze/geom"
	"github.com/katalvlaran/rectmaze/graph"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrStartNotClear indicates the start cell is out of bounds or not clear.
	ErrStartNotClear = errors.New("gridgraph: start cell is not clear")
	// ErrGoalNotClear indicates the goal cell is out of bounds or not clear.
	ErrGoalNotClear = errors.New("gridgraph: goal cell is not clear")
	// ErrTerminalConflict indicates two rectangles claimed the same terminal.
	ErrTerminalConflict = errors.New("gridgraph: terminal claimed by more than one rectangle")
	// ErrNoPath indicates the goal is not connected to the start.
	ErrNoPath = errors.New("gridgraph: goal not reachable from start")
)

// DefaultClearValue is the pixel value treated as free space (white).
const DefaultClearValue uint8 = 255

// CellKind classifies a grid cell.
type CellKind uint8

const (
	// Clear is traversable space not yet assigned to a rectangle.
	Clear CellKind = iota
	// Wall is never traversable.
	Wall
	// Covered is clear space claimed by a rectangle.
	Covered
)

// String returns the lower-case kind name.
func (k CellKind) String() string {
	switch k {
	case Clear:
		return "clear"
	case Wall:
		return "wall"
	case Covered:
		return "covered"
	}
	return fmt.Sprintf("CellKind(%d)", uint8(k))
}

// CellState is the state of one cell. Node is set only for Covered cells.
type CellState struct {
	Kind CellKind
	Node graph.NodeID
}

var (
	clearState = CellState{Kind: Clear}
	wallState  = CellState{Kind: Wall}
)

// CoveredBy returns the state of a cell claimed by id.
func CoveredBy(id graph.NodeID) CellState {
	return CellState{Kind: Covered, Node: id}
}

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// ClearValue is the exact pixel value mapped to Clear; everything else is Wall.
	ClearValue uint8
}

// GridOption customizes GridOptions.
type GridOption func(*GridOptions)

// DefaultGridOptions returns GridOptions with ClearValue=255.
func DefaultGridOptions() GridOptions {
	return GridOptions{ClearValue: DefaultClearValue}
}

// WithClearValue sets the pixel value treated as free space.
func WithClearValue(v uint8) GridOption {
	return func(o *GridOptions) { o.ClearValue = v }
}

// Grid is a dense row-major array of cell states. It is built once and never
// resized; only ExtractGraph mutates it, turning Clear cells into Covered.
type Grid struct {
	width, height int
	cells         []CellState
}

// ExtractOption configures ExtractGraph.
type ExtractOption func(*extractOptions)

type extractOptions struct {
	coverAll bool
	onClaim  func(id graph.NodeID, r geom.Rect)
}

func defaultExtractOptions() extractOptions {
	return extractOptions{
		onClaim: func(graph.NodeID, geom.Rect) {},
	}
}

// WithCoverAll makes ExtractGraph keep seeding after the start flood drains,
// in row-major order, until every Clear cell is covered. Components that are
// not connected to start then appear as nodes without a path to it.
func WithCoverAll() ExtractOption {
	return func(o *extractOptions) { o.coverAll = true }
}

// WithOnClaim registers a callback invoked once per claimed rectangle, in id order.
func WithOnClaim(fn func(id graph.NodeID, r geom.Rect)) ExtractOption {
	return func(o *extractOptions) {
		if fn != nil {
			o.onClaim = fn
		}
	}
}
