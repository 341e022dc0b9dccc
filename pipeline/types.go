package pipeline

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/rectmaze/dijkstra"
	"github.com/katalvlaran/rectmaze/geom"
	"github.com/katalvlaran/rectmaze/graph"
	"github.com/katalvlaran/rectmaze/gridgraph"
)

// Sentinel errors for pipeline operations.
var (
	// ErrNoPath indicates start and goal are not connected. It wraps the
	// stage-specific cause (gridgraph.ErrNoPath or graph.ErrNoPath).
	ErrNoPath = errors.New("pipeline: no path between start and goal")
	// ErrNoTerminal indicates automatic terminal selection found no clear cell.
	ErrNoTerminal = errors.New("pipeline: no clear cell for terminal")
	// ErrVerify indicates a self-check of a solved result failed.
	ErrVerify = errors.New("pipeline: verification failed")
)

// Observer receives every finished solve, successful or not. res is nil when
// the solve failed before a graph existed.
type Observer interface {
	ObserveSolve(res *Result, err error)
}

// Options configures a Solver.
type Options struct {
	ClearValue  uint8
	CoverAll    bool
	NoPrune     bool
	Verify      bool
	MaxDistance int
	Observers   []Observer
}

// Option is a functional option for New.
type Option func(*Options)

// DefaultOptions returns pruning on, verification off, no distance cap.
func DefaultOptions() Options {
	return Options{
		ClearValue:  gridgraph.DefaultClearValue,
		MaxDistance: graph.Infinite,
	}
}

// WithClearValue sets the pixel value treated as free space.
func WithClearValue(v uint8) Option {
	return func(o *Options) { o.ClearValue = v }
}

// WithCoverAll decomposes clear components not connected to start too, so a
// disconnected goal yields a result with an unreachable goal instead of an
// extraction error.
func WithCoverAll(on bool) Option {
	return func(o *Options) { o.CoverAll = on }
}

// WithPrune toggles dead-end pruning (on by default).
func WithPrune(on bool) Option {
	return func(o *Options) { o.NoPrune = !on }
}

// WithVerify runs Verify on every solved result.
func WithVerify(on bool) Option {
	return func(o *Options) { o.Verify = on }
}

// WithMaxDistance caps the search radius in hops. Panics on negative values.
func WithMaxDistance(n int) Option {
	if n < 0 {
		panic(dijkstra.ErrBadMaxDistance.Error())
	}
	return func(o *Options) { o.MaxDistance = n }
}

// WithObserver adds o to the observers told about every solve. Nil is ignored.
func WithObserver(o Observer) Option {
	return func(opts *Options) {
		if o != nil {
			opts.Observers = append(opts.Observers, o)
		}
	}
}

// Request names one maze to solve. Nil terminals are chosen by AutoTerminals.
type Request struct {
	Name  string
	Start *geom.Point
	Goal  *geom.Point
}

// Stats collects per-stage counts and timings.
type Stats struct {
	ExtractedNodes int
	ExtractedEdges int
	Prune          graph.PruneStats
	Search         dijkstra.Stats

	Extract time.Duration
	Reduce  time.Duration
	Solve   time.Duration
}

// Result is the outcome of one solve. Graph is the pruned graph annotated
// with distances; Path is empty when the goal is unreachable.
type Result struct {
	RunID         uuid.UUID
	Name          string
	Width, Height int
	Start, Goal   geom.Point
	Graph         *graph.DistanceGraph[geom.Rect]
	Path          []graph.NodeID
	Stats         Stats
	Verified      bool
}

// Reachable reports whether the goal was reached.
func (r *Result) Reachable() bool {
	return r.Graph != nil && r.Graph.Reachable(r.Graph.Goal())
}

// Distance returns the goal distance in hops, or graph.Infinite.
func (r *Result) Distance() int {
	if r.Graph == nil {
		return graph.Infinite
	}
	return r.Graph.GoalDistance()
}

// PathRects returns the rectangles along Path.
func (r *Result) PathRects() []geom.Rect {
	out := make([]geom.Rect, 0, len(r.Path))
	for _, id := range r.Path {
		if rect, ok := r.Graph.Node(id); ok {
			out = append(out, rect)
		}
	}
	return out
}
