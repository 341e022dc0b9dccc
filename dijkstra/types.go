package dijkstra

import (
	"errors"

	"github.com/katalvlaran/rectmaze/graph"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *graph.AdjacencyGraph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance – nodes farther than this from start are left Infinite.
//
//	Must be ≥ 0. Default is graph.Infinite (no cap).
//
// OnSettle – called once per node whose distance becomes final, in pop order.
type Options struct {
	MaxDistance int
	OnSettle    func(id graph.NodeID, dist int)
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithMaxDistance caps the search radius. Nodes whose shortest distance
// would exceed max are never settled and stay unreachable in the result.
// Panics on negative values.
func WithMaxDistance(max int) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithOnSettle registers a callback fired when a node's distance is final.
// A nil fn is ignored.
func WithOnSettle(fn func(id graph.NodeID, dist int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

// DefaultOptions returns Options with no distance cap and a no-op OnSettle.
func DefaultOptions() Options {
	return Options{
		MaxDistance: graph.Infinite,
		OnSettle:    func(graph.NodeID, int) {},
	}
}

// Stats counts the work done by one Dijkstra run.
type Stats struct {
	Settled      int // nodes popped with a finite distance
	Relaxations  int // neighbor inspections
	DecreaseKeys int // successful relaxations that lowered a queued key
}
