// Package metrics counts solver activity with Prometheus collectors on a
// private registry. The CLI has no HTTP surface, so the registry is dumped in
// the node-exporter textfile format after each batch.
package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/rectmaze/pipeline"
)

// Recorder implements pipeline.Observer.
type Recorder struct {
	reg *prometheus.Registry

	Solves        *prometheus.CounterVec
	Nodes         prometheus.Histogram
	PrunedNodes   prometheus.Counter
	Distance      prometheus.Histogram
	StageDuration *prometheus.HistogramVec
}

var _ pipeline.Observer = (*Recorder)(nil)

// New registers the rectmaze collectors on a fresh registry.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &Recorder{
		reg: reg,
		Solves: f.NewCounterVec(prometheus.CounterOpts{
			Name: "rectmaze_solves_total",
			Help: "Total number of solve attempts, labelled by outcome.",
		}, []string{"status"}),
		Nodes: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "rectmaze_graph_nodes",
			Help:    "Rectangles extracted per maze.",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}),
		PrunedNodes: f.NewCounter(prometheus.CounterOpts{
			Name: "rectmaze_pruned_nodes_total",
			Help: "Total number of dead-end rectangles removed by pruning.",
		}),
		Distance: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "rectmaze_path_hops",
			Help:    "Goal distance in rectangle hops for solved mazes.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		}),
		StageDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "rectmaze_stage_duration_ms",
			Help:    "Per-stage latency in milliseconds.",
			Buckets: []float64{0.1, 0.5, 1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500},
		}, []string{"stage"}),
	}
}

// Registry exposes the private registry, e.g. for tests or a custom handler.
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

// ObserveSolve records one finished solve.
func (r *Recorder) ObserveSolve(res *pipeline.Result, err error) {
	r.Solves.WithLabelValues(status(err)).Inc()
	if res == nil {
		return
	}
	r.Nodes.Observe(float64(res.Stats.ExtractedNodes))
	r.PrunedNodes.Add(float64(res.Stats.Prune.NodesRemoved))
	r.StageDuration.WithLabelValues("extract").Observe(res.Stats.Extract.Seconds() * 1000)
	r.StageDuration.WithLabelValues("prune").Observe(res.Stats.Reduce.Seconds() * 1000)
	r.StageDuration.WithLabelValues("solve").Observe(res.Stats.Solve.Seconds() * 1000)
	if err == nil && res.Reachable() {
		r.Distance.Observe(float64(res.Distance()))
	}
}

// WriteTextfile atomically writes every collected metric to path.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.reg); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}
	return nil
}

func status(err error) string {
	switch {
	case err == nil:
		return "solved"
	case errors.Is(err, pipeline.ErrNoPath):
		return "no_path"
	case errors.Is(err, pipeline.ErrVerify):
		return "verify_failed"
	default:
		return "error"
	}
}
