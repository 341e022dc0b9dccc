// Package report serializes a solve outcome as YAML for humans and scripts.
package report

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rectmaze/graph"
	"github.com/katalvlaran/rectmaze/pipeline"
)

// Report is the YAML document written next to each solved maze.
type Report struct {
	RunID    string    `yaml:"run_id"`
	Input    string    `yaml:"input"`
	Width    int       `yaml:"width"`
	Height   int       `yaml:"height"`
	Start    Terminal  `yaml:"start"`
	Goal     Terminal  `yaml:"goal"`
	Solved   bool      `yaml:"solved"`
	Distance *int      `yaml:"distance"` // nil when the goal is unreachable
	Verified bool      `yaml:"verified"`
	Graph    GraphInfo `yaml:"graph"`
	Path     []Step    `yaml:"path,omitempty"`
	Timings  Timings   `yaml:"timings_ms"`
	Error    string    `yaml:"error,omitempty"`
}

// Terminal is a terminal cell and the node containing it.
type Terminal struct {
	Cell string `yaml:"cell"`
	Node uint32 `yaml:"node"`
}

// GraphInfo summarizes decomposition and pruning.
type GraphInfo struct {
	ExtractedNodes int `yaml:"extracted_nodes"`
	ExtractedEdges int `yaml:"extracted_edges"`
	PruneRounds    int `yaml:"prune_rounds"`
	PrunedNodes    int `yaml:"pruned_nodes"`
	PrunedEdges    int `yaml:"pruned_edges"`
	Nodes          int `yaml:"nodes"`
	Settled        int `yaml:"settled"`
}

// Step is one rectangle on the path.
type Step struct {
	Node uint32 `yaml:"node"`
	Rect string `yaml:"rect"`
}

// Timings holds stage durations in milliseconds.
type Timings struct {
	Extract float64 `yaml:"extract"`
	Prune   float64 `yaml:"prune"`
	Solve   float64 `yaml:"solve"`
}

// FromResult builds a Report. err is the solve error, if any, and is
// recorded verbatim.
func FromResult(res *pipeline.Result, err error) *Report {
	rep := &Report{}
	if err != nil {
		rep.Error = err.Error()
	}
	if res == nil {
		return rep
	}

	rep.RunID = res.RunID.String()
	rep.Input = res.Name
	rep.Width, rep.Height = res.Width, res.Height
	rep.Start.Cell, rep.Goal.Cell = res.Start.String(), res.Goal.String()
	rep.Verified = res.Verified
	rep.Graph = GraphInfo{
		ExtractedNodes: res.Stats.ExtractedNodes,
		ExtractedEdges: res.Stats.ExtractedEdges,
		PruneRounds:    res.Stats.Prune.Rounds,
		PrunedNodes:    res.Stats.Prune.NodesRemoved,
		PrunedEdges:    res.Stats.Prune.EdgesRemoved,
		Settled:        res.Stats.Search.Settled,
	}
	rep.Timings = Timings{
		Extract: ms(res.Stats.Extract.Seconds()),
		Prune:   ms(res.Stats.Reduce.Seconds()),
		Solve:   ms(res.Stats.Solve.Seconds()),
	}
	if res.Graph == nil {
		return rep
	}

	rep.Start.Node = uint32(res.Graph.Start())
	rep.Goal.Node = uint32(res.Graph.Goal())
	rep.Graph.Nodes = res.Graph.Len()
	if d := res.Distance(); d != graph.Infinite {
		rep.Distance = &d
		rep.Solved = true
	}
	for _, id := range res.Path {
		r, _ := res.Graph.Node(id)
		rep.Path = append(rep.Path, Step{Node: uint32(id), Rect: r.String()})
	}
	return rep
}

// Write encodes rep as YAML with two-space indentation.
func Write(w io.Writer, rep *Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("report: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("report: flush: %w", err)
	}
	return nil
}

func ms(seconds float64) float64 { return seconds * 1000 }
