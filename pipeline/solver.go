package pipeline

import (
	"context"
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/rectmaze/dijkstra"
	"github.com/katalvlaran/rectmaze/graph"
	"github.com/katalvlaran/rectmaze/gridgraph"
	"github.com/katalvlaran/rectmaze/logger"
)

// Solver runs bitmap → rectangles → pruned graph → distances → path.
// A Solver is safe for concurrent use; each call owns its intermediate state.
type Solver struct {
	log  *zap.Logger
	opts Options
}

// New returns a Solver. A nil log disables logging.
func New(log *zap.Logger, opts ...Option) *Solver {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Solver{log: logger.OrNop(log), opts: o}
}

// Options returns the resolved configuration.
func (s *Solver) Options() Options { return s.opts }

// SolveImage converts img to a grid and solves it.
func (s *Solver) SolveImage(ctx context.Context, img image.Image, req Request) (*Result, error) {
	grid, err := gridgraph.FromImage(img, gridgraph.WithClearValue(s.opts.ClearValue))
	if err != nil {
		err = fmt.Errorf("pipeline: %s: %w", req.Name, err)
		s.notify(nil, err)
		return nil, err
	}
	return s.SolveGrid(ctx, grid, req)
}

// SolveCells builds a grid from values[y][x] and solves it.
func (s *Solver) SolveCells(ctx context.Context, values [][]uint8, req Request) (*Result, error) {
	grid, err := gridgraph.NewGrid(values, gridgraph.WithClearValue(s.opts.ClearValue))
	if err != nil {
		err = fmt.Errorf("pipeline: %s: %w", req.Name, err)
		s.notify(nil, err)
		return nil, err
	}
	return s.SolveGrid(ctx, grid, req)
}

// SolveGrid solves grid, which is consumed by decomposition.
//
// When the goal is unreachable the error wraps ErrNoPath. With CoverAll the
// Result is still returned alongside that error so callers can render the
// decomposition; otherwise it is nil.
func (s *Solver) SolveGrid(ctx context.Context, grid *gridgraph.Grid, req Request) (*Result, error) {
	res, err := s.solve(ctx, grid, req)
	s.notify(res, err)
	return res, err
}

func (s *Solver) solve(ctx context.Context, grid *gridgraph.Grid, req Request) (*Result, error) {
	res := &Result{
		RunID:  uuid.New(),
		Name:   req.Name,
		Width:  grid.Width(),
		Height: grid.Height(),
	}
	log := s.log.With(zap.String("run_id", res.RunID.String()), zap.String("input", req.Name))

	start, goal, err := resolveTerminals(grid, req)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %s: %w", req.Name, err)
	}
	res.Start, res.Goal = start, goal
	log.Debug("terminals", zap.Stringer("start", start), zap.Stringer("goal", goal))

	// extract
	t0 := time.Now()
	var extractOpts []gridgraph.ExtractOption
	if s.opts.CoverAll {
		extractOpts = append(extractOpts, gridgraph.WithCoverAll())
	}
	es, err := gridgraph.ExtractGraph(grid, start, goal, extractOpts...)
	res.Stats.Extract = time.Since(t0)
	if err != nil {
		if errors.Is(err, gridgraph.ErrNoPath) {
			return nil, fmt.Errorf("%w: %s (run %s): %w", ErrNoPath, req.Name, res.RunID, err)
		}
		return nil, fmt.Errorf("pipeline: %s: %w", req.Name, err)
	}
	res.Stats.ExtractedNodes, res.Stats.ExtractedEdges = es.Len(), es.EdgeCount()
	log.Debug("extracted",
		zap.Int("nodes", es.Len()),
		zap.Int("edges", es.EdgeCount()),
		zap.Duration("took", res.Stats.Extract))
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// prune
	t0 = time.Now()
	if !s.opts.NoPrune {
		es, res.Stats.Prune = graph.PruneWithStats(es)
	}
	res.Stats.Reduce = time.Since(t0)
	log.Debug("pruned",
		zap.Int("rounds", res.Stats.Prune.Rounds),
		zap.Int("nodes_removed", res.Stats.Prune.NodesRemoved),
		zap.Int("edges_removed", res.Stats.Prune.EdgesRemoved))
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// solve
	t0 = time.Now()
	dg, searchStats, err := dijkstra.DijkstraWithStats(graph.ToAdjacency(es), dijkstra.WithMaxDistance(s.opts.MaxDistance))
	res.Stats.Solve = time.Since(t0)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %s: %w", req.Name, err)
	}
	res.Graph = dg
	res.Stats.Search = searchStats

	path, err := dg.Path()
	if err != nil {
		log.Warn("goal unreachable", zap.Int("nodes", dg.Len()))
		return res, fmt.Errorf("%w: %s (run %s): %w", ErrNoPath, req.Name, res.RunID, err)
	}
	res.Path = path

	if s.opts.Verify {
		if err := Verify(ctx, res); err != nil {
			return res, err
		}
		res.Verified = true
	}

	log.Info("solved",
		zap.Int("distance", dg.GoalDistance()),
		zap.Int("path_nodes", len(path)),
		zap.Int("nodes", dg.Len()),
		zap.Duration("took", res.Stats.Extract+res.Stats.Reduce+res.Stats.Solve))
	return res, nil
}

func (s *Solver) notify(res *Result, err error) {
	for _, o := range s.opts.Observers {
		o.ObserveSolve(res, err)
	}
}
