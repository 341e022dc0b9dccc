package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/rectmaze/config"
	"github.com/katalvlaran/rectmaze/geom"
	"github.com/katalvlaran/rectmaze/metrics"
	"github.com/katalvlaran/rectmaze/pipeline"
	"github.com/katalvlaran/rectmaze/render"
	"github.com/katalvlaran/rectmaze/report"
)

// app holds everything one CLI invocation shares across inputs.
type app struct {
	cfg         *config.Config
	log         *zap.Logger
	solver      *pipeline.Solver
	rec         *metrics.Recorder
	start, goal *geom.Point
}

func newApp(cfg *config.Config, log *zap.Logger) (*app, error) {
	start, goal, err := cfg.Terminals()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}
	rec := metrics.New()
	solver := pipeline.New(log,
		pipeline.WithClearValue(cfg.ClearValue),
		pipeline.WithCoverAll(cfg.CoverAll),
		pipeline.WithPrune(!cfg.NoPrune),
		pipeline.WithVerify(cfg.Verify),
		pipeline.WithObserver(rec),
	)
	return &app{cfg: cfg, log: log, solver: solver, rec: rec, start: start, goal: goal}, nil
}

// runBatch solves inputs concurrently, at most cfg.Workers at a time.
// Unreachable goals are logged and do not fail the batch; unreadable inputs
// and write failures do.
func (a *app) runBatch(ctx context.Context, inputs []string) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.Workers)
	for _, in := range inputs {
		in := in
		g.Go(func() error {
			return a.solveFile(ctx, in)
		})
	}
	err := g.Wait()
	if mErr := a.flushMetrics(); mErr != nil {
		err = errors.Join(err, mErr)
	}
	return err
}

// solveFile reads one PNG, solves it and writes its artifacts.
func (a *app) solveFile(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	img, err := render.ReadImage(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	res, err := a.solver.SolveImage(ctx, img, pipeline.Request{Name: path, Start: a.start, Goal: a.goal})
	switch {
	case errors.Is(err, pipeline.ErrNoPath):
		a.log.Warn("no path", zap.String("input", path), zap.Error(err))
	case err != nil:
		return err
	}

	base := filepath.Join(a.cfg.OutputDir, stem(path))
	if res != nil {
		out := render.Solution(img, res.Graph.Nodes(), res.Path)
		if werr := writeFile(base+".solved.png", func(f *os.File) error { return render.WritePNG(f, out) }); werr != nil {
			return werr
		}
		if a.cfg.GeoJSON {
			data, gerr := render.MarshalGeoJSON(res.Graph.Nodes(), res.Path, res.Graph.Start(), res.Graph.Goal())
			if gerr != nil {
				return gerr
			}
			if werr := os.WriteFile(base+".geojson", data, 0o644); werr != nil {
				return fmt.Errorf("write %s.geojson: %w", base, werr)
			}
		}
	}
	if a.cfg.ReportFormat == "yaml" {
		rep := report.FromResult(res, err)
		rep.Input = path
		if werr := writeFile(base+".report.yaml", func(f *os.File) error { return report.Write(f, rep) }); werr != nil {
			return werr
		}
	}
	return nil
}

func (a *app) flushMetrics() error {
	if a.cfg.MetricsFile == "" {
		return nil
	}
	return a.rec.WriteTextfile(a.cfg.MetricsFile)
}

// stem strips directory and extension: "in/maze.png" → "maze".
func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func writeFile(path string, fn func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := fn(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
