package metrics_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rectmaze/builder"
	"github.com/katalvlaran/rectmaze/metrics"
	"github.com/katalvlaran/rectmaze/pipeline"
)

func TestRecorder_ObservesSolver(t *testing.T) {
	rec := metrics.New()
	solver := pipeline.New(nil, pipeline.WithObserver(rec))
	ctx := context.Background()

	for _, c := range []builder.Constructor{builder.TJunction(), builder.Staircase(5), builder.Split(2, 2)} {
		m := builder.MustBuild(c)
		_, _ = solver.SolveCells(ctx, m.Cells, pipeline.Request{Start: &m.Start, Goal: &m.Goal})
	}
	_, _ = solver.SolveCells(ctx, nil, pipeline.Request{})

	assert.Equal(t, 2.0, testutil.ToFloat64(rec.Solves.WithLabelValues("solved")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.Solves.WithLabelValues("no_path")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.Solves.WithLabelValues("error")))
	assert.Equal(t, 2.0, testutil.ToFloat64(rec.PrunedNodes), "the T-junction branch")
	assert.Equal(t, 1, testutil.CollectAndCount(rec.Distance))
	assert.Equal(t, 3, testutil.CollectAndCount(rec.StageDuration))
}

func TestRecorder_StatusLabels(t *testing.T) {
	rec := metrics.New()
	rec.ObserveSolve(nil, pipeline.ErrVerify)
	rec.ObserveSolve(nil, errors.New("boom"))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.Solves.WithLabelValues("verify_failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.Solves.WithLabelValues("error")))
}

func TestRecorder_WriteTextfile(t *testing.T) {
	rec := metrics.New()
	rec.ObserveSolve(nil, nil)

	path := filepath.Join(t.TempDir(), "rectmaze.prom")
	require.NoError(t, rec.WriteTextfile(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `rectmaze_solves_total{status="solved"} 1`)

	assert.Error(t, rec.WriteTextfile(filepath.Join(t.TempDir(), "missing", "x.prom")))
}
