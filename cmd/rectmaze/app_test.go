package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rectmaze/builder"
	"github.com/katalvlaran/rectmaze/config"
	"github.com/katalvlaran/rectmaze/render"
)

// writeMaze saves a builder maze as a gray PNG under dir.
func writeMaze(t *testing.T, dir, name string, c builder.Constructor) string {
	t.Helper()
	m := builder.MustBuild(c)
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, render.WritePNG(f, render.Bitmap(m.Cells)))
	require.NoError(t, f.Close())
	return path
}

func testApp(t *testing.T, args ...string) (*app, string) {
	t.Helper()
	out := t.TempDir()
	cfg, err := config.Load(append([]string{"-o", out, "--metrics-file", filepath.Join(out, "m.prom")}, args...))
	require.NoError(t, err)
	a, err := newApp(cfg, zap.NewNop())
	require.NoError(t, err)
	return a, out
}

func TestRunBatch(t *testing.T) {
	in := t.TempDir()
	tj := writeMaze(t, in, "tee.png", builder.TJunction())
	split := writeMaze(t, in, "split.png", builder.Split(3, 2))

	a, out := testApp(t, "--start", "0,0", "--goal", "6,2", "--geojson", "--verify", tj)
	require.NoError(t, a.runBatch(context.Background(), a.cfg.Inputs))

	for _, name := range []string{"tee.solved.png", "tee.report.yaml", "tee.geojson", "m.prom"} {
		assert.FileExists(t, filepath.Join(out, name))
	}
	data, err := os.ReadFile(filepath.Join(out, "tee.report.yaml"))
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(data, &doc))
	assert.Equal(t, 2, doc["distance"])
	assert.Equal(t, true, doc["verified"])

	// unreachable goal: warned, report written, batch still succeeds
	b, out2 := testApp(t, "--cover-all", split)
	require.NoError(t, b.runBatch(context.Background(), b.cfg.Inputs))
	assert.FileExists(t, filepath.Join(out2, "split.solved.png"))
	data, err = os.ReadFile(filepath.Join(out2, "split.report.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "solved: false")
}

func TestRunBatch_MissingInput(t *testing.T) {
	a, _ := testApp(t, filepath.Join(t.TempDir(), "nope.png"))
	assert.Error(t, a.runBatch(context.Background(), a.cfg.Inputs))
}

func TestStem(t *testing.T) {
	assert.Equal(t, "maze", stem("in/dir/maze.png"))
	assert.Equal(t, "maze.v2", stem("maze.v2.png"))
}

func TestWatch_ResolvesOnWrite(t *testing.T) {
	in := t.TempDir()
	path := writeMaze(t, in, "live.png", builder.Staircase(3))
	a, out := testApp(t, "--report-format", "none", path)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.watch(ctx, a.cfg.Inputs) }()

	// give the watcher a moment to register, then rewrite the input
	time.Sleep(100 * time.Millisecond)
	writeMaze(t, in, "live.png", builder.Staircase(4))

	assert.Eventually(t, func() bool {
		_, err := os.Stat(filepath.Join(out, "live.solved.png"))
		return err == nil
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}
