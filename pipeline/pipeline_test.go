package pipeline_test

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/rectmaze/builder"
	"github.com/katalvlaran/rectmaze/dijkstra"
	"github.com/katalvlaran/rectmaze/geom"
	"github.com/katalvlaran/rectmaze/graph"
	"github.com/katalvlaran/rectmaze/gridgraph"
	"github.com/katalvlaran/rectmaze/pipeline"
)

// recorder is an Observer that keeps every call.
type recorder struct {
	mu   sync.Mutex
	res  []*pipeline.Result
	errs []error
}

func (r *recorder) ObserveSolve(res *pipeline.Result, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.res = append(r.res, res)
	r.errs = append(r.errs, err)
}

func request(m *builder.Maze) pipeline.Request {
	return pipeline.Request{Name: "maze", Start: &m.Start, Goal: &m.Goal}
}

type SolverSuite struct {
	suite.Suite
	logs *observer.ObservedLogs
	obs  *recorder
	s    *pipeline.Solver
}

func (s *SolverSuite) SetupTest() {
	core, logs := observer.New(zapcore.DebugLevel)
	s.logs = logs
	s.obs = &recorder{}
	s.s = pipeline.New(zap.New(core), pipeline.WithVerify(true), pipeline.WithObserver(s.obs))
}

func (s *SolverSuite) TestTJunction() {
	m := builder.MustBuild(builder.TJunction())
	res, err := s.s.SolveCells(context.Background(), m.Cells, request(m))
	s.Require().NoError(err)

	s.NotEqual(uuid.Nil, res.RunID)
	s.Equal(2, res.Distance())
	s.True(res.Reachable())
	s.True(res.Verified)
	s.Equal([]graph.NodeID{1, 2, 3}, res.Path)
	s.Equal([]geom.Rect{
		geom.NewRect(geom.Pt(0, 0), geom.Pt(3, 1)),
		geom.NewRect(geom.Pt(2, 1), geom.Pt(3, 5)),
		geom.NewRect(geom.Pt(3, 2), geom.Pt(7, 3)),
	}, res.PathRects())
	s.Equal(5, res.Stats.ExtractedNodes)
	s.Equal(4, res.Stats.ExtractedEdges)
	s.Equal(graph.PruneStats{Rounds: 2, NodesRemoved: 2, EdgesRemoved: 2}, res.Stats.Prune)
	s.Equal(3, res.Stats.Search.Settled)
	s.Equal(7, res.Width)

	solved := s.logs.FilterMessage("solved").All()
	s.Require().Len(solved, 1)
	s.EqualValues(2, solved[0].ContextMap()["distance"])
	s.Equal(res.RunID.String(), solved[0].ContextMap()["run_id"])

	s.Require().Len(s.obs.res, 1)
	s.Same(res, s.obs.res[0])
	s.NoError(s.obs.errs[0])
}

func (s *SolverSuite) TestAutoTerminals() {
	// top row first clear is (0,0); bottom row last clear is (5,6), the end of
	// the branch, so the branch becomes the route and (6,2) the dead end
	m := builder.MustBuild(builder.TJunction())
	res, err := s.s.SolveCells(context.Background(), m.Cells, pipeline.Request{Name: "auto"})
	s.Require().NoError(err)
	s.Equal(geom.Pt(0, 0), res.Start)
	s.Equal(geom.Pt(5, 6), res.Goal)
	s.Equal([]graph.NodeID{1, 2, 4, 5}, res.Path)
	s.Equal(1, res.Stats.Prune.NodesRemoved)
}

func (s *SolverSuite) TestSplitNoPath() {
	m := builder.MustBuild(builder.Split(2, 2))
	res, err := s.s.SolveCells(context.Background(), m.Cells, request(m))
	s.Nil(res)
	s.ErrorIs(err, pipeline.ErrNoPath)
	s.ErrorIs(err, gridgraph.ErrNoPath)
	s.Require().Len(s.obs.errs, 1)
	s.ErrorIs(s.obs.errs[0], pipeline.ErrNoPath)
}

func (s *SolverSuite) TestSplitCoverAllKeepsResult() {
	solver := pipeline.New(nil, pipeline.WithCoverAll(true))
	m := builder.MustBuild(builder.Split(2, 2))
	res, err := solver.SolveCells(context.Background(), m.Cells, request(m))
	s.ErrorIs(err, pipeline.ErrNoPath)
	s.ErrorIs(err, graph.ErrNoPath)
	s.Require().NotNil(res)
	s.False(res.Reachable())
	s.Equal(graph.Infinite, res.Distance())
	s.Empty(res.Path)
	s.Equal(2, res.Graph.Len())
}

func TestSolverSuite(t *testing.T) {
	suite.Run(t, new(SolverSuite))
}

func TestSolver_WithoutPrune(t *testing.T) {
	m := builder.MustBuild(builder.Comb(4, 2))
	res, err := pipeline.New(nil, pipeline.WithPrune(false)).SolveCells(context.Background(), m.Cells, request(m))
	require.NoError(t, err)
	assert.Equal(t, 5, res.Graph.Len())
	assert.Zero(t, res.Stats.Prune.Rounds)
	assert.Equal(t, 0, res.Distance())

	res, err = pipeline.New(nil).SolveCells(context.Background(), m.Cells, request(m))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Graph.Len())
}

func TestSolver_MaxDistance(t *testing.T) {
	m := builder.MustBuild(builder.Staircase(6))
	_, err := pipeline.New(nil, pipeline.WithMaxDistance(3)).SolveCells(context.Background(), m.Cells, request(m))
	assert.ErrorIs(t, err, pipeline.ErrNoPath)
	assert.Panics(t, func() { pipeline.WithMaxDistance(-1) })
	assert.PanicsWithValue(t, dijkstra.ErrBadMaxDistance.Error(), func() { pipeline.WithMaxDistance(-2) })
}

func TestSolver_InputErrors(t *testing.T) {
	solver := pipeline.New(nil)
	ctx := context.Background()

	_, err := solver.SolveCells(ctx, nil, pipeline.Request{})
	assert.ErrorIs(t, err, gridgraph.ErrEmptyGrid)

	m := builder.MustBuild(builder.TJunction())
	wall := geom.Pt(0, 1)
	_, err = solver.SolveCells(ctx, m.Cells, pipeline.Request{Start: &wall})
	assert.ErrorIs(t, err, gridgraph.ErrStartNotClear)

	walls := [][]uint8{{0, 0}, {255, 255}}
	_, err = solver.SolveCells(ctx, walls, pipeline.Request{})
	assert.ErrorIs(t, err, pipeline.ErrNoTerminal)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = solver.SolveCells(cancelled, m.Cells, request(m))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSolver_ClearValue(t *testing.T) {
	m := builder.MustBuild(builder.Staircase(4), builder.WithClearValue(1), builder.WithWallValue(0))
	res, err := pipeline.New(nil, pipeline.WithClearValue(1)).SolveCells(context.Background(), m.Cells, request(m))
	require.NoError(t, err)
	assert.Equal(t, 3, res.Distance())
}

func TestAutoTerminals(t *testing.T) {
	grid, err := gridgraph.NewGrid([][]uint8{
		{0, 255, 255},
		{0, 0, 255},
		{0, 0, 0},
	})
	require.NoError(t, err)
	start, goal, err := pipeline.AutoTerminals(grid)
	require.NoError(t, err)
	assert.Equal(t, geom.Pt(1, 0), start)
	assert.Equal(t, geom.Pt(2, 1), goal, "falls back to the right column")

	grid, err = gridgraph.NewGrid([][]uint8{{255, 0}, {0, 0}})
	require.NoError(t, err)
	_, _, err = pipeline.AutoTerminals(grid)
	assert.ErrorIs(t, err, pipeline.ErrNoTerminal)
}

func TestSolver_RandomMazesVerify(t *testing.T) {
	solver := pipeline.New(nil, pipeline.WithVerify(true), pipeline.WithCoverAll(true))
	for seed := int64(1); seed <= 30; seed++ {
		m := builder.MustBuild(builder.Random(40, 30, 0.3), builder.WithSeed(seed))
		res, err := solver.SolveCells(context.Background(), m.Cells, request(m))
		if err != nil {
			require.ErrorIs(t, err, pipeline.ErrNoPath, "seed %d", seed)
			continue
		}
		assert.True(t, res.Verified, "seed %d", seed)
	}
}
