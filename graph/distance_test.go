package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rectmaze/graph"
)

func chainDistanceGraph(t *testing.T) *graph.DistanceGraph[string] {
	t.Helper()
	es, err := graph.NewEdgeSetGraph(labels(4), 1, 3, edgeSet(
		[2]graph.NodeID{1, 2},
		[2]graph.NodeID{2, 3},
	))
	require.NoError(t, err)
	dist := map[graph.NodeID]int{1: 0, 2: 1, 3: 2}
	prev := map[graph.NodeID]graph.NodeID{2: 1, 3: 2}
	return graph.NewDistanceGraph(graph.ToAdjacency(es), dist, prev)
}

func TestDistanceGraph_PathReconstruction(t *testing.T) {
	dg := chainDistanceGraph(t)

	path, err := dg.Path()
	require.NoError(t, err)
	assert.Equal(t, []graph.NodeID{1, 2, 3}, path)
	assert.Equal(t, dg.GoalDistance(), len(path)-1)

	p, ok := dg.Predecessor(3)
	assert.True(t, ok)
	assert.Equal(t, graph.NodeID(2), p)

	_, ok = dg.Predecessor(1)
	assert.False(t, ok, "start has no predecessor")

	path, err = dg.PathTo(1)
	require.NoError(t, err)
	assert.Equal(t, []graph.NodeID{1}, path)
}

func TestDistanceGraph_UnreachableNode(t *testing.T) {
	dg := chainDistanceGraph(t)

	assert.Equal(t, graph.Infinite, dg.Distance(4))
	assert.False(t, dg.Reachable(4))
	_, err := dg.PathTo(4)
	assert.ErrorIs(t, err, graph.ErrNoPath)

	_, err = dg.PathTo(42)
	assert.ErrorIs(t, err, graph.ErrNoPath)
}

func TestDistanceGraph_BrokenChain(t *testing.T) {
	es, err := graph.NewEdgeSetGraph(labels(3), 1, 3, edgeSet([2]graph.NodeID{1, 2}, [2]graph.NodeID{2, 3}))
	require.NoError(t, err)
	// distance claims 3 is reachable but the chain stops at 2
	dg := graph.NewDistanceGraph(graph.ToAdjacency(es), map[graph.NodeID]int{1: 0, 3: 2}, map[graph.NodeID]graph.NodeID{3: 2})
	_, err = dg.Path()
	assert.ErrorIs(t, err, graph.ErrNoPath)
}
