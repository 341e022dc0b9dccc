package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rectmaze/graph"
)

// assertFixedPoint checks that no non-terminal node has degree < 2.
func assertFixedPoint[T any](t *testing.T, g *graph.EdgeSetGraph[T]) {
	t.Helper()
	for id, d := range g.Degrees() {
		if id == g.Start() || id == g.Goal() {
			continue
		}
		assert.GreaterOrEqual(t, d, 2, "node %d left with degree %d", id, d)
	}
}

func TestPrune_TJunctionDropsBranch(t *testing.T) {
	// 1 ─ 2 ─ 3
	//     │
	//     4
	//     │
	//     5
	es, err := graph.NewEdgeSetGraph(labels(5), 1, 3, edgeSet(
		[2]graph.NodeID{1, 2},
		[2]graph.NodeID{2, 3},
		[2]graph.NodeID{2, 4},
		[2]graph.NodeID{4, 5},
	))
	require.NoError(t, err)

	pruned, stats := graph.PruneWithStats(es)
	assert.Equal(t, []graph.NodeID{1, 2, 3}, pruned.NodeIDs())
	assert.Equal(t, []graph.Edge{{1, 2}, {2, 3}}, pruned.Edges())
	assert.Equal(t, 2, stats.NodesRemoved)
	assert.Equal(t, 2, stats.EdgesRemoved)
	assert.Equal(t, 2, stats.Rounds, "5 goes first, then 4 cascades")
	assertFixedPoint(t, pruned)

	// input untouched
	assert.Equal(t, 5, es.Len())
	assert.Equal(t, 4, es.EdgeCount())
}

func TestPrune_KeepsDegreeTwoCorridor(t *testing.T) {
	es, err := graph.NewEdgeSetGraph(labels(5), 1, 5, edgeSet(
		[2]graph.NodeID{1, 2},
		[2]graph.NodeID{2, 3},
		[2]graph.NodeID{3, 4},
		[2]graph.NodeID{4, 5},
	))
	require.NoError(t, err)

	pruned, stats := graph.PruneWithStats(es)
	assert.Equal(t, 5, pruned.Len())
	assert.Equal(t, 4, pruned.EdgeCount())
	assert.Zero(t, stats.Rounds)
}

func TestPrune_TerminalsSurviveWithLowDegree(t *testing.T) {
	// start and goal isolated; 2-3 is a dangling pair
	es, err := graph.NewEdgeSetGraph(labels(4), 1, 4, edgeSet([2]graph.NodeID{2, 3}))
	require.NoError(t, err)

	pruned := graph.Prune(es)
	assert.Equal(t, []graph.NodeID{1, 4}, pruned.NodeIDs())
	assert.Zero(t, pruned.EdgeCount())
}

func TestPrune_CycleIsKept(t *testing.T) {
	// start 1 hangs off a 4-cycle 2-3-4-5 whose far corner leads to goal 6
	es, err := graph.NewEdgeSetGraph(labels(7), 1, 6, edgeSet(
		[2]graph.NodeID{1, 2},
		[2]graph.NodeID{2, 3},
		[2]graph.NodeID{3, 4},
		[2]graph.NodeID{4, 5},
		[2]graph.NodeID{5, 2},
		[2]graph.NodeID{4, 6},
		[2]graph.NodeID{5, 7},
	))
	require.NoError(t, err)

	pruned := graph.Prune(es)
	assert.Equal(t, []graph.NodeID{1, 2, 3, 4, 5, 6}, pruned.NodeIDs())
	assertFixedPoint(t, pruned)
}

func TestPrune_Idempotent(t *testing.T) {
	es, err := graph.NewEdgeSetGraph(labels(7), 1, 3, edgeSet(
		[2]graph.NodeID{1, 2},
		[2]graph.NodeID{2, 3},
		[2]graph.NodeID{2, 4},
		[2]graph.NodeID{4, 5},
		[2]graph.NodeID{4, 6},
		[2]graph.NodeID{6, 7},
	))
	require.NoError(t, err)

	once := graph.Prune(es)
	twice, stats := graph.PruneWithStats(once)
	assert.Equal(t, once.NodeIDs(), twice.NodeIDs())
	assert.Equal(t, once.Edges(), twice.Edges())
	assert.Zero(t, stats.Rounds)
}
