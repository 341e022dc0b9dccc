package dijkstra

import (
	"container/heap"

	"github.com/katalvlaran/rectmaze/graph"
)

// Dijkstra computes the hop distance from g.Start() to every node of g,
// treating each edge as weight 1, and returns g annotated with distances and
// predecessors. It consumes g.
//
// Every node is queued up front keyed by its best-known distance (Infinite
// until reached). Relaxation lowers keys in place. The loop stops when the
// queue is empty, when the minimum key is Infinite (the rest of the graph is
// disconnected from start) or when it exceeds MaxDistance. Unreached nodes
// keep distance Infinite and no predecessor.
//
// Returns ErrNilGraph if g is nil.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V)
func Dijkstra[T any](g *graph.AdjacencyGraph[T], opts ...Option) (*graph.DistanceGraph[T], error) {
	dg, _, err := DijkstraWithStats(g, opts...)
	return dg, err
}

// DijkstraWithStats is Dijkstra that also reports how much work was done.
func DijkstraWithStats[T any](g *graph.AdjacencyGraph[T], opts ...Option) (*graph.DistanceGraph[T], Stats, error) {
	if g == nil {
		return nil, Stats{}, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	r := &runner[T]{
		g:    g,
		cfg:  cfg,
		dist: make(map[graph.NodeID]int, g.Len()),
		prev: make(map[graph.NodeID]graph.NodeID, g.Len()),
		pq:   newNodePQ(g.Len()),
	}
	r.init()
	r.process()

	return graph.NewDistanceGraph(g, r.dist, r.prev), r.stats, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[T any] struct {
	g     *graph.AdjacencyGraph[T]
	cfg   Options
	dist  map[graph.NodeID]int          // settled or tentative finite distances only
	prev  map[graph.NodeID]graph.NodeID // predecessor on the current best path
	pq    *nodePQ
	stats Stats
}

// init queues every node; start gets key 0, the rest Infinite.
func (r *runner[T]) init() {
	start := r.g.Start()
	for _, id := range r.g.NodeIDs() {
		d := graph.Infinite
		if id == start {
			d = 0
		}
		r.pq.items = append(r.pq.items, &nodeItem{id: id, dist: d, index: len(r.pq.items)})
		r.pq.byID[id] = r.pq.items[len(r.pq.items)-1]
	}
	heap.Init(r.pq)
	r.dist[start] = 0
}

// process pops the closest node and relaxes its neighbors until nothing
// reachable within MaxDistance remains queued.
func (r *runner[T]) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(r.pq).(*nodeItem)
		if item.dist == graph.Infinite || item.dist > r.cfg.MaxDistance {
			// every remaining key is at least as large
			break
		}
		r.stats.Settled++
		r.cfg.OnSettle(item.id, item.dist)
		r.relax(item.id, item.dist)
	}
}

// relax offers d+1 to every neighbor of u that is still queued.
func (r *runner[T]) relax(u graph.NodeID, d int) {
	cand := d + 1
	for _, v := range r.g.Neighbors(u) {
		r.stats.Relaxations++
		if cand > r.cfg.MaxDistance {
			continue
		}
		if r.pq.decreaseKey(v, cand) {
			r.dist[v] = cand
			r.prev[v] = u
			r.stats.DecreaseKeys++
		}
	}
}
