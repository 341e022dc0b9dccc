package dijkstra

import (
	"container/heap"

	"github.com/katalvlaran/rectmaze/graph"
)

// nodeItem is one queued node. index is its slot in the heap slice and is
// kept current by Swap so decreaseKey can call heap.Fix in O(log V).
type nodeItem struct {
	id    graph.NodeID
	dist  int
	index int
}

// nodePQ is an indexed min-heap of *nodeItem ordered by (dist, id). The id
// tiebreak makes pop order, and therefore predecessors, deterministic.
type nodePQ struct {
	items []*nodeItem
	byID  map[graph.NodeID]*nodeItem
}

func newNodePQ(capacity int) *nodePQ {
	return &nodePQ{
		items: make([]*nodeItem, 0, capacity),
		byID:  make(map[graph.NodeID]*nodeItem, capacity),
	}
}

// Len returns the number of items in the heap.
func (pq *nodePQ) Len() int { return len(pq.items) }

// Less orders by distance, then by id.
func (pq *nodePQ) Less(i, j int) bool {
	a, b := pq.items[i], pq.items[j]
	if a.dist != b.dist {
		return a.dist < b.dist
	}
	return a.id < b.id
}

// Swap swaps two elements and updates their indices.
func (pq *nodePQ) Swap(i, j int) {
	pq.items[i], pq.items[j] = pq.items[j], pq.items[i]
	pq.items[i].index = i
	pq.items[j].index = j
}

// Push is called by heap.Push; x must be *nodeItem.
func (pq *nodePQ) Push(x any) {
	item := x.(*nodeItem)
	item.index = len(pq.items)
	pq.items = append(pq.items, item)
	pq.byID[item.id] = item
}

// Pop is called by heap.Pop and removes the last element.
func (pq *nodePQ) Pop() any {
	old := pq.items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	pq.items = old[:n-1]
	item.index = -1
	delete(pq.byID, item.id)
	return item
}

// decreaseKey lowers the key of a queued node. It reports false when id is
// no longer queued or dist is not an improvement.
func (pq *nodePQ) decreaseKey(id graph.NodeID, dist int) bool {
	item, ok := pq.byID[id]
	if !ok || dist >= item.dist {
		return false
	}
	item.dist = dist
	heap.Fix(pq, item.index)
	return true
}
