package simplify

import (
	"container/heap"

	"github.com/MicroKiss/Simplifier/meshgraph"
)

// edgeHeap is the container/heap.Interface backing store: a slice of
// pending collapse candidates ordered by ascending Error(). It never
// removes a stale entry directly — an edge invalidated by one of its
// endpoints collapsing is simply marked Removed in place and skipped
// when it eventually surfaces at the top of the heap.
type edgeHeap []*meshgraph.Edge

func (h edgeHeap) Len() int            { return len(h) }
func (h edgeHeap) Less(i, j int) bool  { return h[i].Error() < h[j].Error() }
func (h edgeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *edgeHeap) Push(x interface{}) { *h = append(*h, x.(*meshgraph.Edge)) }
func (h *edgeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}

// edgeQueue wraps edgeHeap behind the two operations the collapse loop
// needs: Push a freshly built edge, and PopValid pop-and-discard stale
// entries until a still-live one surfaces.
type edgeQueue struct {
	h edgeHeap
}

// newEdgeQueue builds a queue already holding edges, heapified once.
func newEdgeQueue(edges []*meshgraph.Edge) *edgeQueue {
	h := make(edgeHeap, len(edges))
	copy(h, edges)
	q := &edgeQueue{h: h}
	heap.Init(&q.h)
	return q
}

// Push adds e to the queue.
func (q *edgeQueue) Push(e *meshgraph.Edge) {
	heap.Push(&q.h, e)
}

// PopValid removes and returns the cheapest edge that is still live
// (neither the edge itself nor either endpoint has been retired since
// it was pushed). It reports ok=false once the queue has been drained
// of every live candidate.
func (q *edgeQueue) PopValid() (*meshgraph.Edge, bool) {
	for q.h.Len() > 0 {
		e := heap.Pop(&q.h).(*meshgraph.Edge)
		if e.Removed || e.A.Removed || e.B.Removed {
			continue
		}
		return e, true
	}
	return nil, false
}
