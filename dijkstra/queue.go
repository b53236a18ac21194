// SPDX-License-Identifier: MIT

package dijkstra

import (
	"container/heap"

	"github.com/katalvlaran/shortpaths/core"
	"github.com/katalvlaran/shortpaths/distance"
)

// vertexQueue is an index-addressable binary min-heap of vertices keyed by
// tentative distance. pos[v] is v's slot in heap, or -1 once v was popped;
// that index is what makes decrease-key O(log V) via heap.Fix.
//
// Ordering: smaller key first; equal keys (including Infinite) by smaller VertexID.
type vertexQueue struct {
	heap []core.VertexID
	key  []distance.Distance
	pos  []int
}

// newVertexQueue returns a queue holding every vertex 0..n-1 with the given keys.
func newVertexQueue(keys []distance.Distance) *vertexQueue {
	n := len(keys)
	q := &vertexQueue{
		heap: make([]core.VertexID, n),
		key:  keys,
		pos:  make([]int, n),
	}
	for i := 0; i < n; i++ {
		q.heap[i] = core.VertexID(i)
		q.pos[i] = i
	}
	heap.Init(q)

	return q
}

// Len returns the number of queued vertices.
func (q *vertexQueue) Len() int { return len(q.heap) }

// Less orders by key, then by VertexID.
func (q *vertexQueue) Less(i, j int) bool {
	a, b := q.heap[i], q.heap[j]
	if c := q.key[a].Compare(q.key[b]); c != 0 {
		return c < 0
	}

	return a < b
}

// Swap swaps two slots and keeps pos in sync.
func (q *vertexQueue) Swap(i, j int) {
	q.heap[i], q.heap[j] = q.heap[j], q.heap[i]
	q.pos[q.heap[i]] = i
	q.pos[q.heap[j]] = j
}

// Push appends a vertex. Called by heap.Push; the queue is pre-filled, so it
// is only here to satisfy heap.Interface.
func (q *vertexQueue) Push(x interface{}) {
	v := x.(core.VertexID)
	q.pos[v] = len(q.heap)
	q.heap = append(q.heap, v)
}

// Pop removes the last slot. Called by heap.Pop.
func (q *vertexQueue) Pop() interface{} {
	n := len(q.heap)
	v := q.heap[n-1]
	q.heap = q.heap[:n-1]
	q.pos[v] = -1

	return v
}

// popMin extracts the vertex with the smallest key.
func (q *vertexQueue) popMin() (core.VertexID, distance.Distance) {
	v := heap.Pop(q).(core.VertexID)

	return v, q.key[v]
}

// decrease lowers v's key to k. Keys never increase: a k that is not smaller
// than the current key, or a v no longer queued, is ignored.
func (q *vertexQueue) decrease(v core.VertexID, k distance.Distance) {
	if q.pos[v] < 0 || !k.Less(q.key[v]) {
		return
	}
	q.key[v] = k
	heap.Fix(q, q.pos[v])
}
