// Package pqueue provides the min-priority queue shared by the weighted
// searches (Dijkstra and A*).
//
// Equal priorities are extracted in insertion order. The ordering is decided
// by a monotonically increasing sequence number stamped at Push, so it does
// not depend on how container/heap happens to arrange equal keys.
//
// Complexity:
//
//   - Push:    O(log n)
//   - Pop:     O(log n)
//   - Peek:    O(1)
//   - Len:     O(1)
package pqueue

import "container/heap"

// Queue is a min-priority queue of values of type T.
// The zero value is an empty, ready-to-use queue.
type Queue[T any] struct {
	items itemHeap[T]
	seq   uint64
}

// New returns an empty Queue with room for capacity items.
func New[T any](capacity int) *Queue[T] {
	return &Queue[T]{items: make(itemHeap[T], 0, capacity)}
}

// Push inserts value with the given priority.
func (q *Queue[T]) Push(value T, priority float64) {
	heap.Push(&q.items, item[T]{value: value, priority: priority, seq: q.seq})
	q.seq++
}

// Pop removes and returns the value with the smallest priority, the earliest
// pushed among equals. ok is false when the queue is empty.
func (q *Queue[T]) Pop() (value T, priority float64, ok bool) {
	if len(q.items) == 0 {
		return value, 0, false
	}
	it := heap.Pop(&q.items).(item[T])

	return it.value, it.priority, true
}

// Peek returns the next value Pop would return without removing it.
func (q *Queue[T]) Peek() (value T, priority float64, ok bool) {
	if len(q.items) == 0 {
		return value, 0, false
	}

	return q.items[0].value, q.items[0].priority, true
}

// Len returns the number of queued items.
func (q *Queue[T]) Len() int { return len(q.items) }

// item is a queued value with its priority and insertion stamp.
type item[T any] struct {
	value    T
	priority float64
	seq      uint64
}

// itemHeap implements heap.Interface ordered by (priority, seq).
type itemHeap[T any] []item[T]

func (h itemHeap[T]) Len() int { return len(h) }

func (h itemHeap[T]) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}

	return h[i].seq < h[j].seq
}

func (h itemHeap[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *itemHeap[T]) Push(x interface{}) { *h = append(*h, x.(item[T])) }

func (h *itemHeap[T]) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	var zero item[T]
	old[n-1] = zero // drop reference held by the backing array
	*h = old[:n-1]

	return it
}
