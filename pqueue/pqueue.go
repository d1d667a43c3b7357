// Package pqueue implements a generic binary min-heap with an injected
// comparator, built on container/heap.
package pqueue

import "container/heap"

// Queue is a binary min-heap ordered by the comparator passed to New.
// Duplicate logical entries are allowed: callers that re-prioritize an item
// simply enqueue it again and discard the stale copy when it surfaces.
type Queue[T any] struct {
	h itemHeap[T]
}

// New returns an empty queue ordered by less. The comparator must be a
// strict weak ordering; equal items dequeue in heap order.
func New[T any](less func(a, b T) bool) *Queue[T] {
	return &Queue[T]{h: itemHeap[T]{less: less}}
}

// Enqueue adds v to the queue. O(log n).
func (q *Queue[T]) Enqueue(v T) {
	heap.Push(&q.h, v)
}

// Dequeue removes and returns the minimum item. The second return value is
// false when the queue is empty; an empty dequeue is a normal signal, not
// an error. O(log n).
func (q *Queue[T]) Dequeue() (T, bool) {
	if len(q.h.items) == 0 {
		var zero T
		return zero, false
	}

	return heap.Pop(&q.h).(T), true
}

// Peek returns the minimum item without removing it.
// The second return value is false when the queue is empty. O(1).
func (q *Queue[T]) Peek() (T, bool) {
	if len(q.h.items) == 0 {
		var zero T
		return zero, false
	}

	return q.h.items[0], true
}

// Len returns the number of queued items.
func (q *Queue[T]) Len() int { return len(q.h.items) }

// Empty reports whether the queue holds no items.
func (q *Queue[T]) Empty() bool { return len(q.h.items) == 0 }

// itemHeap adapts a slice plus comparator to heap.Interface.
type itemHeap[T any] struct {
	items []T
	less  func(a, b T) bool
}

func (h itemHeap[T]) Len() int { return len(h.items) }

func (h itemHeap[T]) Less(i, j int) bool { return h.less(h.items[i], h.items[j]) }

func (h itemHeap[T]) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

// Push appends x; called by heap.Push, x must be of type T.
func (h *itemHeap[T]) Push(x any) { h.items = append(h.items, x.(T)) }

// Pop removes and returns the last item; called by heap.Pop.
func (h *itemHeap[T]) Pop() any {
	old := h.items
	n := len(old)
	item := old[n-1]
	h.items = old[:n-1]

	return item
}
