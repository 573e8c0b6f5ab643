// Package frontier implements the open set of a best-first search: a
// deduplicating min-priority queue.
//
// Every member has a key. Adding a value whose key is already present is a
// no-op, so the first admission of a key wins. Members are ordered by
// ascending priority; equal priorities pop in insertion order, which makes
// search results reproducible.
//
// Complexity:
//
//   - Add, Pop: O(log n).
//   - Top, Contains, Len: O(1).
package frontier

import "container/heap"

// Queue is a min-priority queue of values V identified by keys K.
// The zero value is not usable; construct with New. A Queue is not safe for
// concurrent use.
type Queue[K comparable, V any] struct {
	items   itemHeap[K, V]
	members map[K]struct{}
	seq     uint64
}

// New returns an empty Queue.
func New[K comparable, V any]() *Queue[K, V] {
	return &Queue[K, V]{members: make(map[K]struct{})}
}

// Add inserts value under key with the given priority and reports whether it
// was inserted. If a member with the same key exists, Add does nothing.
func (q *Queue[K, V]) Add(key K, priority float64, value V) bool {
	if _, ok := q.members[key]; ok {
		return false
	}
	q.members[key] = struct{}{}
	heap.Push(&q.items, &item[K, V]{key: key, value: value, priority: priority, seq: q.seq})
	q.seq++

	return true
}

// Pop removes and returns the member with the lowest priority. The boolean
// is false if the queue is empty.
func (q *Queue[K, V]) Pop() (V, bool) {
	if len(q.items) == 0 {
		var zero V
		return zero, false
	}
	it := heap.Pop(&q.items).(*item[K, V])
	delete(q.members, it.key)

	return it.value, true
}

// Top returns the member with the lowest priority without removing it.
// The boolean is false if the queue is empty.
func (q *Queue[K, V]) Top() (V, bool) {
	if len(q.items) == 0 {
		var zero V
		return zero, false
	}

	return q.items[0].value, true
}

// Contains reports whether a member with key is present.
func (q *Queue[K, V]) Contains(key K) bool {
	_, ok := q.members[key]

	return ok
}

// Len returns the number of members.
func (q *Queue[K, V]) Len() int {
	return len(q.items)
}

// item is one heap entry. seq records admission order for tie-breaking.
type item[K comparable, V any] struct {
	key      K
	value    V
	priority float64
	seq      uint64
}

// itemHeap orders items by priority, then by admission sequence.
type itemHeap[K comparable, V any] []*item[K, V]

func (h itemHeap[K, V]) Len() int { return len(h) }

func (h itemHeap[K, V]) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}

	return h[i].seq < h[j].seq
}

func (h itemHeap[K, V]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *itemHeap[K, V]) Push(x any) { *h = append(*h, x.(*item[K, V])) }

func (h *itemHeap[K, V]) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return it
}
