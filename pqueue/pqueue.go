// Package pqueue provides a binary min-heap whose keys are read through a
// score function at comparison time, so callers can change an item's key
// in place and ask the queue to reposition it.
//
// The heap keeps an item → index map, which makes Rescore O(log n) instead
// of a linear identity scan.
package pqueue

import (
	"container/heap"
	"errors"
)

// Sentinel errors returned by Queue operations.
var (
	// ErrEmptyQueue indicates Pop or Peek on an empty queue. In a correct
	// search loop this never happens and should be treated as fatal.
	ErrEmptyQueue = errors.New("pqueue: queue is empty")
	// ErrNotQueued indicates Rescore of an item that is not in the queue.
	ErrNotQueued = errors.New("pqueue: item not in queue")
	// ErrDuplicate indicates Push of an item that is already queued.
	ErrDuplicate = errors.New("pqueue: item already queued")
)

// ScoreFunc returns the ordering key of an item; smaller keys pop first.
type ScoreFunc[T any] func(T) float64

// Queue is a binary min-heap of comparable items.
//
// Tie rules: an item only moves above its parent when its key is strictly
// smaller, and when sifting down the first child wins ties with the second.
// Queue is not safe for concurrent use.
type Queue[T comparable] struct {
	h entries[T]
}

// New returns an empty queue ordered by score.
func New[T comparable](score ScoreFunc[T]) *Queue[T] {
	return NewWithCapacity(score, 0)
}

// NewWithCapacity returns an empty queue with room for n items.
func NewWithCapacity[T comparable](score ScoreFunc[T], n int) *Queue[T] {
	return &Queue[T]{h: entries[T]{
		items: make([]T, 0, n),
		index: make(map[T]int, n),
		score: score,
	}}
}

// Push inserts item and sifts it up. O(log n).
func (q *Queue[T]) Push(item T) error {
	if _, ok := q.h.index[item]; ok {
		return ErrDuplicate
	}
	heap.Push(&q.h, item)
	return nil
}

// Pop removes and returns the item with the smallest key. O(log n).
func (q *Queue[T]) Pop() (T, error) {
	if len(q.h.items) == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}
	return heap.Pop(&q.h).(T), nil
}

// Peek returns the item with the smallest key without removing it. O(1).
func (q *Queue[T]) Peek() (T, error) {
	if len(q.h.items) == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}
	return q.h.items[0], nil
}

// Rescore restores heap order after item's key changed. Both directions are
// handled; a decreased key only ever moves up. O(log n).
func (q *Queue[T]) Rescore(item T) error {
	i, ok := q.h.index[item]
	if !ok {
		return ErrNotQueued
	}
	heap.Fix(&q.h, i)
	return nil
}

// Contains reports whether item is currently queued. O(1).
func (q *Queue[T]) Contains(item T) bool {
	_, ok := q.h.index[item]
	return ok
}

// Len returns the number of queued items. O(1).
func (q *Queue[T]) Len() int {
	return len(q.h.items)
}

// Reset empties the queue, keeping allocated capacity.
func (q *Queue[T]) Reset() {
	var zero T
	for i := range q.h.items {
		q.h.items[i] = zero
	}
	q.h.items = q.h.items[:0]
	clear(q.h.index)
}

// entries implements heap.Interface and keeps index in sync on every move.
type entries[T comparable] struct {
	items []T
	index map[T]int
	score ScoreFunc[T]
}

// Len returns the number of items in the heap.
func (e entries[T]) Len() int { return len(e.items) }

// Less reads both keys at comparison time.
func (e entries[T]) Less(i, j int) bool { return e.score(e.items[i]) < e.score(e.items[j]) }

// Swap swaps two elements and their recorded positions.
func (e entries[T]) Swap(i, j int) {
	e.items[i], e.items[j] = e.items[j], e.items[i]
	e.index[e.items[i]] = i
	e.index[e.items[j]] = j
}

// Push appends x; called by heap.Push.
func (e *entries[T]) Push(x any) {
	item := x.(T)
	e.index[item] = len(e.items)
	e.items = append(e.items, item)
}

// Pop removes the last element; called by heap.Pop after moving the root there.
func (e *entries[T]) Pop() any {
	old := e.items
	n := len(old)
	item := old[n-1]
	var zero T
	old[n-1] = zero
	e.items = old[:n-1]
	delete(e.index, item)

	return item
}
