package algorithm

import (
	"container/heap"

	"github.com/Laisky/go-deque/common"
)

// PriorityQ priority queue
//
// Do not use this structure directly, use `NewPriorityQ` instead.
type PriorityQ[T common.Sortable] struct {
	q *innerPriorityQ[T]
}

// NewPriorityQ create new PriorityQ
//
// SortOrderAsc pops the smallest value first, SortOrderDesc the biggest.
func NewPriorityQ[T common.Sortable](order common.SortOrder) *PriorityQ[T] {
	return &PriorityQ[T]{
		q: newPriorityQueue[T](order),
	}
}

// Push push item into priority queue
func (pq *PriorityQ[T]) Push(v T) {
	heap.Push(pq.q, v)
}

// Pop pop item from priority queue
func (pq *PriorityQ[T]) Pop() T {
	return heap.Pop(pq.q).(T) //nolint: forcetypeassert
}

// Len return length of priority queue
func (pq *PriorityQ[T]) Len() int {
	return pq.q.Len()
}

// Peek get the item that Pop will return
func (pq *PriorityQ[T]) Peek() T {
	return pq.q.vals[0]
}

// innerPriorityQ implements heap.Interface
type innerPriorityQ[T common.Sortable] struct {
	vals  []T
	order common.SortOrder
}

// newPriorityQueue create new innerPriorityQ
//
// https://pkg.go.dev/container/heap#example-package-IntHeap
func newPriorityQueue[T common.Sortable](order common.SortOrder) *innerPriorityQ[T] {
	return &innerPriorityQ[T]{
		vals:  []T{},
		order: order,
	}
}

// Len is the number of elements in the collection.
func (pq *innerPriorityQ[T]) Len() int { return len(pq.vals) }

// Less compare two items in heapq
func (pq *innerPriorityQ[T]) Less(i, j int) bool {
	if pq.order == common.SortOrderDesc {
		return pq.vals[i] > pq.vals[j]
	}

	return pq.vals[i] < pq.vals[j]
}

// Swap swap two items in heapq
func (pq *innerPriorityQ[T]) Swap(i, j int) {
	pq.vals[i], pq.vals[j] = pq.vals[j], pq.vals[i]
}

func (pq *innerPriorityQ[T]) Push(v any) {
	pq.vals = append(pq.vals, v.(T)) //nolint: forcetypeassert
}

// Pop pop item from heapq
func (pq *innerPriorityQ[T]) Pop() any {
	n := len(pq.vals)
	item := pq.vals[n-1]
	clear(pq.vals[n-1:]) // avoid memory leak
	pq.vals = pq.vals[0 : n-1]
	return item
}
