// Package deque double-ended queues with interchangeable backing stores.
//
// # Stores
//
//   - `ArrayDeque`: fixed capacity circular array
//   - `LinkedDeque`: doubly linked nodes, unbounded or bounded
//   - `RingDeque`: growable ring buffer, unbounded or bounded
//   - `Reversible`: wraps any Deque and reverses it in place
//
// None of them is goroutine-safe.
package deque

import "iter"

// Deque double-ended queue
//
// left is the front, right is the back.
type Deque[T any] interface {
	// Size number of elements
	Size() int
	// IsEmpty Size() == 0
	IsEmpty() bool
	// IsFull deque is bounded and Size() reached its capacity.
	// unbounded deque is never full.
	IsFull() bool
	// PushLeft insert e at the left end,
	// return ErrCapacityExceeded if deque is full
	PushLeft(e T) error
	// PushRight insert e at the right end,
	// return ErrCapacityExceeded if deque is full
	PushRight(e T) error
	// PeekLeft get the leftmost element without removing it,
	// return ErrEmpty if deque is empty
	PeekLeft() (T, error)
	// PeekRight get the rightmost element without removing it,
	// return ErrEmpty if deque is empty
	PeekRight() (T, error)
	// PopLeft remove and return the leftmost element,
	// return ErrEmpty if deque is empty
	PopLeft() (T, error)
	// PopRight remove and return the rightmost element,
	// return ErrEmpty if deque is empty
	PopRight() (T, error)
	// Iterator iterate elements from left to right.
	//
	// every range over the returned sequence starts a new walk
	// that yields exactly the elements present when it started.
	Iterator() iter.Seq[T]
	// ReverseIterator iterate elements from right to left
	ReverseIterator() iter.Seq[T]
}

// Collect read all elements of seq into a slice
func Collect[T any](seq iter.Seq[T]) []T {
	var vals []T
	for v := range seq {
		vals = append(vals, v)
	}

	return vals
}
