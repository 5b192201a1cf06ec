package deque

import (
	"iter"

	"github.com/Laisky/errors/v2"
	"github.com/Laisky/zap"

	"github.com/Laisky/go-deque/log"
)

var _ Deque[int] = (*LinkedDeque[int])(nil)

type linkedNode[T any] struct {
	value      T
	prev, next *linkedNode[T]
}

// LinkedDeque deque stored in doubly linked nodes
//
// Do not use this structure directly, use `NewLinkedDeque` instead.
type LinkedDeque[T any] struct {
	// first and last are both nil when deque is empty,
	// and point to the same node when deque holds one element.
	first, last *linkedNode[T]
	size        int
	// capacity 0 means unbounded
	capacity int
}

// NewLinkedDeque create empty LinkedDeque, unbounded unless WithCapacity is set
func NewLinkedDeque[T any](optfs ...DequeOptFunc) (*LinkedDeque[T], error) {
	opt, err := new(dequeOpt).applyFuncs(optfs...)
	if err != nil {
		return nil, err
	}

	log.Shared.Debug("new linked deque", zap.Int("capacity", opt.capacity))
	return &LinkedDeque[T]{
		capacity: opt.capacity,
	}, nil
}

// NewLinkedDequeFrom create LinkedDeque filled with src's elements in src's left-to-right order.
//
// src is only read.
func NewLinkedDequeFrom[T any](src Deque[T], optfs ...DequeOptFunc) (*LinkedDeque[T], error) {
	if src == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "source deque should not be nil")
	}

	d, err := NewLinkedDeque[T](optfs...)
	if err != nil {
		return nil, err
	}
	if d.capacity > 0 && src.Size() > d.capacity {
		return nil, errors.Wrapf(ErrInvalidArgument,
			"source size %d exceeds capacity %d", src.Size(), d.capacity)
	}

	for v := range src.Iterator() {
		if err = d.PushRight(v); err != nil {
			return nil, errors.Wrapf(ErrInvalidArgument,
				"source yields more than %d elements", d.capacity)
		}
	}

	return d, nil
}

// Capacity max number of elements, bounded is false if deque is unbounded
func (d *LinkedDeque[T]) Capacity() (capacity int, bounded bool) {
	return d.capacity, d.capacity > 0
}

// Size number of elements
func (d *LinkedDeque[T]) Size() int {
	return d.size
}

// IsEmpty deque has no element
func (d *LinkedDeque[T]) IsEmpty() bool {
	return d.size == 0
}

// IsFull deque is bounded and reached its capacity
func (d *LinkedDeque[T]) IsFull() bool {
	return d.capacity > 0 && d.size == d.capacity
}

// PushLeft insert e at the left end
func (d *LinkedDeque[T]) PushLeft(e T) error {
	if d.IsFull() {
		return errors.Wrapf(ErrCapacityExceeded, "push left into full deque with capacity %d", d.capacity)
	}

	n := &linkedNode[T]{value: e}
	if d.size == 0 {
		d.first, d.last = n, n
	} else {
		n.next = d.first
		d.first.prev = n
		d.first = n
	}

	d.size++
	return nil
}

// PushRight insert e at the right end
func (d *LinkedDeque[T]) PushRight(e T) error {
	if d.IsFull() {
		return errors.Wrapf(ErrCapacityExceeded, "push right into full deque with capacity %d", d.capacity)
	}

	n := &linkedNode[T]{value: e}
	if d.size == 0 {
		d.first, d.last = n, n
	} else {
		n.prev = d.last
		d.last.next = n
		d.last = n
	}

	d.size++
	return nil
}

// PeekLeft get the leftmost element
func (d *LinkedDeque[T]) PeekLeft() (e T, err error) {
	if d.IsEmpty() {
		return e, errors.Wrap(ErrEmpty, "peek left")
	}

	return d.first.value, nil
}

// PeekRight get the rightmost element
func (d *LinkedDeque[T]) PeekRight() (e T, err error) {
	if d.IsEmpty() {
		return e, errors.Wrap(ErrEmpty, "peek right")
	}

	return d.last.value, nil
}

// PopLeft remove and return the leftmost element
func (d *LinkedDeque[T]) PopLeft() (e T, err error) {
	if d.IsEmpty() {
		return e, errors.Wrap(ErrEmpty, "pop left")
	}

	n := d.first
	if d.size == 1 {
		d.first, d.last = nil, nil
	} else {
		d.first = n.next
		d.first.prev = nil
	}

	d.size--
	return n.release(), nil
}

// PopRight remove and return the rightmost element
func (d *LinkedDeque[T]) PopRight() (e T, err error) {
	if d.IsEmpty() {
		return e, errors.Wrap(ErrEmpty, "pop right")
	}

	n := d.last
	if d.size == 1 {
		d.first, d.last = nil, nil
	} else {
		d.last = n.prev
		d.last.next = nil
	}

	d.size--
	return n.release(), nil
}

// release detach node and return its value
func (n *linkedNode[T]) release() T {
	var zero T
	v := n.value
	n.value = zero // avoid memory leak
	n.prev, n.next = nil, nil
	return v
}

// Iterator iterate elements from left to right
func (d *LinkedDeque[T]) Iterator() iter.Seq[T] {
	return func(yield func(T) bool) {
		cur, n := d.first, d.size
		for i := 0; i < n && cur != nil; i++ {
			if !yield(cur.value) {
				return
			}

			cur = cur.next
		}
	}
}

// ReverseIterator iterate elements from right to left
func (d *LinkedDeque[T]) ReverseIterator() iter.Seq[T] {
	return func(yield func(T) bool) {
		cur, n := d.last, d.size
		for i := 0; i < n && cur != nil; i++ {
			if !yield(cur.value) {
				return
			}

			cur = cur.prev
		}
	}
}
