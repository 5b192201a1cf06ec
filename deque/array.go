package deque

import (
	"iter"

	"github.com/Laisky/errors/v2"
	"github.com/Laisky/zap"

	"github.com/Laisky/go-deque/log"
)

var _ Deque[int] = (*ArrayDeque[int])(nil)

// ArrayDeque fixed capacity deque stored in a circular array
//
// Do not use this structure directly, use `NewArrayDeque` instead.
type ArrayDeque[T any] struct {
	slots []T
	// left index of the leftmost element, right index of the rightmost element.
	//
	// when deque is empty, right == wrap(left-1).
	left, right int
	size        int
}

// NewArrayDeque create empty ArrayDeque that can hold at most capacity elements
func NewArrayDeque[T any](capacity int) (*ArrayDeque[T], error) {
	if capacity <= 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "capacity must greater than 0, got %d", capacity)
	}

	log.Shared.Debug("new array deque", zap.Int("capacity", capacity))
	return &ArrayDeque[T]{
		slots: make([]T, capacity),
		right: capacity - 1,
	}, nil
}

// NewArrayDequeFrom create ArrayDeque filled with src's elements in src's left-to-right order.
//
// src is only read.
func NewArrayDequeFrom[T any](capacity int, src Deque[T]) (*ArrayDeque[T], error) {
	if src == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "source deque should not be nil")
	}

	d, err := NewArrayDeque[T](capacity)
	if err != nil {
		return nil, err
	}
	if src.Size() > capacity {
		return nil, errors.Wrapf(ErrInvalidArgument,
			"source size %d exceeds capacity %d", src.Size(), capacity)
	}

	for v := range src.Iterator() {
		if d.size == capacity {
			return nil, errors.Wrapf(ErrInvalidArgument,
				"source yields more than %d elements", capacity)
		}

		d.slots[d.size] = v
		d.size++
	}
	d.right = d.wrap(d.size - 1)

	return d, nil
}

// wrap map any index into [0, capacity)
func (d *ArrayDeque[T]) wrap(idx int) int {
	c := len(d.slots)
	return ((idx % c) + c) % c
}

// Capacity max number of elements
func (d *ArrayDeque[T]) Capacity() int {
	return len(d.slots)
}

// Size number of elements
func (d *ArrayDeque[T]) Size() int {
	return d.size
}

// IsEmpty deque has no element
func (d *ArrayDeque[T]) IsEmpty() bool {
	return d.size == 0
}

// IsFull deque reached its capacity
func (d *ArrayDeque[T]) IsFull() bool {
	return d.size == len(d.slots)
}

// PushLeft insert e at the left end
func (d *ArrayDeque[T]) PushLeft(e T) error {
	if d.IsFull() {
		return errors.Wrapf(ErrCapacityExceeded, "push left into full deque with capacity %d", len(d.slots))
	}

	d.left = d.wrap(d.left - 1)
	d.slots[d.left] = e
	d.size++
	return nil
}

// PushRight insert e at the right end
func (d *ArrayDeque[T]) PushRight(e T) error {
	if d.IsFull() {
		return errors.Wrapf(ErrCapacityExceeded, "push right into full deque with capacity %d", len(d.slots))
	}

	d.right = d.wrap(d.right + 1)
	d.slots[d.right] = e
	d.size++
	return nil
}

// PeekLeft get the leftmost element
func (d *ArrayDeque[T]) PeekLeft() (e T, err error) {
	if d.IsEmpty() {
		return e, errors.Wrap(ErrEmpty, "peek left")
	}

	return d.slots[d.left], nil
}

// PeekRight get the rightmost element
func (d *ArrayDeque[T]) PeekRight() (e T, err error) {
	if d.IsEmpty() {
		return e, errors.Wrap(ErrEmpty, "peek right")
	}

	return d.slots[d.right], nil
}

// PopLeft remove and return the leftmost element
func (d *ArrayDeque[T]) PopLeft() (e T, err error) {
	if d.IsEmpty() {
		return e, errors.Wrap(ErrEmpty, "pop left")
	}

	var zero T
	e, d.slots[d.left] = d.slots[d.left], zero // avoid memory leak
	d.left = d.wrap(d.left + 1)
	d.size--
	return e, nil
}

// PopRight remove and return the rightmost element
func (d *ArrayDeque[T]) PopRight() (e T, err error) {
	if d.IsEmpty() {
		return e, errors.Wrap(ErrEmpty, "pop right")
	}

	var zero T
	e, d.slots[d.right] = d.slots[d.right], zero // avoid memory leak
	d.right = d.wrap(d.right - 1)
	d.size--
	return e, nil
}

// Iterator iterate elements from left to right
func (d *ArrayDeque[T]) Iterator() iter.Seq[T] {
	return func(yield func(T) bool) {
		idx, n := d.left, d.size
		for i := 0; i < n; i++ {
			if !yield(d.slots[idx]) {
				return
			}

			idx = d.wrap(idx + 1)
		}
	}
}

// ReverseIterator iterate elements from right to left
func (d *ArrayDeque[T]) ReverseIterator() iter.Seq[T] {
	return func(yield func(T) bool) {
		idx, n := d.right, d.size
		for i := 0; i < n; i++ {
			if !yield(d.slots[idx]) {
				return
			}

			idx = d.wrap(idx - 1)
		}
	}
}
