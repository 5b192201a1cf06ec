package deque

import (
	"iter"

	"github.com/Laisky/errors/v2"
)

var _ Deque[int] = (*Reversible[int])(nil)

// Reversible deque that can reverse the order of its elements
//
// all operations except Reverse are forwarded to the wrapped deque,
// iterators follow the current physical order.
type Reversible[T any] struct {
	inner Deque[T]
}

// NewReversible wrap inner.
//
// inner is owned by the returned Reversible,
// it must not be used by anyone else afterwards.
func NewReversible[T any](inner Deque[T]) (*Reversible[T], error) {
	if inner == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "inner deque should not be nil")
	}

	return &Reversible[T]{inner: inner}, nil
}

// Reverse flip the order of all elements in O(size) time and space.
//
// elements are drained from the right and pushed back on the right.
func (r *Reversible[T]) Reverse() error {
	drained := make([]T, 0, r.inner.Size())
	for !r.inner.IsEmpty() {
		v, err := r.inner.PopRight()
		if err != nil {
			if rerr := r.restore(drained); rerr != nil {
				return errors.Wrapf(err, "drain deque, then %s", rerr.Error())
			}

			return errors.Wrap(err, "drain deque")
		}

		drained = append(drained, v)
	}

	// capacity was freed by the drain, so refill never exceeds it
	for _, v := range drained {
		if err := r.inner.PushRight(v); err != nil {
			return errors.Wrap(err, "refill deque")
		}
	}

	return nil
}

// restore push drained elements back in their original order,
// stops at the first failed push
func (r *Reversible[T]) restore(drained []T) error {
	for i := len(drained) - 1; i >= 0; i-- {
		if err := r.inner.PushRight(drained[i]); err != nil {
			return errors.Wrapf(err, "restore %d drained elements", i+1)
		}
	}

	return nil
}

// Size number of elements
func (r *Reversible[T]) Size() int {
	return r.inner.Size()
}

// IsEmpty deque has no element
func (r *Reversible[T]) IsEmpty() bool {
	return r.inner.IsEmpty()
}

// IsFull wrapped deque is full
func (r *Reversible[T]) IsFull() bool {
	return r.inner.IsFull()
}

// PushLeft insert e at the left end
func (r *Reversible[T]) PushLeft(e T) error {
	return r.inner.PushLeft(e)
}

// PushRight insert e at the right end
func (r *Reversible[T]) PushRight(e T) error {
	return r.inner.PushRight(e)
}

// PeekLeft get the leftmost element
func (r *Reversible[T]) PeekLeft() (T, error) {
	return r.inner.PeekLeft()
}

// PeekRight get the rightmost element
func (r *Reversible[T]) PeekRight() (T, error) {
	return r.inner.PeekRight()
}

// PopLeft remove and return the leftmost element
func (r *Reversible[T]) PopLeft() (T, error) {
	return r.inner.PopLeft()
}

// PopRight remove and return the rightmost element
func (r *Reversible[T]) PopRight() (T, error) {
	return r.inner.PopRight()
}

// Iterator iterate elements from left to right
func (r *Reversible[T]) Iterator() iter.Seq[T] {
	return r.inner.Iterator()
}

// ReverseIterator iterate elements from right to left
func (r *Reversible[T]) ReverseIterator() iter.Seq[T] {
	return r.inner.ReverseIterator()
}
