package deque

import (
	"iter"

	"github.com/Laisky/errors/v2"
	"github.com/Laisky/zap"
	gdeque "github.com/gammazero/deque"

	"github.com/Laisky/go-deque/log"
)

var _ Deque[int] = (*RingDeque[int])(nil)

// RingDeque deque stored in a ring buffer that grows and shrinks by powers of two
//
// https://pkg.go.dev/github.com/gammazero/deque#Deque
type RingDeque[T any] struct {
	buf *gdeque.Deque[T]
	// capacity 0 means unbounded
	capacity int
}

// NewRingDeque create empty RingDeque, unbounded unless WithCapacity is set
func NewRingDeque[T any](optfs ...DequeOptFunc) (*RingDeque[T], error) {
	opt, err := new(dequeOpt).applyFuncs(optfs...)
	if err != nil {
		return nil, err
	}
	if opt.bounded() && opt.currentCapacity > opt.capacity {
		return nil, errors.Wrapf(ErrInvalidArgument,
			"current capacity %d exceeds capacity %d", opt.currentCapacity, opt.capacity)
	}

	log.Shared.Debug("new ring deque",
		zap.Int("capacity", opt.capacity),
		zap.Int("current_capacity", opt.currentCapacity),
		zap.Int("minimal_capacity", opt.minimalCapacity))
	return &RingDeque[T]{
		buf:      gdeque.New[T](opt.currentCapacity, opt.minimalCapacity),
		capacity: opt.capacity,
	}, nil
}

// NewRingDequeFrom create RingDeque filled with src's elements in src's left-to-right order.
//
// src is only read.
func NewRingDequeFrom[T any](src Deque[T], optfs ...DequeOptFunc) (*RingDeque[T], error) {
	if src == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "source deque should not be nil")
	}

	d, err := NewRingDeque[T](optfs...)
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
func (d *RingDeque[T]) Capacity() (capacity int, bounded bool) {
	return d.capacity, d.capacity > 0
}

// Size number of elements
func (d *RingDeque[T]) Size() int {
	return d.buf.Len()
}

// IsEmpty deque has no element
func (d *RingDeque[T]) IsEmpty() bool {
	return d.buf.Len() == 0
}

// IsFull deque is bounded and reached its capacity
func (d *RingDeque[T]) IsFull() bool {
	return d.capacity > 0 && d.buf.Len() == d.capacity
}

// PushLeft insert e at the left end
func (d *RingDeque[T]) PushLeft(e T) error {
	if d.IsFull() {
		return errors.Wrapf(ErrCapacityExceeded, "push left into full deque with capacity %d", d.capacity)
	}

	d.buf.PushFront(e)
	return nil
}

// PushRight insert e at the right end
func (d *RingDeque[T]) PushRight(e T) error {
	if d.IsFull() {
		return errors.Wrapf(ErrCapacityExceeded, "push right into full deque with capacity %d", d.capacity)
	}

	d.buf.PushBack(e)
	return nil
}

// PeekLeft get the leftmost element
func (d *RingDeque[T]) PeekLeft() (e T, err error) {
	if d.IsEmpty() {
		return e, errors.Wrap(ErrEmpty, "peek left")
	}

	return d.buf.Front(), nil
}

// PeekRight get the rightmost element
func (d *RingDeque[T]) PeekRight() (e T, err error) {
	if d.IsEmpty() {
		return e, errors.Wrap(ErrEmpty, "peek right")
	}

	return d.buf.Back(), nil
}

// PopLeft remove and return the leftmost element
func (d *RingDeque[T]) PopLeft() (e T, err error) {
	if d.IsEmpty() {
		return e, errors.Wrap(ErrEmpty, "pop left")
	}

	// gdeque zeroes the vacated slot
	return d.buf.PopFront(), nil
}

// PopRight remove and return the rightmost element
func (d *RingDeque[T]) PopRight() (e T, err error) {
	if d.IsEmpty() {
		return e, errors.Wrap(ErrEmpty, "pop right")
	}

	return d.buf.PopBack(), nil
}

// Iterator iterate elements from left to right
func (d *RingDeque[T]) Iterator() iter.Seq[T] {
	return func(yield func(T) bool) {
		n := d.buf.Len()
		for i := 0; i < n && i < d.buf.Len(); i++ {
			if !yield(d.buf.At(i)) {
				return
			}
		}
	}
}

// ReverseIterator iterate elements from right to left
func (d *RingDeque[T]) ReverseIterator() iter.Seq[T] {
	return func(yield func(T) bool) {
		n := d.buf.Len()
		for i := n - 1; i >= 0 && i < d.buf.Len(); i-- {
			if !yield(d.buf.At(i)) {
				return
			}
		}
	}
}
