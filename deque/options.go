package deque

import "github.com/Laisky/errors/v2"

type dequeOpt struct {
	// capacity 0 means unbounded
	capacity int
	currentCapacity,
	minimalCapacity int
}

func (o *dequeOpt) applyFuncs(optfs ...DequeOptFunc) (*dequeOpt, error) {
	for _, optf := range optfs {
		if err := optf(o); err != nil {
			return nil, err
		}
	}

	return o, nil
}

func (o *dequeOpt) bounded() bool {
	return o.capacity > 0
}

// DequeOptFunc optional arguments for unbounded-by-default deques
type DequeOptFunc func(*dequeOpt) error

// WithCapacity limit the number of elements deque can hold
func WithCapacity(capacity int) DequeOptFunc {
	return func(opt *dequeOpt) error {
		if capacity <= 0 {
			return errors.Wrapf(ErrInvalidArgument, "capacity must greater than 0, got %d", capacity)
		}

		opt.capacity = capacity
		return nil
	}
}

// WithCurrentCapacity preallocate memory for deque
//
// only RingDeque preallocates.
func WithCurrentCapacity(size int) DequeOptFunc {
	return func(opt *dequeOpt) error {
		if size < 0 {
			return errors.Wrapf(ErrInvalidArgument, "size must not be negative, got %d", size)
		}

		opt.currentCapacity = size
		return nil
	}
}

// WithMinimalCapacity set the size RingDeque never shrinks below
func WithMinimalCapacity(size int) DequeOptFunc {
	return func(opt *dequeOpt) error {
		if size < 0 {
			return errors.Wrapf(ErrInvalidArgument, "size must not be negative, got %d", size)
		}

		opt.minimalCapacity = size
		return nil
	}
}
