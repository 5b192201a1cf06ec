package deque

import "github.com/Laisky/errors/v2"

// Kind name of a backing store
type Kind string

func (k Kind) String() string {
	return string(k)
}

const (
	// KindArray ArrayDeque
	KindArray Kind = "array"
	// KindLinked LinkedDeque
	KindLinked Kind = "linked"
	// KindRing RingDeque
	KindRing Kind = "ring"
)

// Kinds all backing stores
var Kinds = []Kind{KindArray, KindLinked, KindRing}

// New create empty deque of kind.
//
// capacity 0 means unbounded, which ArrayDeque does not support.
func New[T any](kind Kind, capacity int) (Deque[T], error) {
	if capacity < 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "capacity must not be negative, got %d", capacity)
	}

	var optfs []DequeOptFunc
	if capacity > 0 {
		optfs = append(optfs, WithCapacity(capacity))
	}

	var (
		d   Deque[T]
		err error
	)
	// failed constructors must yield an untyped nil Deque
	switch kind {
	case KindArray:
		var a *ArrayDeque[T]
		if a, err = NewArrayDeque[T](capacity); err == nil {
			d = a
		}
	case KindLinked:
		var l *LinkedDeque[T]
		if l, err = NewLinkedDeque[T](optfs...); err == nil {
			d = l
		}
	case KindRing:
		var r *RingDeque[T]
		if r, err = NewRingDeque[T](optfs...); err == nil {
			d = r
		}
	default:
		err = errors.Wrapf(ErrInvalidArgument, "unknown deque kind %q", kind)
	}
	if err != nil {
		return nil, err
	}

	return d, nil
}
