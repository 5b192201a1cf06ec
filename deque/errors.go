package deque

import "github.com/Laisky/errors/v2"

var (
	// ErrInvalidArgument invalid capacity or source deque
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrCapacityExceeded push into a full deque
	ErrCapacityExceeded = errors.New("capacity exceeded")
	// ErrEmpty peek or pop from an empty deque
	ErrEmpty = errors.New("deque is empty")
)
