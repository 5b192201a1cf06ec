// Package common global shared types
package common

// Number is a number type
type Number interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// Sortable types that can be compared by >, <, ==
type Sortable interface {
	Number | string
}

// SortOrder direction of sorting
type SortOrder string

func (s SortOrder) String() string {
	return string(s)
}

const (
	// SortOrderAsc smallest first
	SortOrderAsc SortOrder = "asc"
	// SortOrderDesc biggest first
	SortOrderDesc SortOrder = "desc"
)

// InOrder reports whether a may stay before b under order.
//
// equal values are always in order.
func InOrder[T Sortable](a, b T, order SortOrder) bool {
	if order == SortOrderDesc {
		return a >= b
	}

	return a <= b
}

// IsSorted check whether s is monotonic under order
func IsSorted[T Sortable](s []T, order SortOrder) bool {
	for i := 1; i < len(s); i++ {
		if !InOrder(s[i-1], s[i], order) {
			return false
		}
	}

	return true
}
