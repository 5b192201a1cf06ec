// Package algorithm in-place comparison sorts
package algorithm

import (
	"github.com/Laisky/go-deque/common"
)

// Sorter sort s in place by order
type Sorter[T common.Sortable] func(s []T, order common.SortOrder)

// NamedSorter sorter with its name
type NamedSorter[T common.Sortable] struct {
	Name string
	Sort Sorter[T]
}

const (
	// SorterSelection name of SelectionSort
	SorterSelection = "selection"
	// SorterInsertion name of InsertionSort
	SorterInsertion = "insertion"
	// SorterMerge name of MergeSort
	SorterMerge = "merge"
	// SorterQuick name of QuickSort
	SorterQuick = "quick"
	// SorterHeap name of HeapSort
	SorterHeap = "heap"
)

// Sorters all sorters in this package, in a fixed order
func Sorters[T common.Sortable]() []NamedSorter[T] {
	return []NamedSorter[T]{
		{Name: SorterSelection, Sort: SelectionSort[T]},
		{Name: SorterInsertion, Sort: InsertionSort[T]},
		{Name: SorterMerge, Sort: MergeSort[T]},
		{Name: SorterQuick, Sort: QuickSort[T]},
		{Name: SorterHeap, Sort: HeapSort[T]},
	}
}

// before a must be placed strictly before b
func before[T common.Sortable](a, b T, order common.SortOrder) bool {
	if order == common.SortOrderDesc {
		return a > b
	}

	return a < b
}

// SelectionSort sort s in place, O(n^2)
func SelectionSort[T common.Sortable](s []T, order common.SortOrder) {
	for i := 0; i < len(s)-1; i++ {
		selected := i
		for j := i + 1; j < len(s); j++ {
			if before(s[j], s[selected], order) {
				selected = j
			}
		}

		if selected != i {
			s[i], s[selected] = s[selected], s[i]
		}
	}
}

// InsertionSort sort s in place, O(n^2), O(n) if s already sorted
func InsertionSort[T common.Sortable](s []T, order common.SortOrder) {
	for i := 1; i < len(s); i++ {
		v, hole := s[i], i
		for hole > 0 && before(v, s[hole-1], order) {
			s[hole] = s[hole-1]
			hole--
		}

		s[hole] = v
	}
}

// MergeSort sort s in place without auxiliary buffer.
//
// merging shifts elements instead of copying to a buffer,
// so the worst case is O(n^2) moves with O(log n) stack.
func MergeSort[T common.Sortable](s []T, order common.SortOrder) {
	if len(s) <= 1 {
		return
	}

	mergeSort(s, 0, len(s)-1, order)
}

func mergeSort[T common.Sortable](s []T, start, end int, order common.SortOrder) {
	if start >= end {
		return
	}

	mid := start + (end-start)/2
	mergeSort(s, start, mid, order)
	mergeSort(s, mid+1, end, order)
	mergeInPlace(s, start, mid, end, order)
}

// mergeInPlace merge sorted s[start:mid+1] and s[mid+1:end+1]
func mergeInPlace[T common.Sortable](s []T, start, mid, end int, order common.SortOrder) {
	right := mid + 1
	if !before(s[right], s[mid], order) {
		return // already in order
	}

	for start <= mid && right <= end {
		if !before(s[right], s[start], order) {
			start++
			continue
		}

		// move s[right] to start, shifting s[start:right] one step right
		v := s[right]
		copy(s[start+1:right+1], s[start:right])
		s[start] = v

		start++
		mid++
		right++
	}
}

// QuickSort sort s in place, pivot is the middle element of each range
func QuickSort[T common.Sortable](s []T, order common.SortOrder) {
	quickSort(s, 0, len(s)-1, order)
}

func quickSort[T common.Sortable](s []T, l, r int, order common.SortOrder) {
	// recurse into the smaller half to keep the stack O(log n)
	for l < r {
		p := partition(s, l, r, order)
		if p-l < r-p {
			quickSort(s, l, p-1, order)
			l = p + 1
		} else {
			quickSort(s, p+1, r, order)
			r = p - 1
		}
	}
}

// partition Lomuto partition of s[l:r+1] around its middle element,
// returns the final index of the pivot
func partition[T common.Sortable](s []T, l, r int, order common.SortOrder) int {
	mid := l + (r-l)/2
	pivot := s[mid]
	s[mid], s[r] = s[r], s[mid]

	i := l
	for j := l; j < r; j++ {
		if common.InOrder(s[j], pivot, order) {
			s[i], s[j] = s[j], s[i]
			i++
		}
	}

	s[i], s[r] = s[r], s[i]
	return i
}

// HeapSort sort s through PriorityQ, O(n log n) with O(n) extra memory
func HeapSort[T common.Sortable](s []T, order common.SortOrder) {
	pq := NewPriorityQ[T](order)
	for _, v := range s {
		pq.Push(v)
	}

	for i := range s {
		s[i] = pq.Pop()
	}
}
