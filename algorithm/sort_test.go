package algorithm

import (
	"slices"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"

	"github.com/Laisky/go-deque/common"
)

// expectSorted sort a copy of input with the standard library
func expectSorted[T common.Sortable](input []T, order common.SortOrder) []T {
	expect := slices.Clone(input)
	slices.Sort(expect)
	if order == common.SortOrderDesc {
		slices.Reverse(expect)
	}

	return expect
}

func TestSorters_Ints(t *testing.T) {
	t.Parallel()

	randomInts := func(n int) []int {
		vals := make([]int, n)
		for i := range vals {
			vals[i] = gofakeit.Number(-500, 500)
		}
		return vals
	}

	ascending := make([]int, 200)
	for i := range ascending {
		ascending[i] = i
	}
	descending := slices.Clone(ascending)
	slices.Reverse(descending)

	inputs := map[string][]int{
		"empty":      {},
		"one":        {42},
		"two":        {2, 1},
		"duplicates": {3, 1, 3, 3, 2, 1, 1, 3},
		"same":       {7, 7, 7, 7, 7},
		"ascending":  ascending,
		"descending": descending,
		"random-17":  randomInts(17),
		"random-500": randomInts(500),
	}

	for _, sorter := range Sorters[int]() {
		for name, input := range inputs {
			for _, order := range []common.SortOrder{common.SortOrderAsc, common.SortOrderDesc} {
				sorter, input, order := sorter, input, order
				t.Run(sorter.Name+"/"+name+"/"+order.String(), func(t *testing.T) {
					t.Parallel()

					got := slices.Clone(input)
					sorter.Sort(got, order)
					require.True(t, common.IsSorted(got, order))
					require.Equal(t, expectSorted(input, order), got)
				})
			}
		}
	}
}

func TestSorters_Strings(t *testing.T) {
	t.Parallel()

	input := make([]string, 100)
	for i := range input {
		input[i] = gofakeit.Word()
	}

	for _, sorter := range Sorters[string]() {
		for _, order := range []common.SortOrder{common.SortOrderAsc, common.SortOrderDesc} {
			got := slices.Clone(input)
			sorter.Sort(got, order)
			require.Equal(t, expectSorted(input, order), got, sorter.Name)
		}
	}
}

func TestSorters_Floats(t *testing.T) {
	t.Parallel()

	input := []float64{3.5, -1, 0, 2.25, 2.25, -7.125, 100}
	for _, sorter := range Sorters[float64]() {
		got := slices.Clone(input)
		sorter.Sort(got, common.SortOrderDesc)
		require.Equal(t, []float64{100, 3.5, 2.25, 2.25, 0, -1, -7.125}, got, sorter.Name)
	}
}

func TestSorters_Names(t *testing.T) {
	t.Parallel()

	var names []string
	for _, s := range Sorters[int]() {
		names = append(names, s.Name)
	}

	require.Equal(t, []string{
		SorterSelection, SorterInsertion, SorterMerge, SorterQuick, SorterHeap,
	}, names)
}

func TestQuickSort_ManyDuplicates(t *testing.T) {
	t.Parallel()

	input := make([]int, 5000)
	for i := range input {
		input[i] = i % 3
	}

	QuickSort(input, common.SortOrderAsc)
	require.True(t, common.IsSorted(input, common.SortOrderAsc))
}

func BenchmarkSorters(b *testing.B) {
	input := make([]int, 1000)
	for i := range input {
		input[i] = gofakeit.Number(0, 1<<20)
	}

	for _, sorter := range Sorters[int]() {
		sorter := sorter
		b.Run(sorter.Name, func(b *testing.B) {
			buf := make([]int, len(input))
			for i := 0; i < b.N; i++ {
				copy(buf, input)
				sorter.Sort(buf, common.SortOrderAsc)
			}
		})
	}
}
