package bench

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/Laisky/go-deque/algorithm"
	"github.com/Laisky/go-deque/common"
	"github.com/Laisky/go-deque/json"
)

func TestRunSort(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	report, err := RunSort(ctx, WithLengths(1, 5, 64), WithSeed(42))
	require.NoError(t, err)
	require.EqualValues(t, 42, report.Seed)
	require.Equal(t, common.SortOrderAsc, report.Order)

	nSorters := len(algorithm.Sorters[int]())
	require.Len(t, report.Measurements, 3*len(Shapes)*nSorters)

	seen := map[SortMeasurement]bool{}
	for _, m := range report.Measurements {
		require.GreaterOrEqual(t, m.Micros, int64(0))
		require.Equal(t, m.Elapsed.Microseconds(), m.Micros)

		k := SortMeasurement{Length: m.Length, Shape: m.Shape, Sorter: m.Sorter}
		require.False(t, seen[k], "duplicated measurement %+v", k)
		seen[k] = true
	}

	require.Equal(t, 1, report.Measurements[0].Length)
	require.Equal(t, ShapeRandom, report.Measurements[0].Shape)
	require.Equal(t, algorithm.SorterSelection, report.Measurements[0].Sorter)
}

func TestRunSort_Options(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	report, err := RunSort(ctx,
		WithLengths(10),
		WithSortOrder(common.SortOrderDesc),
		WithSorters(algorithm.SorterQuick, algorithm.SorterMerge),
	)
	require.NoError(t, err)
	require.Equal(t, common.SortOrderDesc, report.Order)
	require.Len(t, report.Measurements, len(Shapes)*2)
	for _, m := range report.Measurements {
		require.Contains(t, []string{algorithm.SorterQuick, algorithm.SorterMerge}, m.Sorter)
	}

	for _, optf := range []SortOptFunc{
		WithLengths(),
		WithLengths(3, 0),
		WithLengths(-1),
		WithSortOrder("sideways"),
		WithSorters(),
		WithSorters("bogo"),
	} {
		_, err = RunSort(ctx, optf)
		require.Error(t, err)
	}
}

func TestRunSort_Cancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := RunSort(ctx, WithLengths(10))
	require.ErrorIs(t, err, context.Canceled)
}

func TestGenerateInputs(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	inputs, err := generateInputs(ctx, 100, 7)
	require.NoError(t, err)
	require.Len(t, inputs, len(Shapes))

	random, asc, desc := inputs[0], inputs[1], inputs[2]
	require.Len(t, random, 100)
	for _, v := range random {
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 100)
	}
	require.True(t, common.IsSorted(asc, common.SortOrderAsc))
	require.True(t, common.IsSorted(desc, common.SortOrderDesc))
	require.Equal(t, 0, asc[0])
	require.Equal(t, 99, asc[99])
	require.Equal(t, 99, desc[0])

	again, err := generateInputs(ctx, 100, 7)
	require.NoError(t, err)
	require.Equal(t, random, again[0], "same seed must give same input")
}

func TestSortReport_Write(t *testing.T) {
	t.Parallel()

	report, err := RunSort(context.Background(), WithLengths(5, 10), WithSeed(1))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, report, OutputText))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2+2*len(Shapes))
	require.Contains(t, lines[0], "seed=1")
	for _, s := range algorithm.Sorters[int]() {
		require.Contains(t, lines[1], s.Name+"(us)")
	}

	buf.Reset()
	require.NoError(t, Write(&buf, report, OutputJSON))
	got := new(SortReport)
	require.NoError(t, json.Unmarshal(buf.Bytes(), got))
	require.Len(t, got.Measurements, len(report.Measurements))
	require.Equal(t, report.Measurements[3].Sorter, got.Measurements[3].Sorter)
	require.Contains(t, buf.String(), `"elapsed_us"`)

	buf.Reset()
	require.NoError(t, Write(&buf, report, OutputYAML))
	require.Contains(t, buf.String(), "seed: 1\n")
	require.Contains(t, buf.String(), "elapsed_us: ")

	buf.Reset()
	require.NoError(t, Write(&buf, report, OutputMsgpack))
	got = new(SortReport)
	require.NoError(t, msgpack.Unmarshal(buf.Bytes(), got))
	require.Equal(t, report.Seed, got.Seed)
	require.Len(t, got.Measurements, len(report.Measurements))

	require.Error(t, Write(&buf, report, "xml"))
}
