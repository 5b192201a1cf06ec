package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Laisky/go-deque/algorithm"
	"github.com/Laisky/go-deque/bench"
	"github.com/Laisky/go-deque/deque"
	"github.com/Laisky/go-deque/json"
)

// execute run root command with args, commands share flags and settings,
// so tests in this package must not run in parallel
func execute(t *testing.T, args ...string) string {
	t.Helper()

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return buf.String()
}

func TestReverseItems(t *testing.T) {
	for _, kind := range deque.Kinds {
		before, after, err := reverseItems(kind, []string{"a", "b", "c"})
		require.NoError(t, err, kind)
		require.Equal(t, []string{"a", "b", "c"}, before)
		require.Equal(t, []string{"c", "b", "a"}, after)

		before, after, err = reverseItems(kind, nil)
		require.NoError(t, err, kind)
		require.Empty(t, before)
		require.Empty(t, after)
	}

	_, _, err := reverseItems("tree", []string{"a"})
	require.ErrorIs(t, err, deque.ErrInvalidArgument)
}

func TestReverseCmd(t *testing.T) {
	out := execute(t, "reverse", "--store", "linked", "1", "2", "3")
	require.Equal(t, "before: 1 2 3\nafter:  3 2 1\n", out)
}

func TestBenchSortCmd(t *testing.T) {
	out := execute(t, "bench", "sort",
		"--lengths", "5,20", "--seed", "3", "--sorters", algorithm.SorterQuick, "-o", "json")

	report := new(bench.SortReport)
	require.NoError(t, json.Unmarshal([]byte(out), report))
	require.EqualValues(t, 3, report.Seed)
	require.Len(t, report.Measurements, 2*len(bench.Shapes))
	for _, m := range report.Measurements {
		require.Equal(t, algorithm.SorterQuick, m.Sorter)
	}

	// an explicit zero seed is kept, not replaced by current time
	out = execute(t, "bench", "sort", "--lengths", "5", "--seed", "0", "-o", "json")
	report = new(bench.SortReport)
	require.NoError(t, json.Unmarshal([]byte(out), report))
	require.EqualValues(t, 0, report.Seed)
}

func TestBenchDequeCmd_Config(t *testing.T) {
	fpath := filepath.Join(t.TempDir(), "settings.jsonc")
	require.NoError(t, os.WriteFile(fpath, []byte(`{
		// small run
		"bench": {"ops": 16,},
	}`), 0o600))

	out := execute(t, "bench", "deque", "--config", fpath, "-o", "text")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2+len(deque.Kinds))
	require.Contains(t, lines[0], "ops=16")
}

func TestNoExtraArgs(t *testing.T) {
	require.NoError(t, NoExtraArgs(rootCmd, nil))
	require.Error(t, NoExtraArgs(rootCmd, []string{"x"}))
}
