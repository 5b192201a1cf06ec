package algorithm

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Laisky/go-deque/common"
)

func TestPriorityQ(t *testing.T) {
	t.Parallel()

	t.Run("asc", func(t *testing.T) {
		q := NewPriorityQ[int](common.SortOrderAsc)
		for _, v := range rand.Perm(100) {
			q.Push(v)
		}

		require.Equal(t, 100, q.Len())
		for i := 0; i < 100; i++ {
			require.Equal(t, i, q.Peek())
			require.Equal(t, i, q.Pop())
		}
		require.Equal(t, 0, q.Len())
	})

	t.Run("desc", func(t *testing.T) {
		q := NewPriorityQ[string](common.SortOrderDesc)
		for _, v := range []string{"b", "d", "a", "c"} {
			q.Push(v)
		}

		require.Equal(t, "d", q.Peek())
		require.Equal(t, "d", q.Pop())
		require.Equal(t, "c", q.Pop())
		require.Equal(t, "b", q.Pop())
		require.Equal(t, "a", q.Pop())
	})
}

func TestPriorityQ_PopClearsSlot(t *testing.T) {
	t.Parallel()

	q := NewPriorityQ[string](common.SortOrderAsc)
	for _, v := range []string{"b", "a", "c"} {
		q.Push(v)
	}

	require.Equal(t, "a", q.Pop())
	require.Equal(t, 2, q.Len())
	// slot beyond len still belongs to the backing array
	require.Equal(t, "", q.q.vals[:3][2])

	require.Equal(t, "b", q.Pop())
	require.Equal(t, "c", q.Pop())
	require.Equal(t, []string{"", "", ""}, q.q.vals[:3])
}
