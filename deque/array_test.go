package deque

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewArrayDeque(t *testing.T) {
	t.Parallel()

	for _, capacity := range []int{0, -1, -100} {
		_, err := NewArrayDeque[int](capacity)
		require.ErrorIs(t, err, ErrInvalidArgument)
	}

	d, err := NewArrayDeque[string](5)
	require.NoError(t, err)
	require.Equal(t, 5, d.Capacity())
	require.Len(t, d.slots, 5)
	require.True(t, d.IsEmpty())
	require.False(t, d.IsFull())

	_, err = NewArrayDequeFrom[string](5, nil)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestArrayDeque_SingleSlot(t *testing.T) {
	t.Parallel()

	d, err := NewArrayDeque[string](1)
	require.NoError(t, err)

	require.NoError(t, d.PushLeft("x"))
	require.True(t, d.IsFull())
	require.ErrorIs(t, d.PushRight("y"), ErrCapacityExceeded)

	v, err := d.PopRight()
	require.NoError(t, err)
	require.Equal(t, "x", v)
	require.True(t, d.IsEmpty())

	// the only slot is reused from both ends
	for i := 0; i < 100; i++ {
		if i%2 == 0 {
			require.NoError(t, d.PushRight("r"))
		} else {
			require.NoError(t, d.PushLeft("l"))
		}
		require.Equal(t, 0, d.left)
		require.Equal(t, 0, d.right)

		left, err := d.PeekLeft()
		require.NoError(t, err)
		right, err := d.PeekRight()
		require.NoError(t, err)
		require.Equal(t, left, right)

		if i%3 == 0 {
			_, err = d.PopLeft()
		} else {
			_, err = d.PopRight()
		}
		require.NoError(t, err)
		require.True(t, d.IsEmpty())
	}
}

func TestArrayDeque_WrapAround(t *testing.T) {
	t.Parallel()

	d, err := NewArrayDeque[int](3)
	require.NoError(t, err)

	// walk the window around the ring several times in both directions
	for i := 0; i < 10; i++ {
		require.NoError(t, d.PushRight(i))
		require.NoError(t, d.PushRight(i+1))
		v, err := d.PopLeft()
		require.NoError(t, err)
		require.Equal(t, i, v)
		v, err = d.PopLeft()
		require.NoError(t, err)
		require.Equal(t, i+1, v)

		require.GreaterOrEqual(t, d.left, 0)
		require.Less(t, d.left, 3)
		require.GreaterOrEqual(t, d.right, 0)
		require.Less(t, d.right, 3)
	}

	for i := 0; i < 10; i++ {
		require.NoError(t, d.PushLeft(i))
		require.NoError(t, d.PushLeft(i+1))
		require.NoError(t, d.PushLeft(i+2))
		require.Equal(t, []int{i + 2, i + 1, i}, elements(d.Iterator()))
		require.Equal(t, []int{i, i + 1, i + 2}, elements(d.ReverseIterator()))

		for j := 0; j < 3; j++ {
			v, err := d.PopRight()
			require.NoError(t, err)
			require.Equal(t, i+j, v)
		}
	}
}

func TestArrayDeque_PopClearsSlot(t *testing.T) {
	t.Parallel()

	d, err := NewArrayDeque[*int](2)
	require.NoError(t, err)

	a, b := 1, 2
	require.NoError(t, d.PushRight(&a))
	require.NoError(t, d.PushLeft(&b))

	got, err := d.PopLeft()
	require.NoError(t, err)
	require.Same(t, &b, got)
	got, err = d.PopRight()
	require.NoError(t, err)
	require.Same(t, &a, got)

	for i := range d.slots {
		require.Nil(t, d.slots[i], "slot %d still holds a reference", i)
	}
}

func TestArrayDeque_FailedPushKeepsState(t *testing.T) {
	t.Parallel()

	d, err := NewArrayDeque[int](2)
	require.NoError(t, err)
	require.NoError(t, d.PushRight(1))
	require.NoError(t, d.PushRight(2))

	left, right := d.left, d.right
	require.ErrorIs(t, d.PushLeft(0), ErrCapacityExceeded)
	require.ErrorIs(t, d.PushRight(3), ErrCapacityExceeded)
	require.Equal(t, left, d.left)
	require.Equal(t, right, d.right)
	require.Equal(t, []int{1, 2}, d.slots)
}

func BenchmarkArrayDeque(b *testing.B) {
	d, err := NewArrayDeque[int](1024)
	if err != nil {
		b.Fatalf("%+v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err = d.PushRight(i); err != nil {
			b.Fatalf("%+v", err)
		}
		if _, err = d.PopLeft(); err != nil {
			b.Fatalf("%+v", err)
		}
	}
}
