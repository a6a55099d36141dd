package list_test

import (
	"slices"
	"testing"

	"deedles.dev/linkq/internal/list"
	"github.com/stretchr/testify/require"
)

func TestSingleStates(t *testing.T) {
	var ls list.Single[int]
	require.Equal(t, list.Empty, ls.State())
	require.Nil(t, ls.Head())

	ls.Enqueue(1)
	require.Equal(t, list.One, ls.State())
	require.Equal(t, 1, ls.Len())

	ls.Enqueue(2)
	require.Equal(t, list.Many, ls.State())

	ls.Enqueue(3)
	require.Equal(t, list.Many, ls.State())
	require.Equal(t, []int{1, 2, 3}, slices.Collect(ls.All()))

	v, state, ok := ls.Pop()
	require.True(t, ok)
	require.Equal(t, 1, v)
	require.Equal(t, list.Many, state)

	v, state, ok = ls.Pop()
	require.True(t, ok)
	require.Equal(t, 2, v)
	require.Equal(t, list.One, state)

	// Appending with one node left has to link from head again.
	ls.Enqueue(4)
	require.Equal(t, list.Many, ls.State())
	require.Equal(t, []int{3, 4}, slices.Collect(ls.All()))

	ls.Pop()
	v, state, ok = ls.Pop()
	require.True(t, ok)
	require.Equal(t, 4, v)
	require.Equal(t, list.Empty, state)
	require.Equal(t, 0, ls.Len())

	_, state, ok = ls.Pop()
	require.False(t, ok)
	require.Equal(t, list.Empty, state)
}

func TestSinglePeek(t *testing.T) {
	var ls list.Single[string]
	_, ok := ls.Peek()
	require.False(t, ok)

	ls.Enqueue("a")
	ls.Enqueue("b")
	v, ok := ls.Peek()
	require.True(t, ok)
	require.Equal(t, "a", v)
	require.Equal(t, 2, ls.Len())
}

func TestSingleReset(t *testing.T) {
	var ls list.Single[int]
	for i := range 5 {
		ls.Enqueue(i)
	}

	ls.Reset()
	require.Equal(t, list.Empty, ls.State())
	require.Equal(t, 0, ls.Len())
	require.Empty(t, slices.Collect(ls.All()))

	ls.Enqueue(7)
	require.Equal(t, list.One, ls.State())
}

func TestSingleNodes(t *testing.T) {
	var ls list.Single[int]
	ls.Enqueue(1)
	ls.Enqueue(2)

	var got []int
	for n := ls.Head(); n != nil; n = n.Next() {
		got = append(got, n.Val)
	}
	require.Equal(t, []int{1, 2}, got)
}

func TestStateString(t *testing.T) {
	require.Equal(t, "empty", list.Empty.String())
	require.Equal(t, "one", list.One.String())
	require.Equal(t, "many", list.Many.String())
	require.Equal(t, "unknown", list.State(9).String())
}
