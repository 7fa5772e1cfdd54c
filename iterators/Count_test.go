package iterators_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ofersa/serde/iterators"
)

func TestCount_ElementsGiven_TotalReturned(t *testing.T) {
	t.Parallel()

	total, err := iterators.Count[int](iterators.Slice([]int{1, 2, 3}))
	require.Nil(t, err)
	require.Equal(t, 3, total)
}

func TestCount_EmptyIterator_ZeroReturned(t *testing.T) {
	t.Parallel()

	total, err := iterators.Count[int](iterators.Empty[int]())
	require.Nil(t, err)
	require.Equal(t, 0, total)
}

func TestReduce_SumGiven_FoldedValueReturned(t *testing.T) {
	t.Parallel()

	sum, err := iterators.Reduce[int, int](iterators.Slice([]int{1, 2, 3, 4}), 0, func(acc, n int) (int, error) {
		return acc + n, nil
	})
	require.Nil(t, err)
	require.Equal(t, 10, sum)
}

func TestReduce_BlockFails_ErrorReturned(t *testing.T) {
	t.Parallel()

	expected := errors.New("Boom!")

	_, err := iterators.Reduce[int, int](iterators.Slice([]int{1, 2}), 0, func(acc, n int) (int, error) {
		return 0, expected
	})
	require.Equal(t, expected, err)
}

func TestForEach_BlockGiven_EveryElementVisited(t *testing.T) {
	t.Parallel()

	var visited []int
	err := iterators.ForEach[int](iterators.Slice([]int{1, 2, 3}), func(n int) error {
		visited = append(visited, n)
		return nil
	})
	require.Nil(t, err)
	require.Equal(t, []int{1, 2, 3}, visited)
}

func TestForEach_BlockReturnsErrClosed_IterationBreaksWithoutError(t *testing.T) {
	t.Parallel()

	var visited []int
	err := iterators.ForEach[int](iterators.Slice([]int{1, 2, 3}), func(n int) error {
		visited = append(visited, n)
		if n == 2 {
			return iterators.ErrClosed
		}
		return nil
	})
	require.Nil(t, err)
	require.Equal(t, []int{1, 2}, visited)
}
