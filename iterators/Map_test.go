package iterators_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ofersa/serde/iterators"
)

func TestMap_TransformGiven_EveryElementTransformed(t *testing.T) {
	t.Parallel()

	formatted := iterators.Map[int, string](iterators.Slice([]int{1, 2, 3}), func(n int) (string, error) {
		return strconv.Itoa(n), nil
	})

	vs, err := iterators.Collect[string](formatted)
	require.Nil(t, err)
	require.Equal(t, []string{`1`, `2`, `3`}, vs)
}

func TestMap_TransformFails_ErrorSurfacesAndIterationStops(t *testing.T) {
	t.Parallel()

	expected := errors.New("Boom!")

	failing := iterators.Map[int, int](iterators.Slice([]int{1, 2, 3}), func(n int) (int, error) {
		if n == 2 {
			return 0, expected
		}
		return n * 10, nil
	})

	vs, err := iterators.Collect[int](failing)
	require.Equal(t, expected, err)
	require.Nil(t, vs)
}

func TestMap_ClosingMapped_ClosesTheSource(t *testing.T) {
	t.Parallel()

	var closed bool
	src := iterators.NewMock[int](iterators.Slice([]int{1, 2, 3}))
	src.StubClose = func() error {
		closed = true
		return nil
	}

	mapped := iterators.Map[int, int](src, func(n int) (int, error) { return n, nil })
	require.Nil(t, mapped.Close())
	require.True(t, closed)
}
