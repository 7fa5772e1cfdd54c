package contracts

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ofersa/serde/iterators"
)

// Iterator verifies the iterator protocol:
// elements in order, a nil Err on clean exhaustion,
// fused exhaustion and no elements after Close.
type Iterator[V any] struct {
	// Subject returns a fresh iterator together with the elements
	// it is expected to yield.
	Subject func(t *testing.T) (i iterators.Iterator[V], expected []V)
}

func (spec Iterator[V]) Test(t *testing.T) {
	t.Run("elements come back in order", func(t *testing.T) {
		i, expected := spec.Subject(t)
		defer i.Close()

		var vs []V
		for i.Next() {
			vs = append(vs, i.Value())
		}
		require.Nil(t, i.Err())
		require.Equal(t, expected, vs)
	})

	t.Run("value is repeatable between Next calls", func(t *testing.T) {
		i, expected := spec.Subject(t)
		defer i.Close()

		if len(expected) == 0 {
			t.Skip(`needs at least one element`)
		}
		require.True(t, i.Next())
		require.Equal(t, i.Value(), i.Value())
	})

	t.Run("exhaustion is fused", func(t *testing.T) {
		i, _ := spec.Subject(t)
		defer i.Close()

		for i.Next() {
		}
		for n := 0; n < 3; n++ {
			require.False(t, i.Next())
			require.Nil(t, i.Err())
		}
	})

	t.Run("closed iterator yields no further elements", func(t *testing.T) {
		i, _ := spec.Subject(t)

		require.Nil(t, i.Close())
		require.False(t, i.Next())
	})
}
