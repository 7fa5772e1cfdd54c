// Package contracts holds reusable behavior suites for cursor
// implementations. A cursor backend runs the suite against its own
// construction to prove it honors the protocol.
package contracts

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ofersa/serde/de"
)

// SeqAccess verifies the sequence cursor protocol:
// elements in order, fused exhaustion and an honest size hint.
type SeqAccess struct {
	// Subject returns a fresh cursor holding length elements, together with
	// the values pulling each element as `any` is expected to produce.
	Subject func(t *testing.T, length int) (sa de.SeqAccess, expected []any)
}

func (spec SeqAccess) Test(t *testing.T) {
	const length = 3

	t.Run("elements come back in order", func(t *testing.T) {
		sa, expected := spec.Subject(t, length)
		require.Len(t, expected, length)

		for _, e := range expected {
			v, ok, err := de.NextElement[any](sa)
			require.Nil(t, err)
			require.True(t, ok)
			require.Equal(t, e, v)
		}
	})

	t.Run("exhaustion is fused", func(t *testing.T) {
		sa, _ := spec.Subject(t, length)

		for i := 0; i < length; i++ {
			_, ok, err := de.NextElement[any](sa)
			require.Nil(t, err)
			require.True(t, ok)
		}

		for i := 0; i < 3; i++ {
			_, ok, err := de.NextElement[any](sa)
			require.Nil(t, err)
			require.False(t, ok)
		}
	})

	t.Run("size hint counts down to exactly zero", func(t *testing.T) {
		sa, _ := spec.Subject(t, length)

		for remaining := length; 0 < remaining; remaining-- {
			n, exact := sa.SizeHint()
			require.True(t, exact)
			require.Equal(t, remaining, n)

			_, ok, err := de.NextElement[any](sa)
			require.Nil(t, err)
			require.True(t, ok)
		}

		_, ok, err := de.NextElement[any](sa)
		require.Nil(t, err)
		require.False(t, ok)

		n, exact := sa.SizeHint()
		require.True(t, exact)
		require.Equal(t, 0, n)
	})

	t.Run("empty sequence reports exhaustion immediately", func(t *testing.T) {
		sa, _ := spec.Subject(t, 0)

		_, ok, err := de.NextElement[any](sa)
		require.Nil(t, err)
		require.False(t, ok)

		n, exact := sa.SizeHint()
		require.True(t, exact)
		require.Equal(t, 0, n)
	})
}
