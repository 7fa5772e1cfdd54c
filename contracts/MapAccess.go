package contracts

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ofersa/serde/de"
)

// MapAccess verifies the map cursor protocol: entries in a stable order,
// strict key value alternation and fused exhaustion.
type MapAccess struct {
	// Subject returns a fresh cursor holding length entries, together with
	// the keys in yield order and the values pulling each entry as a string
	// keyed `any` pair is expected to produce.
	Subject func(t *testing.T, length int) (ma de.MapAccess, keys []string, values []any)
}

func (spec MapAccess) Test(t *testing.T) {
	const length = 3

	t.Run("entries come back in yield order", func(t *testing.T) {
		ma, keys, values := spec.Subject(t, length)
		require.Len(t, keys, length)
		require.Len(t, values, length)

		for i := range keys {
			k, v, ok, err := de.NextEntry[string, any](ma)
			require.Nil(t, err)
			require.True(t, ok)
			require.Equal(t, keys[i], k)
			require.Equal(t, values[i], v)
		}

		_, _, ok, err := de.NextEntry[string, any](ma)
		require.Nil(t, err)
		require.False(t, ok)
	})

	t.Run("value without a preceding key is a protocol error", func(t *testing.T) {
		ma, _, _ := spec.Subject(t, length)

		_, err := de.NextValue[any](ma)
		require.Equal(t, de.ErrValueWithoutKey, err)
	})

	t.Run("each key permits exactly one value read", func(t *testing.T) {
		ma, _, _ := spec.Subject(t, length)

		_, ok, err := de.NextKey[string](ma)
		require.Nil(t, err)
		require.True(t, ok)

		_, err = de.NextValue[any](ma)
		require.Nil(t, err)

		_, err = de.NextValue[any](ma)
		require.Equal(t, de.ErrValueWithoutKey, err)
	})

	t.Run("size hint counts down as entries are consumed", func(t *testing.T) {
		ma, _, _ := spec.Subject(t, length)

		for remaining := length; 0 < remaining; remaining-- {
			n, exact := ma.SizeHint()
			require.True(t, exact)
			require.Equal(t, remaining, n)

			_, _, ok, err := de.NextEntry[string, any](ma)
			require.Nil(t, err)
			require.True(t, ok)
		}

		n, exact := ma.SizeHint()
		require.True(t, exact)
		require.Equal(t, 0, n)
	})

	t.Run("exhaustion is fused", func(t *testing.T) {
		ma, _, _ := spec.Subject(t, length)

		for i := 0; i < length; i++ {
			_, _, ok, err := de.NextEntry[string, any](ma)
			require.Nil(t, err)
			require.True(t, ok)
		}

		for i := 0; i < 3; i++ {
			_, ok, err := de.NextKey[string](ma)
			require.Nil(t, err)
			require.False(t, ok)
		}
	})
}
