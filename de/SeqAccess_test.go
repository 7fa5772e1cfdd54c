package de_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/ofersa/serde/de"
)

func TestNextElement_TypedPull_ValueDecodedThroughTheSeed(t *testing.T) {
	t.Parallel()

	sa := de.NewSliceSeq([]any{`a`, `b`})

	v, ok, err := de.NextElement[string](sa)
	require.Nil(t, err)
	require.True(t, ok)
	require.Equal(t, `a`, v)
}

func TestNextEntry_TypedPull_KeyAndValueDecodedTogether(t *testing.T) {
	t.Parallel()

	ma := de.NewMapEntries([]de.Entry{{Key: `count`, Value: 42}})

	k, v, ok, err := de.NextEntry[string, int](ma)
	require.Nil(t, err)
	require.True(t, ok)
	require.Equal(t, `count`, k)
	require.Equal(t, 42, v)

	_, _, ok, err = de.NextEntry[string, int](ma)
	require.Nil(t, err)
	require.False(t, ok)
}

func TestSeedOf_StatelessSeed_DecodesIntoAFreshValueEachTime(t *testing.T) {
	t.Parallel()

	seed := de.SeedOf[int]()

	v, err := seed.DeserializeFrom(de.ValueOf(1))
	require.Nil(t, err)
	require.Equal(t, 1, v)

	v, err = seed.DeserializeFrom(de.ValueOf(2))
	require.Nil(t, err)
	require.Equal(t, 2, v)
}

func TestSeqIterator_EachNextPullsTheCursorExactlyOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sa := NewMockSeqAccess(ctrl)
	gomock.InOrder(
		sa.EXPECT().NextElementSeed(gomock.Any()).Return(1, true, nil),
		sa.EXPECT().NextElementSeed(gomock.Any()).Return(nil, false, nil),
	)

	it := de.IterAccess[int](sa)
	require.True(t, it.Next())
	require.Equal(t, 1, it.Value())
	require.False(t, it.Next())

	// fused: no further cursor pulls happen after exhaustion
	require.False(t, it.Next())
	require.Nil(t, it.Err())
}
