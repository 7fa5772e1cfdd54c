package ser_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ofersa/serde"
	"github.com/ofersa/serde/ser"
)

func serializeToTree(t *testing.T, v any) any {
	t.Helper()
	s := ser.NewValueSerializer()
	require.Nil(t, ser.Serialize(s, v))
	return s.Value()
}

func TestSerialize_Scalars_CanonicalTreeBuilt(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		in       any
		expected any
	}{
		`nil`:           {in: nil, expected: nil},
		`bool`:          {in: true, expected: true},
		`int widened`:   {in: int16(-3), expected: int64(-3)},
		`uint widened`:  {in: uint8(3), expected: uint64(3)},
		`float widened`: {in: float32(0.5), expected: float64(0.5)},
		`string`:        {in: `hy`, expected: `hy`},
		`bytes`:         {in: []byte{1, 2}, expected: []byte{1, 2}},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, c.expected, serializeToTree(t, c.in))
		})
	}
}

func TestSerialize_BytesRetained_InputIsCopied(t *testing.T) {
	t.Parallel()

	src := []byte(`abc`)
	tree := serializeToTree(t, src)

	src[0] = 'x'
	require.Equal(t, []byte(`abc`), tree)
}

func TestSerialize_Composites_CanonicalTreeBuilt(t *testing.T) {
	t.Parallel()

	t.Run("slice becomes a sequence", func(t *testing.T) {
		require.Equal(t, []any{int64(1), int64(2)}, serializeToTree(t, []int{1, 2}))
	})

	t.Run("map keeps string keys", func(t *testing.T) {
		require.Equal(t,
			map[string]any{`a`: int64(1), `b`: int64(2)},
			serializeToTree(t, map[string]int{`a`: 1, `b`: 2}))
	})

	t.Run("non string keys fall back to the generic map", func(t *testing.T) {
		require.Equal(t,
			map[any]any{int64(1): `one`},
			serializeToTree(t, map[int]string{1: `one`}))
	})

	t.Run("struct becomes a field map", func(t *testing.T) {
		type Note struct {
			Title string
			Count int
		}
		require.Equal(t,
			map[string]any{`Title`: `groceries`, `Count`: int64(3)},
			serializeToTree(t, Note{Title: `groceries`, Count: 3}))
	})

	t.Run("nil pointer becomes an absent optional", func(t *testing.T) {
		var p *int
		require.Nil(t, serializeToTree(t, p))
	})

	t.Run("present pointer dissolves into its payload", func(t *testing.T) {
		n := 42
		require.Equal(t, int64(42), serializeToTree(t, &n))
	})
}

func TestSerialize_Variants_EveryPayloadShapeSupported(t *testing.T) {
	t.Parallel()

	t.Run("unit", func(t *testing.T) {
		in := serde.Variant{Name: `Shape`, Variant: `Point`}
		require.Equal(t, in, serializeToTree(t, in))
	})

	t.Run("newtype", func(t *testing.T) {
		in := serde.Variant{Name: `Shape`, Variant: `Circle`, Value: 5}
		require.Equal(t,
			serde.Variant{Name: `Shape`, Variant: `Circle`, Value: int64(5)},
			serializeToTree(t, in))
	})

	t.Run("sequence payload", func(t *testing.T) {
		in := serde.Variant{Name: `Shape`, Variant: `Polygon`, Value: []any{1, 2}}
		require.Equal(t,
			serde.Variant{Name: `Shape`, Variant: `Polygon`, Value: []any{int64(1), int64(2)}},
			serializeToTree(t, in))
	})

	t.Run("struct payload", func(t *testing.T) {
		in := serde.Variant{Name: `Shape`, Variant: `Rect`, Value: map[string]any{`W`: 2, `H`: 3}}
		require.Equal(t,
			serde.Variant{Name: `Shape`, Variant: `Rect`, Value: map[string]any{`W`: int64(2), `H`: int64(3)}},
			serializeToTree(t, in))
	})
}

func TestSerialize_UnsupportedValue_ErrorReturned(t *testing.T) {
	t.Parallel()

	s := ser.NewValueSerializer()
	require.NotNil(t, ser.Serialize(s, make(chan int)))
}

func TestSeqSerializer_ElementFails_FirstErrorLatches(t *testing.T) {
	t.Parallel()

	s := ser.NewValueSerializer()
	seq, err := s.SerializeSeq(3)
	require.Nil(t, err)

	require.Nil(t, seq.SerializeElement(1))

	bad := seq.SerializeElement(make(chan int))
	require.NotNil(t, bad)

	// the error sticks for every later call, including a valid element and End
	require.Equal(t, bad, seq.SerializeElement(2))
	require.Equal(t, bad, seq.End())
	require.Nil(t, s.Value())
}

func TestMapSerializer_ValueBeforeKey_ProtocolErrorReturned(t *testing.T) {
	t.Parallel()

	s := ser.NewValueSerializer()
	m, err := s.SerializeMap(1)
	require.Nil(t, err)

	require.Equal(t, ser.ErrValueWithoutKey, m.SerializeValue(1))
	require.Equal(t, ser.ErrValueWithoutKey, m.End())
}

func TestMapSerializer_EachKeyPermitsExactlyOneValue(t *testing.T) {
	t.Parallel()

	s := ser.NewValueSerializer()
	m, err := s.SerializeMap(1)
	require.Nil(t, err)

	require.Nil(t, m.SerializeKey(`k`))
	require.Nil(t, m.SerializeValue(1))
	require.Equal(t, ser.ErrValueWithoutKey, m.SerializeValue(2))
}

func TestMapSerializer_KeySerializesToAnUnhashableTree_ErrorReturned(t *testing.T) {
	t.Parallel()

	t.Run("array keyed Go map walked reflectively", func(t *testing.T) {
		s := ser.NewValueSerializer()
		err := ser.Serialize(s, map[[2]int]string{{1, 2}: `a`})
		require.True(t, errors.Is(err, ser.ErrUnhashableKey))
		require.Nil(t, s.Value())
	})

	t.Run("byte string key submitted to the accumulator", func(t *testing.T) {
		s := ser.NewValueSerializer()
		m, err := s.SerializeMap(1)
		require.Nil(t, err)

		require.Nil(t, m.SerializeKey([]byte(`k`)))
		require.Nil(t, m.SerializeValue(1))
		require.Equal(t, ser.ErrUnhashableKey, m.End())
		require.Nil(t, s.Value())
	})
}

func TestSerializeEntry_KeyAndValueSubmittedTogether(t *testing.T) {
	t.Parallel()

	s := ser.NewValueSerializer()
	m, err := s.SerializeMap(2)
	require.Nil(t, err)

	require.Nil(t, ser.SerializeEntry(m, `a`, 1))
	require.Nil(t, ser.SerializeEntry(m, `b`, 2))
	require.Nil(t, m.End())
	require.Equal(t, map[string]any{`a`: int64(1), `b`: int64(2)}, s.Value())
}

func TestSerializable_CustomPresentation_TakesPrecedence(t *testing.T) {
	t.Parallel()

	require.Equal(t, `custom:hy`, serializeToTree(t, customNote{text: `hy`}))
}

func TestSerializer_UnknownLengthSequence_AccumulatorStillCommits(t *testing.T) {
	t.Parallel()

	s := ser.NewValueSerializer()
	seq, err := s.SerializeSeq(-1)
	require.Nil(t, err)

	require.Nil(t, seq.SerializeElement(1))
	require.Nil(t, seq.SerializeElement(2))
	require.Nil(t, seq.End())
	require.Equal(t, []any{int64(1), int64(2)}, s.Value())
}

// customNote hides its internals behind a prefixed string presentation.
type customNote struct {
	text string
}

func (n customNote) SerializeTo(s ser.Serializer) error {
	return s.SerializeString(`custom:` + n.text)
}
