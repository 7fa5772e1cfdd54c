package de_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ofersa/serde/de"
)

func TestForwardToAny_ShapeHintsGiven_EveryMethodLandsInDeserializeAny(t *testing.T) {
	t.Parallel()

	methods := map[string]func(d de.Deserializer, v de.Visitor) (any, error){
		`bool`:    func(d de.Deserializer, v de.Visitor) (any, error) { return d.DeserializeBool(v) },
		`int8`:    func(d de.Deserializer, v de.Visitor) (any, error) { return d.DeserializeInt8(v) },
		`int16`:   func(d de.Deserializer, v de.Visitor) (any, error) { return d.DeserializeInt16(v) },
		`int32`:   func(d de.Deserializer, v de.Visitor) (any, error) { return d.DeserializeInt32(v) },
		`int64`:   func(d de.Deserializer, v de.Visitor) (any, error) { return d.DeserializeInt64(v) },
		`uint8`:   func(d de.Deserializer, v de.Visitor) (any, error) { return d.DeserializeUint8(v) },
		`uint16`:  func(d de.Deserializer, v de.Visitor) (any, error) { return d.DeserializeUint16(v) },
		`uint32`:  func(d de.Deserializer, v de.Visitor) (any, error) { return d.DeserializeUint32(v) },
		`uint64`:  func(d de.Deserializer, v de.Visitor) (any, error) { return d.DeserializeUint64(v) },
		`float32`: func(d de.Deserializer, v de.Visitor) (any, error) { return d.DeserializeFloat32(v) },
		`float64`: func(d de.Deserializer, v de.Visitor) (any, error) { return d.DeserializeFloat64(v) },
		`string`:  func(d de.Deserializer, v de.Visitor) (any, error) { return d.DeserializeString(v) },
		`bytes`:   func(d de.Deserializer, v de.Visitor) (any, error) { return d.DeserializeBytes(v) },
		`option`:  func(d de.Deserializer, v de.Visitor) (any, error) { return d.DeserializeOption(v) },
		`seq`:     func(d de.Deserializer, v de.Visitor) (any, error) { return d.DeserializeSeq(v) },
		`map`:     func(d de.Deserializer, v de.Visitor) (any, error) { return d.DeserializeMap(v) },
		`struct`: func(d de.Deserializer, v de.Visitor) (any, error) {
			return d.DeserializeStruct(`Note`, []string{`Title`}, v)
		},
		`enum`: func(d de.Deserializer, v de.Visitor) (any, error) {
			return d.DeserializeEnum(`Shape`, []string{`Circle`}, v)
		},
		`identifier`: func(d de.Deserializer, v de.Visitor) (any, error) { return d.DeserializeIdentifier(v) },
		`ignored`:    func(d de.Deserializer, v de.Visitor) (any, error) { return d.DeserializeIgnoredAny(v) },
	}

	for name, call := range methods {
		t.Run(name, func(t *testing.T) {
			d := newScalarFormat(42)

			v, err := call(d, rawIntVisitor{})
			require.Nil(t, err)
			require.Equal(t, int64(42), v)
			require.Equal(t, 1, d.anyCalls)
		})
	}
}

func TestForwardToAny_DecodingThroughShapeHints_SameResultAsDeserializeAny(t *testing.T) {
	t.Parallel()

	var n int
	require.Nil(t, de.Decode(newScalarFormat(42), &n))
	require.Equal(t, 42, n)
}

func TestForwardToAny_IterationEntryPoint_CursorFailsOnEveryPull(t *testing.T) {
	t.Parallel()

	d := newScalarFormat(42)

	sa, err := d.DeserializeIter()
	require.Nil(t, err)

	for i := 0; i < 3; i++ {
		_, _, err := de.NextElement[any](sa)
		require.Equal(t, de.ErrIterUnsupported, err)
	}

	n, exact := sa.SizeHint()
	require.False(t, exact)
	require.Equal(t, 0, n)
	require.Equal(t, 0, d.anyCalls)
}

// rawIntVisitor accepts integers and passes them through untouched.
type rawIntVisitor struct{ de.BaseVisitor }

func (rawIntVisitor) VisitInt(v int64) (any, error) { return v, nil }
