// Package ser holds the serialization half of the data model protocol.
//
// A Serializer receives a value shape by shape through one method per
// logical shape; composite shapes hand back an accumulator that collects
// elements and commits on End. Values drive the dispatch either by
// implementing Serializable or by being walked reflectively by Serialize.
package ser

import (
	"github.com/ofersa/serde"
)

const (
	// ErrValueWithoutKey signals a programming error in map building:
	// a value was submitted before its key.
	ErrValueWithoutKey serde.Error = "map value serialized before its key"
	// ErrOwnedNotSupported is reported when an owned value is routed to a
	// serializer that has no owned entry point.
	ErrOwnedNotSupported serde.Error = "owned serialization is not supported by this serializer"
	// ErrUnhashableKey is reported when a map key serializes to a canonical
	// value that cannot be used as a Go map key.
	ErrUnhashableKey serde.Error = "map key does not serialize to a hashable value"
)

// Serializer is the format side of the serialization double dispatch.
// Exactly one Serialize method runs per value; composite methods return an
// accumulator whose End call completes the value.
//
// A negative length passed to a composite method means the final element
// count is not known up front.
type Serializer interface {
	SerializeBool(v bool) error
	SerializeInt8(v int8) error
	SerializeInt16(v int16) error
	SerializeInt32(v int32) error
	SerializeInt64(v int64) error
	SerializeUint8(v uint8) error
	SerializeUint16(v uint16) error
	SerializeUint32(v uint32) error
	SerializeUint64(v uint64) error
	SerializeFloat32(v float32) error
	SerializeFloat64(v float64) error
	SerializeString(v string) error
	// SerializeBytes may retain the slice only until it returns;
	// formats that buffer must copy.
	SerializeBytes(v []byte) error

	// SerializeNil records an absent optional value.
	SerializeNil() error
	// SerializeSome records a present optional value.
	SerializeSome(v any) error

	// SerializeUnitVariant records a payload-free enum variant.
	SerializeUnitVariant(name, variant string) error
	// SerializeNewtypeVariant records an enum variant wrapping one value.
	SerializeNewtypeVariant(name, variant string, v any) error

	SerializeSeq(length int) (SeqSerializer, error)
	SerializeMap(length int) (MapSerializer, error)
	SerializeStruct(name string, length int) (StructSerializer, error)
	SerializeSeqVariant(name, variant string, length int) (SeqSerializer, error)
	SerializeStructVariant(name, variant string, length int) (StructSerializer, error)

	IsHumanReadable() bool
}

// SeqSerializer accumulates the elements of one sequence.
// The first element error latches: every later call reports it again
// and End never commits a partial sequence.
type SeqSerializer interface {
	SerializeElement(v any) error
	End() error
}

// MapSerializer accumulates the entries of one map.
// Key and value submissions must alternate, key first;
// breaking the order is reported as ErrValueWithoutKey.
type MapSerializer interface {
	SerializeKey(k any) error
	SerializeValue(v any) error
	End() error
}

// StructSerializer accumulates the fields of one struct.
type StructSerializer interface {
	SerializeField(name string, v any) error
	End() error
}

// SerializeEntry submits a key and its value in one call.
func SerializeEntry(m MapSerializer, k, v any) error {
	if err := m.SerializeKey(k); err != nil {
		return err
	}
	return m.SerializeValue(v)
}

// Serializable is implemented by values that know how to present
// themselves to a Serializer.
type Serializable interface {
	SerializeTo(s Serializer) error
}
