// Package de defines the deserialization half of the serde protocol:
// the Deserializer contract a data format implements,
// the Visitor callback interface a value constructor implements,
// and the pull based cursors that connect the two for composite values.
package de

import "github.com/ofersa/serde"

// Deserializer is the format side of the deserialization double dispatch.
//
// Each method expresses the shape the caller expects to find in the input,
// takes a Visitor that knows how to build a value out of that shape,
// and invokes exactly one of the visitor's methods, or fails.
// A Deserializer represents a single value of the input
// and is spent by whichever Deserialize method is called on it.
//
// Self-describing formats implement DeserializeAny by inspecting the input
// and dispatching on what they actually find, and can satisfy the remaining
// shape methods by embedding ForwardToAny.
// Schema driven formats implement each shape method for real
// and typically make DeserializeAny return an error instead.
type Deserializer interface {
	// DeserializeAny asks the format to dispatch based on the input itself,
	// ignoring any expectation the caller may have.
	DeserializeAny(v Visitor) (any, error)

	DeserializeBool(v Visitor) (any, error)
	DeserializeInt8(v Visitor) (any, error)
	DeserializeInt16(v Visitor) (any, error)
	DeserializeInt32(v Visitor) (any, error)
	DeserializeInt64(v Visitor) (any, error)
	DeserializeUint8(v Visitor) (any, error)
	DeserializeUint16(v Visitor) (any, error)
	DeserializeUint32(v Visitor) (any, error)
	DeserializeUint64(v Visitor) (any, error)
	DeserializeFloat32(v Visitor) (any, error)
	DeserializeFloat64(v Visitor) (any, error)
	DeserializeString(v Visitor) (any, error)
	DeserializeBytes(v Visitor) (any, error)

	// DeserializeOption expects an optional value,
	// and calls either VisitNil or VisitSome on the visitor.
	DeserializeOption(v Visitor) (any, error)
	// DeserializeSeq expects a sequence and hands a SeqAccess cursor to VisitSeq.
	DeserializeSeq(v Visitor) (any, error)
	// DeserializeMap expects a map and hands a MapAccess cursor to VisitMap.
	DeserializeMap(v Visitor) (any, error)
	// DeserializeStruct expects a struct with the given name and field names.
	// Formats without a struct notion present it through VisitMap.
	DeserializeStruct(name string, fields []string, v Visitor) (any, error)
	// DeserializeEnum expects one of the named variants of the named enum.
	DeserializeEnum(name string, variants []string, v Visitor) (any, error)
	// DeserializeIdentifier expects a struct field name or enum variant name.
	DeserializeIdentifier(v Visitor) (any, error)
	// DeserializeIgnoredAny consumes and discards whatever value comes next.
	DeserializeIgnoredAny(v Visitor) (any, error)

	// IsHumanReadable reports whether the format is textual for humans,
	// allowing types to pick between a readable and a compact representation.
	IsHumanReadable() bool
}

// AnyDeserializer is the minimal surface a self-describing format must provide.
// ForwardToAny delegates every shape specific method to it.
type AnyDeserializer interface {
	DeserializeAny(v Visitor) (any, error)
}

// IterDeserializer is an optional capability of a Deserializer
// that can expose its sequence input as a lazily pulled cursor,
// without buffering the whole value first.
//
// Formats that do not implement it still work with Iter through the
// default DeserializeSeq based path, but the laziness of that path is
// best effort and format dependent.
type IterDeserializer interface {
	// DeserializeIter spends the deserializer and returns a cursor over
	// its sequence input. The cursor stays valid after this call returns.
	DeserializeIter() (SeqAccess, error)
}

// Deserializable is implemented by types that can populate themselves
// from a Deserializer. Decode prefers it over the reflection based path.
type Deserializable interface {
	DeserializeFrom(d Deserializer) error
}

const (
	// ErrValueWithoutKey signals a programming error in map consumption:
	// NextValueSeed was called without a preceding successful key read.
	ErrValueWithoutKey serde.Error = "map value requested before reading its key"
	// ErrIterUnsupported is reported by cursors of formats that forward their
	// shape methods to DeserializeAny without implementing lazy iteration.
	ErrIterUnsupported serde.Error = "lazy sequence iteration is not supported by this deserializer"
)
