// Package serde is a format agnostic serialization and deserialization protocol core.
//
// The package itself knows nothing about concrete wire formats or concrete data structures.
// Instead it defines the contracts both sides must satisfy to interoperate:
//
//   - a data format implements ser.Serializer and de.Deserializer
//   - a data structure implements ser.Serializable and de.Deserializable,
//     or relies on the reflection based ser.Serialize / de.Decode dispatch
//
// The logical data model the two sides meet on is intentionally small:
// bool, int64, uint64, float64, string, bytes, nil/some, sequence, map,
// struct and variant. Width specific entry points on the format side
// (Int8..Int64, Uint8..Uint64, Float32/Float64) exist so schema driven
// formats receive the hint they need; the visitor always receives the
// widened value and normalizes internally.
package serde

// Error is an implementation of the error interface that allows error values
// to be declared as exported package level constants.
//
//	const ErrSomething serde.Error = "something went wrong"
type Error string

// Error implements the error interface.
func (err Error) Error() string { return string(err) }

// Variant is the format independent representation of an enum value:
// a named union case with an optional payload.
//
// The Value field determines the variant flavor:
//
//	nil            unit variant
//	[]any          sequence variant
//	map[string]any struct variant
//	anything else  newtype variant
type Variant struct {
	// Name is the name of the enum type the variant belongs to.
	Name string
	// Variant is the name of the selected case.
	Variant string
	// Value is the payload of the case, nil for unit variants.
	Value any
}
