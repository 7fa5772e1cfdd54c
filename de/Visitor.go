package de

// Visitor is the value side of the deserialization double dispatch:
// a set of callbacks, one per logical shape the format may present.
//
// A visitor instance is built right before a Deserialize call and exactly one
// of its Visit methods runs per successful deserialization, producing the
// final value. A visitor that accepts multiple physical representations of
// logically equivalent data simply overrides more than one Visit method and
// normalizes internally; there is no separate coercion layer.
//
// Concrete visitors embed BaseVisitor and override only the shapes they accept.
type Visitor interface {
	// Expecting describes what the visitor accepts, for error messages.
	// Something like "a sequence of integers".
	Expecting() string

	VisitBool(v bool) (any, error)
	// VisitInt receives every signed integer width, widened to int64.
	VisitInt(v int64) (any, error)
	// VisitUint receives every unsigned integer width, widened to uint64.
	VisitUint(v uint64) (any, error)
	// VisitFloat receives float32 and float64 input, widened to float64.
	VisitFloat(v float64) (any, error)
	VisitString(v string) (any, error)
	// VisitBytes receives a byte slice that is only valid until the next
	// protocol call; visitors that retain it must copy it.
	VisitBytes(v []byte) (any, error)

	// VisitNil is called for an absent optional value.
	VisitNil() (any, error)
	// VisitSome is called for a present optional value;
	// the payload is deserialized from the given Deserializer.
	VisitSome(d Deserializer) (any, error)

	// VisitSeq receives a cursor over the elements of a sequence.
	// The visitor decides how much of it to drain; returning early leaves
	// the remaining elements unread, which is not an error.
	VisitSeq(sa SeqAccess) (any, error)
	// VisitMap receives a cursor over the entries of a map or struct.
	VisitMap(ma MapAccess) (any, error)
	// VisitVariant receives access to the variant name and payload of an enum value.
	VisitVariant(va VariantAccess) (any, error)
}

// BaseVisitor is the default Visitor implementation.
// Every Visit method fails with a TypeError built from the Desc description,
// so embedding visitors only override the shapes they accept.
type BaseVisitor struct {
	// Desc is the Expecting description of the embedding visitor.
	Desc string
}

func (b BaseVisitor) Expecting() string {
	if b.Desc == `` {
		return `a value`
	}
	return b.Desc
}

func (b BaseVisitor) unexpected(got string) error {
	return &TypeError{Got: got, Expecting: b.Expecting()}
}

func (b BaseVisitor) VisitBool(v bool) (any, error) {
	return nil, b.unexpected(describeBool(v))
}

func (b BaseVisitor) VisitInt(v int64) (any, error) {
	return nil, b.unexpected(describeInt(v))
}

func (b BaseVisitor) VisitUint(v uint64) (any, error) {
	return nil, b.unexpected(describeUint(v))
}

func (b BaseVisitor) VisitFloat(v float64) (any, error) {
	return nil, b.unexpected(describeFloat(v))
}

func (b BaseVisitor) VisitString(v string) (any, error) {
	return nil, b.unexpected(describeString(v))
}

func (b BaseVisitor) VisitBytes(v []byte) (any, error) {
	return nil, b.unexpected(`a byte slice`)
}

func (b BaseVisitor) VisitNil() (any, error) {
	return nil, b.unexpected(`an absent optional value`)
}

func (b BaseVisitor) VisitSome(d Deserializer) (any, error) {
	return nil, b.unexpected(`a present optional value`)
}

func (b BaseVisitor) VisitSeq(sa SeqAccess) (any, error) {
	return nil, b.unexpected(`a sequence`)
}

func (b BaseVisitor) VisitMap(ma MapAccess) (any, error) {
	return nil, b.unexpected(`a map`)
}

func (b BaseVisitor) VisitVariant(va VariantAccess) (any, error) {
	return nil, b.unexpected(`an enum variant`)
}
