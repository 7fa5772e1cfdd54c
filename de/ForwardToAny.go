package de

// ForwardToAny satisfies every shape specific Deserializer method by
// discarding the expectation and delegating to DeserializeAny.
//
// Self-describing formats do not care what hint the caller gives them,
// they dispatch on the data they can tell is in the input. Embedding
// ForwardToAny spares such formats from writing the repetitive one line
// methods; only DeserializeAny and IsHumanReadable remain to implement:
//
//	type MyFormat struct {
//		de.ForwardToAny
//		...
//	}
//
//	func NewMyFormat(...) *MyFormat {
//		d := &MyFormat{...}
//		d.ForwardToAny = de.ForwardTo(d)
//		return d
//	}
//
// The lazy iteration entry point is deliberately not forwarded:
// forwarding DeserializeIter to DeserializeAny would silently materialize
// the whole sequence eagerly, defeating its purpose. The forwarded
// implementation instead returns a cursor that reports ErrIterUnsupported
// on its first pull, without invoking DeserializeAny at all; formats that
// want real laziness shadow DeserializeIter explicitly.
type ForwardToAny struct {
	Any AnyDeserializer
}

// ForwardTo builds the forwarding layer for the given self-describing format.
func ForwardTo(any AnyDeserializer) ForwardToAny {
	return ForwardToAny{Any: any}
}

func (f ForwardToAny) DeserializeBool(v Visitor) (any, error) { return f.Any.DeserializeAny(v) }

func (f ForwardToAny) DeserializeInt8(v Visitor) (any, error) { return f.Any.DeserializeAny(v) }

func (f ForwardToAny) DeserializeInt16(v Visitor) (any, error) { return f.Any.DeserializeAny(v) }

func (f ForwardToAny) DeserializeInt32(v Visitor) (any, error) { return f.Any.DeserializeAny(v) }

func (f ForwardToAny) DeserializeInt64(v Visitor) (any, error) { return f.Any.DeserializeAny(v) }

func (f ForwardToAny) DeserializeUint8(v Visitor) (any, error) { return f.Any.DeserializeAny(v) }

func (f ForwardToAny) DeserializeUint16(v Visitor) (any, error) { return f.Any.DeserializeAny(v) }

func (f ForwardToAny) DeserializeUint32(v Visitor) (any, error) { return f.Any.DeserializeAny(v) }

func (f ForwardToAny) DeserializeUint64(v Visitor) (any, error) { return f.Any.DeserializeAny(v) }

func (f ForwardToAny) DeserializeFloat32(v Visitor) (any, error) { return f.Any.DeserializeAny(v) }

func (f ForwardToAny) DeserializeFloat64(v Visitor) (any, error) { return f.Any.DeserializeAny(v) }

func (f ForwardToAny) DeserializeString(v Visitor) (any, error) { return f.Any.DeserializeAny(v) }

func (f ForwardToAny) DeserializeBytes(v Visitor) (any, error) { return f.Any.DeserializeAny(v) }

func (f ForwardToAny) DeserializeOption(v Visitor) (any, error) { return f.Any.DeserializeAny(v) }

func (f ForwardToAny) DeserializeSeq(v Visitor) (any, error) { return f.Any.DeserializeAny(v) }

func (f ForwardToAny) DeserializeMap(v Visitor) (any, error) { return f.Any.DeserializeAny(v) }

func (f ForwardToAny) DeserializeStruct(name string, fields []string, v Visitor) (any, error) {
	_, _ = name, fields
	return f.Any.DeserializeAny(v)
}

func (f ForwardToAny) DeserializeEnum(name string, variants []string, v Visitor) (any, error) {
	_, _ = name, variants
	return f.Any.DeserializeAny(v)
}

func (f ForwardToAny) DeserializeIdentifier(v Visitor) (any, error) { return f.Any.DeserializeAny(v) }

func (f ForwardToAny) DeserializeIgnoredAny(v Visitor) (any, error) { return f.Any.DeserializeAny(v) }

// DeserializeIter implements IterDeserializer with a cursor that fails on
// first pull. See the type level documentation for the reasoning.
func (f ForwardToAny) DeserializeIter() (SeqAccess, error) {
	return errSeqAccess{err: ErrIterUnsupported}, nil
}

// errSeqAccess is a cursor that only ever reports its error.
type errSeqAccess struct{ err error }

func (sa errSeqAccess) NextElementSeed(Seed) (any, bool, error) { return nil, false, sa.err }

func (sa errSeqAccess) SizeHint() (int, bool) { return 0, false }
