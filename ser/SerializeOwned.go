package ser

// OwnedSerializable is implemented by values that present themselves to a
// Serializer while giving up ownership of their internals, letting the
// serializer steal buffers instead of copying them. The value must not be
// used after a successful SerializeOwnedTo call.
type OwnedSerializable interface {
	SerializeOwnedTo(s Serializer) error
}

// SerializeOwned presents the value through its owned path when it has one
// and falls back to Serialize otherwise, so every serializable value is also
// owned-serializable and both paths produce identical output.
func SerializeOwned(s Serializer, v any) error {
	if os, ok := v.(OwnedSerializable); ok {
		return os.SerializeOwnedTo(s)
	}
	return Serialize(s, v)
}

// OwnedSerializer is an optional Serializer capability: an entry point that
// receives the value itself rather than a borrowed view of it.
type OwnedSerializer interface {
	SerializeOwnedValue(v any) error
}

// OwnedValue routes the value through the serializer's owned entry point.
// Serializers without one report ErrOwnedNotSupported instead of guessing.
func OwnedValue(s Serializer, v any) error {
	if os, ok := s.(OwnedSerializer); ok {
		return os.SerializeOwnedValue(v)
	}
	return ErrOwnedNotSupported
}
