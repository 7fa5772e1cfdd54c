package de

// Seed is a stateful "deserialize into" capability:
// it carries per element context through composite deserialization,
// so an outer level can determine how inner elements are interpreted
// without allocating a fresh visitor for each one.
type Seed interface {
	// DeserializeFrom spends the given Deserializer and produces a value.
	DeserializeFrom(d Deserializer) (any, error)
}

// SeedFunc enables anonymous functions to be used as a Seed.
type SeedFunc func(d Deserializer) (any, error)

func (fn SeedFunc) DeserializeFrom(d Deserializer) (any, error) { return fn(d) }

// SeedOf returns the stateless Seed for T, deserializing through Decode.
func SeedOf[T any]() Seed {
	return SeedFunc(func(d Deserializer) (any, error) {
		var v T
		if err := Decode(d, &v); err != nil {
			return nil, err
		}
		return v, nil
	})
}

//go:generate mockgen -destination seqaccess_mocks_test.go -package de_test github.com/ofersa/serde/de SeqAccess

// SeqAccess is a pull based cursor over the elements of a sequence,
// supplied by a Deserializer to VisitSeq for the duration of one
// composite value's deserialization.
//
// The cursor must be fused: once it reports no more elements,
// every subsequent call must report the same.
type SeqAccess interface {
	// NextElementSeed deserializes the next element with the seed.
	// ok is false exactly once iteration is exhausted, and stays false.
	NextElementSeed(seed Seed) (v any, ok bool, err error)
	// SizeHint estimates the remaining element count.
	// (0, false) means the count is unknown.
	SizeHint() (int, bool)
}

// MapAccess is a pull based cursor over the entries of a map or struct.
// Key and value reads must alternate: requesting a value without a preceding
// successful key read is a programming error reported as ErrValueWithoutKey,
// distinctly from data errors.
type MapAccess interface {
	// NextKeySeed deserializes the next entry's key with the seed.
	// ok is false exactly once iteration is exhausted, and stays false.
	NextKeySeed(seed Seed) (k any, ok bool, err error)
	// NextValueSeed deserializes the value belonging to the last read key.
	NextValueSeed(seed Seed) (v any, err error)
	// SizeHint estimates the remaining entry count.
	// (0, false) means the count is unknown.
	SizeHint() (int, bool)
}

// VariantAccess gives a visitor the name and payload of an enum value.
type VariantAccess interface {
	// VariantName returns the name of the selected variant.
	VariantName() (string, error)
	// VariantValue deserializes the variant payload with the seed.
	// Unit variants report ok as false.
	VariantValue(seed Seed) (v any, ok bool, err error)
}

// NextElement is the stateless convenience form of SeqAccess.NextElementSeed.
func NextElement[T any](sa SeqAccess) (T, bool, error) {
	v, ok, err := sa.NextElementSeed(SeedOf[T]())
	if err != nil || !ok {
		var zero T
		return zero, ok, err
	}
	return v.(T), true, nil
}

// NextKey is the stateless convenience form of MapAccess.NextKeySeed.
func NextKey[T any](ma MapAccess) (T, bool, error) {
	k, ok, err := ma.NextKeySeed(SeedOf[T]())
	if err != nil || !ok {
		var zero T
		return zero, ok, err
	}
	return k.(T), true, nil
}

// NextValue is the stateless convenience form of MapAccess.NextValueSeed.
func NextValue[T any](ma MapAccess) (T, error) {
	v, err := ma.NextValueSeed(SeedOf[T]())
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

// NextEntry reads the next key and its value in one call.
func NextEntry[K, V any](ma MapAccess) (K, V, bool, error) {
	var zeroV V
	k, ok, err := NextKey[K](ma)
	if err != nil || !ok {
		return k, zeroV, ok, err
	}
	v, err := NextValue[V](ma)
	if err != nil {
		return k, zeroV, false, err
	}
	return k, v, true, nil
}
