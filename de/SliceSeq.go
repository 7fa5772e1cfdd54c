package de

// SliceSeq is a SeqAccess cursor over an in-memory slice of values.
// Each element is replayed through a ValueDeserializer when pulled,
// so the seed decides how it is interpreted.
type SliceSeq struct {
	values []any
	index  int
}

func NewSliceSeq(values []any) *SliceSeq {
	return &SliceSeq{values: values}
}

// SeqOf builds a SliceSeq from a typed slice.
func SeqOf[T any](values []T) *SliceSeq {
	out := make([]any, 0, len(values))
	for _, v := range values {
		out = append(out, v)
	}
	return NewSliceSeq(out)
}

// NextElementSeed consumes the next element even when the seed rejects it,
// so pulling can continue past a single bad element.
func (sa *SliceSeq) NextElementSeed(seed Seed) (any, bool, error) {
	if sa.index >= len(sa.values) {
		return nil, false, nil
	}
	v := sa.values[sa.index]
	sa.index++
	out, err := seed.DeserializeFrom(ValueOf(v))
	if err != nil {
		return nil, false, err
	}
	return out, true, nil
}

func (sa *SliceSeq) SizeHint() (int, bool) {
	return len(sa.values) - sa.index, true
}
