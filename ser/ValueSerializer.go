package ser

import (
	"github.com/ofersa/serde"
)

// ValueSerializer accumulates the serialized value as the canonical
// in-memory tree: nil, bool, int64, uint64, float64, string, []byte,
// []any, map[string]any when every key is a string and map[any]any
// otherwise, and serde.Variant for enums. The tree is exactly what a
// de.ValueDeserializer replays, which makes the pair a roundtrip backend.
type ValueSerializer struct {
	value any
}

func NewValueSerializer() *ValueSerializer {
	return &ValueSerializer{}
}

// Value returns the accumulated tree.
func (s *ValueSerializer) Value() any { return s.value }

func (s *ValueSerializer) IsHumanReadable() bool { return true }

func (s *ValueSerializer) SerializeBool(v bool) error { return s.commit(v) }

func (s *ValueSerializer) SerializeInt8(v int8) error { return s.commit(int64(v)) }

func (s *ValueSerializer) SerializeInt16(v int16) error { return s.commit(int64(v)) }

func (s *ValueSerializer) SerializeInt32(v int32) error { return s.commit(int64(v)) }

func (s *ValueSerializer) SerializeInt64(v int64) error { return s.commit(v) }

func (s *ValueSerializer) SerializeUint8(v uint8) error { return s.commit(uint64(v)) }

func (s *ValueSerializer) SerializeUint16(v uint16) error { return s.commit(uint64(v)) }

func (s *ValueSerializer) SerializeUint32(v uint32) error { return s.commit(uint64(v)) }

func (s *ValueSerializer) SerializeUint64(v uint64) error { return s.commit(v) }

func (s *ValueSerializer) SerializeFloat32(v float32) error { return s.commit(float64(v)) }

func (s *ValueSerializer) SerializeFloat64(v float64) error { return s.commit(v) }

func (s *ValueSerializer) SerializeString(v string) error { return s.commit(v) }

func (s *ValueSerializer) SerializeBytes(v []byte) error {
	return s.commit(append([]byte(nil), v...))
}

func (s *ValueSerializer) SerializeNil() error { return s.commit(nil) }

// SerializeSome stores the payload transparently, mirroring how the value
// deserializer dissolves present optionals.
func (s *ValueSerializer) SerializeSome(v any) error {
	tree, err := subtree(v)
	if err != nil {
		return err
	}
	return s.commit(tree)
}

func (s *ValueSerializer) SerializeUnitVariant(name, variant string) error {
	return s.commit(serde.Variant{Name: name, Variant: variant})
}

func (s *ValueSerializer) SerializeNewtypeVariant(name, variant string, v any) error {
	tree, err := subtree(v)
	if err != nil {
		return err
	}
	return s.commit(serde.Variant{Name: name, Variant: variant, Value: tree})
}

func (s *ValueSerializer) SerializeSeq(length int) (SeqSerializer, error) {
	return &valueSeq{owner: s, values: make([]any, 0, max(length, 0))}, nil
}

func (s *ValueSerializer) SerializeMap(length int) (MapSerializer, error) {
	return &valueMap{owner: s, entries: make([]mapEntry, 0, max(length, 0))}, nil
}

func (s *ValueSerializer) SerializeStruct(name string, length int) (StructSerializer, error) {
	_ = name
	return &valueStruct{owner: s, fields: make(map[string]any, max(length, 0))}, nil
}

func (s *ValueSerializer) SerializeSeqVariant(name, variant string, length int) (SeqSerializer, error) {
	return &valueSeq{
		owner:   s,
		variant: &serde.Variant{Name: name, Variant: variant},
		values:  make([]any, 0, max(length, 0)),
	}, nil
}

func (s *ValueSerializer) SerializeStructVariant(name, variant string, length int) (StructSerializer, error) {
	return &valueStruct{
		owner:   s,
		variant: &serde.Variant{Name: name, Variant: variant},
		fields:  make(map[string]any, max(length, 0)),
	}, nil
}

// SerializeOwnedValue implements OwnedSerializer. The tree builder keeps no
// borrowed views, so the owned path is the regular path.
func (s *ValueSerializer) SerializeOwnedValue(v any) error {
	return SerializeOwned(s, v)
}

func (s *ValueSerializer) commit(v any) error {
	s.value = v
	return nil
}

func subtree(v any) (any, error) {
	sub := NewValueSerializer()
	if err := Serialize(sub, v); err != nil {
		return nil, err
	}
	return sub.Value(), nil
}

var _ OwnedSerializer = (*ValueSerializer)(nil)

type valueSeq struct {
	owner   *ValueSerializer
	variant *serde.Variant
	values  []any
	err     error
}

func (seq *valueSeq) SerializeElement(v any) error {
	if seq.err != nil {
		return seq.err
	}
	tree, err := subtree(v)
	if err != nil {
		seq.err = err
		return err
	}
	seq.values = append(seq.values, tree)
	return nil
}

func (seq *valueSeq) End() error {
	if seq.err != nil {
		return seq.err
	}
	if seq.variant != nil {
		out := *seq.variant
		out.Value = seq.values
		return seq.owner.commit(out)
	}
	return seq.owner.commit(seq.values)
}

type mapEntry struct{ key, value any }

type valueMap struct {
	owner      *ValueSerializer
	entries    []mapEntry
	pendingKey any
	keyReady   bool
	err        error
}

func (m *valueMap) SerializeKey(k any) error {
	if m.err != nil {
		return m.err
	}
	tree, err := subtree(k)
	if err != nil {
		m.err = err
		return err
	}
	m.pendingKey = tree
	m.keyReady = true
	return nil
}

func (m *valueMap) SerializeValue(v any) error {
	if m.err != nil {
		return m.err
	}
	if !m.keyReady {
		m.err = ErrValueWithoutKey
		return m.err
	}
	tree, err := subtree(v)
	if err != nil {
		m.err = err
		return err
	}
	m.entries = append(m.entries, mapEntry{key: m.pendingKey, value: tree})
	m.keyReady = false
	return nil
}

func (m *valueMap) End() error {
	if m.err != nil {
		return m.err
	}
	stringKeys := true
	for _, e := range m.entries {
		if _, ok := e.key.(string); !ok {
			stringKeys = false
			break
		}
	}
	if stringKeys {
		out := make(map[string]any, len(m.entries))
		for _, e := range m.entries {
			out[e.key.(string)] = e.value
		}
		return m.owner.commit(out)
	}
	out := make(map[any]any, len(m.entries))
	for _, e := range m.entries {
		if !hashableKey(e.key) {
			m.err = ErrUnhashableKey
			return m.err
		}
		out[e.key] = e.value
	}
	return m.owner.commit(out)
}

// hashableKey reports whether a canonical tree value can be used as a Go map key.
func hashableKey(k any) bool {
	switch k := k.(type) {
	case []byte, []any, map[string]any, map[any]any:
		return false
	case serde.Variant:
		return k.Value == nil || hashableKey(k.Value)
	}
	return true
}

type valueStruct struct {
	owner   *ValueSerializer
	variant *serde.Variant
	fields  map[string]any
	err     error
}

func (st *valueStruct) SerializeField(name string, v any) error {
	if st.err != nil {
		return st.err
	}
	tree, err := subtree(v)
	if err != nil {
		st.err = err
		return err
	}
	st.fields[name] = tree
	return nil
}

func (st *valueStruct) End() error {
	if st.err != nil {
		return st.err
	}
	if st.variant != nil {
		out := *st.variant
		out.Value = st.fields
		return st.owner.commit(out)
	}
	return st.owner.commit(st.fields)
}

func max(a, b int) int {
	if a < b {
		return b
	}
	return a
}
