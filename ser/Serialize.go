package ser

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/ofersa/serde"
)

// Serialize presents the given value to the Serializer.
//
// Values implementing Serializable present themselves; builtin scalars,
// byte slices, slices, arrays, maps, structs, pointers (as optionals) and
// serde.Variant values are walked reflectively. Map entries are emitted in
// ascending formatted key order so output is deterministic.
func Serialize(s Serializer, v any) error {
	if v == nil {
		return s.SerializeNil()
	}
	if sz, ok := v.(Serializable); ok {
		return sz.SerializeTo(s)
	}
	switch v := v.(type) {
	case bool:
		return s.SerializeBool(v)
	case int:
		return s.SerializeInt64(int64(v))
	case int8:
		return s.SerializeInt8(v)
	case int16:
		return s.SerializeInt16(v)
	case int32:
		return s.SerializeInt32(v)
	case int64:
		return s.SerializeInt64(v)
	case uint:
		return s.SerializeUint64(uint64(v))
	case uint8:
		return s.SerializeUint8(v)
	case uint16:
		return s.SerializeUint16(v)
	case uint32:
		return s.SerializeUint32(v)
	case uint64:
		return s.SerializeUint64(v)
	case float32:
		return s.SerializeFloat32(v)
	case float64:
		return s.SerializeFloat64(v)
	case string:
		return s.SerializeString(v)
	case []byte:
		return s.SerializeBytes(v)
	case serde.Variant:
		return serializeVariant(s, v)
	}
	return serializeReflected(s, reflect.ValueOf(v))
}

func serializeReflected(s Serializer, rv reflect.Value) error {
	switch rv.Kind() {
	case reflect.Bool:
		return s.SerializeBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return serializeIntKind(s, rv)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return serializeUintKind(s, rv)
	case reflect.Float32:
		return s.SerializeFloat32(float32(rv.Float()))
	case reflect.Float64:
		return s.SerializeFloat64(rv.Float())
	case reflect.String:
		return s.SerializeString(rv.String())
	case reflect.Ptr:
		if rv.IsNil() {
			return s.SerializeNil()
		}
		return s.SerializeSome(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
			return s.SerializeBytes(rv.Bytes())
		}
		return serializeSeq(s, rv)
	case reflect.Map:
		return serializeMap(s, rv)
	case reflect.Struct:
		return serializeStruct(s, rv)
	default:
		return fmt.Errorf("ser: unsupported type %s", rv.Type())
	}
}

func serializeIntKind(s Serializer, rv reflect.Value) error {
	switch rv.Type().Bits() {
	case 8:
		return s.SerializeInt8(int8(rv.Int()))
	case 16:
		return s.SerializeInt16(int16(rv.Int()))
	case 32:
		return s.SerializeInt32(int32(rv.Int()))
	default:
		return s.SerializeInt64(rv.Int())
	}
}

func serializeUintKind(s Serializer, rv reflect.Value) error {
	switch rv.Type().Bits() {
	case 8:
		return s.SerializeUint8(uint8(rv.Uint()))
	case 16:
		return s.SerializeUint16(uint16(rv.Uint()))
	case 32:
		return s.SerializeUint32(uint32(rv.Uint()))
	default:
		return s.SerializeUint64(rv.Uint())
	}
}

func serializeSeq(s Serializer, rv reflect.Value) error {
	seq, err := s.SerializeSeq(rv.Len())
	if err != nil {
		return err
	}
	for i := 0; i < rv.Len(); i++ {
		if err := seq.SerializeElement(rv.Index(i).Interface()); err != nil {
			return err
		}
	}
	return seq.End()
}

func serializeMap(s Serializer, rv reflect.Value) error {
	m, err := s.SerializeMap(rv.Len())
	if err != nil {
		return err
	}
	keys := rv.MapKeys()
	sort.Slice(keys, func(i, j int) bool {
		return fmt.Sprint(keys[i].Interface()) < fmt.Sprint(keys[j].Interface())
	})
	for _, k := range keys {
		if err := m.SerializeKey(k.Interface()); err != nil {
			return err
		}
		if err := m.SerializeValue(rv.MapIndex(k).Interface()); err != nil {
			return err
		}
	}
	return m.End()
}

func serializeStruct(s Serializer, rv reflect.Value) error {
	t := rv.Type()
	var fields []int
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).PkgPath != `` {
			continue
		}
		fields = append(fields, i)
	}
	st, err := s.SerializeStruct(t.Name(), len(fields))
	if err != nil {
		return err
	}
	for _, i := range fields {
		if err := st.SerializeField(t.Field(i).Name, rv.Field(i).Interface()); err != nil {
			return err
		}
	}
	return st.End()
}

func serializeVariant(s Serializer, v serde.Variant) error {
	switch payload := v.Value.(type) {
	case nil:
		return s.SerializeUnitVariant(v.Name, v.Variant)
	case []any:
		seq, err := s.SerializeSeqVariant(v.Name, v.Variant, len(payload))
		if err != nil {
			return err
		}
		for _, e := range payload {
			if err := seq.SerializeElement(e); err != nil {
				return err
			}
		}
		return seq.End()
	case map[string]any:
		st, err := s.SerializeStructVariant(v.Name, v.Variant, len(payload))
		if err != nil {
			return err
		}
		keys := make([]string, 0, len(payload))
		for k := range payload {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if err := st.SerializeField(k, payload[k]); err != nil {
				return err
			}
		}
		return st.End()
	default:
		return s.SerializeNewtypeVariant(v.Name, v.Variant, payload)
	}
}
