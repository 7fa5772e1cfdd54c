package de

import (
	"fmt"
	"math"
	"reflect"

	"github.com/ofersa/serde"
)

// Decode populates the value behind ptr from the given Deserializer.
//
// Types implementing Deserializable are asked to populate themselves;
// builtin scalars, byte slices, slices, arrays, maps, pointers (as optionals),
// structs and serde.Variant values are handled through the matching
// Deserializer shape method and a builtin visitor.
func Decode(d Deserializer, ptr any) error {
	if ptr == nil {
		return fmt.Errorf("de: Decode requires a non-nil pointer, got nil")
	}
	if rv := reflect.ValueOf(ptr); rv.Kind() == reflect.Ptr && rv.IsNil() {
		return fmt.Errorf("de: Decode requires a non-nil pointer, got nil %T", ptr)
	}
	if ds, ok := ptr.(Deserializable); ok {
		return ds.DeserializeFrom(d)
	}
	switch p := ptr.(type) {
	case *bool:
		v, err := d.DeserializeBool(newBoolVisitor())
		if err != nil {
			return err
		}
		*p = v.(bool)
		return nil
	case *int:
		v, err := d.DeserializeInt64(newIntVisitor(intSize))
		if err != nil {
			return err
		}
		*p = int(v.(int64))
		return nil
	case *int8:
		v, err := d.DeserializeInt8(newIntVisitor(8))
		if err != nil {
			return err
		}
		*p = int8(v.(int64))
		return nil
	case *int16:
		v, err := d.DeserializeInt16(newIntVisitor(16))
		if err != nil {
			return err
		}
		*p = int16(v.(int64))
		return nil
	case *int32:
		v, err := d.DeserializeInt32(newIntVisitor(32))
		if err != nil {
			return err
		}
		*p = int32(v.(int64))
		return nil
	case *int64:
		v, err := d.DeserializeInt64(newIntVisitor(64))
		if err != nil {
			return err
		}
		*p = v.(int64)
		return nil
	case *uint:
		v, err := d.DeserializeUint64(newUintVisitor(intSize))
		if err != nil {
			return err
		}
		*p = uint(v.(uint64))
		return nil
	case *uint8:
		v, err := d.DeserializeUint8(newUintVisitor(8))
		if err != nil {
			return err
		}
		*p = uint8(v.(uint64))
		return nil
	case *uint16:
		v, err := d.DeserializeUint16(newUintVisitor(16))
		if err != nil {
			return err
		}
		*p = uint16(v.(uint64))
		return nil
	case *uint32:
		v, err := d.DeserializeUint32(newUintVisitor(32))
		if err != nil {
			return err
		}
		*p = uint32(v.(uint64))
		return nil
	case *uint64:
		v, err := d.DeserializeUint64(newUintVisitor(64))
		if err != nil {
			return err
		}
		*p = v.(uint64)
		return nil
	case *float32:
		v, err := d.DeserializeFloat32(newFloatVisitor(32))
		if err != nil {
			return err
		}
		*p = float32(v.(float64))
		return nil
	case *float64:
		v, err := d.DeserializeFloat64(newFloatVisitor(64))
		if err != nil {
			return err
		}
		*p = v.(float64)
		return nil
	case *string:
		v, err := d.DeserializeString(newStringVisitor())
		if err != nil {
			return err
		}
		*p = v.(string)
		return nil
	case *[]byte:
		v, err := d.DeserializeBytes(newBytesVisitor())
		if err != nil {
			return err
		}
		*p = v.([]byte)
		return nil
	case *any:
		v, err := d.DeserializeAny(anyVisitor{})
		if err != nil {
			return err
		}
		*p = v
		return nil
	case *serde.Variant:
		v, err := d.DeserializeEnum(``, nil, newVariantVisitor())
		if err != nil {
			return err
		}
		*p = v.(serde.Variant)
		return nil
	}
	rv := reflect.ValueOf(ptr)
	if rv.Kind() != reflect.Ptr {
		return fmt.Errorf("de: Decode requires a non-nil pointer, got %T", ptr)
	}
	return decodeReflect(d, rv.Elem())
}

const intSize = 32 << (^uint(0) >> 63)

func decodeReflect(d Deserializer, target reflect.Value) error {
	t := target.Type()
	switch t.Kind() {
	case reflect.Bool:
		v, err := d.DeserializeBool(newBoolVisitor())
		if err != nil {
			return err
		}
		target.SetBool(v.(bool))
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, err := deserializeIntKind(d, t)
		if err != nil {
			return err
		}
		target.SetInt(v)
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v, err := deserializeUintKind(d, t)
		if err != nil {
			return err
		}
		target.SetUint(v)
		return nil
	case reflect.Float32:
		v, err := d.DeserializeFloat32(newFloatVisitor(32))
		if err != nil {
			return err
		}
		target.SetFloat(v.(float64))
		return nil
	case reflect.Float64:
		v, err := d.DeserializeFloat64(newFloatVisitor(64))
		if err != nil {
			return err
		}
		target.SetFloat(v.(float64))
		return nil
	case reflect.String:
		v, err := d.DeserializeString(newStringVisitor())
		if err != nil {
			return err
		}
		target.SetString(v.(string))
		return nil
	case reflect.Ptr:
		v, err := d.DeserializeOption(newOptionVisitor(t))
		if err != nil {
			return err
		}
		target.Set(v.(reflect.Value))
		return nil
	case reflect.Slice:
		v, err := d.DeserializeSeq(newSeqVisitor(t))
		if err != nil {
			return err
		}
		target.Set(v.(reflect.Value))
		return nil
	case reflect.Array:
		v, err := d.DeserializeSeq(newArrayVisitor(t))
		if err != nil {
			return err
		}
		target.Set(v.(reflect.Value))
		return nil
	case reflect.Map:
		v, err := d.DeserializeMap(newMapVisitor(t))
		if err != nil {
			return err
		}
		target.Set(v.(reflect.Value))
		return nil
	case reflect.Struct:
		v, err := d.DeserializeStruct(t.Name(), structFieldNames(t), newStructVisitor(t))
		if err != nil {
			return err
		}
		target.Set(v.(reflect.Value))
		return nil
	case reflect.Interface:
		if t.NumMethod() != 0 {
			return fmt.Errorf("de: cannot decode into non-empty interface type %s", t)
		}
		v, err := d.DeserializeAny(anyVisitor{})
		if err != nil {
			return err
		}
		if v == nil {
			target.Set(reflect.Zero(t))
		} else {
			target.Set(reflect.ValueOf(v))
		}
		return nil
	default:
		return fmt.Errorf("de: unsupported decode target type %s", t)
	}
}

func deserializeIntKind(d Deserializer, t reflect.Type) (int64, error) {
	var (
		v   any
		err error
	)
	switch t.Bits() {
	case 8:
		v, err = d.DeserializeInt8(newIntVisitor(8))
	case 16:
		v, err = d.DeserializeInt16(newIntVisitor(16))
	case 32:
		v, err = d.DeserializeInt32(newIntVisitor(32))
	default:
		v, err = d.DeserializeInt64(newIntVisitor(64))
	}
	if err != nil {
		return 0, err
	}
	return v.(int64), nil
}

func deserializeUintKind(d Deserializer, t reflect.Type) (uint64, error) {
	var (
		v   any
		err error
	)
	switch t.Bits() {
	case 8:
		v, err = d.DeserializeUint8(newUintVisitor(8))
	case 16:
		v, err = d.DeserializeUint16(newUintVisitor(16))
	case 32:
		v, err = d.DeserializeUint32(newUintVisitor(32))
	default:
		v, err = d.DeserializeUint64(newUintVisitor(64))
	}
	if err != nil {
		return 0, err
	}
	return v.(uint64), nil
}

// seedForType deserializes one value of the given reflect type.
func seedForType(t reflect.Type) Seed {
	return SeedFunc(func(d Deserializer) (any, error) {
		p := reflect.New(t)
		if err := Decode(d, p.Interface()); err != nil {
			return nil, err
		}
		return p.Elem().Interface(), nil
	})
}

// ignoreSeed consumes and discards one value.
var ignoreSeed = SeedFunc(func(d Deserializer) (any, error) {
	return d.DeserializeIgnoredAny(ignoreVisitor{})
})

// builtin scalar visitors
//
// Their expectation lives in the embedded BaseVisitor's Desc so the
// inherited rejections report it too.

type boolVisitor struct{ BaseVisitor }

func newBoolVisitor() boolVisitor {
	return boolVisitor{BaseVisitor{Desc: `a boolean`}}
}

func (boolVisitor) VisitBool(v bool) (any, error) { return v, nil }

type intVisitor struct {
	BaseVisitor
	bits int
}

func newIntVisitor(bits int) intVisitor {
	return intVisitor{BaseVisitor{Desc: fmt.Sprintf(`a %d-bit signed integer`, bits)}, bits}
}

func (vis intVisitor) VisitInt(v int64) (any, error) {
	if vis.bits < 64 {
		min := int64(-1) << (vis.bits - 1)
		max := int64(1)<<(vis.bits-1) - 1
		if v < min || max < v {
			return nil, &ValueError{Value: describeInt(v), Expecting: vis.Expecting()}
		}
	}
	return v, nil
}

func (vis intVisitor) VisitUint(v uint64) (any, error) {
	if v > math.MaxInt64 {
		return nil, &ValueError{Value: describeUint(v), Expecting: vis.Expecting()}
	}
	return vis.VisitInt(int64(v))
}

type uintVisitor struct {
	BaseVisitor
	bits int
}

func newUintVisitor(bits int) uintVisitor {
	return uintVisitor{BaseVisitor{Desc: fmt.Sprintf(`a %d-bit unsigned integer`, bits)}, bits}
}

func (vis uintVisitor) VisitUint(v uint64) (any, error) {
	if vis.bits < 64 {
		max := uint64(1)<<vis.bits - 1
		if max < v {
			return nil, &ValueError{Value: describeUint(v), Expecting: vis.Expecting()}
		}
	}
	return v, nil
}

func (vis uintVisitor) VisitInt(v int64) (any, error) {
	if v < 0 {
		return nil, &ValueError{Value: describeInt(v), Expecting: vis.Expecting()}
	}
	return vis.VisitUint(uint64(v))
}

type floatVisitor struct {
	BaseVisitor
	bits int
}

func newFloatVisitor(bits int) floatVisitor {
	return floatVisitor{BaseVisitor{Desc: fmt.Sprintf(`a %d-bit floating point number`, bits)}, bits}
}

func (vis floatVisitor) VisitFloat(v float64) (any, error) { return v, nil }

func (vis floatVisitor) VisitInt(v int64) (any, error) { return float64(v), nil }

func (vis floatVisitor) VisitUint(v uint64) (any, error) { return float64(v), nil }

type stringVisitor struct{ BaseVisitor }

func newStringVisitor() stringVisitor {
	return stringVisitor{BaseVisitor{Desc: `a string`}}
}

func (stringVisitor) VisitString(v string) (any, error) { return v, nil }

func (stringVisitor) VisitBytes(v []byte) (any, error) { return string(v), nil }

type bytesVisitor struct{ BaseVisitor }

func newBytesVisitor() bytesVisitor {
	return bytesVisitor{BaseVisitor{Desc: `a byte slice`}}
}

func (bytesVisitor) VisitBytes(v []byte) (any, error) {
	return append([]byte(nil), v...), nil
}

func (bytesVisitor) VisitString(v string) (any, error) { return []byte(v), nil }

// anyVisitor accepts every shape and rebuilds it as the canonical value tree:
// nil, bool, int64, uint64, float64, string, []byte, []any,
// map[string]any (all string keys) or map[any]any, and serde.Variant.
type anyVisitor struct{ BaseVisitor }

func (anyVisitor) Expecting() string { return `any value` }

func (anyVisitor) VisitBool(v bool) (any, error) { return v, nil }

func (anyVisitor) VisitInt(v int64) (any, error) { return v, nil }

func (anyVisitor) VisitUint(v uint64) (any, error) { return v, nil }

func (anyVisitor) VisitFloat(v float64) (any, error) { return v, nil }

func (anyVisitor) VisitString(v string) (any, error) { return v, nil }

func (anyVisitor) VisitBytes(v []byte) (any, error) {
	return append([]byte(nil), v...), nil
}

func (anyVisitor) VisitNil() (any, error) { return nil, nil }

func (anyVisitor) VisitSome(d Deserializer) (any, error) {
	return d.DeserializeAny(anyVisitor{})
}

func (anyVisitor) VisitSeq(sa SeqAccess) (any, error) {
	n, _ := sa.SizeHint()
	out := make([]any, 0, n)
	for {
		v, ok, err := NextElement[any](sa)
		if err != nil {
			return nil, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, v)
	}
}

func (anyVisitor) VisitMap(ma MapAccess) (any, error) {
	type entry struct{ k, v any }
	n, _ := ma.SizeHint()
	entries := make([]entry, 0, n)
	stringKeys := true
	for {
		k, v, ok, err := NextEntry[any, any](ma)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if _, isString := k.(string); !isString {
			stringKeys = false
		}
		entries = append(entries, entry{k: k, v: v})
	}
	if stringKeys {
		out := make(map[string]any, len(entries))
		for _, e := range entries {
			out[e.k.(string)] = e.v
		}
		return out, nil
	}
	out := make(map[any]any, len(entries))
	for _, e := range entries {
		if !hashableKey(e.k) {
			return nil, &ValueError{
				Value:     fmt.Sprintf("%T key", e.k),
				Expecting: `a hashable map key`,
			}
		}
		out[e.k] = e.v
	}
	return out, nil
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

func (anyVisitor) VisitVariant(va VariantAccess) (any, error) {
	return decodeVariant(va)
}

// variantVisitor builds a serde.Variant out of an enum value.
type variantVisitor struct{ BaseVisitor }

func newVariantVisitor() variantVisitor {
	return variantVisitor{BaseVisitor{Desc: `an enum variant`}}
}

func (variantVisitor) VisitVariant(va VariantAccess) (any, error) {
	return decodeVariant(va)
}

// enumNamed is an optional VariantAccess capability
// exposing the name of the enum the variant belongs to.
type enumNamed interface {
	EnumName() string
}

func decodeVariant(va VariantAccess) (any, error) {
	out := serde.Variant{}
	if en, ok := va.(enumNamed); ok {
		out.Name = en.EnumName()
	}
	name, err := va.VariantName()
	if err != nil {
		return nil, err
	}
	out.Variant = name
	v, ok, err := va.VariantValue(SeedOf[any]())
	if err != nil {
		return nil, err
	}
	if ok {
		out.Value = v
	}
	return out, nil
}

// ignoreVisitor accepts and discards every shape, draining composites.
type ignoreVisitor struct{ BaseVisitor }

func (ignoreVisitor) Expecting() string { return `anything at all` }

func (ignoreVisitor) VisitBool(bool) (any, error) { return nil, nil }

func (ignoreVisitor) VisitInt(int64) (any, error) { return nil, nil }

func (ignoreVisitor) VisitUint(uint64) (any, error) { return nil, nil }

func (ignoreVisitor) VisitFloat(float64) (any, error) { return nil, nil }

func (ignoreVisitor) VisitString(string) (any, error) { return nil, nil }

func (ignoreVisitor) VisitBytes([]byte) (any, error) { return nil, nil }

func (ignoreVisitor) VisitNil() (any, error) { return nil, nil }

func (ignoreVisitor) VisitSome(d Deserializer) (any, error) {
	return d.DeserializeIgnoredAny(ignoreVisitor{})
}

func (ignoreVisitor) VisitSeq(sa SeqAccess) (any, error) {
	for {
		_, ok, err := sa.NextElementSeed(ignoreSeed)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, nil
		}
	}
}

func (ignoreVisitor) VisitMap(ma MapAccess) (any, error) {
	for {
		_, ok, err := ma.NextKeySeed(ignoreSeed)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, nil
		}
		if _, err := ma.NextValueSeed(ignoreSeed); err != nil {
			return nil, err
		}
	}
}

func (ignoreVisitor) VisitVariant(va VariantAccess) (any, error) {
	if _, err := va.VariantName(); err != nil {
		return nil, err
	}
	if _, _, err := va.VariantValue(ignoreSeed); err != nil {
		return nil, err
	}
	return nil, nil
}

// composite visitors backing the reflection based Decode path

type optionVisitor struct {
	BaseVisitor
	typ reflect.Type // pointer type
}

func newOptionVisitor(t reflect.Type) optionVisitor {
	return optionVisitor{BaseVisitor{Desc: `an optional ` + t.Elem().String()}, t}
}

func (vis optionVisitor) VisitNil() (any, error) {
	return reflect.Zero(vis.typ), nil
}

func (vis optionVisitor) VisitSome(d Deserializer) (any, error) {
	p := reflect.New(vis.typ.Elem())
	if err := Decode(d, p.Interface()); err != nil {
		return nil, err
	}
	return p, nil
}

type seqVisitor struct {
	BaseVisitor
	typ reflect.Type // slice type
}

func newSeqVisitor(t reflect.Type) seqVisitor {
	return seqVisitor{BaseVisitor{Desc: `a sequence of ` + t.Elem().String()}, t}
}

func (vis seqVisitor) VisitSeq(sa SeqAccess) (any, error) {
	n, _ := sa.SizeHint()
	out := reflect.MakeSlice(vis.typ, 0, n)
	seed := seedForType(vis.typ.Elem())
	for {
		v, ok, err := sa.NextElementSeed(seed)
		if err != nil {
			return nil, err
		}
		if !ok {
			return out, nil
		}
		out = reflect.Append(out, elemValue(vis.typ.Elem(), v))
	}
}

func (vis seqVisitor) VisitBytes(v []byte) (any, error) {
	if vis.typ.Elem().Kind() != reflect.Uint8 {
		return nil, &TypeError{Got: `a byte slice`, Expecting: vis.Expecting()}
	}
	out := reflect.MakeSlice(vis.typ, len(v), len(v))
	reflect.Copy(out, reflect.ValueOf(v))
	return out, nil
}

type arrayVisitor struct {
	BaseVisitor
	typ reflect.Type // array type
}

func newArrayVisitor(t reflect.Type) arrayVisitor {
	return arrayVisitor{BaseVisitor{Desc: fmt.Sprintf(`a sequence of %d elements`, t.Len())}, t}
}

func (vis arrayVisitor) VisitSeq(sa SeqAccess) (any, error) {
	out := reflect.New(vis.typ).Elem()
	seed := seedForType(vis.typ.Elem())
	var i int
	for {
		v, ok, err := sa.NextElementSeed(seed)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if i >= vis.typ.Len() {
			return nil, &LengthError{Len: i + 1, Expecting: vis.Expecting()}
		}
		out.Index(i).Set(elemValue(vis.typ.Elem(), v))
		i++
	}
	if i != vis.typ.Len() {
		return nil, &LengthError{Len: i, Expecting: vis.Expecting()}
	}
	return out, nil
}

type mapVisitor struct {
	BaseVisitor
	typ reflect.Type // map type
}

func newMapVisitor(t reflect.Type) mapVisitor {
	return mapVisitor{BaseVisitor{Desc: `a map of ` + t.String()}, t}
}

func (vis mapVisitor) VisitMap(ma MapAccess) (any, error) {
	n, _ := ma.SizeHint()
	out := reflect.MakeMapWithSize(vis.typ, n)
	keySeed := seedForType(vis.typ.Key())
	valSeed := seedForType(vis.typ.Elem())
	for {
		k, ok, err := ma.NextKeySeed(keySeed)
		if err != nil {
			return nil, err
		}
		if !ok {
			return out, nil
		}
		if vis.typ.Key().Kind() == reflect.Interface && !hashableKey(k) {
			return nil, &ValueError{
				Value:     fmt.Sprintf("%T key", k),
				Expecting: `a hashable map key`,
			}
		}
		v, err := ma.NextValueSeed(valSeed)
		if err != nil {
			return nil, err
		}
		out.SetMapIndex(elemValue(vis.typ.Key(), k), elemValue(vis.typ.Elem(), v))
	}
}

type structVisitor struct {
	BaseVisitor
	typ reflect.Type // struct type
}

func newStructVisitor(t reflect.Type) structVisitor {
	return structVisitor{BaseVisitor{Desc: `struct ` + t.Name()}, t}
}

// VisitMap populates the struct from field name keyed entries.
// Unknown fields are consumed and discarded; absent fields keep their zero value.
func (vis structVisitor) VisitMap(ma MapAccess) (any, error) {
	out := reflect.New(vis.typ).Elem()
	byName := exportedFields(vis.typ)
	for {
		key, ok, err := NextKey[string](ma)
		if err != nil {
			return nil, err
		}
		if !ok {
			return out, nil
		}
		field, found := byName[key]
		if !found {
			if _, err := ma.NextValueSeed(ignoreSeed); err != nil {
				return nil, err
			}
			continue
		}
		v, err := ma.NextValueSeed(seedForType(field.Type))
		if err != nil {
			return nil, err
		}
		out.FieldByIndex(field.Index).Set(elemValue(field.Type, v))
	}
}

func exportedFields(t reflect.Type) map[string]reflect.StructField {
	out := map[string]reflect.StructField{}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != `` {
			continue // unexported
		}
		out[f.Name] = f
	}
	return out
}

func structFieldNames(t reflect.Type) []string {
	var names []string
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != `` {
			continue
		}
		names = append(names, f.Name)
	}
	return names
}

func elemValue(t reflect.Type, v any) reflect.Value {
	if v == nil {
		return reflect.Zero(t)
	}
	return reflect.ValueOf(v)
}
