package de

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/ofersa/serde"
)

// ValueDeserializer replays an already in-memory Go value through the
// deserialization protocol. It is the reference self-describing format:
// shape hints are ignored and dispatch follows the dynamic type of the value.
//
// Slices, maps, structs and serde.Variant values are presented through the
// composite access cursors, so visitors observe them the same way they would
// observe a wire format.
type ValueDeserializer struct {
	ForwardToAny
	value any
}

// ValueOf wraps the given value for replay.
func ValueOf(v any) *ValueDeserializer {
	d := &ValueDeserializer{value: v}
	d.ForwardToAny = ForwardTo(d)
	return d
}

func (d *ValueDeserializer) IsHumanReadable() bool { return true }

func (d *ValueDeserializer) DeserializeAny(vis Visitor) (any, error) {
	switch v := d.value.(type) {
	case nil:
		return vis.VisitNil()
	case bool:
		return vis.VisitBool(v)
	case int:
		return vis.VisitInt(int64(v))
	case int8:
		return vis.VisitInt(int64(v))
	case int16:
		return vis.VisitInt(int64(v))
	case int32:
		return vis.VisitInt(int64(v))
	case int64:
		return vis.VisitInt(v)
	case uint:
		return vis.VisitUint(uint64(v))
	case uint8:
		return vis.VisitUint(uint64(v))
	case uint16:
		return vis.VisitUint(uint64(v))
	case uint32:
		return vis.VisitUint(uint64(v))
	case uint64:
		return vis.VisitUint(v)
	case float32:
		return vis.VisitFloat(float64(v))
	case float64:
		return vis.VisitFloat(v)
	case string:
		return vis.VisitString(v)
	case []byte:
		return vis.VisitBytes(v)
	case serde.Variant:
		return vis.VisitVariant(valueVariantAccess{variant: v})
	case []any:
		return vis.VisitSeq(NewSliceSeq(v))
	case map[string]any:
		return vis.VisitMap(EntriesOf(v))
	}
	return d.deserializeReflected(vis)
}

func (d *ValueDeserializer) deserializeReflected(vis Visitor) (any, error) {
	rv := reflect.ValueOf(d.value)
	switch rv.Kind() {
	case reflect.Ptr:
		if rv.IsNil() {
			return vis.VisitNil()
		}
		return ValueOf(rv.Elem().Interface()).DeserializeAny(vis)
	case reflect.Slice, reflect.Array:
		return vis.VisitSeq(reflectedSeq(rv))
	case reflect.Map:
		return vis.VisitMap(reflectedEntries(rv))
	case reflect.Struct:
		return vis.VisitMap(structEntries(rv))
	}
	return nil, &TypeError{
		Got:       fmt.Sprintf("%T value", d.value),
		Expecting: vis.Expecting(),
	}
}

// DeserializeOption distinguishes absent from present instead of
// dissolving the optional the way DeserializeAny does.
func (d *ValueDeserializer) DeserializeOption(vis Visitor) (any, error) {
	if d.value == nil {
		return vis.VisitNil()
	}
	rv := reflect.ValueOf(d.value)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return vis.VisitNil()
		}
		return vis.VisitSome(ValueOf(rv.Elem().Interface()))
	}
	return vis.VisitSome(ValueOf(d.value))
}

// DeserializeEnum additionally accepts a bare string as a unit variant of
// the requested enum, checked against the declared variant set when one is given.
func (d *ValueDeserializer) DeserializeEnum(name string, variants []string, vis Visitor) (any, error) {
	if s, ok := d.value.(string); ok {
		if len(variants) != 0 && !containsString(variants, s) {
			return nil, &UnknownVariantError{Variant: s, Expected: variants}
		}
		return vis.VisitVariant(valueVariantAccess{
			variant: serde.Variant{Name: name, Variant: s},
		})
	}
	return d.DeserializeAny(vis)
}

func containsString(vs []string, s string) bool {
	for _, v := range vs {
		if v == s {
			return true
		}
	}
	return false
}

// DeserializeIter hands out the native cursor of sequence shaped values,
// so iteration never materializes more than the element being pulled.
func (d *ValueDeserializer) DeserializeIter() (SeqAccess, error) {
	switch v := d.value.(type) {
	case []any:
		return NewSliceSeq(v), nil
	}
	rv := reflect.ValueOf(d.value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return reflectedSeq(rv), nil
	}
	return nil, &TypeError{
		Got:       fmt.Sprintf("%T value", d.value),
		Expecting: `a sequence`,
	}
}

func reflectedSeq(rv reflect.Value) *SliceSeq {
	values := make([]any, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		values = append(values, rv.Index(i).Interface())
	}
	return NewSliceSeq(values)
}

// reflectedEntries orders entries by the formatted key so replay is deterministic.
func reflectedEntries(rv reflect.Value) *MapEntries {
	keys := rv.MapKeys()
	sort.Slice(keys, func(i, j int) bool {
		return fmt.Sprint(keys[i].Interface()) < fmt.Sprint(keys[j].Interface())
	})
	entries := make([]Entry, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, Entry{
			Key:   k.Interface(),
			Value: rv.MapIndex(k).Interface(),
		})
	}
	return NewMapEntries(entries)
}

// structEntries presents the exported fields in declaration order.
func structEntries(rv reflect.Value) *MapEntries {
	t := rv.Type()
	var entries []Entry
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != `` {
			continue
		}
		entries = append(entries, Entry{Key: f.Name, Value: rv.Field(i).Interface()})
	}
	return NewMapEntries(entries)
}

type valueVariantAccess struct {
	variant serde.Variant
}

func (va valueVariantAccess) EnumName() string { return va.variant.Name }

func (va valueVariantAccess) VariantName() (string, error) { return va.variant.Variant, nil }

func (va valueVariantAccess) VariantValue(seed Seed) (any, bool, error) {
	if va.variant.Value == nil {
		return nil, false, nil
	}
	v, err := seed.DeserializeFrom(ValueOf(va.variant.Value))
	if err != nil {
		return nil, false, err
	}
	return v, true, nil
}
