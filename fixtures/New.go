// Package fixtures generates randomized values for tests.
package fixtures

import (
	"math/rand"
	"reflect"
	"sync"

	"github.com/Pallinder/go-randomdata"

	"github.com/ofersa/serde"
)

// New returns a pointer to a populated instance of the given struct type,
// with every settable exported field randomized. This is only used for testing.
func New(entity any) any {
	t := reflect.TypeOf(entity)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	ptr := reflect.New(t)
	elem := ptr.Elem()
	for i := 0; i < elem.NumField(); i++ {
		fv := elem.Field(i)
		if !fv.CanSet() {
			continue
		}
		newValue := newValue(fv)
		if newValue.IsValid() {
			fv.Set(newValue)
		}
	}
	return ptr.Interface()
}

var mutex sync.Mutex

func newValue(value reflect.Value) reflect.Value {
	switch value.Type().Kind() {

	case reflect.Bool:
		return reflect.ValueOf(Bool())

	case reflect.String:
		return reflect.ValueOf(String())

	case reflect.Int:
		return reflect.ValueOf(rand.Int())

	case reflect.Int8:
		return reflect.ValueOf(int8(rand.Int()))

	case reflect.Int16:
		return reflect.ValueOf(int16(rand.Int()))

	case reflect.Int32:
		return reflect.ValueOf(rand.Int31())

	case reflect.Int64:
		return reflect.ValueOf(rand.Int63())

	case reflect.Uint:
		return reflect.ValueOf(uint(rand.Uint32()))

	case reflect.Uint8:
		return reflect.ValueOf(uint8(rand.Uint32()))

	case reflect.Uint16:
		return reflect.ValueOf(uint16(rand.Uint64()))

	case reflect.Uint32:
		return reflect.ValueOf(rand.Uint32())

	case reflect.Uint64:
		return reflect.ValueOf(rand.Uint64())

	case reflect.Float32:
		return reflect.ValueOf(rand.Float32())

	case reflect.Float64:
		return reflect.ValueOf(rand.Float64())

	case reflect.Slice:
		if value.Type().Elem().Kind() == reflect.Uint8 {
			return reflect.ValueOf(Bytes())
		}
		return reflect.MakeSlice(value.Type(), 0, 0)

	case reflect.Map:
		return reflect.MakeMap(value.Type())

	case reflect.Struct:
		return reflect.ValueOf(New(value.Interface())).Elem()

	default:
		return reflect.ValueOf(nil)
	}
}

func Bool() bool {
	mutex.Lock()
	defer mutex.Unlock()
	return randomdata.Boolean()
}

func String() string {
	mutex.Lock()
	defer mutex.Unlock()
	return randomdata.SillyName()
}

func Bytes() []byte {
	out := make([]byte, rand.Intn(16)+1)
	rand.Read(out)
	return out
}

// Value returns a random canonical value tree of at most the given depth:
// scalars at the leaves, with sequences, string keyed maps and variants above.
// The trees survive a serialize then deserialize roundtrip unchanged.
func Value(depth int) any {
	if depth <= 0 {
		return Scalar()
	}
	switch rand.Intn(4) {
	case 0:
		return Scalar()
	case 1:
		out := make([]any, 0, rand.Intn(4)+1)
		for i := cap(out); 0 < i; i-- {
			out = append(out, Value(depth-1))
		}
		return out
	case 2:
		out := map[string]any{}
		for i := rand.Intn(4) + 1; 0 < i; i-- {
			out[String()] = Value(depth - 1)
		}
		return out
	default:
		return Variant(depth - 1)
	}
}

// Scalar returns one random canonical leaf value.
func Scalar() any {
	switch rand.Intn(7) {
	case 0:
		return nil
	case 1:
		return Bool()
	case 2:
		return rand.Int63()
	case 3:
		return rand.Uint64()
	case 4:
		return rand.Float64()
	case 5:
		return String()
	default:
		return Bytes()
	}
}

// Variant returns a random enum value with a unit, newtype,
// sequence or struct shaped payload.
func Variant(depth int) serde.Variant {
	out := serde.Variant{Name: String(), Variant: String()}
	switch rand.Intn(4) {
	case 0:
		// unit variant, no payload
	case 1:
		out.Value = rand.Int63()
	case 2:
		out.Value = []any{Value(depth), Value(depth)}
	default:
		out.Value = map[string]any{String(): Value(depth)}
	}
	return out
}
