package iterators

import "io"

// Iterator defines a separate object that encapsulates accessing and traversing an aggregate object.
// Clients use an iterator to access and traverse an aggregate without knowing its representation.
// Interface design inspired by https://golang.org/pkg/encoding/json/#Decoder
type Iterator[V any] interface {
	// Closer is required to make it able to cancel iterators where resources are being used behind the scene.
	// For all other cases where the underlying source is handled on a higher level, it should simply return nil.
	io.Closer
	// Err returns the error cause.
	Err() error
	// Next will ensure that Value returns the next item when executed.
	// If the next value is not retrievable, Next should return false
	// and ensure Err() will return the error cause if there was one.
	Next() bool
	// Value returns the current value in the iterator.
	// The action should be repeatable without side effects.
	Value() V
}

// SizeHinted is an optional capability of an iterator or cursor
// that can estimate how many elements remain.
// The returned bool reports whether the count is known;
// when it is false, consumers should assume zero for pre-allocation
// purposes but keep pulling regardless.
type SizeHinted interface {
	SizeHint() (int, bool)
}

// Func turns a pull function into an Iterator.
// The function reports the next value, whether there was one,
// and the error that stopped the iteration if there was any.
func Func[V any](next func() (v V, ok bool, err error)) Iterator[V] {
	return &funcIter[V]{next: next}
}

type funcIter[V any] struct {
	next func() (v V, ok bool, err error)

	value  V
	err    error
	done   bool
	closed bool
}

func (i *funcIter[V]) Close() error {
	i.closed = true
	return nil
}

func (i *funcIter[V]) Err() error {
	return i.err
}

func (i *funcIter[V]) Next() bool {
	if i.closed || i.done || i.err != nil {
		return false
	}
	v, ok, err := i.next()
	if err != nil {
		i.err = err
		return false
	}
	if !ok {
		i.done = true
		return false
	}
	i.value = v
	return true
}

func (i *funcIter[V]) Value() V {
	return i.value
}
