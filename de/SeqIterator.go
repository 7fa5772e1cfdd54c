package de

import (
	"io"

	"github.com/ofersa/serde/iterators"
)

// Iter begins lazily deserializing a sequence of T values from the given
// Deserializer, yielding each element as it is pulled instead of
// materializing the whole sequence up front.
//
// Formats implementing IterDeserializer hand out their native cursor.
// For the rest Iter falls back to DeserializeSeq with a visitor that
// captures the sequence cursor and returns it as the deserialized value;
// formats whose cursors do not remain valid after DeserializeSeq returns
// should implement IterDeserializer themselves.
//
// Setup failures do not surface here: they are reported by the returned
// iterator on its first Next call, so call sites handle setup and element
// errors through the one Err check they already have.
func Iter[T any](d Deserializer) *SeqIterator[T] {
	var (
		sa  SeqAccess
		err error
	)
	if id, ok := d.(IterDeserializer); ok {
		sa, err = id.DeserializeIter()
	} else {
		sa, err = captureSeq(d)
	}
	if err != nil {
		return &SeqIterator[T]{err: err, done: true}
	}
	return IterAccess[T](sa)
}

// IterAccess adapts an already obtained sequence cursor into an iterator of T.
func IterAccess[T any](sa SeqAccess) *SeqIterator[T] {
	return &SeqIterator[T]{src: sa, seed: SeedOf[T]()}
}

func captureSeq(d Deserializer) (SeqAccess, error) {
	v, err := d.DeserializeSeq(seqCapture{BaseVisitor{Desc: `a sequence`}})
	if err != nil {
		return nil, err
	}
	return v.(SeqAccess), nil
}

// seqCapture smuggles the sequence cursor out of the visit
// as the deserialized value.
type seqCapture struct{ BaseVisitor }

func (seqCapture) VisitSeq(sa SeqAccess) (any, error) { return sa, nil }

// SeqIterator adapts a SeqAccess cursor to the iterators.Iterator protocol.
//
// The iterator is fused: after exhaustion or a failed pull every further
// Next reports false. The first error latches into Err and ends iteration;
// elements yielded before it remain valid.
type SeqIterator[T any] struct {
	src    SeqAccess
	seed   Seed
	value  T
	err    error
	done   bool
	closed bool
}

func (it *SeqIterator[T]) Next() bool {
	if it.done || it.closed {
		return false
	}
	v, ok, err := it.src.NextElementSeed(it.seed)
	if err != nil {
		it.err = err
		it.done = true
		return false
	}
	if !ok {
		it.done = true
		return false
	}
	it.value = v.(T)
	return true
}

func (it *SeqIterator[T]) Value() T { return it.value }

func (it *SeqIterator[T]) Err() error { return it.err }

// Close releases the underlying cursor when it holds resources.
// A closed iterator yields no further elements.
func (it *SeqIterator[T]) Close() error {
	if it.closed {
		return nil
	}
	it.closed = true
	if c, ok := it.src.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// SizeHint reports the remaining element estimate of the underlying cursor.
// Once iteration ended cleanly the count is exactly zero; after a failed
// pull the stream did not finish, so the remainder is unknown.
func (it *SeqIterator[T]) SizeHint() (int, bool) {
	if it.err != nil {
		return 0, false
	}
	if it.done || it.closed {
		return 0, true
	}
	return it.src.SizeHint()
}

// IntoInner exposes the underlying cursor, for call sites that switch from
// element-wise iteration back to seeded access mid-stream.
// The returned cursor continues from the current position.
func (it *SeqIterator[T]) IntoInner() SeqAccess { return it.src }

var (
	_ iterators.Iterator[int] = (*SeqIterator[int])(nil)
	_ iterators.SizeHinted    = (*SeqIterator[int])(nil)
)
