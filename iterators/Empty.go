package iterators

// Empty returns an iterator that has no elements.
//
// Useful when a result set turns out to be empty
// but the signature still requires an iterator to be returned.
func Empty[V any]() *EmptyIter[V] {
	return &EmptyIter[V]{}
}

type EmptyIter[V any] struct{}

func (i *EmptyIter[V]) Close() error { return nil }

func (i *EmptyIter[V]) Err() error { return nil }

func (i *EmptyIter[V]) Next() bool { return false }

func (i *EmptyIter[V]) Value() V {
	var v V
	return v
}

func (i *EmptyIter[V]) SizeHint() (int, bool) { return 0, true }
