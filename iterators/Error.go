package iterators

// Error returns an iterator that only returns the given error and never yields an element.
// This can be used when an external resource encounters an unrecoverable error during query execution.
func Error[V any](err error) *ErrorIter[V] {
	return &ErrorIter[V]{err: err}
}

type ErrorIter[V any] struct {
	err error
}

func (i *ErrorIter[V]) Close() error { return nil }

func (i *ErrorIter[V]) Err() error { return i.err }

func (i *ErrorIter[V]) Next() bool { return false }

func (i *ErrorIter[V]) Value() V {
	var v V
	return v
}
