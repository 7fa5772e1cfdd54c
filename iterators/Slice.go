package iterators

// Slice returns an iterator over the elements of the given slice.
func Slice[V any](vs []V) *SliceIter[V] {
	return &SliceIter[V]{Slice: vs}
}

type SliceIter[V any] struct {
	Slice []V

	closed bool
	index  int
	value  V
}

func (i *SliceIter[V]) Close() error {
	i.closed = true
	return nil
}

func (i *SliceIter[V]) Err() error {
	return nil
}

func (i *SliceIter[V]) Next() bool {
	if i.closed {
		return false
	}
	if len(i.Slice) <= i.index {
		return false
	}
	i.value = i.Slice[i.index]
	i.index++
	return true
}

func (i *SliceIter[V]) Value() V {
	return i.value
}

// SizeHint reports the number of elements left in the slice.
func (i *SliceIter[V]) SizeHint() (int, bool) {
	if i.closed {
		return 0, true
	}
	return len(i.Slice) - i.index, true
}
