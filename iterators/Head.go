package iterators

// Head takes the first n elements, similarly to how the coreutils "head" command works.
// Closing the returned iterator leaves the remaining elements of the source unread.
func Head[V any](i Iterator[V], n int) Iterator[V] {
	var index int
	head := Func[V](func() (v V, ok bool, err error) {
		if n <= index {
			return v, false, i.Err()
		}
		if !i.Next() {
			return v, false, i.Err()
		}
		index++
		return i.Value(), true, nil
	})
	return withClose[V]{Iterator: head, close: i.Close}
}

type withClose[V any] struct {
	Iterator[V]
	close func() error
}

func (i withClose[V]) Close() error {
	if err := i.Iterator.Close(); err != nil {
		_ = i.close()
		return err
	}
	return i.close()
}
