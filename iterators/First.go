package iterators

// First returns the first element of the iterator and closes it.
// ErrNotFound is returned when the iterator was empty.
func First[V any](i Iterator[V]) (v V, err error) {
	defer func() {
		closeErr := i.Close()
		if err == nil {
			err = closeErr
		}
	}()
	if !i.Next() {
		if err := i.Err(); err != nil {
			return v, err
		}
		return v, ErrNotFound
	}
	return i.Value(), nil
}
