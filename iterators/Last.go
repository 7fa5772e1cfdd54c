package iterators

// Last drains the iterator, returns its final element and closes it.
// ErrNotFound is returned when the iterator was empty.
func Last[V any](i Iterator[V]) (v V, err error) {
	defer func() {
		closeErr := i.Close()
		if err == nil {
			err = closeErr
		}
	}()
	var found bool
	for i.Next() {
		v = i.Value()
		found = true
	}
	if err := i.Err(); err != nil {
		var zero V
		return zero, err
	}
	if !found {
		return v, ErrNotFound
	}
	return v, nil
}
