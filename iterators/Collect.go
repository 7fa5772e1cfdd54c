package iterators

// Collect drains the iterator into a slice and closes it.
//
// When the iterator (or the cursor behind it) can hint its size,
// the result slice is pre-allocated accordingly.
// The first error encountered discards the partially collected values.
func Collect[V any](i Iterator[V]) (vs []V, err error) {
	defer func() {
		closeErr := i.Close()
		if err == nil {
			err = closeErr
		}
	}()
	if h, ok := i.(SizeHinted); ok {
		if n, known := h.SizeHint(); known {
			vs = make([]V, 0, n)
		}
	}
	for i.Next() {
		vs = append(vs, i.Value())
	}
	if err := i.Err(); err != nil {
		return nil, err
	}
	if vs == nil {
		vs = make([]V, 0)
	}
	return vs, nil
}
