package iterators

// Filter returns an iterator that only yields the elements the selector matches.
// Closing the filtered iterator closes the source.
func Filter[V any](i Iterator[V], match func(V) bool) Iterator[V] {
	filtered := Func[V](func() (v V, ok bool, err error) {
		for i.Next() {
			if match(i.Value()) {
				return i.Value(), true, nil
			}
		}
		return v, false, i.Err()
	})
	return withClose[V]{Iterator: filtered, close: i.Close}
}
