package iterators

// Reduce folds the iterator into a single value, starting from initial, then closes it.
func Reduce[V, Result any](i Iterator[V], initial Result, blk func(Result, V) (Result, error)) (rv Result, rErr error) {
	defer func() {
		closeErr := i.Close()
		if rErr == nil {
			rErr = closeErr
		}
	}()
	var v = initial
	for i.Next() {
		var err error
		v, err = blk(v, i.Value())
		if err != nil {
			return v, err
		}
	}
	return v, i.Err()
}
