package iterators

// ForEach executes the block for every element of the iterator, then closes it.
// Returning ErrClosed from the block breaks out of the iteration without error.
func ForEach[V any](i Iterator[V], blk func(V) error) (rErr error) {
	defer func() {
		closeErr := i.Close()
		if rErr == nil {
			rErr = closeErr
		}
	}()
	for i.Next() {
		if err := blk(i.Value()); err != nil {
			if err == ErrClosed {
				break
			}
			return err
		}
	}
	return i.Err()
}
