package iterators

// Map transforms the elements of an iterator with the given mapping function.
func Map[From, To any](i Iterator[From], transform func(From) (To, error)) Iterator[To] {
	mapped := Func[To](func() (v To, ok bool, err error) {
		if !i.Next() {
			return v, false, i.Err()
		}
		v, err = transform(i.Value())
		if err != nil {
			return v, false, err
		}
		return v, true, nil
	})
	return withClose[To]{Iterator: mapped, close: i.Close}
}
