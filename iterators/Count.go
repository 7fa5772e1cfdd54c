package iterators

// Count iterates over the iterator and counts the total number of elements, then closes it.
// Good when all you want is to count the elements but don't want to do anything else with them.
func Count[V any](i Iterator[V]) (int, error) {
	defer i.Close()
	total := 0
	for i.Next() {
		total++
	}
	return total, i.Err()
}
