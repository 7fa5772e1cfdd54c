package iterators

import "github.com/ofersa/serde"

const (
	// ErrClosed is returned when an iterator is used after it has been closed.
	ErrClosed serde.Error = "iterator is closed"
	// ErrNotFound is returned when a single element was requested from an empty iterator.
	ErrNotFound serde.Error = "no next element found"
)
