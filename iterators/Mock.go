package iterators

// NewMock wraps an iterator so individual methods can be stubbed out in
// tests, most often Close to observe the release of an underlying resource.
// Methods without a stub keep delegating to the wrapped iterator.
func NewMock[V any](i Iterator[V]) *Mock[V] {
	return &Mock[V]{
		StubValue: i.Value,
		StubClose: i.Close,
		StubNext:  i.Next,
		StubErr:   i.Err,
	}
}

type Mock[V any] struct {
	StubValue func() V
	StubClose func() error
	StubNext  func() bool
	StubErr   func() error
}

func (m *Mock[V]) Close() error { return m.StubClose() }

func (m *Mock[V]) Next() bool { return m.StubNext() }

func (m *Mock[V]) Err() error { return m.StubErr() }

func (m *Mock[V]) Value() V { return m.StubValue() }
