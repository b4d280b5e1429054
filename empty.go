package lookahead

// Empty returns an iterator that has no values.
// It helps to achieve the Null Object Pattern
// when no value is logically expected and an iterator must be returned.
func Empty[V any]() Iterator[V] {
	return emptyIter[V]{}
}

type emptyIter[V any] struct{}

func (emptyIter[V]) Close() error {
	return nil
}

func (emptyIter[V]) Err() error {
	return nil
}

func (emptyIter[V]) Next() bool {
	return false
}

func (emptyIter[V]) Value() V {
	var v V
	return v
}

func (emptyIter[V]) SizeHint() (int, int, bool) {
	return 0, 0, true
}
