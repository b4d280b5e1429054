package lookahead

// Error returns an iterator that yields no values and reports the given
// error cause. This can be used when an external resource encounter an
// unexpected, non recoverable error during query execution,
// but an iterator must be returned.
func Error[V any](err error) Iterator[V] {
	return &errorIter[V]{err: err}
}

type errorIter[V any] struct {
	err error
}

func (i *errorIter[V]) Close() error {
	return nil
}

func (i *errorIter[V]) Err() error {
	return i.err
}

func (i *errorIter[V]) Next() bool {
	return false
}

func (i *errorIter[V]) Value() V {
	var v V
	return v
}

func (i *errorIter[V]) SizeHint() (int, int, bool) {
	return 0, 0, true
}
