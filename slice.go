package lookahead

// Slice returns an iterator over the values of the given slice.
// It has the SizeHinter capability with an exact count.
func Slice[V any](slice []V) Iterator[V] {
	return &sliceIter[V]{Slice: slice}
}

type sliceIter[V any] struct {
	Slice []V

	closed bool
	index  int
	value  V
}

func (i *sliceIter[V]) Close() error {
	i.closed = true
	return nil
}

func (i *sliceIter[V]) Err() error {
	return nil
}

func (i *sliceIter[V]) Next() bool {
	if i.closed {
		return false
	}

	if len(i.Slice) <= i.index {
		return false
	}

	i.value = i.Slice[i.index]
	i.index++
	return true
}

func (i *sliceIter[V]) Value() V {
	return i.value
}

func (i *sliceIter[V]) SizeHint() (int, int, bool) {
	if i.closed {
		return 0, 0, true
	}
	remaining := len(i.Slice) - i.index
	return remaining, remaining, true
}
