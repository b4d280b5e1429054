package lookahead

// Fuse decorates the given iterator with permanent exhaustion:
// after the first Next call that returned false, every later Next call
// returns false without reaching out to the wrapped iterator again.
// Fusing an already fused iterator returns it as is.
func Fuse[V any](src Iterator[V]) Iterator[V] {
	if _, ok := src.(*fusedIter[V]); ok {
		return src
	}
	return &fusedIter[V]{src: src}
}

type fusedIter[V any] struct {
	src Iterator[V]

	value V
	done  bool
}

func (i *fusedIter[V]) Next() bool {
	if i.done {
		return false
	}
	if !i.src.Next() {
		i.done = true
		return false
	}
	i.value = i.src.Value()
	return true
}

func (i *fusedIter[V]) Value() V {
	return i.value
}

func (i *fusedIter[V]) Err() error {
	return i.src.Err()
}

func (i *fusedIter[V]) Close() error {
	return i.src.Close()
}

func (i *fusedIter[V]) SizeHint() (int, int, bool) {
	if i.done {
		return 0, 0, true
	}
	return SizeHint[V](i.src)
}
