package lookahead

import (
	"iter"

	"go.llib.dev/frameless/pkg/errorkit"
)

// FromSeq adapts a standard iter.Seq into an Iterator.
// The returned iterator is inherently fused. Close releases the
// underlying pull coroutine; closing more than once is fine.
func FromSeq[V any](seq iter.Seq[V]) Iterator[V] {
	next, stop := iter.Pull(seq)
	return &seqIter[V]{next: next, stop: stop}
}

type seqIter[V any] struct {
	next func() (V, bool)
	stop func()

	value V
	done  bool
}

func (i *seqIter[V]) Next() bool {
	if i.done {
		return false
	}
	v, ok := i.next()
	if !ok {
		i.done = true
		return false
	}
	i.value = v
	return true
}

func (i *seqIter[V]) Value() V {
	return i.value
}

func (i *seqIter[V]) Err() error {
	return nil
}

func (i *seqIter[V]) Close() error {
	i.done = true
	i.stop()
	return nil
}

// ToSeq exposes the iterator as a range-able iter.Seq.
// Ranging over the sequence drains and closes the iterator.
// The returned error function reports the iterator's error cause and the
// close outcome; consult it after the range loop finished.
func ToSeq[V any](itr Iterator[V]) (iter.Seq[V], func() error) {
	var rErr error
	seq := func(yield func(V) bool) {
		defer errorkit.Finish(&rErr, itr.Err)
		defer errorkit.Finish(&rErr, itr.Close)
		for itr.Next() {
			if !yield(itr.Value()) {
				break
			}
		}
	}
	return seq, func() error { return rErr }
}
