package lookahead

import "math"

// New wraps the given source iterator into a Lookahead adapter.
// The source is fused, so even a source that misbehaves after exhaustion
// cannot make the adapter yield values past its first end-of-sequence.
// The adapter takes exclusive ownership of the source;
// using the source directly afterwards breaks the adapter's guarantees.
func New[V any](src Iterator[V]) *Lookahead[V] {
	return &Lookahead[V]{src: Fuse[V](src)}
}

// NewWithCapacity is New with the staging buffer's storage pre-reserved
// for the given number of values. The capacity is a performance hint only;
// peeking further than it simply grows the buffer.
func NewWithCapacity[V any](src Iterator[V], capacity int) *Lookahead[V] {
	return &Lookahead[V]{src: Fuse[V](src), buffer: make([]V, 0, capacity)}
}

// Lookahead is an iterator adapter that supports peeking any number of
// positions ahead without consuming values.
//
// Values pulled from the source for the sake of a peek are staged in an
// internal buffer and served from there by later Next calls, so the
// consumed sequence is always identical to what the bare source would
// have produced. Lookahead is not safe for concurrent use.
type Lookahead[V any] struct {
	src    Iterator[V]
	buffer []V

	value  V
	closed bool
}

// PeekAhead returns the value that the (n+1)-th upcoming Next call would
// stage, without advancing the iterator. The offset is zero based:
// PeekAhead(0) reports the value the very next Next call would yield.
//
// The second return value reports whether such a value exists; it is false
// when the sequence ends within the next n values, and for negative n.
// Peeking is idempotent: repeated calls with the same offset and no
// intervening Next return the same value, and each position is pulled from
// the source at most once.
func (l *Lookahead[V]) PeekAhead(n int) (V, bool) {
	var zero V
	if n < 0 {
		return zero, false
	}
	for len(l.buffer) <= n {
		if l.closed || !l.src.Next() {
			break
		}
		l.buffer = append(l.buffer, l.src.Value())
	}
	if n < len(l.buffer) {
		return l.buffer[n], true
	}
	return zero, false
}

// Peek is shorthand for PeekAhead(0).
func (l *Lookahead[V]) Peek() (V, bool) {
	return l.PeekAhead(0)
}

// Next advances the iterator by one value,
// serving staged values before pulling fresh ones from the source.
func (l *Lookahead[V]) Next() bool {
	if len(l.buffer) != 0 {
		l.value = l.buffer[0]
		l.buffer = l.buffer[1:]
		return true
	}
	if l.closed || !l.src.Next() {
		return false
	}
	l.value = l.src.Value()
	return true
}

// Value returns the current value in the iterator.
func (l *Lookahead[V]) Value() V {
	return l.value
}

// Err return the error cause of the underlying source.
func (l *Lookahead[V]) Err() error {
	return l.src.Err()
}

// Close closes the underlying source and discards the staged values.
// After Close the adapter yields nothing.
func (l *Lookahead[V]) Close() error {
	l.closed = true
	l.buffer = nil
	return l.src.Close()
}

// SizeHint reports the remaining-count estimate of the adapter:
// the source's own estimate plus the number of staged values, component
// wise. When the source reports an exact count, so does the adapter.
// The lower bound saturates at math.MaxInt; the upper bound is reported
// as unknown when the source gives none or when the addition would
// overflow.
func (l *Lookahead[V]) SizeHint() (int, int, bool) {
	if l.closed {
		return 0, 0, true
	}
	queued := len(l.buffer)
	lower, upper, known := SizeHint[V](l.src)
	if known {
		if sum, ok := addNoOverflow(upper, queued); ok {
			upper = sum
		} else {
			upper, known = 0, false
		}
	}
	if sum, ok := addNoOverflow(lower, queued); ok {
		lower = sum
	} else {
		lower = math.MaxInt
	}
	if !known {
		upper = 0
	}
	return lower, upper, known
}

func addNoOverflow(a, b int) (int, bool) {
	sum := a + b
	if sum < a {
		return 0, false
	}
	return sum, true
}
