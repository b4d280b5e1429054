// Package lookahead provides an iterator adapter that can peek arbitrarily
// far ahead in a sequence without consuming it.
//
// # Summary
//
// An Iterator's goal is to decouple the origin of the data from the consumer
// who uses that data. Most commonly, iterators hide whether the data comes
// from a specific database, standard input, or elsewhere.
// An Iterator represents an iterable list of element,
// which length is not known until it is fully iterated, thus can range from
// zero to infinity. The Lookahead adapter extends this with the ability to
// inspect values at a given forward offset while keeping normal forward
// iteration intact.
//
// # Resources
//
// https://en.wikipedia.org/wiki/Iterator_pattern
package lookahead

import "io"

// Iterator define a separate object that encapsulates accessing and traversing an aggregate object.
// Clients use an iterator to access and traverse an aggregate without knowing its representation (data structures).
// Interface design inspirited by https://golang.org/pkg/encoding/json/#Decoder
// https://en.wikipedia.org/wiki/Iterator_pattern
//
// Implementations must treat exhaustion as permanent towards their consumer:
// once Next returned false, every subsequent Next call must return false as
// well. Sources that cannot promise this can be wrapped with Fuse.
type Iterator[V any] interface {
	// Closer is required to make it able to cancel iterators where resources are being used behind the scene
	// for all other cases where the underling io is handled on a higher level, it should simply return nil
	io.Closer
	// Err return the error cause.
	Err() error
	// Next will ensure that Value returns the next item when executed.
	// If the next value is not retrievable, Next should return false and ensure Err() will return the error cause.
	Next() bool
	// Value returns the current value in the iterator.
	// The action should be repeatable without side effects.
	Value() V
}

// SizeHinter is an optional capability of an Iterator for reporting
// how many values remain retrievable.
//
// The lower bound must never exceed the number of values the iterator can
// still deliver. The upper bound is only meaningful when known is true;
// exact-count iterators report lower == upper with known set.
type SizeHinter interface {
	SizeHint() (lower int, upper int, known bool)
}

// SizeHint reports the remaining-count estimate of the given iterator.
// Iterators without the SizeHinter capability yield the loosest valid
// estimate: a zero lower bound and an unknown upper bound.
func SizeHint[V any](itr Iterator[V]) (lower int, upper int, known bool) {
	if sh, ok := itr.(SizeHinter); ok {
		return sh.SizeHint()
	}
	return 0, 0, false
}
