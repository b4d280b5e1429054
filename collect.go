package lookahead

import "go.llib.dev/frameless/pkg/errorkit"

// Collect drains the iterator into a slice, then closes it.
func Collect[V any](itr Iterator[V]) (vs []V, rErr error) {
	defer errorkit.Finish(&rErr, itr.Close)
	vs = make([]V, 0)
	for itr.Next() {
		vs = append(vs, itr.Value())
	}
	return vs, itr.Err()
}

// Count will iterate over and count the total iterations number,
// then close the iterator.
//
// Good when all you want is to count all the values in an iterator,
// but don't want to do anything else with them.
func Count[V any](itr Iterator[V]) (n int, rErr error) {
	defer errorkit.Finish(&rErr, itr.Close)
	for itr.Next() {
		n++
	}
	return n, itr.Err()
}
