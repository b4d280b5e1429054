// Package lookaheadcontract provides a reusable behavioural suite that
// verifies the guarantees the lookahead adapter expects from the
// iterators it wraps.
package lookaheadcontract

import (
	"testing"

	"go.llib.dev/testcase"

	"go.llib.dev/lookahead"
)

// Source is a contract for iterators meant to be wrapped by lookahead.New.
// The function must return a fresh, independent iterator on every call.
type Source[V any] func(tb testing.TB) lookahead.Iterator[V]

func (c Source[V]) Spec(s *testcase.Spec) {
	s.Describe("it behaves like a lookahead source", func(s *testcase.Spec) {
		subject := testcase.Let(s, func(t *testcase.T) lookahead.Iterator[V] {
			return c(t)
		})

		s.Then("values can be collected from it without an issue", func(t *testcase.T) {
			_, err := lookahead.Collect[V](subject.Get(t))
			t.Must.NoError(err)
		})

		s.Then("closing is possible, even multiple times, without an issue", func(t *testcase.T) {
			sub := subject.Get(t)
			for i, n := 0, t.Random.IntB(3, 7); i < n; i++ {
				t.Must.NoError(sub.Close())
				t.Must.NoError(sub.Err())
			}
		})

		s.Then("exhaustion is sticky", func(t *testcase.T) {
			sub := subject.Get(t)
			for sub.Next() {
			}
			for i, n := 0, t.Random.IntB(3, 7); i < n; i++ {
				t.Must.False(sub.Next())
			}
		})

		s.Then("Value is repeatable between Next calls", func(t *testcase.T) {
			sub := subject.Get(t)
			for sub.Next() {
				value := sub.Value()
				t.Must.Equal(value, sub.Value())
			}
		})

		s.Then("a size hint never promises more than what is obtainable", func(t *testcase.T) {
			sub := subject.Get(t)
			sh, ok := sub.(lookahead.SizeHinter)
			if !ok {
				t.Skip("source has no size-hint capability")
			}
			lower, upper, known := sh.SizeHint()
			var obtainable int
			for sub.Next() {
				obtainable++
			}
			t.Must.True(lower <= obtainable)
			if known && lower == upper {
				t.Must.Equal(obtainable, lower)
			}
		})

		s.When("the source is closed", func(s *testcase.Spec) {
			s.Before(func(t *testcase.T) {
				t.Must.NoError(subject.Get(t).Close())
			})

			s.Then("no more value is iterated", func(t *testcase.T) {
				vs, err := lookahead.Collect(subject.Get(t))
				t.Must.NoError(err)
				t.Must.Empty(vs)
			})
		})
	})
}

func (c Source[V]) Test(t *testing.T) {
	c.Spec(testcase.NewSpec(t))
}

func (c Source[V]) Benchmark(b *testing.B) {
	c.Spec(testcase.NewSpec(b))
}
