package lookahead_test

import (
	"errors"
	"testing"

	"go.llib.dev/testcase"

	"go.llib.dev/lookahead"
)

func TestFunc(t *testing.T) {
	s := testcase.NewSpec(t)

	type FN func() (value string, more bool, err error)
	var (
		fn = testcase.Let[FN](s, nil)
	)
	subject := testcase.Let(s, func(t *testcase.T) lookahead.Iterator[string] {
		return lookahead.Func[string](fn.Get(t))
	})

	s.When("func yields values", func(s *testcase.Spec) {
		values := testcase.Let(s, func(t *testcase.T) []string {
			var vs []string
			for i, m := 0, t.Random.IntB(1, 5); i < m; i++ {
				vs = append(vs, t.Random.String())
			}
			return vs
		})

		fn.Let(s, func(t *testcase.T) FN {
			var i int
			return func() (string, bool, error) {
				vs := values.Get(t)
				if !(i < len(vs)) {
					return "", false, nil
				}
				v := vs[i]
				i++
				return v, true, nil
			}
		})

		s.Test("then values are collected without an issue", func(t *testcase.T) {
			vs, err := lookahead.Collect[string](subject.Get(t))
			t.Must.NoError(err)
			t.Must.Equal(values.Get(t), vs)
		})

		s.Test("then the lookahead adapter can peek through it", func(t *testcase.T) {
			itr := lookahead.New(subject.Get(t))
			for i, v := range values.Get(t) {
				got, ok := itr.PeekAhead(i)
				t.Must.True(ok)
				t.Must.Equal(v, got)
			}
			_, ok := itr.PeekAhead(len(values.Get(t)))
			t.Must.False(ok)
		})
	})

	s.When("func yields an error", func(s *testcase.Spec) {
		expectedErr := testcase.Let(s, func(t *testcase.T) error {
			return t.Random.Error()
		})

		fn.Let(s, func(t *testcase.T) FN {
			return func() (string, bool, error) {
				return "", t.Random.Bool(), expectedErr.Get(t)
			}
		})

		s.Test("then no value is fetched and the error is returned with .Err()", func(t *testcase.T) {
			itr := subject.Get(t)
			t.Must.False(itr.Next())
			t.Must.ErrorIs(expectedErr.Get(t), itr.Err())
		})
	})
}

func TestFunc_WithCallback(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("on no callback, Close is a no-op", func(t *testcase.T) {
		itr := lookahead.Func[int](func() (int, bool, error) {
			return 0, false, nil
		})
		t.Must.NoError(itr.Close())
	})

	s.Test("on close callback, the callback runs on Close", func(t *testcase.T) {
		var closed bool
		itr := lookahead.Func[int](func() (int, bool, error) {
			return 0, false, nil
		}, lookahead.OnClose(func() error {
			closed = true
			return nil
		}))
		t.Must.NoError(itr.Close())
		t.Must.True(closed)
	})

	s.Test("on close callback error, Close returns the error", func(t *testcase.T) {
		expectedErr := errors.New("boom")
		itr := lookahead.Func[int](func() (int, bool, error) {
			return 0, false, nil
		}, lookahead.OnClose(func() error {
			return expectedErr
		}))
		t.Must.ErrorIs(expectedErr, itr.Close())
	})
}
