package lookahead

import "go.llib.dev/frameless/pkg/errorkit"

// Func enables you to create an iterator with a lambda expression.
// The next function reports the upcoming value, whether it exists,
// and the error cause if retrieving it failed.
// In case the lambda holds a resource that needs closing, use the OnClose callback option.
func Func[V any](next func() (v V, ok bool, err error), callbackOptions ...CallbackOption) Iterator[V] {
	var itr Iterator[V]
	itr = &funcIter[V]{NextFn: next}
	itr = WithCallback(itr, callbackOptions...)
	return itr
}

type funcIter[V any] struct {
	NextFn func() (v V, ok bool, err error)

	value V
	err   error
}

func (i *funcIter[V]) Close() error {
	return nil
}

func (i *funcIter[V]) Err() error {
	return i.err
}

func (i *funcIter[V]) Next() bool {
	if i.err != nil {
		return false
	}
	value, ok, err := i.NextFn()
	if err != nil {
		i.err = err
		return false
	}
	if !ok {
		return false
	}
	i.value = value
	return true
}

func (i *funcIter[V]) Value() V {
	return i.value
}

// OnClose returns a CallbackOption that registers a close callback,
// which is called in addition to the decorated iterator's own Close.
func OnClose(fn func() error) CallbackOption {
	return callbackFunc(func(c *callbackConfig) {
		c.OnClose = append(c.OnClose, fn)
	})
}

// WithCallback decorates the given iterator with the configured callbacks.
func WithCallback[V any](i Iterator[V], cs ...CallbackOption) Iterator[V] {
	if len(cs) == 0 {
		return i
	}
	return &callbackIterator[V]{Iterator: i, CallbackConfig: toCallback(cs)}
}

type callbackIterator[V any] struct {
	Iterator[V]
	CallbackConfig callbackConfig
}

func (i *callbackIterator[V]) Close() error {
	var errs []error
	errs = []error{i.Iterator.Close()}
	for _, onClose := range i.CallbackConfig.OnClose {
		errs = append(errs, onClose())
	}
	return errorkit.Merge(errs...)
}

func toCallback(cs []CallbackOption) callbackConfig {
	var c callbackConfig
	for _, opt := range cs {
		opt.configure(&c)
	}
	return c
}

type callbackConfig struct {
	OnClose []func() error
}

// CallbackOption configures iterator lifecycle callbacks for Func and WithCallback.
type CallbackOption interface {
	configure(c *callbackConfig)
}

type callbackFunc func(c *callbackConfig)

func (fn callbackFunc) configure(c *callbackConfig) { fn(c) }
