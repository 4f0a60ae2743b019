package thriftrt

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"

	"github.com/pkg/errors"
)

// Future holds the outcome of a handler invocation. It is resolved exactly
// once; later resolutions are ignored.
type Future[T any] struct {
	done chan struct{}

	mu       sync.Mutex
	resolved bool
	err      error
	result   T
}

func NewFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

func (f *Future[T]) Resolve(v T) {
	f.settle(v, nil)
}

func (f *Future[T]) Reject(err error) {
	var zero T
	f.settle(zero, err)
}

func (f *Future[T]) settle(v T, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.resolved {
		return
	}

	f.resolved = true
	f.result = v
	f.err = err

	close(f.done)
}

func (f *Future[T]) Wait() {
	<-f.done
}

func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

func (f *Future[T]) Result() (T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.resolved {
		var zero T
		return zero, errors.New("future not resolved")
	}

	return f.result, f.err
}

// Await blocks until the future resolves or ctx is done.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.Result()
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// PanicError is the failure recorded when a handler panics.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("handler panic: %v", e.Value)
}

// Invoke runs fn and resolves the returned future with its outcome. An
// error return and a panic both reject the future, so callers only ever
// inspect the future.
func Invoke[T any](fn func() (T, error)) *Future[T] {
	f := NewFuture[T]()

	func() {
		defer func() {
			if r := recover(); r != nil {
				f.Reject(&PanicError{Value: r, Stack: debug.Stack()})
			}
		}()

		v, err := fn()
		if err != nil {
			f.Reject(err)
			return
		}

		f.Resolve(v)
	}()

	return f
}

// InvokeVoid is Invoke for handlers without a return value.
func InvokeVoid(fn func() error) *Future[struct{}] {
	return Invoke(func() (struct{}, error) {
		return struct{}{}, fn()
	})
}
