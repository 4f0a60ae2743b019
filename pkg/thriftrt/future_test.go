package thriftrt

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInvoke(t *testing.T) {
	t.Run("can resolve a returned value", func(t *testing.T) {
		r := require.New(t)

		f := Invoke(func() (int32, error) {
			return 42, nil
		})

		v, err := f.Result()
		r.NoError(err)
		r.Equal(int32(42), v)
	})

	t.Run("rejects with a returned error", func(t *testing.T) {
		r := require.New(t)

		boom := errors.New("boom")

		f := Invoke(func() (string, error) {
			return "ignored", boom
		})

		v, err := f.Result()
		r.ErrorIs(err, boom)
		r.Equal("", v)
	})

	t.Run("rejects with a panic", func(t *testing.T) {
		r := require.New(t)

		f := InvokeVoid(func() error {
			panic("kaboom")
		})

		_, err := f.Result()
		r.Error(err)

		var pe *PanicError
		r.ErrorAs(err, &pe)
		r.Equal("kaboom", pe.Value)
		r.NotEmpty(pe.Stack)
	})
}

func TestFuture(t *testing.T) {
	t.Run("only resolves once", func(t *testing.T) {
		r := require.New(t)

		f := NewFuture[int]()
		f.Resolve(1)
		f.Reject(errors.New("late"))
		f.Resolve(2)

		v, err := f.Result()
		r.NoError(err)
		r.Equal(1, v)
	})

	t.Run("reports an unresolved future", func(t *testing.T) {
		r := require.New(t)

		f := NewFuture[int]()

		_, err := f.Result()
		r.Error(err)
	})

	t.Run("await returns when resolved from another goroutine", func(t *testing.T) {
		r := require.New(t)

		f := NewFuture[string]()

		go f.Resolve("done")

		v, err := f.Await(context.Background())
		r.NoError(err)
		r.Equal("done", v)
	})

	t.Run("await stops with the context", func(t *testing.T) {
		r := require.New(t)

		f := NewFuture[string]()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := f.Await(ctx)
		r.ErrorIs(err, context.Canceled)
	})
}
