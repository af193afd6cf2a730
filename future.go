package kizuna

import "context"

// Future is the result of an asynchronous handler. InvokeAsync calls Await
// exactly once.
type Future[T any] interface {
	// Await blocks until the value is available or ctx is done.
	Await(ctx context.Context) (T, error)
}

// FutureFunc adapts a function to Future.
type FutureFunc[T any] func(ctx context.Context) (T, error)

// Await calls f(ctx).
func (f FutureFunc[T]) Await(ctx context.Context) (T, error) {
	return f(ctx)
}

// Ready returns a Future that is already resolved to v.
func Ready[T any](v T) Future[T] {
	return FutureFunc[T](func(context.Context) (T, error) {
		return v, nil
	})
}

// Go runs fn on a new goroutine and returns a Future for its result. The
// goroutine keeps running when Await gives up on a done context.
func Go[T any](fn func() (T, error)) Future[T] {
	f := &goFuture[T]{done: make(chan struct{})}

	go func() {
		defer close(f.done)
		f.value, f.err = fn()
	}()

	return f
}

type goFuture[T any] struct {
	done  chan struct{}
	value T
	err   error
}

func (f *goFuture[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		return zero[T](), ctx.Err()
	}
}

// await drives a handler's future to completion.
func await[R any](ctx context.Context, f Future[R]) (R, error) {
	if f == nil {
		return zero[R](), ErrNilFuture
	}

	if ctx == nil {
		ctx = context.Background()
	}

	return f.Await(ctx)
}
