package kizuna

import "context"

// The async adapters resolve every argument before calling the handler, so a
// missing binding fails without creating a future. Only the await observes
// ctx; resolution never blocks.

// InvokeAsync0 calls fn and awaits its future.
func InvokeAsync0[R any](ctx context.Context, _ *Locator, fn func() Future[R]) (R, error) {
	return await(ctx, fn())
}

// InvokeAsync1 resolves one argument, calls fn and awaits its future.
func InvokeAsync1[A, R any](ctx context.Context, loc *Locator, fn func(A) Future[R]) (R, error) {
	a, err := Resolve1[A](loc)
	if err != nil {
		return zero[R](), err
	}
	return await(ctx, fn(a))
}

// InvokeAsync2 resolves two arguments, calls fn and awaits its future.
func InvokeAsync2[A, B, R any](ctx context.Context, loc *Locator, fn func(A, B) Future[R]) (R, error) {
	a, b, err := Resolve2[A, B](loc)
	if err != nil {
		return zero[R](), err
	}
	return await(ctx, fn(a, b))
}

// InvokeAsync3 resolves three arguments, calls fn and awaits its future.
func InvokeAsync3[A, B, C, R any](ctx context.Context, loc *Locator, fn func(A, B, C) Future[R]) (R, error) {
	a, b, c, err := Resolve3[A, B, C](loc)
	if err != nil {
		return zero[R](), err
	}
	return await(ctx, fn(a, b, c))
}

// InvokeAsync4 resolves four arguments, calls fn and awaits its future.
func InvokeAsync4[A, B, C, D, R any](ctx context.Context, loc *Locator, fn func(A, B, C, D) Future[R]) (R, error) {
	a, b, c, d, err := Resolve4[A, B, C, D](loc)
	if err != nil {
		return zero[R](), err
	}
	return await(ctx, fn(a, b, c, d))
}

// InvokeAsync5 resolves five arguments, calls fn and awaits its future.
func InvokeAsync5[A, B, C, D, E, R any](ctx context.Context, loc *Locator, fn func(A, B, C, D, E) Future[R]) (R, error) {
	a, b, c, d, e, err := Resolve5[A, B, C, D, E](loc)
	if err != nil {
		return zero[R](), err
	}
	return await(ctx, fn(a, b, c, d, e))
}

// InvokeAsync6 resolves six arguments, calls fn and awaits its future.
func InvokeAsync6[A, B, C, D, E, F, R any](ctx context.Context, loc *Locator, fn func(A, B, C, D, E, F) Future[R]) (R, error) {
	a, b, c, d, e, f, err := Resolve6[A, B, C, D, E, F](loc)
	if err != nil {
		return zero[R](), err
	}
	return await(ctx, fn(a, b, c, d, e, f))
}

// InvokeAsync7 resolves seven arguments, calls fn and awaits its future.
func InvokeAsync7[A, B, C, D, E, F, G, R any](ctx context.Context, loc *Locator, fn func(A, B, C, D, E, F, G) Future[R]) (R, error) {
	a, b, c, d, e, f, g, err := Resolve7[A, B, C, D, E, F, G](loc)
	if err != nil {
		return zero[R](), err
	}
	return await(ctx, fn(a, b, c, d, e, f, g))
}

// InvokeAsync8 resolves eight arguments, calls fn and awaits its future.
func InvokeAsync8[A, B, C, D, E, F, G, H, R any](ctx context.Context, loc *Locator, fn func(A, B, C, D, E, F, G, H) Future[R]) (R, error) {
	a, b, c, d, e, f, g, h, err := Resolve8[A, B, C, D, E, F, G, H](loc)
	if err != nil {
		return zero[R](), err
	}
	return await(ctx, fn(a, b, c, d, e, f, g, h))
}

// InvokeAsync9 resolves nine arguments, calls fn and awaits its future.
func InvokeAsync9[A, B, C, D, E, F, G, H, I, R any](ctx context.Context, loc *Locator, fn func(A, B, C, D, E, F, G, H, I) Future[R]) (R, error) {
	a, b, c, d, e, f, g, h, i, err := Resolve9[A, B, C, D, E, F, G, H, I](loc)
	if err != nil {
		return zero[R](), err
	}
	return await(ctx, fn(a, b, c, d, e, f, g, h, i))
}

// InvokeAsync10 resolves ten arguments, calls fn and awaits its future.
func InvokeAsync10[A, B, C, D, E, F, G, H, I, J, R any](ctx context.Context, loc *Locator, fn func(A, B, C, D, E, F, G, H, I, J) Future[R]) (R, error) {
	a, b, c, d, e, f, g, h, i, j, err := Resolve10[A, B, C, D, E, F, G, H, I, J](loc)
	if err != nil {
		return zero[R](), err
	}
	return await(ctx, fn(a, b, c, d, e, f, g, h, i, j))
}

// InvokeAsync11 resolves eleven arguments, calls fn and awaits its future.
func InvokeAsync11[A, B, C, D, E, F, G, H, I, J, K, R any](ctx context.Context, loc *Locator, fn func(A, B, C, D, E, F, G, H, I, J, K) Future[R]) (R, error) {
	a, b, c, d, e, f, g, h, i, j, k, err := Resolve11[A, B, C, D, E, F, G, H, I, J, K](loc)
	if err != nil {
		return zero[R](), err
	}
	return await(ctx, fn(a, b, c, d, e, f, g, h, i, j, k))
}

// InvokeAsync12 resolves twelve arguments, calls fn and awaits its future.
func InvokeAsync12[A, B, C, D, E, F, G, H, I, J, K, L, R any](ctx context.Context, loc *Locator, fn func(A, B, C, D, E, F, G, H, I, J, K, L) Future[R]) (R, error) {
	a, b, c, d, e, f, g, h, i, j, k, l, err := Resolve12[A, B, C, D, E, F, G, H, I, J, K, L](loc)
	if err != nil {
		return zero[R](), err
	}
	return await(ctx, fn(a, b, c, d, e, f, g, h, i, j, k, l))
}
