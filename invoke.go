package kizuna

// Invoke0 calls fn. It exists so that handlers of every arity up to MaxArity
// share one calling convention; it never fails.
func Invoke0[R any](_ *Locator, fn func() R) (R, error) {
	return fn(), nil
}

// Invoke1 resolves one argument and calls fn.
func Invoke1[A, R any](loc *Locator, fn func(A) R) (R, error) {
	a, err := Resolve1[A](loc)
	if err != nil {
		return zero[R](), err
	}
	return fn(a), nil
}

// Invoke2 resolves two arguments and calls fn.
func Invoke2[A, B, R any](loc *Locator, fn func(A, B) R) (R, error) {
	a, b, err := Resolve2[A, B](loc)
	if err != nil {
		return zero[R](), err
	}
	return fn(a, b), nil
}

// Invoke3 resolves three arguments and calls fn.
func Invoke3[A, B, C, R any](loc *Locator, fn func(A, B, C) R) (R, error) {
	a, b, c, err := Resolve3[A, B, C](loc)
	if err != nil {
		return zero[R](), err
	}
	return fn(a, b, c), nil
}

// Invoke4 resolves four arguments and calls fn.
func Invoke4[A, B, C, D, R any](loc *Locator, fn func(A, B, C, D) R) (R, error) {
	a, b, c, d, err := Resolve4[A, B, C, D](loc)
	if err != nil {
		return zero[R](), err
	}
	return fn(a, b, c, d), nil
}

// Invoke5 resolves five arguments and calls fn.
func Invoke5[A, B, C, D, E, R any](loc *Locator, fn func(A, B, C, D, E) R) (R, error) {
	a, b, c, d, e, err := Resolve5[A, B, C, D, E](loc)
	if err != nil {
		return zero[R](), err
	}
	return fn(a, b, c, d, e), nil
}

// Invoke6 resolves six arguments and calls fn.
func Invoke6[A, B, C, D, E, F, R any](loc *Locator, fn func(A, B, C, D, E, F) R) (R, error) {
	a, b, c, d, e, f, err := Resolve6[A, B, C, D, E, F](loc)
	if err != nil {
		return zero[R](), err
	}
	return fn(a, b, c, d, e, f), nil
}

// Invoke7 resolves seven arguments and calls fn.
func Invoke7[A, B, C, D, E, F, G, R any](loc *Locator, fn func(A, B, C, D, E, F, G) R) (R, error) {
	a, b, c, d, e, f, g, err := Resolve7[A, B, C, D, E, F, G](loc)
	if err != nil {
		return zero[R](), err
	}
	return fn(a, b, c, d, e, f, g), nil
}

// Invoke8 resolves eight arguments and calls fn.
func Invoke8[A, B, C, D, E, F, G, H, R any](loc *Locator, fn func(A, B, C, D, E, F, G, H) R) (R, error) {
	a, b, c, d, e, f, g, h, err := Resolve8[A, B, C, D, E, F, G, H](loc)
	if err != nil {
		return zero[R](), err
	}
	return fn(a, b, c, d, e, f, g, h), nil
}

// Invoke9 resolves nine arguments and calls fn.
func Invoke9[A, B, C, D, E, F, G, H, I, R any](loc *Locator, fn func(A, B, C, D, E, F, G, H, I) R) (R, error) {
	a, b, c, d, e, f, g, h, i, err := Resolve9[A, B, C, D, E, F, G, H, I](loc)
	if err != nil {
		return zero[R](), err
	}
	return fn(a, b, c, d, e, f, g, h, i), nil
}

// Invoke10 resolves ten arguments and calls fn.
func Invoke10[A, B, C, D, E, F, G, H, I, J, R any](loc *Locator, fn func(A, B, C, D, E, F, G, H, I, J) R) (R, error) {
	a, b, c, d, e, f, g, h, i, j, err := Resolve10[A, B, C, D, E, F, G, H, I, J](loc)
	if err != nil {
		return zero[R](), err
	}
	return fn(a, b, c, d, e, f, g, h, i, j), nil
}

// Invoke11 resolves eleven arguments and calls fn.
func Invoke11[A, B, C, D, E, F, G, H, I, J, K, R any](loc *Locator, fn func(A, B, C, D, E, F, G, H, I, J, K) R) (R, error) {
	a, b, c, d, e, f, g, h, i, j, k, err := Resolve11[A, B, C, D, E, F, G, H, I, J, K](loc)
	if err != nil {
		return zero[R](), err
	}
	return fn(a, b, c, d, e, f, g, h, i, j, k), nil
}

// Invoke12 resolves twelve arguments and calls fn.
func Invoke12[A, B, C, D, E, F, G, H, I, J, K, L, R any](loc *Locator, fn func(A, B, C, D, E, F, G, H, I, J, K, L) R) (R, error) {
	a, b, c, d, e, f, g, h, i, j, k, l, err := Resolve12[A, B, C, D, E, F, G, H, I, J, K, L](loc)
	if err != nil {
		return zero[R](), err
	}
	return fn(a, b, c, d, e, f, g, h, i, j, k, l), nil
}
