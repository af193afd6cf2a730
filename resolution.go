package kizuna

import (
	"fmt"
	"reflect"
)

// MaxArity is the largest number of parameters the resolution and invocation
// functions accept. The typed functions exist for arities 0 through MaxArity;
// ResolveTypes and Call reject longer lists with an *ArityError.
const MaxArity = 12

// resolve looks up T and reports a *NotFoundError naming T when it is absent.
func resolve[T any](loc *Locator) (T, error) {
	if v, ok := Get[T](loc); ok {
		return v, nil
	}

	return zero[T](), NotFound[T]()
}

func zero[T any]() T {
	var z T
	return z
}

// ResolveTypes resolves each type in order and returns the values typed
// exactly as requested. It stops at the first type without a binding and
// returns a *NotFoundError for it; no partial result is returned.
func ResolveTypes(loc *Locator, types ...reflect.Type) ([]reflect.Value, error) {
	if len(types) > MaxArity {
		return nil, &ArityError{Arity: len(types), Max: MaxArity}
	}

	values := make([]reflect.Value, len(types))
	for i, t := range types {
		if t == nil {
			return nil, fmt.Errorf("%w: nil type at position %d", ErrInvalidHandler, i)
		}

		v, ok := loc.lookup(t)
		if !ok {
			return nil, notFound(t)
		}

		rv, ok := valueAs(v, t)
		if !ok {
			return nil, notFound(t)
		}

		values[i] = rv
	}

	return values, nil
}

// valueAs is the reflective counterpart of downcast.
func valueAs(v any, t reflect.Type) (reflect.Value, bool) {
	if v == nil {
		if canBeNil(t) {
			return reflect.Zero(t), true
		}
		return reflect.Value{}, false
	}

	rv := reflect.ValueOf(v)
	if rv.Type() == t {
		return rv, true
	}

	// Interface bindings hold a concrete dynamic value
	if t.Kind() != reflect.Interface || !rv.Type().Implements(t) {
		return reflect.Value{}, false
	}

	out := reflect.New(t).Elem()
	out.Set(rv)
	return out, true
}

// Resolve1 resolves one type.
func Resolve1[A any](loc *Locator) (A, error) {
	return resolve[A](loc)
}

// Resolve2 resolves two types from left to right.
func Resolve2[A, B any](loc *Locator) (A, B, error) {
	a, err := resolve[A](loc)
	if err != nil {
		return zero[A](), zero[B](), err
	}
	b, err := resolve[B](loc)
	if err != nil {
		return zero[A](), zero[B](), err
	}
	return a, b, nil
}

// Resolve3 resolves three types from left to right.
func Resolve3[A, B, C any](loc *Locator) (A, B, C, error) {
	a, err := resolve[A](loc)
	if err != nil {
		return zero[A](), zero[B](), zero[C](), err
	}
	b, err := resolve[B](loc)
	if err != nil {
		return zero[A](), zero[B](), zero[C](), err
	}
	c, err := resolve[C](loc)
	if err != nil {
		return zero[A](), zero[B](), zero[C](), err
	}
	return a, b, c, nil
}

// Resolve4 resolves four types from left to right.
func Resolve4[A, B, C, D any](loc *Locator) (A, B, C, D, error) {
	a, err := resolve[A](loc)
	if err != nil {
		return zero[A](), zero[B](), zero[C](), zero[D](), err
	}
	b, err := resolve[B](loc)
	if err != nil {
		return zero[A](), zero[B](), zero[C](), zero[D](), err
	}
	c, err := resolve[C](loc)
	if err != nil {
		return zero[A](), zero[B](), zero[C](), zero[D](), err
	}
	d, err := resolve[D](loc)
	if err != nil {
		return zero[A](), zero[B](), zero[C](), zero[D](), err
	}
	return a, b, c, d, nil
}

// Resolve5 resolves five types from left to right.
func Resolve5[A, B, C, D, E any](loc *Locator) (A, B, C, D, E, error) {
	a, err := resolve[A](loc)
	if err != nil {
		return zero[A](), zero[B](), zero[C](), zero[D](), zero[E](), err
	}
	b, err := resolve[B](loc)
	if err != nil {
		return zero[A](), zero[B](), zero[C](), zero[D](), zero[E](), err
	}
	c, err := resolve[C](loc)
	if err != nil {
		return zero[A](), zero[B](), zero[C](), zero[D](), zero[E](), err
	}
	d, err := resolve[D](loc)
	if err != nil {
		return zero[A](), zero[B](), zero[C](), zero[D](), zero[E](), err
	}
	e, err := resolve[E](loc)
	if err != nil {
		return zero[A](), zero[B](), zero[C](), zero[D](), zero[E](), err
	}
	return a, b, c, d, e, nil
}

// Resolve6 resolves six types from left to right.
func Resolve6[A, B, C, D, E, F any](loc *Locator) (A, B, C, D, E, F, error) {
	a, err := resolve[A](loc)
	if err != nil {
		return zero[A](), zero[B](), zero[C](), zero[D](), zero[E](), zero[F](), err
	}
	b, err := resolve[B](loc)
	if err != nil {
		return zero[A](), zero[B](), zero[C](), zero[D](), zero[E](), zero[F](), err
	}
	c, err := resolve[C](loc)
	if err != nil {
		return zero[A](), zero[B](), zero[C](), zero[D](), zero[E](), zero[F](), err
	}
	d, err := resolve[D](loc)
	if err != nil {
		return zero[A](), zero[B](), zero[C](), zero[D](), zero[E](), zero[F](), err
	}
	e, err := resolve[E](loc)
	if err != nil {
		return zero[A](), zero[B](), zero[C](), zero[D](), zero[E](), zero[F](), err
	}
	f, err := resolve[F](loc)
	if err != nil {
		return zero[A](), zero[B](), zero[C](), zero[D](), zero[E](), zero[F](), err
	}
	return a, b, c, d, e, f, nil
}

// Resolve7 resolves seven types from left to right.
func Resolve7[A, B, C, D, E, F, G any](loc *Locator) (A, B, C, D, E, F, G, error) {
	a, err := resolve[A](loc)
	if err != nil {
		return zero[A](), zero[B](), zero[C](), zero[D](), zero[E](), zero[F](), zero[G](), err
	}
	b, err := resolve[B](loc)
	if err != nil {
		return zero[A](), zero[B](), zero[C](), zero[D](), zero[E](), zero[F](), zero[G](), err
	}
	c, err := resolve[C](loc)
	if err != nil {
		return zero[A](), zero[B](), zero[C](), zero[D](), zero[E](), zero[F](), zero[G](), err
	}
	d, err := resolve[D](loc)
	if err != nil {
		return zero[A](), zero[B](), zero[C](), zero[D](), zero[E](), zero[F](), zero[G](), err
	}
	e, err := resolve[E](loc)
	if err != nil {
		return zero[A](), zero[B](), zero[C](), zero[D](), zero[E](), zero[F](), zero[G](), err
	}
	f, err := resolve[F](loc)
	if err != nil {
		return zero[A](), zero[B](), zero[C](), zero[D](), zero[E](), zero[F](), zero[G](), err
	}
	g, err := resolve[G](loc)
	if err != nil {
		return zero[A](), zero[B](), zero[C](), zero[D](), zero[E](), zero[F](), zero[G](), err
	}
	return a, b, c, d, e, f, g, nil
}

// Resolve8 resolves eight types from left to right.
func Resolve8[A, B, C, D, E, F, G, H any](loc *Locator) (A, B, C, D, E, F, G, H, error) {
	a, err := resolve[A](loc)
	if err != nil {
		return zero[A](), zero[B](), zero[C](), zero[D](), zero[E](), zero[F](), zero[G](), zero[H](), err
	}
	b, err := resolve[B](loc)
	if err != nil {
		return zero[A](), zero[B](), zero[C](), zero[D](), zero[E](), zero[F](), zero[G](), zero[H](), err
	}
	c, err := resolve[C](loc)
	if err != nil {
		return zero[A](), zero[B](), zero[C](), zero[D](), zero[E](), zero[F](), zero[G](), zero[H](), err
	}
	d, err := resolve[D](loc)
	if err != nil {
		return zero[A](), zero[B](), zero[C](), zero[D](), zero[E](), zero[F](), zero[G](), zero[H](), err
	}
	e, err := resolve[E](loc)
	if err != nil {
		return zero[A](), zero[B](), zero[C](), zero[D](), zero[E](), zero[F](), zero[G](), zero[H](), err
	}
	f, err := resolve[F](loc)
	if err != nil {
		return zero[A](), zero[B](), zero[C](), zero[D](), zero[E](), zero[F](), zero[G](), zero[H](), err
	}
	g, err := resolve[G](loc)
	if err != nil {
		return zero[A](), zero[B](), zero[C](), zero[D](), zero[E](), zero[F](), zero[G](), zero[H](), err
	}
	h, err := resolve[H](loc)
	if err != nil {
		return zero[A](), zero[B](), zero[C](), zero[D](), zero[E](), zero[F](), zero[G](), zero[H](), err
	}
	return a, b, c, d, e, f, g, h, nil
}

// Resolve9 resolves nine types from left to right.
func Resolve9[A, B, C, D, E, F, G, H, I any](loc *Locator) (A, B, C, D, E, F, G, H, I, error) {
	a, err := resolve[A](loc)
	if err != nil {
		return zero[A](), zero[B](), zero[C](), zero[D](), zero[E](), zero[F](), zero[G](), zero[H](), zero[I](), err
	}
	b, err := resolve[B](loc)
	if err != nil {
		return zero[A](), zero[B](), zero[C](), zero[D](), zero[E](), zero[F](), zero[G](), zero[H](), zero[I](), err
	}
	c, err := resolve[C](loc)
	if err != nil {
		return zero[A](), zero[B](), zero[C](), zero[D](), zero[E](), zero[F](), zero[G](), zero[H](), zero[I](), err
	}
	d, err := resolve[D](loc)
	if err != nil {
		return zero[A](), zero[B](), zero[C](), zero[D](), zero[E](), zero[F](), zero[G](), zero[H](), zero[I](), err
	}
	e, err := resolve[E](loc)
	if err != nil {
		return zero[A](), zero[B](), zero[C](), zero[D](), zero[E](), zero[F](), zero[G](), zero[H](), zero[I](), err
	}
	f, err := resolve[F](loc)
	if err != nil {
		return zero[A](), zero[B](), zero[C](), zero[D](), zero[E](), zero[F](), zero[G](), zero[H](), zero[I](), err
	}
	g, err := resolve[G](loc)
	if err != nil {
		return zero[A](), zero[B](), zero[C](), zero[D](), zero[E](), zero[F](), zero[G](), zero[H](), zero[I](), err
	}
	h, err := resolve[H](loc)
	if err != nil {
		return zero[A](), zero[B](), zero[C](), zero[D](), zero[E](), zero[F](), zero[G](), zero[H](), zero[I](), err
	}
	i, err := resolve[I](loc)
	if err != nil {
		return zero[A](), zero[B](), zero[C](), zero[D](), zero[E](), zero[F](), zero[G](), zero[H](), zero[I](), err
	}
	return a, b, c, d, e, f, g, h, i, nil
}

// Resolve10 resolves ten types from left to right.
func Resolve10[A, B, C, D, E, F, G, H, I, J any](loc *Locator) (A, B, C, D, E, F, G, H, I, J, error) {
	a, err := resolve[A](loc)
	if err != nil {
		return zero[A](), zero[B](), zero[C](), zero[D](), zero[E](), zero[F](), zero[G](), zero[H](), zero[I](), zero[J](), err
	}
	b, err := resolve[B](loc)
	if err != nil {
		return zero[A](), zero[B](), zero[C](), zero[D](), zero[E](), zero[F](), zero[G](), zero[H](), zero[I](), zero[J](), err
	}
	c, err := resolve[C](loc)
	if err != nil {
		return zero[A](), zero[B](), zero[C](), zero[D](), zero[E](), zero[F](), zero[G](), zero[H](), zero[I](), zero[J](), err
	}
	d, err := resolve[D](loc)
	if err != nil {
		return zero[A](), zero[B](), zero[C](), zero[D](), zero[E](), zero[F](), zero[G](), zero[H](), zero[I](), zero[J](), err
	}
	e, err := resolve[E](loc)
	if err != nil {
		return zero[A](), zero[B](), zero[C](), zero[D](), zero[E](), zero[F](), zero[G](), zero[H](), zero[I](), zero[J](), err
	}
	f, err := resolve[F](loc)
	if err != nil {
		return zero[A](), zero[B](), zero[C](), zero[D](), zero[E](), zero[F](), zero[G](), zero[H](), zero[I](), zero[J](), err
	}
	g, err := resolve[G](loc)
	if err != nil {
		return zero[A](), zero[B](), zero[C](), zero[D](), zero[E](), zero[F](), zero[G](), zero[H](), zero[I](), zero[J](), err
	}
	h, err := resolve[H](loc)
	if err != nil {
		return zero[A](), zero[B](), zero[C](), zero[D](), zero[E](), zero[F](), zero[G](), zero[H](), zero[I](), zero[J](), err
	}
	i, err := resolve[I](loc)
	if err != nil {
		return zero[A](), zero[B](), zero[C](), zero[D](), zero[E](), zero[F](), zero[G](), zero[H](), zero[I](), zero[J](), err
	}
	j, err := resolve[J](loc)
	if err != nil {
		return zero[A](), zero[B](), zero[C](), zero[D](), zero[E](), zero[F](), zero[G](), zero[H](), zero[I](), zero[J](), err
	}
	return a, b, c, d, e, f, g, h, i, j, nil
}

// Resolve11 resolves eleven types from left to right.
func Resolve11[A, B, C, D, E, F, G, H, I, J, K any](loc *Locator) (A, B, C, D, E, F, G, H, I, J, K, error) {
	a, err := resolve[A](loc)
	if err != nil {
		return zero[A](), zero[B](), zero[C](), zero[D](), zero[E](), zero[F](), zero[G](), zero[H](), zero[I](), zero[J](), zero[K](), err
	}
	b, err := resolve[B](loc)
	if err != nil {
		return zero[A](), zero[B](), zero[C](), zero[D](), zero[E](), zero[F](), zero[G](), zero[H](), zero[I](), zero[J](), zero[K](), err
	}
	c, err := resolve[C](loc)
	if err != nil {
		return zero[A](), zero[B](), zero[C](), zero[D](), zero[E](), zero[F](), zero[G](), zero[H](), zero[I](), zero[J](), zero[K](), err
	}
	d, err := resolve[D](loc)
	if err != nil {
		return zero[A](), zero[B](), zero[C](), zero[D](), zero[E](), zero[F](), zero[G](), zero[H](), zero[I](), zero[J](), zero[K](), err
	}
	e, err := resolve[E](loc)
	if err != nil {
		return zero[A](), zero[B](), zero[C](), zero[D](), zero[E](), zero[F](), zero[G](), zero[H](), zero[I](), zero[J](), zero[K](), err
	}
	f, err := resolve[F](loc)
	if err != nil {
		return zero[A](), zero[B](), zero[C](), zero[D](), zero[E](), zero[F](), zero[G](), zero[H](), zero[I](), zero[J](), zero[K](), err
	}
	g, err := resolve[G](loc)
	if err != nil {
		return zero[A](), zero[B](), zero[C](), zero[D](), zero[E](), zero[F](), zero[G](), zero[H](), zero[I](), zero[J](), zero[K](), err
	}
	h, err := resolve[H](loc)
	if err != nil {
		return zero[A](), zero[B](), zero[C](), zero[D](), zero[E](), zero[F](), zero[G](), zero[H](), zero[I](), zero[J](), zero[K](), err
	}
	i, err := resolve[I](loc)
	if err != nil {
		return zero[A](), zero[B](), zero[C](), zero[D](), zero[E](), zero[F](), zero[G](), zero[H](), zero[I](), zero[J](), zero[K](), err
	}
	j, err := resolve[J](loc)
	if err != nil {
		return zero[A](), zero[B](), zero[C](), zero[D](), zero[E](), zero[F](), zero[G](), zero[H](), zero[I](), zero[J](), zero[K](), err
	}
	k, err := resolve[K](loc)
	if err != nil {
		return zero[A](), zero[B](), zero[C](), zero[D](), zero[E](), zero[F](), zero[G](), zero[H](), zero[I](), zero[J](), zero[K](), err
	}
	return a, b, c, d, e, f, g, h, i, j, k, nil
}

// Resolve12 resolves twelve types from left to right.
func Resolve12[A, B, C, D, E, F, G, H, I, J, K, L any](loc *Locator) (A, B, C, D, E, F, G, H, I, J, K, L, error) {
	a, err := resolve[A](loc)
	if err != nil {
		return zero[A](), zero[B](), zero[C](), zero[D](), zero[E](), zero[F](), zero[G](), zero[H](), zero[I](), zero[J](), zero[K](), zero[L](), err
	}
	b, err := resolve[B](loc)
	if err != nil {
		return zero[A](), zero[B](), zero[C](), zero[D](), zero[E](), zero[F](), zero[G](), zero[H](), zero[I](), zero[J](), zero[K](), zero[L](), err
	}
	c, err := resolve[C](loc)
	if err != nil {
		return zero[A](), zero[B](), zero[C](), zero[D](), zero[E](), zero[F](), zero[G](), zero[H](), zero[I](), zero[J](), zero[K](), zero[L](), err
	}
	d, err := resolve[D](loc)
	if err != nil {
		return zero[A](), zero[B](), zero[C](), zero[D](), zero[E](), zero[F](), zero[G](), zero[H](), zero[I](), zero[J](), zero[K](), zero[L](), err
	}
	e, err := resolve[E](loc)
	if err != nil {
		return zero[A](), zero[B](), zero[C](), zero[D](), zero[E](), zero[F](), zero[G](), zero[H](), zero[I](), zero[J](), zero[K](), zero[L](), err
	}
	f, err := resolve[F](loc)
	if err != nil {
		return zero[A](), zero[B](), zero[C](), zero[D](), zero[E](), zero[F](), zero[G](), zero[H](), zero[I](), zero[J](), zero[K](), zero[L](), err
	}
	g, err := resolve[G](loc)
	if err != nil {
		return zero[A](), zero[B](), zero[C](), zero[D](), zero[E](), zero[F](), zero[G](), zero[H](), zero[I](), zero[J](), zero[K](), zero[L](), err
	}
	h, err := resolve[H](loc)
	if err != nil {
		return zero[A](), zero[B](), zero[C](), zero[D](), zero[E](), zero[F](), zero[G](), zero[H](), zero[I](), zero[J](), zero[K](), zero[L](), err
	}
	i, err := resolve[I](loc)
	if err != nil {
		return zero[A](), zero[B](), zero[C](), zero[D](), zero[E](), zero[F](), zero[G](), zero[H](), zero[I](), zero[J](), zero[K](), zero[L](), err
	}
	j, err := resolve[J](loc)
	if err != nil {
		return zero[A](), zero[B](), zero[C](), zero[D](), zero[E](), zero[F](), zero[G](), zero[H](), zero[I](), zero[J](), zero[K](), zero[L](), err
	}
	k, err := resolve[K](loc)
	if err != nil {
		return zero[A](), zero[B](), zero[C](), zero[D](), zero[E](), zero[F](), zero[G](), zero[H](), zero[I](), zero[J](), zero[K](), zero[L](), err
	}
	l, err := resolve[L](loc)
	if err != nil {
		return zero[A](), zero[B](), zero[C](), zero[D](), zero[E](), zero[F](), zero[G](), zero[H](), zero[I](), zero[J](), zero[K](), zero[L](), err
	}
	return a, b, c, d, e, f, g, h, i, j, k, l, nil
}
