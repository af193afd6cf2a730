// Package testutil holds assertions shared by the tests of packages that
// build locators.
package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junioryono/kizuna"
)

// AssertResolvable checks that T has a plain binding and returns its value.
func AssertResolvable[T any](t *testing.T, l *kizuna.Locator) T {
	t.Helper()
	v, ok := kizuna.Get[T](l)
	require.True(t, ok, "no binding for %T", *new(T))
	return v
}

// AssertTryResolvable checks that T has a fallible binding that succeeds and
// returns its value.
func AssertTryResolvable[T any](t *testing.T, l *kizuna.Locator) T {
	t.Helper()
	v, err := kizuna.TryGet[T](l)
	require.NoError(t, err, "failed to resolve %T", *new(T))
	return v
}

// AssertNotFound checks that T has no plain binding.
func AssertNotFound[T any](t *testing.T, l *kizuna.Locator) {
	t.Helper()
	_, ok := kizuna.Get[T](l)
	assert.False(t, ok, "unexpected binding for %T", *new(T))
}

// AssertTryNotFound checks that TryGet fails for T with a *kizuna.NotFoundError
// and returns it.
func AssertTryNotFound[T any](t *testing.T, l *kizuna.Locator) *kizuna.NotFoundError {
	t.Helper()
	_, err := kizuna.TryGet[T](l)
	return AssertErrorType[*kizuna.NotFoundError](t, err)
}

// AssertErrorType checks that err has type T in its chain and returns it.
func AssertErrorType[T error](t *testing.T, err error, msgAndArgs ...any) T {
	t.Helper()
	var target T
	require.ErrorAs(t, err, &target, msgAndArgs...)
	return target
}

// AssertLocatorInContext checks that ctx carries a locator and returns it.
func AssertLocatorInContext(t *testing.T, ctx context.Context) *kizuna.Locator {
	t.Helper()
	l, err := kizuna.FromContext(ctx)
	require.NoError(t, err)
	require.NotNil(t, l)
	return l
}
