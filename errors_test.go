package kizuna

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	sentinelErrors := []struct {
		err     error
		message string
	}{
		{ErrNotFound, "service not found"},
		{ErrInvalidHandler, "invalid handler"},
		{ErrNilFuture, "handler returned a nil future"},
		{ErrLocatorNotInContext, "no locator found in context"},
	}

	for _, tt := range sentinelErrors {
		t.Run(tt.message, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.Equal(t, tt.message, tt.err.Error())
		})
	}
}

func TestNotFoundError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"struct", NotFound[ServiceA](), "unable to find `kizuna.ServiceA` in locator"},
		{"pointer", NotFound[*ServiceA](), "unable to find `*kizuna.ServiceA` in locator"},
		{"interface", NotFound[Greeter](), "unable to find `kizuna.Greeter` in locator"},
		{"slice", NotFound[[]string](), "unable to find `[]string` in locator"},
		{"map", NotFound[map[string]*ServiceA](), "unable to find `map[string]*kizuna.ServiceA` in locator"},
		{"array", NotFound[[2]int](), "unable to find `[2]int` in locator"},
		{"func", NotFound[func(int) (string, error)](), "unable to find `func(int) (string, error)` in locator"},
		{"builtin", NotFound[int](), "unable to find `int` in locator"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
			assert.ErrorIs(t, tt.err, ErrNotFound)

			var nf *NotFoundError
			require.ErrorAs(t, tt.err, &nf)
			assert.NotNil(t, nf.Type)
		})
	}
}

func TestNotFoundError_Type(t *testing.T) {
	var nf *NotFoundError
	require.ErrorAs(t, NotFound[Greeter](), &nf)
	assert.Equal(t, reflect.TypeOf((*Greeter)(nil)).Elem(), nf.Type)
}

func TestOther(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, Other(nil))
	})

	t.Run("wraps domain errors", func(t *testing.T) {
		err := Other(errBoom)

		var other *OtherError
		require.ErrorAs(t, err, &other)
		assert.Same(t, errBoom, other.Cause)
		assert.Equal(t, "boom", err.Error())
		assert.ErrorIs(t, err, errBoom)
		assert.NotErrorIs(t, err, ErrNotFound)
	})

	t.Run("locator errors are returned unchanged", func(t *testing.T) {
		nf := NotFound[int]()
		assert.Same(t, nf, Other(nf))

		other := &OtherError{Cause: errBoom}
		assert.Same(t, other, Other(other))
	})

	t.Run("wrapped not found keeps context", func(t *testing.T) {
		wrapped := fmt.Errorf("opening store: %w", NotFound[*ServiceA]())
		err := Other(wrapped)

		var other *OtherError
		require.ErrorAs(t, err, &other)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Equal(t, "opening store: unable to find `*kizuna.ServiceA` in locator", err.Error())
	})

	t.Run("nil cause", func(t *testing.T) {
		assert.Equal(t, "<nil>", (&OtherError{}).Error())
		assert.Nil(t, (&OtherError{}).Unwrap())
	})
}

func TestError_ClosedSet(t *testing.T) {
	var le Error

	assert.True(t, errors.As(NotFound[int](), &le))
	assert.True(t, errors.As(Other(errBoom), &le))
	assert.False(t, errors.As(errBoom, &le))
}

func TestArityError(t *testing.T) {
	err := &ArityError{Arity: 13, Max: 12}

	assert.Equal(t, "arity 13 exceeds the maximum of 12", err.Error())
	assert.ErrorIs(t, err, ErrInvalidHandler)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestFormatType(t *testing.T) {
	assert.Equal(t, "<nil>", formatType(nil))
	assert.Equal(t, "func()", formatType(reflect.TypeOf(func() {})))
	assert.Equal(t, "func(*kizuna.Locator) int", formatType(reflect.TypeOf(func(*Locator) int { return 0 })))
	assert.Equal(t, "kizuna.Result[int]", formatType(typeOf[Result[int]]()))
}
