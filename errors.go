package kizuna

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// ========================================
// Core Error Values (Sentinel Errors)
// ========================================

var (
	// ErrNotFound is matched by every *NotFoundError through errors.Is.
	ErrNotFound = errors.New("service not found")

	// ErrInvalidHandler is wrapped when Call receives something it cannot invoke.
	ErrInvalidHandler = errors.New("invalid handler")

	// ErrNilFuture is returned by the async adapters when a handler returns a nil Future.
	ErrNilFuture = errors.New("handler returned a nil future")

	// ErrLocatorNotInContext is returned by FromContext when no locator is attached.
	ErrLocatorNotInContext = errors.New("no locator found in context")
)

var (
	_ Error = (*NotFoundError)(nil)
	_ Error = (*OtherError)(nil)
	_ error = (*ArityError)(nil)
)

// ========================================
// Resolution Errors
// ========================================

// Error is the closed set of resolution failures reported by a Locator.
// It is implemented only by *NotFoundError and *OtherError.
type Error interface {
	error
	locatorError()
}

// NotFoundError reports that a type has no binding, or that it was queried
// through the wrong API (TryGet for a type registered with Insert, and the
// other way around).
type NotFoundError struct {
	// Type is the type that could not be resolved. It may be nil when the
	// error was built from a name only.
	Type reflect.Type

	// Expected is the human-readable name of Type.
	Expected string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("unable to find `%s` in locator", e.Expected)
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func (*NotFoundError) locatorError() {}

// OtherError wraps a domain failure returned by a fallible factory.
type OtherError struct {
	Cause error
}

func (e *OtherError) Error() string {
	if e.Cause == nil {
		return "<nil>"
	}
	return e.Cause.Error()
}

func (e *OtherError) Unwrap() error {
	return e.Cause
}

func (*OtherError) locatorError() {}

// NotFound returns a *NotFoundError for T.
//
// Example:
//
//	kizuna.TryInsertWith(l, func(*kizuna.Locator) (*Mailer, error) {
//	    return nil, kizuna.NotFound[*SMTPConfig]()
//	})
func NotFound[T any]() error {
	return notFound(typeOf[T]())
}

func notFound(t reflect.Type) *NotFoundError {
	return &NotFoundError{Type: t, Expected: formatType(t)}
}

// Other wraps err as an *OtherError. A *NotFoundError or *OtherError is
// returned unchanged, and a nil err stays nil. Wrapped chains are kept whole,
// so errors.Is still sees a NotFound buried inside them.
func Other(err error) error {
	if err == nil {
		return nil
	}

	if le, ok := err.(Error); ok {
		return le
	}

	return &OtherError{Cause: err}
}

// ========================================
// Handler Errors
// ========================================

// ArityError indicates a handler or type list exceeds MaxArity.
type ArityError struct {
	Arity int
	Max   int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("arity %d exceeds the maximum of %d", e.Arity, e.Max)
}

// Is reports whether target is ErrInvalidHandler.
func (e *ArityError) Is(target error) bool {
	return target == ErrInvalidHandler
}

// formatType formats a reflect.Type for error messages.
func formatType(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}

	switch t.Kind() {
	case reflect.Pointer:
		return "*" + formatType(t.Elem())
	case reflect.Slice:
		return "[]" + formatType(t.Elem())
	case reflect.Array:
		return fmt.Sprintf("[%d]%s", t.Len(), formatType(t.Elem()))
	case reflect.Map:
		return fmt.Sprintf("map[%s]%s", formatType(t.Key()), formatType(t.Elem()))
	case reflect.Func:
		return formatFunc(t)
	}

	// Named types keep their package qualifier, e.g. users.Repository
	return t.String()
}

func formatFunc(t reflect.Type) string {
	params := make([]string, 0, t.NumIn())
	for i := 0; i < t.NumIn(); i++ {
		params = append(params, formatType(t.In(i)))
	}

	returns := make([]string, 0, t.NumOut())
	for i := 0; i < t.NumOut(); i++ {
		returns = append(returns, formatType(t.Out(i)))
	}

	paramStr := strings.Join(params, ", ")
	switch len(returns) {
	case 0:
		return fmt.Sprintf("func(%s)", paramStr)
	case 1:
		return fmt.Sprintf("func(%s) %s", paramStr, returns[0])
	default:
		return fmt.Sprintf("func(%s) (%s)", paramStr, strings.Join(returns, ", "))
	}
}
