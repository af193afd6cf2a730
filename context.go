package kizuna

import "context"

// locatorContextKey is the key for storing a locator in context.
type locatorContextKey struct{}

// WithLocator returns a copy of ctx carrying loc.
func WithLocator(ctx context.Context, loc *Locator) context.Context {
	return context.WithValue(ctx, locatorContextKey{}, loc)
}

// FromContext gets the locator attached with WithLocator.
func FromContext(ctx context.Context) (*Locator, error) {
	if ctx == nil {
		return nil, ErrLocatorNotInContext
	}

	loc, ok := ctx.Value(locatorContextKey{}).(*Locator)
	if !ok || loc == nil {
		return nil, ErrLocatorNotInContext
	}

	return loc, nil
}
