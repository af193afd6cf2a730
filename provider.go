package kizuna

import (
	"fmt"
	"reflect"
)

// Provider is the stored form of a binding. It produces opaque values that
// the caller downcasts to the type it expects.
//
// Providers returned by Insert, InsertWith, TryInsertWith and Remove are
// handles to the previous binding. They are not re-typed; pass them back to
// UncheckedInsert to restore a binding.
type Provider struct {
	kind    ProviderKind
	typ     reflect.Type
	single  func() any
	factory func(*Locator) any
}

// Cloner is implemented by values that need more than a shallow copy to be
// handed out by a Single provider. Clone is called on every lookup.
type Cloner[T any] interface {
	Clone() T
}

// NewSingleProvider creates a Single provider registered under t. The function
// must return a fresh logical copy of the stored value on every call.
func NewSingleProvider(t reflect.Type, fn func() any) *Provider {
	if fn == nil {
		panic("kizuna: single provider function cannot be nil")
	}

	return &Provider{kind: Single, typ: t, single: fn}
}

// NewFactoryProvider creates a Factory provider registered under t. The
// function receives the locator being queried.
func NewFactoryProvider(t reflect.Type, fn func(*Locator) any) *Provider {
	if fn == nil {
		panic("kizuna: factory provider function cannot be nil")
	}

	return &Provider{kind: Factory, typ: t, factory: fn}
}

// singleOf builds the Single provider used by Insert.
func singleOf[T any](value T) *Provider {
	t := typeOf[T]()

	if c, ok := any(value).(Cloner[T]); ok {
		return NewSingleProvider(t, func() any { return c.Clone() })
	}

	return NewSingleProvider(t, func() any { return value })
}

// Kind returns how the provider produces values.
func (p *Provider) Kind() ProviderKind {
	return p.kind
}

// Type returns the type identity the provider was created for.
func (p *Provider) Type() reflect.Type {
	return p.typ
}

// Provide produces a value. Single providers ignore l; Factory providers pass
// it to their factory.
func (p *Provider) Provide(l *Locator) any {
	switch p.kind {
	case Single:
		return p.single()
	case Factory:
		return p.factory(l)
	default:
		return nil
	}
}

func (p *Provider) String() string {
	return fmt.Sprintf("%s[%s]", p.kind, formatType(p.typ))
}
