package kizuna

import (
	"fmt"
	"log/slog"
	"maps"
	"reflect"
	"sort"
	"sync/atomic"

	"github.com/google/uuid"
)

// Locator is a type-keyed registry holding at most one binding per type.
//
// A Locator is not synchronized. Build it completely before sharing it;
// Get, TryGet and the invoke functions only read from it and may then be
// called from many goroutines. Insert, Remove and Extend need exclusive
// access.
type Locator struct {
	id        string
	providers map[reflect.Type]*Provider
	logger    *slog.Logger
	children  atomic.Uint64
}

// New creates an empty Locator.
func New(opts ...Option) *Locator {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt.apply(o)
		}
	}

	return &Locator{
		id:        uuid.NewString(),
		providers: make(map[reflect.Type]*Provider),
		logger:    o.logger,
	}
}

// Child returns a new locator holding every binding of l and using l's
// logger. Bindings added to or removed from the child do not affect l.
//
// Child only reads l, so a shared locator may hand out children to many
// goroutines at once. Child IDs are l's ID followed by a sequence number.
//
// Example:
//
//	req := shared.Child()
//	kizuna.Insert(req, requestID)
func (l *Locator) Child() *Locator {
	n := l.children.Add(1)

	return &Locator{
		id:        fmt.Sprintf("%s/%d", l.id, n),
		providers: maps.Clone(l.providers),
		logger:    l.logger,
	}
}

// ID returns the unique identifier generated for this locator.
func (l *Locator) ID() string {
	return l.id
}

// UncheckedInsert stores p under t without checking that p produces values
// of type t. It returns the replaced provider, or nil.
func (l *Locator) UncheckedInsert(t reflect.Type, p *Provider) *Provider {
	if t == nil {
		panic("kizuna: type cannot be nil")
	}
	if p == nil {
		panic("kizuna: provider cannot be nil")
	}

	prev := l.providers[t]
	l.providers[t] = p

	if prev != nil {
		l.logger.Debug("binding replaced",
			"locator", l.id,
			"type", formatType(t),
			"previous", prev.Kind().String(),
			"current", p.Kind().String())
	}

	return prev
}

// UncheckedGet returns the provider stored under t without invoking it.
func (l *Locator) UncheckedGet(t reflect.Type) (*Provider, bool) {
	p, ok := l.providers[t]
	return p, ok
}

// Len returns the number of bindings.
func (l *Locator) Len() int {
	return len(l.providers)
}

// IsEmpty reports whether the locator has no bindings.
func (l *Locator) IsEmpty() bool {
	return len(l.providers) == 0
}

// Extend copies every binding of other into l. When both hold a binding for
// the same type, other's binding wins.
func (l *Locator) Extend(other *Locator) {
	if other == nil || other == l {
		return
	}

	for t, p := range other.providers {
		l.UncheckedInsert(t, p)
	}
}

// Types returns the registered type identities ordered by name.
func (l *Locator) Types() []reflect.Type {
	types := make([]reflect.Type, 0, len(l.providers))
	for t := range l.providers {
		types = append(types, t)
	}

	sort.Slice(types, func(i, j int) bool {
		return types[i].String() < types[j].String()
	})

	return types
}

func (l *Locator) String() string {
	return fmt.Sprintf("Locator(%s, %d bindings)", l.id, len(l.providers))
}

// lookup produces the value bound to t, if any.
func (l *Locator) lookup(t reflect.Type) (any, bool) {
	p, ok := l.providers[t]
	if !ok {
		return nil, false
	}

	return p.Provide(l), true
}

// Insert binds value to T and returns the previous provider for T, or nil.
// Every lookup of T returns a copy of value; values implementing Cloner[T]
// are copied with Clone.
//
// Example:
//
//	kizuna.Insert(l, &Config{Port: 8080})
//	kizuna.Insert[Notifier](l, emailNotifier) // keyed by the interface
func Insert[T any](l *Locator, value T) *Provider {
	return l.UncheckedInsert(typeOf[T](), singleOf(value))
}

// InsertWith binds factory to T and returns the previous provider for T, or
// nil. The factory runs on every lookup of T and receives the queried locator,
// so it may resolve other bindings. Factories that resolve their own type
// recurse without bound.
//
// Example:
//
//	kizuna.InsertWith(l, func(l *kizuna.Locator) users.Repository {
//	    return users.NewMemoryRepository(kizuna.MustGet[*users.MemoryDB](l))
//	})
func InsertWith[T any](l *Locator, factory func(*Locator) T) *Provider {
	if factory == nil {
		panic("kizuna: factory cannot be nil")
	}

	return l.UncheckedInsert(typeOf[T](), NewFactoryProvider(typeOf[T](), func(l *Locator) any {
		return factory(l)
	}))
}

// Get returns the value bound to T. The boolean is false when T has no
// binding. Get never returns an error; use TryGet for fallible bindings.
func Get[T any](l *Locator) (T, bool) {
	v, ok := l.lookup(typeOf[T]())
	if !ok {
		var zero T
		return zero, false
	}

	return downcast[T](v)
}

// MustGet returns the value bound to T and panics if there is none. It is
// meant for wiring code where a missing binding is a programming error.
func MustGet[T any](l *Locator) T {
	v, ok := Get[T](l)
	if !ok {
		panic(fmt.Sprintf("kizuna: %v", NotFound[T]()))
	}

	return v
}

// Contains reports whether T has a binding. The provider is not invoked.
func Contains[T any](l *Locator) bool {
	_, ok := l.providers[typeOf[T]()]
	return ok
}

// Remove deletes the binding for T and returns it, or nil.
func Remove[T any](l *Locator) *Provider {
	t := typeOf[T]()

	p, ok := l.providers[t]
	if !ok {
		return nil
	}

	delete(l.providers, t)
	l.logger.Debug("binding removed", "locator", l.id, "type", formatType(t))

	return p
}

// typeOf returns the type identity of T. Interface types yield the
// interface itself rather than the dynamic type of some value.
func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// downcast converts an opaque provider value to T. It fails closed: a value of
// any other type yields false. A nil value is accepted for types that can be
// nil.
func downcast[T any](v any) (T, bool) {
	if result, ok := v.(T); ok {
		return result, true
	}

	var zero T
	if v == nil && canBeNil(typeOf[T]()) {
		return zero, true
	}

	return zero, false
}

func canBeNil(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return true
	}
	return false
}
