package kizuna

// TryLocator is the capability to hold bindings whose construction can fail.
// It is implemented only by *Locator.
type TryLocator interface {
	locator() *Locator
}

var _ TryLocator = (*Locator)(nil)

func (l *Locator) locator() *Locator {
	return l
}

// Result is the value produced by a fallible binding. Fallible bindings of T
// are stored under the type identity of Result[T], so they never collide with
// a plain binding of T.
type Result[T any] struct {
	Value T
	Err   error
}

// TryInsertWith binds a fallible factory for T and returns the previous
// fallible provider for T, or nil. A plain binding of T, if any, is left
// untouched.
//
// The factory runs on every TryGet. Errors that are not already a kizuna Error
// are wrapped in *OtherError.
//
// Example:
//
//	kizuna.TryInsertWith(l, func(l *kizuna.Locator) (users.Repository, error) {
//	    db, ok := kizuna.Get[*sql.DB](l)
//	    if !ok {
//	        return nil, kizuna.NotFound[*sql.DB]()
//	    }
//	    return users.NewSQLiteRepository(db), nil
//	})
func TryInsertWith[T any](tl TryLocator, factory func(*Locator) (T, error)) *Provider {
	if factory == nil {
		panic("kizuna: factory cannot be nil")
	}

	t := typeOf[Result[T]]()
	provider := NewFactoryProvider(t, func(l *Locator) any {
		value, err := factory(l)
		if err != nil {
			var zero T
			return Result[T]{Value: zero, Err: Other(err)}
		}
		return Result[T]{Value: value}
	})

	return tl.locator().UncheckedInsert(t, provider)
}

// TryGet resolves a binding registered with TryInsertWith. It returns a
// *NotFoundError naming T when no fallible binding exists, and the factory's
// error when construction fails. Bindings made with Insert or InsertWith are
// never consulted.
func TryGet[T any](tl TryLocator) (T, error) {
	var zero T

	l := tl.locator()
	v, ok := l.lookup(typeOf[Result[T]]())
	if !ok {
		return zero, NotFound[T]()
	}

	result, ok := v.(Result[T])
	if !ok {
		return zero, NotFound[T]()
	}

	if result.Err != nil {
		return zero, result.Err
	}

	return result.Value, nil
}

// TryContains reports whether T has a fallible binding.
func TryContains[T any](tl TryLocator) bool {
	_, ok := tl.locator().UncheckedGet(typeOf[Result[T]]())
	return ok
}

// TryRemove deletes the fallible binding for T and returns it, or nil.
func TryRemove[T any](tl TryLocator) *Provider {
	return Remove[Result[T]](tl.locator())
}
