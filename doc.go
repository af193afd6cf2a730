// Package kizuna provides a type-keyed service locator for Go applications.
// It stores one binding per type and injects those bindings into ordinary
// functions by their parameter types, without struct tags, code generation or
// a static wiring graph.
//
// # Overview
//
// The library provides:
//   - A Locator holding at most one binding per type
//   - Two provider kinds: Single (a stored value) and Factory (a function run on every lookup)
//   - Fallible bindings whose construction can fail with a typed error
//   - Typed invocation of functions with up to MaxArity injected parameters
//   - Asynchronous invocation through the Future interface
//   - Reflective invocation of functions known only at run time
//
// # Basic Usage
//
// Create a locator, bind services, then resolve them:
//
//	l := kizuna.New()
//	kizuna.Insert(l, &Config{Port: 8080})
//	kizuna.InsertWith(l, func(l *kizuna.Locator) *Server {
//	    return NewServer(kizuna.MustGet[*Config](l))
//	})
//
//	server, ok := kizuna.Get[*Server](l)
//
// Types are identified by their static type, so an interface binding is
// resolved through the interface and never through the concrete type behind
// it:
//
//	kizuna.Insert[users.Repository](l, users.NewMemoryRepository(db))
//
// # Providers
//
// Insert stores a value and hands out a copy on every lookup. Pointer, map,
// slice and channel values share their underlying data between copies; values
// implementing Cloner[T] are copied with Clone instead.
//
// InsertWith stores a factory. The factory runs on every lookup and receives
// the locator, so it can depend on other bindings. Results are never cached
// and cycles are not detected.
//
// Inserting a second binding for the same type replaces the first and returns
// its Provider.
//
// # Fallible Bindings
//
// TryInsertWith registers a factory that returns (T, error). Such bindings
// live in a separate key space: TryGet only sees bindings made with
// TryInsertWith, and Get never sees them.
//
//	kizuna.TryInsertWith(l, func(l *kizuna.Locator) (*sql.DB, error) {
//	    return sql.Open("sqlite3", path)
//	})
//
//	db, err := kizuna.TryGet[*sql.DB](l)
//
// # Invocation
//
// InvokeN resolves the N parameters of a function from left to right and
// calls it. If any parameter is missing, the function is not called and a
// *NotFoundError naming the first missing type is returned.
//
//	count, err := kizuna.Invoke2(l, func(repo users.Repository, log *slog.Logger) int {
//	    ...
//	})
//
// InvokeAsyncN does the same for functions returning a Future and awaits it
// with the given context:
//
//	users, err := kizuna.InvokeAsync1(ctx, l, func(repo users.Repository) kizuna.Future[[]users.User] {
//	    return kizuna.Go(func() ([]users.User, error) { return repo.GetAll(ctx) })
//	})
//
// Call handles functions whose signature is only known at run time.
//
// # Error Handling
//
// Resolution failures belong to a closed set implementing Error:
//   - NotFoundError: no binding for the type, or the wrong API was used to query it
//   - OtherError: a fallible factory failed for a domain reason
//
// NotFoundError matches ErrNotFound with errors.Is. Failures raised by the
// invoked handler itself are returned to the handler's caller untouched.
//
// # Thread Safety
//
// A Locator has no internal locking. Build it completely during startup, then
// share it read-only: Get, TryGet, Call and the invoke functions may be used
// from many goroutines at once. Values that change after sharing must
// synchronize themselves.
package kizuna
