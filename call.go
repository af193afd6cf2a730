package kizuna

import (
	"fmt"
	"reflect"

	"github.com/junioryono/kizuna/internal/reflection"
)

// handlerAnalyzer caches handler signatures across all locators.
var handlerAnalyzer = reflection.New()

// Call resolves every parameter of fn by its type and calls fn, returning its
// results in order. It serves handlers whose signature is only known at run
// time; prefer the typed InvokeN functions otherwise.
//
// fn must be a non-variadic function with at most MaxArity parameters. Any
// other value yields an error wrapping ErrInvalidHandler before resolution
// starts. When a parameter cannot be resolved, fn is not called.
//
// Example:
//
//	results, err := kizuna.Call(l, func(db *sql.DB, log *slog.Logger) error {
//	    return migrate(db, log)
//	})
func Call(loc *Locator, fn any) ([]any, error) {
	info, err := handlerAnalyzer.Analyze(fn)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidHandler, err)
	}

	if info.Arity() > MaxArity {
		return nil, &ArityError{Arity: info.Arity(), Max: MaxArity}
	}

	args, err := ResolveTypes(loc, info.Parameters...)
	if err != nil {
		return nil, err
	}

	out := reflect.ValueOf(fn).Call(args)

	results := make([]any, len(info.Returns))
	for i, v := range out {
		results[i] = v.Interface()
	}

	return results, nil
}
