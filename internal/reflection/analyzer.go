// Package reflection analyzes handler signatures for reflective invocation.
package reflection

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
)

var (
	ErrNilFunction = errors.New("function cannot be nil")
	ErrNotFunction = errors.New("value is not a function")
	ErrVariadic    = errors.New("variadic functions are not supported")
)

// Analyzer performs reflection-based analysis of handler functions.
// It caches analysis results per function type.
type Analyzer struct {
	mu    sync.RWMutex
	cache map[reflect.Type]*HandlerInfo
}

// HandlerInfo contains analyzed information about a handler function.
type HandlerInfo struct {
	Type       reflect.Type
	Parameters []reflect.Type
	Returns    []reflect.Type
}

// Arity returns the number of parameters.
func (h *HandlerInfo) Arity() int {
	return len(h.Parameters)
}

// New creates a new Analyzer.
func New() *Analyzer {
	return &Analyzer{
		cache: make(map[reflect.Type]*HandlerInfo),
	}
}

// Analyze inspects fn and returns its signature. Functions with the same
// type share one cached result.
func (a *Analyzer) Analyze(fn any) (*HandlerInfo, error) {
	if fn == nil {
		return nil, ErrNilFunction
	}

	val := reflect.ValueOf(fn)
	typ := val.Type()

	if typ.Kind() != reflect.Func {
		return nil, fmt.Errorf("%w: got %s", ErrNotFunction, typ)
	}

	// Typed nil function values
	if val.IsNil() {
		return nil, ErrNilFunction
	}

	if typ.IsVariadic() {
		return nil, fmt.Errorf("%w: %s", ErrVariadic, typ)
	}

	a.mu.RLock()
	if cached, ok := a.cache[typ]; ok {
		a.mu.RUnlock()
		return cached, nil
	}
	a.mu.RUnlock()

	info := &HandlerInfo{
		Type:       typ,
		Parameters: make([]reflect.Type, typ.NumIn()),
		Returns:    make([]reflect.Type, typ.NumOut()),
	}

	for i := 0; i < typ.NumIn(); i++ {
		info.Parameters[i] = typ.In(i)
	}

	for i := 0; i < typ.NumOut(); i++ {
		info.Returns[i] = typ.Out(i)
	}

	return a.cacheAndReturn(typ, info), nil
}

// cacheAndReturn stores info unless another goroutine got there first.
func (a *Analyzer) cacheAndReturn(typ reflect.Type, info *HandlerInfo) *HandlerInfo {
	a.mu.Lock()
	defer a.mu.Unlock()

	if cached, ok := a.cache[typ]; ok {
		return cached
	}

	a.cache[typ] = info
	return info
}
