// Package chi provides kizuna integration for the Chi router.
//
// This package provides middleware that shares a locator with request
// handlers and type-safe handler wrappers that receive injected services.
//
// Example usage:
//
//	l := kizuna.New()
//	kizuna.Insert[users.Repository](l, repo)
//
//	r := kizunachi.NewRouter(l)
//	r.Get("/users", kizunachi.Handle(UserController.List))
package chi

import (
	"log/slog"
	"net/http"

	gochi "github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/junioryono/kizuna"
)

// Config holds the configuration for the locator middleware.
type Config struct {
	// ErrorHandler is called when a request middleware fails.
	// If nil, a default handler returning 500 Internal Server Error is used.
	ErrorHandler func(http.ResponseWriter, *http.Request, error)

	// RequestLocator, when set, gives every request a child of the shared
	// locator (see kizuna.Locator.Child). The function may add
	// request-specific bindings to it. The shared locator is never modified.
	RequestLocator func(*kizuna.Locator, *http.Request) error

	// Middlewares are functions that run after the locator is attached.
	Middlewares []func(*kizuna.Locator, *http.Request) error
}

// Option configures the locator middleware.
type Option func(*Config)

// WithErrorHandler sets the error handler for middleware failures.
func WithErrorHandler(h func(http.ResponseWriter, *http.Request, error)) Option {
	return func(c *Config) {
		c.ErrorHandler = h
	}
}

// WithRequestLocator enables per-request locators populated by fn.
func WithRequestLocator(fn func(*kizuna.Locator, *http.Request) error) Option {
	return func(c *Config) {
		c.RequestLocator = fn
	}
}

// WithMiddleware adds a middleware function that runs after the locator is
// attached. Multiple middlewares are executed in the order they are added.
func WithMiddleware(mw func(*kizuna.Locator, *http.Request) error) Option {
	return func(c *Config) {
		c.Middlewares = append(c.Middlewares, mw)
	}
}

func defaultConfig() *Config {
	return &Config{
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		},
	}
}

// Middleware creates a Chi middleware that attaches the locator to each
// request context, where kizuna.FromContext and the Handle wrappers find it.
//
// Example:
//
//	r := chi.NewRouter()
//	r.Use(kizunachi.Middleware(l))
func Middleware(loc *kizuna.Locator, opts ...Option) func(http.Handler) http.Handler {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqLoc := loc
			if cfg.RequestLocator != nil {
				reqLoc = loc.Child()

				if err := cfg.RequestLocator(reqLoc, r); err != nil {
					cfg.ErrorHandler(w, r, err)
					return
				}
			}

			r = r.WithContext(kizuna.WithLocator(r.Context(), reqLoc))

			for _, mw := range cfg.Middlewares {
				if err := mw(reqLoc, r); err != nil {
					cfg.ErrorHandler(w, r, err)
					return
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

// NewRouter creates a Chi router with request IDs, real IP detection, panic
// recovery and the locator middleware installed.
func NewRouter(loc *kizuna.Locator, opts ...Option) gochi.Router {
	r := gochi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(Middleware(loc, opts...))
	return r
}

// HandlerConfig holds configuration for the Handle wrappers.
type HandlerConfig struct {
	// PanicRecovery enables panic recovery in the handler.
	PanicRecovery bool

	// PanicHandler is called when a panic occurs (if PanicRecovery is true).
	PanicHandler func(http.ResponseWriter, *http.Request, any)

	// LocatorErrorHandler is called when no locator is attached to the request.
	LocatorErrorHandler func(http.ResponseWriter, *http.Request, error)

	// ResolutionErrorHandler is called when service resolution fails.
	ResolutionErrorHandler func(http.ResponseWriter, *http.Request, error)
}

// HandlerOption configures the Handle wrappers.
type HandlerOption func(*HandlerConfig)

// WithPanicRecovery enables or disables panic recovery in the handler.
func WithPanicRecovery(enabled bool) HandlerOption {
	return func(c *HandlerConfig) {
		c.PanicRecovery = enabled
	}
}

// WithPanicHandler sets the handler for panics.
func WithPanicHandler(h func(http.ResponseWriter, *http.Request, any)) HandlerOption {
	return func(c *HandlerConfig) {
		c.PanicHandler = h
	}
}

// WithLocatorErrorHandler sets the error handler for a missing locator.
func WithLocatorErrorHandler(h func(http.ResponseWriter, *http.Request, error)) HandlerOption {
	return func(c *HandlerConfig) {
		c.LocatorErrorHandler = h
	}
}

// WithResolutionErrorHandler sets the error handler for service resolution failures.
func WithResolutionErrorHandler(h func(http.ResponseWriter, *http.Request, error)) HandlerOption {
	return func(c *HandlerConfig) {
		c.ResolutionErrorHandler = h
	}
}

func defaultHandlerConfig() *HandlerConfig {
	return &HandlerConfig{
		PanicRecovery: false,
		PanicHandler: func(w http.ResponseWriter, r *http.Request, v any) {
			slog.Error("panic in handler", "panic", v)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		},
		LocatorErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			slog.Error("failed to get locator from context", "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		},
		ResolutionErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			slog.Error("failed to resolve handler dependencies", "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		},
	}
}

// Handle wraps a method whose first parameter is resolved from the request
// locator with kizuna.Get.
//
// The method signature should be: func(T, http.ResponseWriter, *http.Request)
//
// Example:
//
//	r.Get("/users", kizunachi.Handle(UserController.List))
func Handle[T any](method func(T, http.ResponseWriter, *http.Request), opts ...HandlerOption) http.HandlerFunc {
	return wrap(opts, func(loc *kizuna.Locator, w http.ResponseWriter, r *http.Request) error {
		_, err := kizuna.Invoke1(loc, func(dep T) struct{} {
			method(dep, w, r)
			return struct{}{}
		})
		return err
	})
}

// Handle2 is Handle for two injected parameters.
func Handle2[A, B any](method func(A, B, http.ResponseWriter, *http.Request), opts ...HandlerOption) http.HandlerFunc {
	return wrap(opts, func(loc *kizuna.Locator, w http.ResponseWriter, r *http.Request) error {
		_, err := kizuna.Invoke2(loc, func(a A, b B) struct{} {
			method(a, b, w, r)
			return struct{}{}
		})
		return err
	})
}

// TryHandle wraps a method whose first parameter is a fallible binding
// resolved with kizuna.TryGet. Factory failures reach the resolution error
// handler.
func TryHandle[T any](method func(T, http.ResponseWriter, *http.Request), opts ...HandlerOption) http.HandlerFunc {
	return wrap(opts, func(loc *kizuna.Locator, w http.ResponseWriter, r *http.Request) error {
		dep, err := kizuna.TryGet[T](loc)
		if err != nil {
			return err
		}

		method(dep, w, r)
		return nil
	})
}

// wrap applies the handler configuration around serve. serve returns only
// resolution errors; the wrapped method reports its own failures.
func wrap(opts []HandlerOption, serve func(*kizuna.Locator, http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	cfg := defaultHandlerConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		if cfg.PanicRecovery {
			defer func() {
				if v := recover(); v != nil {
					cfg.PanicHandler(w, r, v)
				}
			}()
		}

		loc, err := kizuna.FromContext(r.Context())
		if err != nil {
			cfg.LocatorErrorHandler(w, r, err)
			return
		}

		if err := serve(loc, w, r); err != nil {
			cfg.ResolutionErrorHandler(w, r, err)
		}
	}
}
