// Package gin provides kizuna integration for the Gin web framework.
//
// This package provides middleware that shares a locator with request
// handlers and type-safe handler wrappers that receive injected services.
//
// Example usage:
//
//	l := kizuna.New()
//	kizuna.Insert[*UserController](l, NewUserController(repo))
//
//	g := gin.New()
//	g.Use(kizunagin.Middleware(l))
//
//	g.GET("/users", kizunagin.Handle((*UserController).List))
package gin

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/junioryono/kizuna"
)

// Config holds the configuration for the locator middleware.
type Config struct {
	// ErrorHandler is called when a request middleware fails.
	// If nil, a default handler returning 500 Internal Server Error is used.
	ErrorHandler func(*gin.Context, error)

	// RequestLocator, when set, gives every request its own locator holding
	// all bindings of the shared one, populated by this function.
	RequestLocator func(*kizuna.Locator, *gin.Context) error

	// Middlewares are functions that run after the locator is attached.
	// They can be used to bind request data such as user claims.
	Middlewares []func(*kizuna.Locator, *gin.Context) error
}

// Option configures the locator middleware.
type Option func(*Config)

// WithErrorHandler sets the error handler for middleware failures.
func WithErrorHandler(h func(*gin.Context, error)) Option {
	return func(c *Config) {
		c.ErrorHandler = h
	}
}

// WithRequestLocator enables per-request locators populated by fn.
func WithRequestLocator(fn func(*kizuna.Locator, *gin.Context) error) Option {
	return func(c *Config) {
		c.RequestLocator = fn
	}
}

// WithMiddleware adds a middleware function that runs after the locator is
// attached. Multiple middlewares are executed in the order they are added.
//
// Example:
//
//	kizunagin.Middleware(l,
//	    kizunagin.WithMiddleware(func(l *kizuna.Locator, c *gin.Context) error {
//	        if c.GetHeader("Authorization") == "" {
//	            return errUnauthorized
//	        }
//	        return nil
//	    }),
//	)
func WithMiddleware(mw func(*kizuna.Locator, *gin.Context) error) Option {
	return func(c *Config) {
		c.Middlewares = append(c.Middlewares, mw)
	}
}

func defaultConfig() *Config {
	return &Config{
		ErrorHandler: func(c *gin.Context, err error) {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error": "Internal Server Error",
			})
		},
	}
}

// Middleware creates a gin.HandlerFunc that attaches the locator to the
// request context, where kizuna.FromContext and Handle find it.
func Middleware(loc *kizuna.Locator, opts ...Option) gin.HandlerFunc {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	return func(c *gin.Context) {
		reqLoc := loc
		if cfg.RequestLocator != nil {
			reqLoc = loc.Child()

			if err := cfg.RequestLocator(reqLoc, c); err != nil {
				cfg.ErrorHandler(c, err)
				return
			}
		}

		c.Request = c.Request.WithContext(kizuna.WithLocator(c.Request.Context(), reqLoc))

		for _, mw := range cfg.Middlewares {
			if err := mw(reqLoc, c); err != nil {
				cfg.ErrorHandler(c, err)
				return
			}
		}

		c.Next()
	}
}

// HandlerConfig holds configuration for the Handle wrappers.
type HandlerConfig struct {
	// PanicRecovery enables panic recovery in the handler.
	PanicRecovery bool

	// PanicHandler is called when a panic occurs (if PanicRecovery is true).
	PanicHandler func(*gin.Context, any)

	// LocatorErrorHandler is called when no locator is attached to the request.
	LocatorErrorHandler func(*gin.Context, error)

	// ResolutionErrorHandler is called when service resolution fails.
	ResolutionErrorHandler func(*gin.Context, error)
}

// HandlerOption configures the Handle wrappers.
type HandlerOption func(*HandlerConfig)

// WithPanicRecovery enables or disables panic recovery in the handler.
func WithPanicRecovery(enabled bool) HandlerOption {
	return func(c *HandlerConfig) {
		c.PanicRecovery = enabled
	}
}

// WithPanicHandler sets the handler for panics (requires WithPanicRecovery(true)).
func WithPanicHandler(h func(*gin.Context, any)) HandlerOption {
	return func(c *HandlerConfig) {
		c.PanicHandler = h
	}
}

// WithLocatorErrorHandler sets the error handler for a missing locator.
func WithLocatorErrorHandler(h func(*gin.Context, error)) HandlerOption {
	return func(c *HandlerConfig) {
		c.LocatorErrorHandler = h
	}
}

// WithResolutionErrorHandler sets the error handler for service resolution failures.
func WithResolutionErrorHandler(h func(*gin.Context, error)) HandlerOption {
	return func(c *HandlerConfig) {
		c.ResolutionErrorHandler = h
	}
}

func abortInternal(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
		"error": "Internal Server Error",
	})
}

func defaultHandlerConfig() *HandlerConfig {
	return &HandlerConfig{
		PanicHandler: func(c *gin.Context, v any) {
			slog.Error("panic in handler", "panic", v)
			abortInternal(c)
		},
		LocatorErrorHandler: func(c *gin.Context, err error) {
			slog.Error("failed to get locator from context", "error", err)
			abortInternal(c)
		},
		ResolutionErrorHandler: func(c *gin.Context, err error) {
			slog.Error("failed to resolve handler dependencies", "error", err)
			abortInternal(c)
		},
	}
}

// Handle wraps a method whose first parameter is resolved from the request
// locator.
//
// The method signature should be: func(T, *gin.Context)
//
// Example:
//
//	g.GET("/users", kizunagin.Handle((*UserController).List))
func Handle[T any](method func(T, *gin.Context), opts ...HandlerOption) gin.HandlerFunc {
	return wrap(opts, func(loc *kizuna.Locator, c *gin.Context) error {
		_, err := kizuna.Invoke1(loc, func(dep T) struct{} {
			method(dep, c)
			return struct{}{}
		})
		return err
	})
}

// TryHandle wraps a method whose first parameter is a fallible binding
// resolved with kizuna.TryGet.
func TryHandle[T any](method func(T, *gin.Context), opts ...HandlerOption) gin.HandlerFunc {
	return wrap(opts, func(loc *kizuna.Locator, c *gin.Context) error {
		dep, err := kizuna.TryGet[T](loc)
		if err != nil {
			return err
		}

		method(dep, c)
		return nil
	})
}

func wrap(opts []HandlerOption, serve func(*kizuna.Locator, *gin.Context) error) gin.HandlerFunc {
	cfg := defaultHandlerConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	return func(c *gin.Context) {
		if cfg.PanicRecovery {
			defer func() {
				if v := recover(); v != nil {
					cfg.PanicHandler(c, v)
				}
			}()
		}

		loc, err := kizuna.FromContext(c.Request.Context())
		if err != nil {
			cfg.LocatorErrorHandler(c, err)
			return
		}

		if err := serve(loc, c); err != nil {
			cfg.ResolutionErrorHandler(c, err)
		}
	}
}
