// Package echo provides kizuna integration for the Echo web framework.
//
// Example usage:
//
//	e := echo.New()
//	e.Use(kizunaecho.Middleware(l))
//
//	e.GET("/users", kizunaecho.Handle((*UserController).List))
package echo

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/junioryono/kizuna"
)

// Config holds the configuration for the locator middleware.
type Config struct {
	// ErrorHandler is called when a request middleware fails.
	// If nil, a 500 *echo.HTTPError is returned.
	ErrorHandler func(echo.Context, error) error

	// RequestLocator, when set, gives every request its own locator holding
	// all bindings of the shared one, populated by this function.
	RequestLocator func(*kizuna.Locator, echo.Context) error

	// Middlewares are functions that run after the locator is attached.
	Middlewares []func(*kizuna.Locator, echo.Context) error
}

// Option configures the locator middleware.
type Option func(*Config)

// WithErrorHandler sets the error handler for middleware failures.
func WithErrorHandler(h func(echo.Context, error) error) Option {
	return func(c *Config) {
		c.ErrorHandler = h
	}
}

// WithRequestLocator enables per-request locators populated by fn.
func WithRequestLocator(fn func(*kizuna.Locator, echo.Context) error) Option {
	return func(c *Config) {
		c.RequestLocator = fn
	}
}

// WithMiddleware adds a middleware function that runs after the locator is
// attached. Multiple middlewares are executed in the order they are added.
func WithMiddleware(mw func(*kizuna.Locator, echo.Context) error) Option {
	return func(c *Config) {
		c.Middlewares = append(c.Middlewares, mw)
	}
}

func internalError() error {
	return echo.NewHTTPError(http.StatusInternalServerError, "Internal Server Error")
}

func defaultConfig() *Config {
	return &Config{
		ErrorHandler: func(c echo.Context, err error) error {
			return internalError()
		},
	}
}

// Middleware creates an echo.MiddlewareFunc that attaches the locator to the
// request context.
func Middleware(loc *kizuna.Locator, opts ...Option) echo.MiddlewareFunc {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			reqLoc := loc
			if cfg.RequestLocator != nil {
				reqLoc = loc.Child()

				if err := cfg.RequestLocator(reqLoc, c); err != nil {
					return cfg.ErrorHandler(c, err)
				}
			}

			req := c.Request()
			c.SetRequest(req.WithContext(kizuna.WithLocator(req.Context(), reqLoc)))

			for _, mw := range cfg.Middlewares {
				if err := mw(reqLoc, c); err != nil {
					return cfg.ErrorHandler(c, err)
				}
			}

			return next(c)
		}
	}
}

// HandlerConfig holds configuration for the Handle wrappers.
type HandlerConfig struct {
	// PanicRecovery enables panic recovery in the handler.
	PanicRecovery bool

	// PanicHandler is called when a panic occurs (if PanicRecovery is true).
	PanicHandler func(echo.Context, any) error

	// LocatorErrorHandler is called when no locator is attached to the request.
	LocatorErrorHandler func(echo.Context, error) error

	// ResolutionErrorHandler is called when service resolution fails.
	ResolutionErrorHandler func(echo.Context, error) error
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
func WithPanicHandler(h func(echo.Context, any) error) HandlerOption {
	return func(c *HandlerConfig) {
		c.PanicHandler = h
	}
}

// WithLocatorErrorHandler sets the error handler for a missing locator.
func WithLocatorErrorHandler(h func(echo.Context, error) error) HandlerOption {
	return func(c *HandlerConfig) {
		c.LocatorErrorHandler = h
	}
}

// WithResolutionErrorHandler sets the error handler for service resolution failures.
func WithResolutionErrorHandler(h func(echo.Context, error) error) HandlerOption {
	return func(c *HandlerConfig) {
		c.ResolutionErrorHandler = h
	}
}

func defaultHandlerConfig() *HandlerConfig {
	return &HandlerConfig{
		PanicHandler: func(c echo.Context, v any) error {
			slog.Error("panic in handler", "panic", v)
			return internalError()
		},
		LocatorErrorHandler: func(c echo.Context, err error) error {
			slog.Error("failed to get locator from context", "error", err)
			return internalError()
		},
		ResolutionErrorHandler: func(c echo.Context, err error) error {
			slog.Error("failed to resolve handler dependencies", "error", err)
			return internalError()
		},
	}
}

// Handle wraps a method whose first parameter is resolved from the request
// locator. Errors returned by the method reach Echo's error handler as is.
//
// The method signature should be: func(T, echo.Context) error
func Handle[T any](method func(T, echo.Context) error, opts ...HandlerOption) echo.HandlerFunc {
	return wrap(opts, func(loc *kizuna.Locator, c echo.Context) (handlerErr, resolveErr error) {
		return kizuna.Invoke1(loc, func(dep T) error {
			return method(dep, c)
		})
	})
}

// TryHandle wraps a method whose first parameter is a fallible binding
// resolved with kizuna.TryGet.
func TryHandle[T any](method func(T, echo.Context) error, opts ...HandlerOption) echo.HandlerFunc {
	return wrap(opts, func(loc *kizuna.Locator, c echo.Context) (handlerErr, resolveErr error) {
		dep, err := kizuna.TryGet[T](loc)
		if err != nil {
			return nil, err
		}
		return method(dep, c), nil
	})
}

// wrap applies the handler configuration around serve, which returns the
// method's own error first and the resolution error second.
func wrap(opts []HandlerOption, serve func(*kizuna.Locator, echo.Context) (handlerErr, resolveErr error)) echo.HandlerFunc {
	cfg := defaultHandlerConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	return func(c echo.Context) (err error) {
		if cfg.PanicRecovery {
			defer func() {
				if v := recover(); v != nil {
					err = cfg.PanicHandler(c, v)
				}
			}()
		}

		loc, err := kizuna.FromContext(c.Request().Context())
		if err != nil {
			return cfg.LocatorErrorHandler(c, err)
		}

		handlerErr, resolveErr := serve(loc, c)
		if resolveErr != nil {
			return cfg.ResolutionErrorHandler(c, resolveErr)
		}

		return handlerErr
	}
}
