// Package fiber provides kizuna integration for the Fiber web framework.
//
// Fiber handlers do not receive a net/http request, so the locator is kept in
// fiber.Ctx.Locals and attached to the user context.
//
// Example usage:
//
//	app := fiber.New()
//	app.Use(kizunafiber.Middleware(l))
//
//	app.Get("/users", kizunafiber.Handle((*UserController).List))
package fiber

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/junioryono/kizuna"
)

// locatorKey is the key used to store the locator in fiber.Ctx.Locals
const locatorKey = "kizuna_locator"

// Config holds the configuration for the locator middleware.
type Config struct {
	// ErrorHandler is called when a request middleware fails.
	// If nil, a 500 JSON response is written.
	ErrorHandler func(*fiber.Ctx, error) error

	// RequestLocator, when set, gives every request its own locator holding
	// all bindings of the shared one, populated by this function.
	RequestLocator func(*kizuna.Locator, *fiber.Ctx) error

	// Middlewares are functions that run after the locator is attached.
	Middlewares []func(*kizuna.Locator, *fiber.Ctx) error
}

// Option configures the locator middleware.
type Option func(*Config)

// WithErrorHandler sets the error handler for middleware failures.
func WithErrorHandler(h func(*fiber.Ctx, error) error) Option {
	return func(c *Config) {
		c.ErrorHandler = h
	}
}

// WithRequestLocator enables per-request locators populated by fn.
func WithRequestLocator(fn func(*kizuna.Locator, *fiber.Ctx) error) Option {
	return func(c *Config) {
		c.RequestLocator = fn
	}
}

// WithMiddleware adds a middleware function that runs after the locator is
// attached. Multiple middlewares are executed in the order they are added.
func WithMiddleware(mw func(*kizuna.Locator, *fiber.Ctx) error) Option {
	return func(c *Config) {
		c.Middlewares = append(c.Middlewares, mw)
	}
}

func internalError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Internal Server Error",
	})
}

func defaultConfig() *Config {
	return &Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return internalError(c)
		},
	}
}

// Middleware creates a fiber.Handler that stores the locator in the request
// locals and user context.
func Middleware(loc *kizuna.Locator, opts ...Option) fiber.Handler {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	return func(c *fiber.Ctx) error {
		reqLoc := loc
		if cfg.RequestLocator != nil {
			reqLoc = loc.Child()

			if err := cfg.RequestLocator(reqLoc, c); err != nil {
				return cfg.ErrorHandler(c, err)
			}
		}

		c.SetUserContext(kizuna.WithLocator(c.UserContext(), reqLoc))
		c.Locals(locatorKey, reqLoc)

		for _, mw := range cfg.Middlewares {
			if err := mw(reqLoc, c); err != nil {
				return cfg.ErrorHandler(c, err)
			}
		}

		return c.Next()
	}
}

// HandlerConfig holds configuration for the Handle wrappers.
type HandlerConfig struct {
	// PanicRecovery enables panic recovery in the handler.
	PanicRecovery bool

	// PanicHandler is called when a panic occurs (if PanicRecovery is true).
	PanicHandler func(*fiber.Ctx, any) error

	// LocatorErrorHandler is called when no locator is stored for the request.
	LocatorErrorHandler func(*fiber.Ctx, error) error

	// ResolutionErrorHandler is called when service resolution fails.
	ResolutionErrorHandler func(*fiber.Ctx, error) error
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
func WithPanicHandler(h func(*fiber.Ctx, any) error) HandlerOption {
	return func(c *HandlerConfig) {
		c.PanicHandler = h
	}
}

// WithLocatorErrorHandler sets the error handler for a missing locator.
func WithLocatorErrorHandler(h func(*fiber.Ctx, error) error) HandlerOption {
	return func(c *HandlerConfig) {
		c.LocatorErrorHandler = h
	}
}

// WithResolutionErrorHandler sets the error handler for service resolution failures.
func WithResolutionErrorHandler(h func(*fiber.Ctx, error) error) HandlerOption {
	return func(c *HandlerConfig) {
		c.ResolutionErrorHandler = h
	}
}

func defaultHandlerConfig() *HandlerConfig {
	return &HandlerConfig{
		PanicHandler: func(c *fiber.Ctx, v any) error {
			slog.Error("panic in handler", "panic", v)
			return internalError(c)
		},
		LocatorErrorHandler: func(c *fiber.Ctx, err error) error {
			slog.Error("failed to get locator from context", "error", err)
			return internalError(c)
		},
		ResolutionErrorHandler: func(c *fiber.Ctx, err error) error {
			slog.Error("failed to resolve handler dependencies", "error", err)
			return internalError(c)
		},
	}
}

// Handle wraps a method whose first parameter is resolved from the request
// locator.
//
// The method signature should be: func(T, *fiber.Ctx) error
func Handle[T any](method func(T, *fiber.Ctx) error, opts ...HandlerOption) fiber.Handler {
	return wrap(opts, func(loc *kizuna.Locator, c *fiber.Ctx) (handlerErr, resolveErr error) {
		return kizuna.Invoke1(loc, func(dep T) error {
			return method(dep, c)
		})
	})
}

// TryHandle wraps a method whose first parameter is a fallible binding
// resolved with kizuna.TryGet.
func TryHandle[T any](method func(T, *fiber.Ctx) error, opts ...HandlerOption) fiber.Handler {
	return wrap(opts, func(loc *kizuna.Locator, c *fiber.Ctx) (handlerErr, resolveErr error) {
		dep, err := kizuna.TryGet[T](loc)
		if err != nil {
			return nil, err
		}
		return method(dep, c), nil
	})
}

func wrap(opts []HandlerOption, serve func(*kizuna.Locator, *fiber.Ctx) (handlerErr, resolveErr error)) fiber.Handler {
	cfg := defaultHandlerConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	return func(c *fiber.Ctx) (err error) {
		if cfg.PanicRecovery {
			defer func() {
				if v := recover(); v != nil {
					err = cfg.PanicHandler(c, v)
				}
			}()
		}

		loc := FromContext(c)
		if loc == nil {
			return cfg.LocatorErrorHandler(c, kizuna.ErrLocatorNotInContext)
		}

		handlerErr, resolveErr := serve(loc, c)
		if resolveErr != nil {
			return cfg.ResolutionErrorHandler(c, resolveErr)
		}

		return handlerErr
	}
}

// FromContext retrieves the locator stored by Middleware, or nil.
//
// Example:
//
//	l := kizunafiber.FromContext(c)
//	repo, err := kizuna.TryGet[users.Repository](l)
func FromContext(c *fiber.Ctx) *kizuna.Locator {
	loc, ok := c.Locals(locatorKey).(*kizuna.Locator)
	if !ok {
		return nil
	}
	return loc
}
