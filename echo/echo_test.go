package echo

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junioryono/kizuna"
)

// Test types
type testService struct {
	ID string
}

type testController struct {
	Service *testService
}

func (c *testController) GetValue(ctx echo.Context) error {
	return ctx.String(http.StatusOK, c.Service.ID)
}

func (c *testController) Fail(ctx echo.Context) error {
	return echo.NewHTTPError(http.StatusTeapot, "controller failed")
}

func (c *testController) Panic(ctx echo.Context) error {
	panic("test panic")
}

type requestTag string

func newLocator() *kizuna.Locator {
	l := kizuna.New()
	kizuna.Insert(l, &testService{ID: "svc"})
	kizuna.InsertWith(l, func(l *kizuna.Locator) *testController {
		return &testController{Service: kizuna.MustGet[*testService](l)}
	})
	return l
}

func serve(h http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestMiddleware(t *testing.T) {
	t.Run("resolves through the shared locator", func(t *testing.T) {
		e := echo.New()
		e.Use(Middleware(newLocator()))
		e.GET("/", Handle((*testController).GetValue))

		rec := serve(e, "/")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "svc", rec.Body.String())
	})

	t.Run("request locator", func(t *testing.T) {
		l := newLocator()

		e := echo.New()
		e.Use(Middleware(l, WithRequestLocator(func(rl *kizuna.Locator, c echo.Context) error {
			kizuna.Insert(rl, requestTag(c.QueryParam("tag")))
			return nil
		})))
		e.GET("/", Handle(func(tag requestTag, c echo.Context) error {
			return c.String(http.StatusOK, string(tag))
		}))

		assert.Equal(t, "y", serve(e, "/?tag=y").Body.String())
		assert.False(t, kizuna.Contains[requestTag](l))
	})

	t.Run("middleware error", func(t *testing.T) {
		e := echo.New()
		e.Use(Middleware(kizuna.New(),
			WithMiddleware(func(*kizuna.Locator, echo.Context) error { return errors.New("denied") }),
		))
		e.GET("/", func(c echo.Context) error { t.Fatal("handler should not run"); return nil })

		assert.Equal(t, http.StatusInternalServerError, serve(e, "/").Code)
	})
}

func TestHandle(t *testing.T) {
	t.Run("method errors pass through", func(t *testing.T) {
		e := echo.New()
		e.Use(Middleware(newLocator()))
		e.GET("/", Handle((*testController).Fail))

		assert.Equal(t, http.StatusTeapot, serve(e, "/").Code)
	})

	t.Run("missing locator", func(t *testing.T) {
		var handled error
		e := echo.New()
		e.GET("/", Handle((*testController).GetValue, WithLocatorErrorHandler(func(c echo.Context, err error) error {
			handled = err
			return echo.NewHTTPError(http.StatusServiceUnavailable)
		})))

		assert.Equal(t, http.StatusServiceUnavailable, serve(e, "/").Code)
		assert.ErrorIs(t, handled, kizuna.ErrLocatorNotInContext)
	})

	t.Run("missing binding", func(t *testing.T) {
		e := echo.New()
		e.Use(Middleware(kizuna.New()))
		e.GET("/", Handle((*testController).GetValue))

		assert.Equal(t, http.StatusInternalServerError, serve(e, "/").Code)
	})

	t.Run("panic recovery", func(t *testing.T) {
		var recovered any
		e := echo.New()
		e.Use(Middleware(newLocator()))
		e.GET("/", Handle((*testController).Panic,
			WithPanicRecovery(true),
			WithPanicHandler(func(c echo.Context, v any) error {
				recovered = v
				return echo.NewHTTPError(http.StatusBadGateway)
			}),
		))

		assert.Equal(t, http.StatusBadGateway, serve(e, "/").Code)
		assert.Equal(t, "test panic", recovered)
	})
}

func TestTryHandle(t *testing.T) {
	l := kizuna.New()
	kizuna.TryInsertWith(l, func(*kizuna.Locator) (*testService, error) {
		return &testService{ID: "fallible"}, nil
	})
	kizuna.TryInsertWith(l, func(*kizuna.Locator) (*testController, error) {
		return nil, kizuna.NotFound[*testService]()
	})

	var handled error
	onErr := WithResolutionErrorHandler(func(c echo.Context, err error) error {
		handled = err
		return echo.NewHTTPError(http.StatusNotFound)
	})

	e := echo.New()
	e.Use(Middleware(l))
	e.GET("/svc", TryHandle(func(svc *testService, c echo.Context) error {
		return c.String(http.StatusOK, svc.ID)
	}, onErr))
	e.GET("/ctrl", TryHandle((*testController).GetValue, onErr))

	assert.Equal(t, "fallible", serve(e, "/svc").Body.String())
	assert.Equal(t, http.StatusNotFound, serve(e, "/ctrl").Code)

	var nf *kizuna.NotFoundError
	require.ErrorAs(t, handled, &nf)
}
