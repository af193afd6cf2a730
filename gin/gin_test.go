package gin

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junioryono/kizuna"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// Test types
type testService struct {
	ID string
}

type testController struct {
	Service *testService
}

func (c *testController) GetValue(ctx *gin.Context) {
	ctx.String(http.StatusOK, c.Service.ID)
}

func (c *testController) Panic(ctx *gin.Context) {
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
		g := gin.New()
		g.Use(Middleware(newLocator()))
		g.GET("/", Handle((*testController).GetValue))

		rec := serve(g, "/")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "svc", rec.Body.String())
	})

	t.Run("request locator", func(t *testing.T) {
		l := newLocator()

		g := gin.New()
		g.Use(Middleware(l, WithRequestLocator(func(rl *kizuna.Locator, c *gin.Context) error {
			kizuna.Insert(rl, requestTag(c.Query("tag")))
			return nil
		})))
		g.GET("/", Handle(func(tag requestTag, c *gin.Context) {
			c.String(http.StatusOK, string(tag))
		}))

		assert.Equal(t, "x", serve(g, "/?tag=x").Body.String())
		assert.False(t, kizuna.Contains[requestTag](l))
	})

	t.Run("middleware error aborts", func(t *testing.T) {
		g := gin.New()
		g.Use(Middleware(kizuna.New(),
			WithMiddleware(func(*kizuna.Locator, *gin.Context) error { return errors.New("denied") }),
		))
		g.GET("/", func(c *gin.Context) { t.Fatal("handler should not run") })

		rec := serve(g, "/")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"Internal Server Error"}`, rec.Body.String())
	})

	t.Run("custom error handler", func(t *testing.T) {
		g := gin.New()
		g.Use(Middleware(kizuna.New(),
			WithRequestLocator(func(*kizuna.Locator, *gin.Context) error { return errors.New("denied") }),
			WithErrorHandler(func(c *gin.Context, err error) {
				c.AbortWithStatus(http.StatusForbidden)
			}),
		))
		g.GET("/", func(c *gin.Context) {})

		assert.Equal(t, http.StatusForbidden, serve(g, "/").Code)
	})
}

func TestHandle(t *testing.T) {
	t.Run("missing locator", func(t *testing.T) {
		var handled error
		g := gin.New()
		g.GET("/", Handle((*testController).GetValue, WithLocatorErrorHandler(func(c *gin.Context, err error) {
			handled = err
			c.AbortWithStatus(http.StatusServiceUnavailable)
		})))

		assert.Equal(t, http.StatusServiceUnavailable, serve(g, "/").Code)
		assert.ErrorIs(t, handled, kizuna.ErrLocatorNotInContext)
	})

	t.Run("missing binding", func(t *testing.T) {
		var handled error
		g := gin.New()
		g.Use(Middleware(kizuna.New()))
		g.GET("/", Handle((*testController).GetValue, WithResolutionErrorHandler(func(c *gin.Context, err error) {
			handled = err
			c.AbortWithStatus(http.StatusNotFound)
		})))

		assert.Equal(t, http.StatusNotFound, serve(g, "/").Code)
		assert.ErrorIs(t, handled, kizuna.ErrNotFound)
	})

	t.Run("panic recovery", func(t *testing.T) {
		g := gin.New()
		g.Use(Middleware(newLocator()))
		g.GET("/", Handle((*testController).Panic, WithPanicRecovery(true)))

		assert.Equal(t, http.StatusInternalServerError, serve(g, "/").Code)
	})
}

func TestTryHandle(t *testing.T) {
	l := kizuna.New()
	kizuna.TryInsertWith(l, func(*kizuna.Locator) (*testService, error) {
		return nil, errors.New("unavailable")
	})

	var handled error
	g := gin.New()
	g.Use(Middleware(l))
	g.GET("/", TryHandle(func(*testService, *gin.Context) {
		t.Fatal("handler should not run")
	}, WithResolutionErrorHandler(func(c *gin.Context, err error) {
		handled = err
		c.AbortWithStatus(http.StatusBadGateway)
	})))

	assert.Equal(t, http.StatusBadGateway, serve(g, "/").Code)

	var other *kizuna.OtherError
	require.ErrorAs(t, handled, &other)
}
