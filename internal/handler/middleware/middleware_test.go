//go:build unit

package middleware_test

import (
	"io"
	"log/slog"
	"net/http"
	nethttptest "net/http/httptest"
	"strings"
	"testing"
	"time"

	"lunchly/internal/handler/middleware"
	"lunchly/internal/pkg/config"
	"lunchly/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRequestLogger_RequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(seen *string) *gin.Engine {
		r := gin.New()
		r.Use(middleware.RequestLogger(discardLogger()))
		r.GET("/api/customers", func(c *gin.Context) {
			*seen = middleware.GetRequestID(c)
			c.Status(http.StatusOK)
		})
		return r
	}

	t.Run("generates an id when none is sent", func(t *testing.T) {
		var seen string
		rec := httptest.PerformRequest(t, newRouter(&seen), http.MethodGet, "/api/customers", nil)

		id := rec.Header().Get(middleware.RequestIDHeader)
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, id, seen)
	})

	t.Run("reuses a well-formed incoming id", func(t *testing.T) {
		var seen string
		incoming := uuid.NewString()
		r := newRouter(&seen)

		req, _ := http.NewRequest(http.MethodGet, "/api/customers?term=ada", nil)
		req.Header.Set(middleware.RequestIDHeader, incoming)
		rec := nethttptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, incoming, rec.Header().Get(middleware.RequestIDHeader))
		assert.Equal(t, incoming, seen)
	})

	t.Run("replaces a malformed incoming id", func(t *testing.T) {
		var seen string
		r := newRouter(&seen)

		req, _ := http.NewRequest(http.MethodGet, "/api/customers", nil)
		req.Header.Set(middleware.RequestIDHeader, "<script>")
		rec := nethttptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.NotEqual(t, "<script>", seen)
		_, err := uuid.Parse(seen)
		assert.NoError(t, err)
	})
}

type observation struct {
	method string
	route  string
	status int
}

type fakeObserver struct {
	seen []observation
}

func (f *fakeObserver) ObserveRequest(method, route string, status int, d time.Duration) {
	f.seen = append(f.seen, observation{method: method, route: route, status: status})
}

func TestMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	obs := &fakeObserver{}

	r := gin.New()
	r.Use(middleware.Metrics(obs))
	r.GET("/api/customers/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	httptest.PerformRequest(t, r, http.MethodGet, "/api/customers/12", nil)
	httptest.PerformRequest(t, r, http.MethodGet, "/nowhere", nil)

	assert.Equal(t, []observation{
		{method: http.MethodGet, route: "/api/customers/:id", status: http.StatusOK},
		{method: http.MethodGet, route: "unmatched", status: http.StatusNotFound},
	}, obs.seen)
}

func TestCustomRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(middleware.CustomRecovery(), middleware.ErrorHandler())
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	rec := httptest.PerformRequest(t, r, http.MethodGet, "/boom", nil)
	httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
}

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.GET("/silent", func(c *gin.Context) {})
	r.GET("/teapot", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	t.Run("nothing written becomes a 500", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/silent", nil)
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	})

	t.Run("an explicit status is kept", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/teapot", nil)
		assert.Equal(t, http.StatusTeapot, rec.Code)
	})
}

func TestCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(cfg config.CORSConfig) *gin.Engine {
		r := gin.New()
		r.Use(middleware.NewCORSMiddleware(cfg))
		r.POST("/api/customers", func(c *gin.Context) {
			c.Redirect(http.StatusSeeOther, "/api/customers/1")
		})
		return r
	}
	send := func(r *gin.Engine, origin string) *nethttptest.ResponseRecorder {
		req, _ := http.NewRequest(http.MethodPost, "/api/customers", nil)
		req.Header.Set("Origin", origin)
		rec := nethttptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec
	}

	t.Run("allowed origin sees Location and the request id header", func(t *testing.T) {
		rec := send(newRouter(config.NewTestConfig().CORS), "http://localhost:3000")

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
		exposed := strings.ToLower(rec.Header().Get("Access-Control-Expose-Headers"))
		assert.Contains(t, exposed, "location")
		assert.Contains(t, exposed, "x-request-id")
	})

	t.Run("unknown origin is rejected", func(t *testing.T) {
		rec := send(newRouter(config.NewTestConfig().CORS), "http://evil.example")
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("wildcard allows any origin", func(t *testing.T) {
		cfg := config.NewTestConfig().CORS
		cfg.AllowOrigins = []string{"*"}

		rec := send(newRouter(cfg), "http://anywhere.example")
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})
}
