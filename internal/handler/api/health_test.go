//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"lunchly/internal/handler/api"
	"lunchly/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(ctx context.Context) error {
	return p.err
}

func TestHealthHandler_Check(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("healthy database", func(t *testing.T) {
		router := gin.New()
		router.GET("/health", api.NewHealthHandler(stubPinger{}).Check)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/health", nil)

		var body map[string]string
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, "ok", body["status"])
	})

	t.Run("database down", func(t *testing.T) {
		router := gin.New()
		router.GET("/health", api.NewHealthHandler(stubPinger{err: errors.New("dial tcp: connection refused")}).Check)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/health", nil)
		httptest.AssertErrorResponse(t, rec, http.StatusServiceUnavailable, "Database unavailable")
	})
}
