//go:build unit

package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"lunchly/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_ObserveRequest(t *testing.T) {
	m := metrics.New()

	m.ObserveRequest(http.MethodGet, "/api/customers/:id", http.StatusOK, 20*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "/api/customers/:id", http.StatusOK, 30*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "/api/customers/:id", http.StatusNotFound, 5*time.Millisecond)

	expected := `
# HELP lunchly_http_requests_total Total number of HTTP requests handled
# TYPE lunchly_http_requests_total counter
lunchly_http_requests_total{method="GET",route="/api/customers/:id",status="200"} 2
lunchly_http_requests_total{method="GET",route="/api/customers/:id",status="404"} 1
`
	err := testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "lunchly_http_requests_total")
	assert.NoError(t, err)
}

func TestMetrics_RecordRecentReservationQueries(t *testing.T) {
	m := metrics.New()

	m.RecordRecentReservationQueries("per_row", 3)
	m.RecordRecentReservationQueries("batch", 1)
	m.RecordRecentReservationQueries("batch", 0)

	expected := `
# HELP lunchly_recent_reservation_queries_total Number of queries issued to resolve customers' latest reservations
# TYPE lunchly_recent_reservation_queries_total counter
lunchly_recent_reservation_queries_total{strategy="batch"} 1
lunchly_recent_reservation_queries_total{strategy="per_row"} 3
`
	err := testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "lunchly_recent_reservation_queries_total")
	assert.NoError(t, err)
}

func TestMetrics_Handler(t *testing.T) {
	m := metrics.New()
	m.ObserveRequest(http.MethodPost, "/api/customers", http.StatusSeeOther, time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `lunchly_http_requests_total{method="POST",route="/api/customers",status="303"} 1`)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
