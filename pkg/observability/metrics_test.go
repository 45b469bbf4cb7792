package observability

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsHandlerExposesSeries(t *testing.T) {
	reg := InitRegistry()

	ObserveHTTP("GET", "/api/hotels", "200", 15*time.Millisecond)
	ObserveCache("redis", "hit")

	rec := httptest.NewRecorder()
	MetricsHandler(reg).ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	require.Equal(t, 200, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "hotelbooking_http_requests_total")
	assert.Contains(t, body, "hotelbooking_cache_events_total")
}
