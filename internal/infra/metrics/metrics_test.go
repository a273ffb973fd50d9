package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"evently/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordRequest(http.MethodGet, "/api/events", http.StatusOK, 20*time.Millisecond)
	c.RecordRequest(http.MethodGet, "/api/events", http.StatusOK, 30*time.Millisecond)
	c.RecordRequest(http.MethodGet, "/api/events", http.StatusUnauthorized, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.requests.WithLabelValues("GET", "/api/events", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.requests.WithLabelValues("GET", "/api/events", "401")))
	assert.Equal(t, 1, testutil.CollectAndCount(c.requestDuration))
}

func TestRecordAuthentication(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordAuthentication("local", service.AuthResultSuccess)
	c.RecordAuthentication("local", service.AuthResultFailure)
	c.RecordAuthentication("local", service.AuthResultFailure)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.authentications.WithLabelValues("local", service.AuthResultSuccess)))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.authentications.WithLabelValues("local", service.AuthResultFailure)))
}

func TestHandler_ServesMetrics(t *testing.T) {
	reg := NewRegistry()
	c := NewCollector(reg)
	c.RecordAuthentication("bearer", service.AuthResultSuccess)

	w := httptest.NewRecorder()
	Handler(reg).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	resp := w.Result()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "evently_authentications_total")
	assert.Contains(t, string(body), "go_goroutines")
}
