package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerHandler(t *testing.T) {
	m := NewManager(Namespace, "test_server", prometheus.NewRegistry())
	m.CounterRequests.WithLabelValues(http.MethodGet, "/activities/", "200").Inc()
	m.CounterRequests.WithLabelValues(http.MethodGet, "/activities/", "200").Inc()
	m.HistRequestDuration.WithLabelValues(http.MethodGet, "/activities/").Observe(0.02)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.CounterRequests.WithLabelValues(http.MethodGet, "/activities/", "200")))

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `fittrack_test_server_requests_total{method="GET",route="/activities/",status="200"} 2`)
	assert.Contains(t, string(body), "fittrack_test_server_request_duration_seconds_count")
}

func TestNewRegistry(t *testing.T) {
	reg := NewRegistry()
	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}
