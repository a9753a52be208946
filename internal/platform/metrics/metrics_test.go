package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_CountsRateLimitOutcomes(t *testing.T) {
	r := NewRecorder("test")

	r.ObserveUpstream("football-data", "matches", OutcomeRateLimited, 20*time.Millisecond)
	r.ObserveUpstream("football-data", "matches", OutcomeOK, 10*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(r.rateLimitHits.WithLabelValues("football-data")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.upstreamRequests.WithLabelValues("football-data", "matches", OutcomeOK)))
}

func TestRecorder_HandlerExposesMetrics(t *testing.T) {
	r := NewRecorder("test")
	r.RecordRetry("upcoming_matches")
	r.ObserveHTTP(http.MethodGet, "/v1/matches", http.StatusOK, time.Millisecond)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "test_gateway_retries_total")
	assert.Contains(t, string(body), "test_http_requests_total")
}

func TestRecorder_NilSafe(t *testing.T) {
	var r *Recorder
	assert.NotPanics(t, func() {
		r.ObserveUpstream("p", "e", OutcomeOK, time.Second)
		r.RecordRetry("op")
		r.ObserveHTTP("GET", "/", 200, time.Second)
	})
}
