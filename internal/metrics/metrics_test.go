package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveHTTPRequest(t *testing.T) {
	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/data", "200"))

	ObserveHTTPRequest("GET", "/data", http.StatusOK, 15*time.Millisecond)

	assert.Equal(t, before+1, testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/data", "200")))
}

func TestObserveLoad(t *testing.T) {
	kept := testutil.ToFloat64(metricRowsProcessed.WithLabelValues("kept"))
	unparsable := testutil.ToFloat64(metricRowsProcessed.WithLabelValues("unparsable"))

	ObserveLoad(3, 2, 1, time.Millisecond)

	assert.Equal(t, kept+3, testutil.ToFloat64(metricRowsProcessed.WithLabelValues("kept")))
	assert.Equal(t, unparsable+1, testutil.ToFloat64(metricRowsProcessed.WithLabelValues("unparsable")))
}

func TestCacheAndLoginCounters(t *testing.T) {
	hits := testutil.ToFloat64(snapshotCacheTotal.WithLabelValues("hit"))
	misses := testutil.ToFloat64(snapshotCacheTotal.WithLabelValues("miss"))
	failures := testutil.ToFloat64(loginAttemptsTotal.WithLabelValues("failure"))

	CacheHit()
	CacheMiss()
	CacheMiss()
	LoginAttempt(false)

	assert.Equal(t, hits+1, testutil.ToFloat64(snapshotCacheTotal.WithLabelValues("hit")))
	assert.Equal(t, misses+2, testutil.ToFloat64(snapshotCacheTotal.WithLabelValues("miss")))
	assert.Equal(t, failures+1, testutil.ToFloat64(loginAttemptsTotal.WithLabelValues("failure")))
}

func TestHandler(t *testing.T) {
	ObserveHTTPRequest("GET", "/health", http.StatusOK, time.Millisecond)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "http_server_requests_total")
}
