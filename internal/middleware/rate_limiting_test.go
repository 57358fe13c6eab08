package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nmilenkovic/nmilenkovic.com/internal/telemetry/metrics"

	"github.com/go-redis/redis_rate/v9"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRateLimiter struct {
	allowed    int
	retryAfter time.Duration
	err        error
	lastKey    string
}

func (f *fakeRateLimiter) Allow(_ context.Context, key string, _ redis_rate.Limit) (*redis_rate.Result, error) {
	f.lastKey = key
	if f.err != nil {
		return nil, f.err
	}
	return &redis_rate.Result{
		Allowed:    f.allowed,
		RetryAfter: f.retryAfter,
	}, nil
}

func TestRateLimit_allowed(t *testing.T) {
	metricsManager := metrics.NewTestManager()
	limiter := &fakeRateLimiter{allowed: 1}

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})
	handler := RateLimit(limiter, "blog", 60, metricsManager)(next)

	rr := httptest.NewRecorder()
	req, err := http.NewRequest("GET", "/blog/posts", nil)
	require.NoError(t, err)
	req.RemoteAddr = "83.12.53.65:2145"

	handler.ServeHTTP(rr, req)

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rr.Code)
	// limiter key is per route and caller ip
	assert.Equal(t, "blog::83.12.53.65", limiter.lastKey)
	assert.Equal(t, float64(0), testutil.ToFloat64(metricsManager.CounterRateLimitedRequests))
}

func TestRateLimit_limited(t *testing.T) {
	metricsManager := metrics.NewTestManager()
	limiter := &fakeRateLimiter{allowed: 0, retryAfter: 30 * time.Second}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not be called")
	})
	handler := RateLimit(limiter, "blog", 60, metricsManager)(next)

	rr := httptest.NewRecorder()
	req, err := http.NewRequest("GET", "/blog/posts", nil)
	require.NoError(t, err)
	req.RemoteAddr = "83.12.53.65:2145"

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.JSONEq(t, `{"error":"retry after 30 seconds"}`, rr.Body.String())
	assert.Equal(t, float64(1), testutil.ToFloat64(metricsManager.CounterRateLimitedRequests))
}
