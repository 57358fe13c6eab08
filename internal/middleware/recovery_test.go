package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nmilenkovic/nmilenkovic.com/internal/telemetry/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

type panicRecTestHandler struct {
	called bool
	panic  bool
}

func (h *panicRecTestHandler) ServeHTTP(_ http.ResponseWriter, _ *http.Request) {
	h.called = true
	if h.panic {
		panic("ups, something went wrong")
	}
}

func Test_panicRecoveryMiddleware_nonPanic(t *testing.T) {
	metricsManager := metrics.NewTestManager()

	handler := PanicRecovery(metricsManager)
	next := &panicRecTestHandler{}
	handlerFunc := handler(next)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	handlerFunc.ServeHTTP(rr, req)

	assert.True(t, next.called)
	// panic did not happen
	assert.Equal(t, float64(0), testutil.ToFloat64(metricsManager.CounterHandleRequestPanic))
}

func Test_panicRecoveryMiddleware_panic(t *testing.T) {
	metricsManager := metrics.NewTestManager()

	handler := PanicRecovery(metricsManager)
	next := &panicRecTestHandler{panic: true}
	handlerFunc := handler(next)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)

	assert.NotPanics(t, func() {
		handlerFunc.ServeHTTP(rr, req)
	})

	assert.True(t, next.called)
	assert.Equal(t, float64(1), testutil.ToFloat64(metricsManager.CounterHandleRequestPanic))
}
