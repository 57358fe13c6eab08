package internal

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nmilenkovic/nmilenkovic.com/internal/config"
	"github.com/nmilenkovic/nmilenkovic.com/internal/telemetry/metrics"

	"github.com/go-redis/redismock/v8"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer() *Server {
	cfg := &config.Config{
		Environment:                "test",
		DefaultPageSize:            10,
		BlogRateLimitAllowedPerMin: 100,
	}
	rdb, _ := redismock.NewClientMock()
	return &Server{
		config:         cfg,
		versionInfo:    "test-version",
		redisClient:    rdb,
		metricsManager: metrics.NewTestManager(),
	}
}

func TestServer_routerSetup(t *testing.T) {
	server := newTestServer()
	r := server.routerSetup()
	require.NotNil(t, r)

	for _, route := range []struct {
		name string
		path string
	}{
		{name: "root", path: "/"},
		{name: "version", path: "/version"},
		{name: "myip", path: "/myip"},
		{name: "blog-posts", path: "/blog/posts"},
		{name: "blog-page", path: "/blog/page/1/size/10"},
		{name: "blog-post", path: "/blog/post/some-post"},
		{name: "blog-tag", path: "/blog/tag/golang"},
		{name: "blog-tags", path: "/blog/tags"},
		{name: "unknown", path: "/no-such-thing"},
	} {
		t.Run(route.name, func(t *testing.T) {
			req, err := http.NewRequest("GET", route.path, nil)
			require.NoError(t, err)

			routeMatch := &mux.RouteMatch{}
			require.True(t, r.Match(req, routeMatch))
			require.NotNil(t, routeMatch.Route)
			assert.Equal(t, route.name, routeMatch.Route.GetName())
		})
	}
}

func TestServer_rootAndVersion(t *testing.T) {
	server := newTestServer()
	r := server.routerSetup()

	req, err := http.NewRequest("GET", "/", nil)
	require.NoError(t, err)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "I'm OK, thanks ;)", rr.Body.String())

	req, err = http.NewRequest("GET", "/version", nil)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "test-version", rr.Body.String())
}

func TestServer_unknownPath(t *testing.T) {
	server := newTestServer()
	r := server.routerSetup()

	req, err := http.NewRequest("GET", "/nonexistent", nil)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
