package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorsMiddleware(t *testing.T) {
	testCases := []struct {
		name           string
		origin         string
		userAgent      string
		method         string
		path           string
		expectCors     bool
		expectedStatus int
	}{
		{
			name:           "AllowedOrigin",
			origin:         "https://www.nmilenkovic.com",
			path:           "/blog/posts",
			expectCors:     true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "AllowedOriginLocalhost",
			origin:         "http://localhost:3000",
			path:           "/blog/tags",
			expectCors:     true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "NotAllowedOrigin",
			origin:         "https://www.notallowed.com",
			path:           "/blog/posts",
			expectCors:     false,
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "AllowedUserAgentCurl",
			userAgent:      "curl/8.5.0",
			path:           "/blog/posts",
			expectCors:     true,
			expectedStatus: http.StatusOK,
		},
		{
			// origin-less GETs come from uptime checks and server-side
			// consumers, the API is read-only so they are let through
			name:           "NoOriginGetAllowed",
			userAgent:      "UnknownAgent/1.0",
			path:           "/blog/posts",
			expectCors:     true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "NoOriginPostForbidden",
			userAgent:      "UnknownAgent/1.0",
			method:         "POST",
			path:           "/blog/posts",
			expectCors:     false,
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "NotAllowedOriginGet",
			origin:         "https://www.notallowed.com",
			userAgent:      "UnknownAgent/1.0",
			path:           "/version",
			expectCors:     false,
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "HealthPathAllowedWithoutOrigin",
			path:           "/",
			expectCors:     true,
			expectedStatus: http.StatusOK,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			method := tc.method
			if method == "" {
				method = "GET"
			}

			rr := httptest.NewRecorder()
			req, err := http.NewRequest(method, tc.path, nil)
			require.NoError(t, err)
			req.Header.Set("Origin", tc.origin)
			req.Header.Set("User-Agent", tc.userAgent)

			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
			handler := Cors()(nextHandler)

			handler.ServeHTTP(rr, req)

			if tc.expectCors {
				assert.Equal(t, tc.origin, rr.Header().Get("Access-Control-Allow-Origin"))
				assert.Equal(t, http.StatusOK, rr.Code)
			} else {
				assert.Equal(t, tc.expectedStatus, rr.Code, "unexpected status code")
			}
		})
	}
}
