package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"earlyaccess/pkg/middleware"

	"github.com/stretchr/testify/require"
)

func TestWithCORS_Preflight(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := httptest.NewRequest(http.MethodOptions, "/api/early-access", nil)
	rec := httptest.NewRecorder()

	middleware.WithCORS(middleware.CORSOptions{})(next).ServeHTTP(rec, req)

	require.False(t, called, "next handler should not be called for OPTIONS preflight")
	res := rec.Result()
	require.Equal(t, http.StatusNoContent, res.StatusCode)

	require.Equal(t, "*", res.Header.Get("Access-Control-Allow-Origin"))
	require.Empty(t, res.Header.Get("Access-Control-Allow-Credentials"), "no credentials with a wildcard origin")
	require.Equal(t, "POST, GET, OPTIONS", res.Header.Get("Access-Control-Allow-Methods"))
	require.Contains(t, res.Header.Get("Access-Control-Allow-Headers"), "Content-Type")
}

func TestWithCORS_ConcreteOrigin(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/early-access", nil)
	rec := httptest.NewRecorder()

	middleware.WithCORS(middleware.CORSOptions{
		AllowedOrigin:  "https://example.com",
		AllowedMethods: []string{http.MethodPost},
	})(next).ServeHTTP(rec, req)

	require.True(t, called, "next handler should be called for non-OPTIONS request")
	res := rec.Result()
	require.Equal(t, http.StatusTeapot, res.StatusCode)

	require.Equal(t, "https://example.com", res.Header.Get("Access-Control-Allow-Origin"))
	require.Equal(t, "true", res.Header.Get("Access-Control-Allow-Credentials"))
	require.Equal(t, "Origin", res.Header.Get("Vary"))
	require.Equal(t, "POST", res.Header.Get("Access-Control-Allow-Methods"))
}
