package httpjson_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"earlyaccess/pkg/serrors"
	"earlyaccess/pkg/transport/httpjson"

	"github.com/stretchr/testify/require"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

const endpoint = "https://landing.test/api/early-access"

func newTestClient(fn rtFunc) *httpjson.Client {
	return httpjson.New(&http.Client{Transport: fn}, endpoint)
}

func respond(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestClient_Submit_success(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "landing.test", r.URL.Host)
		require.Equal(t, "/api/early-access", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, map[string]any{"email": "user@example.com"}, body)

		return respond(http.StatusCreated, `{"id":"x"}`), nil
	})

	require.NoError(t, c.Submit(context.Background(), "user@example.com"))
	require.Equal(t, endpoint, c.Endpoint())
}

func TestClient_Submit_non2xx(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return respond(http.StatusBadGateway, "  upstream bad \n"), nil
	})

	err := c.Submit(context.Background(), "user@example.com")
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrTransport)
	require.Contains(t, err.Error(), "502")
	require.Contains(t, err.Error(), "upstream bad")
}

func TestClient_Submit_rateLimited(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return respond(http.StatusTooManyRequests, "slow down"), nil
	})

	err := c.Submit(context.Background(), "user@example.com")
	require.ErrorIs(t, err, serrors.ErrRateLimited)
}

func TestClient_Submit_networkError(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	})

	err := c.Submit(context.Background(), "user@example.com")
	require.ErrorIs(t, err, serrors.ErrTransport)
	require.NotErrorIs(t, err, serrors.ErrTimeout)
}

func TestClient_Submit_deadlineExceeded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	c := httpjson.New(srv.Client(), srv.URL)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := c.Submit(ctx, "user@example.com")
	require.ErrorIs(t, err, serrors.ErrTimeout)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.Less(t, time.Since(start), 2*time.Second)
}

func TestClient_Submit_againstServer(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Email string `json:"email"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		got = body.Email
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	require.NoError(t, httpjson.New(nil, srv.URL).Submit(context.Background(), "a@b.co"))
	require.Equal(t, "a@b.co", got)
}
