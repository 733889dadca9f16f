package main

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, srv *httptest.Server, retries int) *aocClient {
	t.Helper()
	cfg := defaultConfig()
	cfg.BaseURL = srv.URL
	cfg.MaxRetries = retries
	c, err := newAOCClient(cfg, secret("abc123"), newLoggerTo(io.Discard, true))
	require.NoError(t, err)
	c.backoff = time.Millisecond
	return c
}

func readAll(t *testing.T, rc io.ReadCloser) string {
	t.Helper()
	defer func() { _ = rc.Close() }()
	b, err := io.ReadAll(rc)
	require.NoError(t, err)
	return string(b)
}

func TestClientInput(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/2024/day/7/input", r.URL.Path)
		assert.Equal(t, defaultUA, r.Header.Get("User-Agent"))
		c, err := r.Cookie("session")
		if assert.NoError(t, err) {
			assert.Equal(t, "abc123", c.Value)
		}
		_, _ = io.WriteString(w, "190: 10 19\n")
	}))
	defer srv.Close()

	body, err := testClient(t, srv, 0).Input(context.Background(), 2024, 7)
	require.NoError(t, err)
	assert.Equal(t, "190: 10 19\n", readAll(t, body))
}

func TestClientBasePath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/mirror/2023/day/1/input", r.URL.Path)
		_, _ = io.WriteString(w, "ok")
	}))
	defer srv.Close()

	cfg := defaultConfig()
	cfg.BaseURL = srv.URL + "/mirror"
	c, err := newAOCClient(cfg, secret("abc123"), nil)
	require.NoError(t, err)

	body, err := c.Input(context.Background(), 2023, 1)
	require.NoError(t, err)
	assert.Equal(t, "ok", readAll(t, body))
}

func TestClientRetriesRateLimit(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			http.Error(w, "slow down", http.StatusTooManyRequests)
			return
		}
		_, _ = io.WriteString(w, "done")
	}))
	defer srv.Close()

	body, err := testClient(t, srv, 4).Input(context.Background(), 2024, 1)
	require.NoError(t, err)
	assert.Equal(t, "done", readAll(t, body))
	assert.Equal(t, int32(3), calls.Load())
}

func TestClientGivesUpAfterMaxRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := testClient(t, srv, 2).Input(context.Background(), 2024, 1)
	require.Error(t, err)
	assert.True(t, isRetryable(err))
	assert.Equal(t, int32(3), calls.Load())
}

func TestClientErrorClassification(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		auth        bool
		notUnlocked bool
	}{
		{"bad request", http.StatusBadRequest, true, false},
		{"unauthorized", http.StatusUnauthorized, true, false},
		{"forbidden", http.StatusForbidden, true, false},
		{"not found", http.StatusNotFound, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				http.Error(w, "nope", tt.status)
			}))
			defer srv.Close()

			_, err := testClient(t, srv, 3).Input(context.Background(), 2024, 1)
			require.Error(t, err)
			assert.Equal(t, tt.auth, isAuthError(err))
			assert.Equal(t, tt.notUnlocked, isNotUnlocked(err))
			assert.False(t, isRetryable(err))
			assert.Equal(t, int32(1), calls.Load(), "client errors are not retried")

			var ae *apiError
			require.ErrorAs(t, err, &ae)
			assert.Equal(t, tt.status, ae.StatusCode)
			assert.Equal(t, "nope", ae.Message)
		})
	}
}

func TestClientCancelledWhileWaiting(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "slow down", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := testClient(t, srv, 5)
	c.backoff = time.Hour
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := c.Input(ctx, 2024, 1)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNewClientRejectsBadConfig(t *testing.T) {
	cfg := defaultConfig()
	cfg.BaseURL = "/relative"
	_, err := newAOCClient(cfg, secret("abc"), nil)
	assert.ErrorContains(t, err, "must be absolute")

	_, err = newAOCClient(defaultConfig(), secret(""), nil)
	assert.ErrorContains(t, err, "session id is empty")
}

func TestAPIErrorMessage(t *testing.T) {
	assert.Equal(t, "api 500", (&apiError{StatusCode: 500}).Error())
	assert.Equal(t, "api 404: gone", (&apiError{StatusCode: 404, Message: "gone"}).Error())
}
