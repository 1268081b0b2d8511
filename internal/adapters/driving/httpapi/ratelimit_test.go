package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_PerClient(t *testing.T) {
	rl := NewRateLimiter(0.5, 1)
	handler := rl.Middleware(stubMCP)

	send := func(addr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, PathMCP, nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1:5000").Code)
	assert.Equal(t, http.StatusOK, send("10.0.0.2:5000").Code)

	limited := send("10.0.0.1:6000")
	assert.Equal(t, http.StatusTooManyRequests, limited.Code)
	assert.Equal(t, "2", limited.Header().Get("Retry-After"))
}

func TestRateLimiter_DefaultBurst(t *testing.T) {
	assert.Equal(t, 20, NewRateLimiter(20, 0).burst)
	assert.Equal(t, 1, NewRateLimiter(0.5, 0).burst)
	assert.Equal(t, 4, NewRateLimiter(2.5, 4).burst)
}

func TestRateLimiter_PrunesIdleVisitors(t *testing.T) {
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(1, 1)
	rl.now = func() time.Time { return now }

	rl.limiterFor("10.0.0.1")
	rl.limiterFor("10.0.0.2")
	assert.Len(t, rl.visitors, 2)

	now = now.Add(visitorTTL + time.Second)
	rl.limiterFor("10.0.0.3")
	assert.Len(t, rl.visitors, 1)
	assert.Contains(t, rl.visitors, "10.0.0.3")
}

func TestClientAddr(t *testing.T) {
	tests := []struct {
		remote string
		want   string
	}{
		{"192.0.2.1:1234", "192.0.2.1"},
		{"[2001:db8::1]:443", "2001:db8::1"},
		{"[2001:db8::1]", "2001:db8::1"},
		{"unix-socket", "unix-socket"},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = tt.remote
		assert.Equal(t, tt.want, clientAddr(req), tt.remote)
	}
}
