package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sanctions-law/internal/core/domain"
)

// mockHealthChecker is a mock implementation of HealthChecker.
type mockHealthChecker struct {
	summary domain.Summary
	err     error
}

func (m *mockHealthChecker) Summary(_ context.Context) (domain.Summary, error) {
	return m.summary, m.err
}

// stubMCP answers every request with 200 and the method name.
var stubMCP = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	_, _ = w.Write([]byte(r.Method))
})

func TestRouter_Health(t *testing.T) {
	t.Run("reports record total", func(t *testing.T) {
		router := NewRouter(RouterConfig{
			MCP:    stubMCP,
			Health: &mockHealthChecker{summary: domain.Summary{Sources: 5, Provisions: 10}},
		})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, PathHealth, nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		var body healthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "ok", body.Status)
		assert.Equal(t, 15, body.Records)
	})

	t.Run("storage failure is unavailable", func(t *testing.T) {
		router := NewRouter(RouterConfig{
			MCP:    stubMCP,
			Health: &mockHealthChecker{err: errors.New("database is locked")},
		})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, PathHealth, nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), "database is locked")
	})
}

func TestRouter_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	promauto.With(reg).NewCounter(prometheus.CounterOpts{
		Name: "sanctions_law_test_total",
		Help: "test counter",
	}).Inc()

	router := NewRouter(RouterConfig{MCP: stubMCP, Gatherer: reg})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, PathMetrics, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "sanctions_law_test_total 1")
}

func TestRouter_MetricsDisabled(t *testing.T) {
	router := NewRouter(RouterConfig{MCP: stubMCP})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, PathMetrics, nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_MCPMounted(t *testing.T) {
	router := NewRouter(RouterConfig{MCP: stubMCP})

	for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodDelete} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(method, PathMCP, strings.NewReader("{}")))

		assert.Equal(t, http.StatusOK, rec.Code, method)
		assert.Equal(t, method, rec.Body.String())
	}
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name       string
		allowed    []string
		origin     string
		wantOrigin string
	}{
		{"empty list allows any", nil, "https://app.example", "https://app.example"},
		{"listed origin", []string{"https://app.example"}, "https://app.example", "https://app.example"},
		{"wildcard", []string{"*"}, "https://other.example", "https://other.example"},
		{"unlisted origin", []string{"https://app.example"}, "https://evil.example", ""},
		{"no origin header", nil, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := NewRouter(RouterConfig{MCP: stubMCP, AllowedOrigins: tt.allowed})

			req := httptest.NewRequest(http.MethodPost, PathMCP, nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestCORS_Preflight(t *testing.T) {
	router := NewRouter(RouterConfig{MCP: stubMCP})

	req := httptest.NewRequest(http.MethodOptions, PathMCP, nil)
	req.Header.Set("Origin", "https://app.example")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Mcp-Session-Id")
	assert.Empty(t, rec.Body.String())
}

func TestRouter_RateLimitsMCPOnly(t *testing.T) {
	router := NewRouter(RouterConfig{
		MCP:     stubMCP,
		Health:  &mockHealthChecker{},
		Limiter: NewRateLimiter(0.001, 2),
	})

	codes := make([]int, 0, 3)
	for range 3 {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, PathMCP, nil))
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, PathHealth, nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
