package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/custodia-labs/sanctions-law/internal/core/domain"
	"github.com/custodia-labs/sanctions-law/internal/logger"
)

// Route paths.
const (
	PathHealth  = "/health"
	PathMetrics = "/metrics"
	PathMCP     = "/mcp"
)

// HealthChecker reports the row counts of the open database.
type HealthChecker interface {
	Summary(ctx context.Context) (domain.Summary, error)
}

// RouterConfig holds everything the router mounts.
type RouterConfig struct {
	// MCP serves the streamable MCP endpoint.
	MCP http.Handler

	// Health backs the health endpoint.
	Health HealthChecker

	// Gatherer backs the metrics endpoint. Nil disables it.
	Gatherer prometheus.Gatherer

	// Limiter throttles the MCP endpoint per client. Nil disables it.
	Limiter *RateLimiter

	// AllowedOrigins lists CORS origins. Empty allows any origin.
	AllowedOrigins []string
}

// NewRouter builds the HTTP handler tree.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLog)
	r.Use(CORS(cfg.AllowedOrigins))

	r.Get(PathHealth, handleHealth(cfg.Health))

	if cfg.Gatherer != nil {
		r.Method(http.MethodGet, PathMetrics, promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Group(func(r chi.Router) {
		if cfg.Limiter != nil {
			r.Use(cfg.Limiter.Middleware)
		}
		r.Handle(PathMCP, cfg.MCP)
	})

	return r
}

// healthResponse is the body of the health endpoint.
type healthResponse struct {
	Status  string `json:"status"`
	Records int    `json:"records"`
	Error   string `json:"error,omitempty"`
}

func handleHealth(checker HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if checker == nil {
			writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
			return
		}

		summary, err := checker.Summary(r.Context())
		if err != nil {
			logger.Warn("health check failed: %v", err)
			writeJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable", Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Records: summary.Total()})
	}
}

// requestLog emits one debug event per request.
func requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		logger.Event("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
