package mcp

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Tool call outcomes used as metric labels.
const (
	outcomeOK           = "ok"
	outcomeInvalidInput = "invalid_input"
	outcomeError        = "error"
)

// Metrics provides observability for tool calls.
type Metrics struct {
	// Tool calls by tool name and outcome
	ToolCalls *prometheus.CounterVec

	// Tool call latency by tool name
	ToolLatency *prometheus.HistogramVec
}

// NewMetrics creates tool metrics registered with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ToolCalls: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "sanctions_law_tool_calls_total",
			Help: "Total tool calls by tool and outcome",
		}, []string{"tool", "outcome"}),

		ToolLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "sanctions_law_tool_duration_seconds",
			Help:    "Duration of tool calls including storage queries",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"tool"}),
	}
}

// ObserveCall records one tool call.
func (m *Metrics) ObserveCall(tool, outcome string, d time.Duration) {
	if m != nil {
		m.ToolCalls.WithLabelValues(tool, outcome).Inc()
		m.ToolLatency.WithLabelValues(tool).Observe(d.Seconds())
	}
}
