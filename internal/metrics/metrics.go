package metrics

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	toolInvocationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "meeting_mcp_tool_invocations_total",
			Help: "Total number of tool invocations",
		},
		[]string{"tool", "status"},
	)

	toolInvocationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "meeting_mcp_tool_invocation_duration_seconds",
			Help:    "Tool invocation duration in seconds",
			Buckets: []float64{0.01, 0.1, 0.5, 1, 5, 10, 30},
		},
		[]string{"tool"},
	)
)

// Invocation outcome labels
const (
	StatusOK          = "ok"
	StatusError       = "error"
	StatusInvalid     = "invalid"
	StatusUnknownTool = "unknown_tool"
)

// RecordInvocation records one tool invocation
func RecordInvocation(tool, status string, duration time.Duration) {
	toolInvocationsTotal.WithLabelValues(tool, status).Inc()
	toolInvocationDuration.WithLabelValues(tool).Observe(duration.Seconds())
}

// Router returns the HTTP router for the metrics listener
func Router(enableHealthCheck bool) *mux.Router {
	r := mux.NewRouter()
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	if enableHealthCheck {
		r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
		}).Methods(http.MethodGet)
	}
	return r
}
