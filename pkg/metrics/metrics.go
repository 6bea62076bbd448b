// Package metrics provides Prometheus instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks HTTP request duration.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	// RequestsTotal tracks total HTTP requests.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// MessagesTotal tracks messages appended to conversations.
	MessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inbox_messages_total",
			Help: "Total messages appended to conversations",
		},
		[]string{"category", "sender"},
	)

	// ConversationsTotal tracks conversations created.
	ConversationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inbox_conversations_total",
			Help: "Total conversations created",
		},
		[]string{"category"},
	)

	// SimulatedFailuresTotal tracks injected transport failures.
	SimulatedFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inbox_simulated_failures_total",
			Help: "Total injected transport failures",
		},
		[]string{"operation"},
	)

	// LLMStreamDuration tracks LLM streaming response duration.
	LLMStreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "llm_stream_duration_seconds",
			Help:    "LLM streaming response duration",
			Buckets: []float64{1, 2, 5, 10, 20, 30, 45, 60, 90, 120},
		},
		[]string{"provider", "status"},
	)

	// ChatStreamsActive tracks active chat streaming responses.
	ChatStreamsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "chat_streams_active",
			Help: "Number of chat streaming responses in flight",
		},
	)
)

// RecordRequest records metrics for a finished HTTP request.
func RecordRequest(method, path, status string, duration float64) {
	RequestDuration.WithLabelValues(method, path, status).Observe(duration)
	RequestsTotal.WithLabelValues(method, path, status).Inc()
}

// RecordLLMStream records a completed LLM streaming call.
func RecordLLMStream(provider, status string, duration float64) {
	LLMStreamDuration.WithLabelValues(provider, status).Observe(duration)
}
