// Package metrics provides Prometheus metrics for the High Command MCP
// server. It tracks tool call counts, latencies, upstream API outcomes,
// and recovered panics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace for all metrics
const (
	Namespace = "high_command_mcp"
)

var (
	// RequestsTotal counts total MCP tool calls by tool name and status
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "requests_total",
		Help:      "Total number of MCP tool calls",
	}, []string{"tool", "status"})

	// RequestDuration measures tool call latency distribution
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "request_duration_seconds",
		Help:      "Tool call latency distribution by tool",
		Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"tool"})

	// RequestInFlight tracks currently executing tool calls
	RequestInFlight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "requests_in_flight",
		Help:      "Number of tool calls currently being processed",
	}, []string{"tool"})

	// PanicsRecovered counts recovered panics in tool handlers
	PanicsRecovered = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "panics_recovered_total",
		Help:      "Number of panics recovered in tool handlers",
	}, []string{"tool"})

	// HellHubRequestsTotal counts upstream API requests
	HellHubRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "hellhub_api_requests_total",
		Help:      "Total HellHub API requests by endpoint and status",
	}, []string{"endpoint", "status"})

	// HellHubLatency measures upstream API latency by endpoint
	HellHubLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "hellhub_api_latency_seconds",
		Help:      "HellHub API call latency by endpoint",
		Buckets:   prometheus.DefBuckets,
	}, []string{"endpoint"})

	// HellHubErrors counts upstream API errors by taxonomy kind
	HellHubErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "hellhub_api_errors_total",
		Help:      "HellHub API errors by endpoint and error kind",
	}, []string{"endpoint", "kind"})
)

// RecordRequest records a completed tool call with its duration and status
func RecordRequest(tool string, duration float64, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	RequestsTotal.WithLabelValues(tool, status).Inc()
	RequestDuration.WithLabelValues(tool).Observe(duration)
}

// RecordAPICall records an upstream HellHub API call
func RecordAPICall(endpoint string, duration float64, success bool, errorKind string) {
	status := "success"
	if !success {
		status = "error"
	}
	HellHubRequestsTotal.WithLabelValues(endpoint, status).Inc()
	HellHubLatency.WithLabelValues(endpoint).Observe(duration)
	if errorKind != "" {
		HellHubErrors.WithLabelValues(endpoint, errorKind).Inc()
	}
}
