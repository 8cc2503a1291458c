package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MetricToolCalls counts tool invocations by tool name and outcome
	MetricToolCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "color_mcp_tool_calls_total",
		Help: "Total MCP tool calls by tool and status",
	}, []string{"tool", "status"})

	// MetricToolDuration tracks tool execution time by tool name
	MetricToolDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "color_mcp_tool_duration_seconds",
		Help:    "MCP tool execution time in seconds",
		Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
	}, []string{"tool"})

	// MetricRequests counts JSON-RPC requests by method
	MetricRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "color_mcp_requests_total",
		Help: "Total JSON-RPC requests by method",
	}, []string{"method"})

	// MetricDecodeErrors counts request lines that were not valid JSON-RPC
	MetricDecodeErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "color_mcp_decode_errors_total",
		Help: "Total request lines that failed to decode",
	})
)
