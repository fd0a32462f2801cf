// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledgerly_http_requests_total",
			Help: "Total number of HTTP requests by method, route and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ledgerly_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	RecurringRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledgerly_recurring_runs_total",
			Help: "Recurring advancement runs by result",
		},
		[]string{"result"},
	)

	RecurringOccurrencesRecorded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ledgerly_recurring_occurrences_recorded_total",
			Help: "Expense transactions generated from recurring expenses",
		},
	)

	DashboardSliceFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledgerly_dashboard_slice_failures_total",
			Help: "Dashboard reads that failed and degraded to an empty slice",
		},
		[]string{"slice"},
	)

	DashboardDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ledgerly_dashboard_duration_seconds",
			Help:    "Time to assemble a dashboard summary",
			Buckets: prometheus.ExponentialBuckets(0.005, 2, 10),
		},
	)

	WebsocketConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ledgerly_websocket_connections",
			Help: "Open realtime connections",
		},
	)

	WebsocketDroppedEvents = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ledgerly_websocket_dropped_events_total",
			Help: "Events dropped because a client's send buffer was full",
		},
	)

	ExportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledgerly_exports_total",
			Help: "Transaction exports by kind and result",
		},
		[]string{"kind", "result"},
	)
)
