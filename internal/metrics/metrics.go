package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "knowrist_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "knowrist_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	PoolJoinsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "knowrist_pool_joins_total",
			Help: "Total number of pool joins",
		},
		[]string{"outcome"},
	)

	PoolsFilledTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "knowrist_pools_filled_total",
			Help: "Total number of pools that reached capacity",
		},
	)

	EntryFlowsCompletedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "knowrist_entry_flows_completed_total",
			Help: "Total number of entry flows that reached the arena",
		},
	)

	WalletDeductionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "knowrist_wallet_deductions_total",
			Help: "Total number of wallet deductions",
		},
		[]string{"outcome"},
	)

	BackendRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "knowrist_backend_requests_total",
			Help: "Total number of requests to the Knowrist backend",
		},
		[]string{"path", "status"},
	)

	NotificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "knowrist_notifications_total",
			Help: "Total number of notifications emitted",
		},
		[]string{"type"},
	)

	ChatMessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "knowrist_chat_messages_total",
			Help: "Total number of support chat messages",
		},
		[]string{"from"},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordBackendRequest(path, status string) {
	BackendRequestsTotal.WithLabelValues(path, status).Inc()
}
