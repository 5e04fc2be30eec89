package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Gateway request metrics
	gatewayRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worldpay_gateway_requests_total",
			Help: "Total number of paymentService requests by outcome",
		},
		[]string{"outcome"},
	)

	gatewayRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "worldpay_gateway_request_duration_seconds",
			Help:    "Duration of paymentService requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"outcome"},
	)

	// Notification metrics
	notificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worldpay_notifications_total",
			Help: "Total number of inbound notifications by verdict",
		},
		[]string{"verdict"},
	)
)

// RecordGatewayRequest records one outbound gateway request and its outcome.
func RecordGatewayRequest(outcome string, duration time.Duration) {
	gatewayRequestsTotal.WithLabelValues(outcome).Inc()
	gatewayRequestDuration.WithLabelValues(outcome).Observe(duration.Seconds())
}

// RecordNotification records one inbound notification verdict
// (valid, invalid_origin, no_status, malformed).
func RecordNotification(verdict string) {
	notificationsTotal.WithLabelValues(verdict).Inc()
}
