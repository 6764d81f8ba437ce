package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ResultSuccess  = "success"
	ResultFailure  = "failure"
	ResultRejected = "rejected"
	ResultConflict = "conflict"
	ResultNotFound = "not_found"
)

var (
	// HTTPRequestDuration tracks request latency per route template
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "canteen_http_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds",
			Buckets: []float64{
				0.005, // 5ms
				0.01,  // 10ms
				0.025, // 25ms
				0.05,  // 50ms
				0.1,   // 100ms
				0.25,  // 250ms
				0.5,   // 500ms
				1.0,   // 1s
				2.5,   // 2.5s
			},
		},
		[]string{"method", "route", "status"},
	)

	OrdersInitiated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "canteen_orders_initiated_total",
			Help: "Order intake attempts by outcome",
		},
		[]string{"result"},
	)

	CouponsIssued = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "canteen_coupons_issued_total",
			Help: "Pending coupons written by order intake",
		},
		[]string{"meal_type"},
	)

	CouponTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "canteen_coupon_transitions_total",
			Help: "Coupon lifecycle transitions applied",
		},
		[]string{"to"},
	)

	Redemptions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "canteen_coupon_redemptions_total",
			Help: "Redemption attempts by outcome",
		},
		[]string{"result"},
	)

	MenuPublications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "canteen_menu_publications_total",
			Help: "Menu publication attempts by outcome",
		},
		[]string{"result"},
	)
)

func RecordHTTPRequest(method, route, status string, seconds float64) {
	HTTPRequestDuration.WithLabelValues(method, route, status).Observe(seconds)
}

func RecordOrderInitiated(result string) {
	OrdersInitiated.WithLabelValues(result).Inc()
}

func RecordCouponsIssued(mealType string, n int) {
	CouponsIssued.WithLabelValues(mealType).Add(float64(n))
}

func RecordTransition(to string, n int64) {
	CouponTransitions.WithLabelValues(to).Add(float64(n))
}

func RecordRedemption(result string) {
	Redemptions.WithLabelValues(result).Inc()
}

func RecordMenuPublication(result string) {
	MenuPublications.WithLabelValues(result).Inc()
}
