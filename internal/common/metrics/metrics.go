// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orders_submitted_total",
			Help: "Total number of order submissions by outcome",
		},
		[]string{"status"},
	)

	OTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "otp_requests_total",
			Help: "Total number of OTP send requests by outcome",
		},
		[]string{"status"},
	)

	OTPVerifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "otp_verifications_total",
			Help: "Total number of OTP verification attempts by outcome",
		},
		[]string{"status"},
	)

	LocateAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "locate_attempts_total",
			Help: "Total number of auto-locate attempts by outcome",
		},
		[]string{"outcome"}, // resolved, degraded, failed
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "backend_request_duration_seconds",
			Help: "Duration of backend endpoint handling in seconds",
		},
		[]string{"endpoint"},
	)
)

const (
	StatusOK     = "ok"
	StatusFailed = "failed"

	OutcomeResolved = "resolved"
	OutcomeDegraded = "degraded"
	OutcomeFailed   = "failed"
)
