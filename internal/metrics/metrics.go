// Package metrics holds the Prometheus collectors for signup and lead flow.
package metrics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	OTPIssued = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pixisphere_otp_issued_total",
			Help: "One-time codes issued, by flow (signup|resend).",
		},
		[]string{"flow"},
	)

	SignupVerifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pixisphere_signup_verifications_total",
			Help: "Signup verification attempts, by outcome.",
		},
		[]string{"outcome"},
	)

	InquiriesSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pixisphere_inquiries_submitted_total",
			Help: "Inquiries submitted, by category.",
		},
		[]string{"category"},
	)

	LeadAssignments = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pixisphere_lead_assignments_total",
			Help: "Lead assignment writes, by status (created|failed).",
		},
		[]string{"status"},
	)

	LeadResponses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pixisphere_lead_responses_total",
			Help: "Partner responses recorded on leads.",
		},
	)

	MatchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pixisphere_match_duration_seconds",
			Help:    "Time spent selecting and assigning partners for one inquiry.",
			Buckets: []float64{.005, .01, .05, .1, .25, .5, 1, 2},
		},
	)
)

// Handler serves the default registry in the Prometheus text format.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
