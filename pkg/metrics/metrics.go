package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// KeysCreated counts access keys created since process start.
	KeysCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "card_admin_keys_created_total",
		Help: "Number of access keys created",
	})

	// CreditsAdded counts credits added across all keys.
	CreditsAdded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "card_admin_credits_added_total",
		Help: "Total credits added to access keys",
	})

	// CreditsDeducted counts credits successfully deducted across all keys.
	CreditsDeducted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "card_admin_credits_deducted_total",
		Help: "Total credits deducted from access keys",
	})

	// DeductFailures counts rejected deductions by reason.
	DeductFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "card_admin_deduct_failures_total",
		Help: "Number of rejected credit deductions",
	}, []string{"reason"})

	// LoginAttempts counts authentication attempts by outcome.
	LoginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "card_admin_login_attempts_total",
		Help: "Number of login attempts",
	}, []string{"outcome"})

	// WebhookDeliveries counts webhook delivery attempts by outcome.
	WebhookDeliveries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "card_admin_webhook_deliveries_total",
		Help: "Number of webhook delivery attempts",
	}, []string{"outcome"})
)
