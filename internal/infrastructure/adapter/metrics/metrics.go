package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Webhook delivery outcomes
const (
	OutcomeProcessed    = "processed"
	OutcomeUnauthorized = "unauthorized"
	OutcomeRejected     = "rejected"
	OutcomeFailed       = "failed"
)

var (
	webhookEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_webhook_events_total",
		Help: "Webhook deliveries received, by provider and outcome.",
	}, []string{"provider", "outcome"})

	notifications = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_notifications_total",
		Help: "Admin payment notifications attempted, by result.",
	}, []string{"result"})

	dbPoolOpen = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "storefront_db_pool_open_connections",
		Help: "Open database connections.",
	})

	dbPoolInUse = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "storefront_db_pool_in_use_connections",
		Help: "Database connections currently in use.",
	})

	dbPoolIdle = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "storefront_db_pool_idle_connections",
		Help: "Idle database connections.",
	})
)

// RecordWebhookEvent counts one webhook delivery outcome
func RecordWebhookEvent(provider, outcome string) {
	webhookEvents.WithLabelValues(provider, outcome).Inc()
}

// RecordNotification counts one notification attempt result
func RecordNotification(result string) {
	notifications.WithLabelValues(result).Inc()
}

// SetDBPoolStats publishes connection pool gauges
func SetDBPoolStats(open, inUse, idle int) {
	dbPoolOpen.Set(float64(open))
	dbPoolInUse.Set(float64(inUse))
	dbPoolIdle.Set(float64(idle))
}

// Handler returns the HTTP handler serving the metrics endpoint
func Handler() http.Handler {
	return promhttp.Handler()
}
