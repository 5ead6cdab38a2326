// Package metrics defines the Prometheus metrics of the admin gateway.
//
// Metric naming follows Prometheus conventions:
//   - admingate_ prefix for all custom metrics
//   - _total suffix for counters
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// LoginsTotal counts login attempts by outcome ("ok" or "denied").
	LoginsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "admingate_logins_total",
			Help: "Total login attempts by outcome.",
		},
		[]string{"outcome"},
	)

	// SessionsRevokedTotal counts sessions invalidated by a newer login
	// for the same user.
	SessionsRevokedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "admingate_sessions_revoked_total",
			Help: "Total sessions superseded by a newer login.",
		},
	)

	// EventsPublishedTotal counts command outcomes appended to the durable log.
	EventsPublishedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "admingate_events_published_total",
			Help: "Total command outcomes appended to the event log.",
		},
	)

	// EventAppendFailuresTotal counts appends that failed after retries.
	EventAppendFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "admingate_event_append_failures_total",
			Help: "Total event log append failures.",
		},
	)

	// EventsDeliveredTotal counts events sent to subscribers.
	EventsDeliveredTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "admingate_events_delivered_total",
			Help: "Total events delivered over subscription streams.",
		},
	)

	// ActiveSubscriptions is the number of open event subscription streams.
	ActiveSubscriptions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "admingate_active_subscriptions",
			Help: "Number of open event subscription streams.",
		},
	)
)

var registry = prometheus.NewRegistry()

func init() {
	registry.MustRegister(
		LoginsTotal,
		SessionsRevokedTotal,
		EventsPublishedTotal,
		EventAppendFailuresTotal,
		EventsDeliveredTotal,
		ActiveSubscriptions,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// Handler serves the registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}

// RecordLogin records one login attempt.
func RecordLogin(ok bool) {
	outcome := "denied"
	if ok {
		outcome = "ok"
	}
	LoginsTotal.WithLabelValues(outcome).Inc()
}
