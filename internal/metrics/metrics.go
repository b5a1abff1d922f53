package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymcore_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gymcore_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	RegistrationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gymcore_gym_registrations_total",
			Help: "Total number of registered gyms",
		},
	)

	LoginsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymcore_logins_total",
			Help: "Total number of login attempts",
		},
		[]string{"status"},
	)

	PaymentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymcore_payments_total",
			Help: "Total number of subscription payments",
		},
		[]string{"plan_type"},
	)

	SubscriptionChangesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymcore_subscription_changes_total",
			Help: "Total number of subscription state changes",
		},
		[]string{"action"},
	)

	CheckInsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymcore_checkins_total",
			Help: "Total number of check-in attempts",
		},
		[]string{"result"},
	)

	MembersCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gymcore_members_created_total",
			Help: "Total number of members created",
		},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymcore_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"type", "status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gymcore_email_queue_length",
			Help: "Current length of email queue",
		},
	)

	ActiveGyms = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gymcore_active_gyms",
			Help: "Number of gyms with an active subscription, as of the last platform stats query",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordRegistration() {
	RegistrationsTotal.Inc()
}

func RecordLogin(status string) {
	LoginsTotal.WithLabelValues(status).Inc()
}

func RecordPayment(planType string) {
	PaymentsTotal.WithLabelValues(planType).Inc()
}

// RecordSubscriptionChange counts change_plan, cancel and expire transitions.
func RecordSubscriptionChange(action string) {
	SubscriptionChangesTotal.WithLabelValues(action).Inc()
}

func RecordCheckIn(result string) {
	CheckInsTotal.WithLabelValues(result).Inc()
}

func RecordMemberCreated() {
	MembersCreatedTotal.Inc()
}

func RecordEmail(emailType, status string) {
	EmailsSentTotal.WithLabelValues(emailType, status).Inc()
}
