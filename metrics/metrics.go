package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	CheckoutSessionsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "spordate_checkout_sessions_created_total",
			Help: "Number of checkout sessions created at the payment provider",
		},
	)

	WebhookEventsReceived = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "spordate_webhook_events_received_total",
			Help: "Number of payment webhook deliveries accepted",
		},
	)

	WebhookEventsRejected = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "spordate_webhook_events_rejected_total",
			Help: "Number of payment webhook deliveries rejected by verification",
		},
	)

	BookingsRecorded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "spordate_bookings_recorded_total",
			Help: "Number of bookings recorded, by persistence backend",
		},
		[]string{"backend"},
	)
)

func Register() {
	prometheus.MustRegister(
		CheckoutSessionsCreated,
		WebhookEventsReceived,
		WebhookEventsRejected,
		BookingsRecorded,
	)
}
