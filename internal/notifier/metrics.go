package notifier

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	notificationsSent = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "duka",
		Subsystem: "notifier",
		Name:      "notifications_sent_total",
		Help:      "Total number of status notifications delivered to the broker.",
	})

	notificationsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "duka",
		Subsystem: "notifier",
		Name:      "notifications_failed_total",
		Help:      "Total number of status notifications that could not be delivered.",
	})
)
