package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ChatRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "statica_chat_requests_total",
			Help: "Chat replies by detected intent and answer source",
		},
		[]string{"intent", "source"},
	)

	GenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "statica_generation_duration_seconds",
			Help:    "Remote text generation latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"outcome"},
	)

	EmailsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "statica_emails_total",
			Help: "Email send attempts by type and status",
		},
		[]string{"email_type", "status"},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "statica_http_requests_total",
			Help: "HTTP requests by route and status code",
		},
		[]string{"method", "route", "status"},
	)
)
