package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	requests    *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	unsupported prometheus.Counter
}

func newMetrics(registerer prometheus.Registerer) *metrics {
	return &metrics{
		requests: promauto.With(registerer).NewCounterVec(prometheus.CounterOpts{
			Name: "commentx_requests_total",
			Help: "Total number of API requests by route and status code.",
		}, []string{"route", "code"}),
		duration: promauto.With(registerer).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "commentx_request_duration_seconds",
			Help:    "Time spent serving API requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		unsupported: promauto.With(registerer).NewCounter(prometheus.CounterOpts{
			Name: "commentx_unsupported_language_total",
			Help: "Requests whose language had no comment syntax.",
		}),
	}
}
