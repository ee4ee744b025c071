package controller

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	intentCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "taskdeck_controller_intents_total",
			Help: "Total number of controller intents by outcome",
		},
		[]string{"intent", "status"},
	)

	remoteCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "taskdeck_remote_call_duration_seconds",
			Help:    "Duration of remote task gateway calls in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"intent"},
	)

	filterFallbackCount = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "taskdeck_filter_local_fallbacks_total",
			Help: "Times the filter intent fell back to the local cache predicate",
		},
	)
)
