package events

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EventsPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "broadcast_events_published_total",
			Help: "Total number of events delivered to live subscribers",
		},
		[]string{"kind"},
	)

	EventsDroppedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "broadcast_events_dropped_total",
			Help: "Total number of events dropped due to slow subscribers or full queue",
		},
		[]string{"kind"},
	)

	StreamPublishErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stream_publish_errors_total",
			Help: "Total number of failed downstream event publications",
		},
		[]string{"kind"},
	)
)
