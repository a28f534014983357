package resource

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Extraction metrics
	extractDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mustgather_extract_duration_seconds",
			Help:    "Duration of a single resource type extraction in seconds",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 30},
		},
	)

	extractTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mustgather_extract_total",
			Help: "Total number of resource type extractions",
		},
		[]string{"layout", "status"}, // layout: directory, list-file, none; status: success or error
	)
)
