// Package metrics exposes prometheus instrumentation for batch
// evaluation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	LeadsScored = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "crm_leads_scored_total",
			Help: "Total number of leads scored by the batch processor",
		},
	)

	RecommendationsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crm_recommendations_generated_total",
			Help: "Total number of recommendations generated, by type",
		},
		[]string{"type"},
	)

	BatchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "crm_batch_duration_seconds",
			Help: "Duration of batch scoring runs in seconds",
		},
	)

	BatchSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "crm_batch_size_leads",
			Help:    "Number of leads per batch scoring run",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		},
	)
)
