// Package ingest provides Prometheus metrics for the ingestion pipeline.
package ingest

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MatchesFetchedTotal tracks match records fetched from upstream
	MatchesFetchedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ingest_matches_fetched_total",
			Help: "Total number of match records fetched from upstream sources",
		},
		[]string{"source"},
	)

	// MatchFetchErrorsTotal tracks upstream fetch failures
	MatchFetchErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ingest_fetch_errors_total",
			Help: "Total number of upstream fetch failures",
		},
		[]string{"source", "error_type"},
	)

	// VenuesAggregatedTotal tracks venues whose aggregates were recomputed
	VenuesAggregatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ingest_venues_aggregated_total",
			Help: "Total number of venue aggregates recomputed",
		},
	)

	// IngestionRunDuration tracks end-to-end ingestion run duration
	IngestionRunDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ingest_run_duration_seconds",
			Help:    "End-to-end ingestion run duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 12),
		},
	)
)
