// Package metrics declares the prometheus collectors of the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// UpstreamRequests counts calls to the recipe catalog.
	// Labels:
	//   - operation: "search", "summary", "detail"
	//   - outcome: "success", "not_found", "error", "rejected"
	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upstream_requests_total",
			Help: "Total number of recipe catalog requests",
		},
		[]string{"operation", "outcome"},
	)

	// UpstreamDuration measures recipe catalog latency.
	UpstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "upstream_request_duration_seconds",
			Help:    "Duration of recipe catalog requests in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		},
		[]string{"operation"},
	)

	// CircuitBreakerState is 0 closed, 1 half-open, 2 open.
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	// CatalogLookups counts EnsureRecipe resolutions.
	// result: "hit" (cached row), "miss" (fetched and stored), "race" (lost insert, re-read).
	CatalogLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_lookups_total",
			Help: "Total number of recipe cache lookups by result",
		},
		[]string{"result"},
	)

	// BookmarkOutcomes counts AddBookmark results.
	BookmarkOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookmark_outcomes_total",
			Help: "Total number of bookmark requests by outcome",
		},
		[]string{"outcome"},
	)

	// SummaryCache counts summary cache lookups ("hit", "miss").
	SummaryCache = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "summary_cache_lookups_total",
			Help: "Total number of recipe summary cache lookups",
		},
		[]string{"result"},
	)

	// EnrichmentFailures counts summaries that could not be attached to search results.
	EnrichmentFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "search_enrichment_failures_total",
			Help: "Total number of search results returned without a summary",
		},
	)
)
