package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// APICallsTotal tracks outbound Printify API calls per endpoint and method
	APICallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "printify_api_calls_total",
			Help: "Total number of Printify API calls",
		},
		[]string{"endpoint", "method"},
	)

	// APIErrorsTotal tracks classified API failures
	APIErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "printify_api_errors_total",
			Help: "Total number of Printify API errors by classified kind",
		},
		[]string{"endpoint", "kind"},
	)

	// APIRetriesTotal tracks retry attempts after transient failures
	APIRetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "printify_api_retries_total",
			Help: "Total number of retried Printify API attempts",
		},
		[]string{"endpoint"},
	)

	// APILatency tracks API call latency
	APILatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "printify_api_latency_seconds",
			Help:    "Printify API call latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint", "method"},
	)

	// CacheHitsTotal tracks catalog cache hits per resource type
	CacheHitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_cache_hits_total",
			Help: "Total number of catalog cache hits",
		},
		[]string{"resource"},
	)

	// CacheMissesTotal tracks catalog cache misses per resource type
	CacheMissesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_cache_misses_total",
			Help: "Total number of catalog cache misses",
		},
		[]string{"resource"},
	)

	// FallbackServedTotal counts blueprint listings served from the
	// hardcoded degraded-mode catalog
	FallbackServedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_fallback_served_total",
			Help: "Total number of listings served from the fallback catalog",
		},
	)

	// MatchTierTotal tracks which fallback rung resolved variant requests
	MatchTierTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "variant_match_tier_total",
			Help: "Total number of variant resolutions per match tier",
		},
		[]string{"tier"},
	)
)
