// Nookipedia API - public REST API for the Nookipedia wiki's structured data
// SPDX-License-Identifier: MIT
// https://github.com/nookipedia/nookipedia-api

// Package metrics provides Prometheus instrumentation for the API surface,
// the upstream Cargo client, and the response cache.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Upstream Cargo Metrics
	CargoRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cargo_requests_total",
			Help: "Total number of upstream cargoquery HTTP calls",
		},
		[]string{"auth", "outcome"}, // auth: "bot", "anonymous"; outcome: "success", "error"
	)

	CargoRequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cargo_request_duration_seconds",
			Help:    "Duration of upstream cargoquery HTTP calls",
			Buckets: prometheus.DefBuckets,
		},
	)

	CargoLoginsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cargo_logins_total",
			Help: "Total number of MediaWiki bot login attempts",
		},
		[]string{"outcome"}, // "success", "failure"
	)

	CargoThumbnailLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cargo_thumbnail_lookups_total",
			Help: "Total number of Special:FilePath thumbnail resolutions",
		},
		[]string{"outcome"},
	)

	// Cache Metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache_type"}, // "cargo", "session"
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache_type"},
	)
)

// RecordAPIRequest records metrics for a completed API request.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordCargoRequest records a single upstream cargoquery call.
func RecordCargoRequest(authenticated bool, duration time.Duration, err error) {
	auth := "anonymous"
	if authenticated {
		auth = "bot"
	}
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	CargoRequestsTotal.WithLabelValues(auth, outcome).Inc()
	CargoRequestDuration.Observe(duration.Seconds())
}

// RecordLogin records a MediaWiki bot login attempt.
func RecordLogin(err error) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	CargoLoginsTotal.WithLabelValues(outcome).Inc()
}

// TrackActiveRequest increments or decrements the active request gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}
