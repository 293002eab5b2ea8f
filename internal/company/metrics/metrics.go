// Package metrics exposes Prometheus counters for the resolution pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	lookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dk_provider_lookups_total",
		Help: "Total identifier lookups by outcome",
	}, []string{"outcome"})

	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dk_provider_cache_hits_total",
		Help: "Cache hits on raw registry records",
	})

	cacheNegativeHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dk_provider_cache_negative_hits_total",
		Help: "Cache hits on the negative (no such company) marker",
	})

	cacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dk_provider_cache_misses_total",
		Help: "Cache misses forcing an upstream search",
	})

	upstreamErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dk_provider_upstream_errors_total",
		Help: "Transport or timeout failures against the ERST index",
	})
)

func Lookup(outcome string) { lookupsTotal.WithLabelValues(outcome).Inc() }
func CacheHit()             { cacheHits.Inc() }
func CacheNegativeHit()     { cacheNegativeHits.Inc() }
func CacheMiss()            { cacheMisses.Inc() }
func UpstreamError()        { upstreamErrors.Inc() }
