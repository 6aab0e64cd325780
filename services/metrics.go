package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	predictionsComputed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ferry_pricing_predictions_computed_total",
		Help: "Total number of price recommendations computed.",
	})
	predictionsFromCache = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ferry_pricing_predictions_cache_hits_total",
		Help: "Total number of prediction requests served from the document store.",
	})
	warehouseQueryFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ferry_pricing_warehouse_query_failures_total",
		Help: "Total number of warehouse queries that returned a typed failure.",
	})
	syntheticFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ferry_pricing_synthetic_fallbacks_total",
		Help: "Total number of times synthetic data stood in for warehouse rows.",
	})
)

// CountCacheHit is called by the prediction handler when the document store
// already holds a record for the request key.
func CountCacheHit() { predictionsFromCache.Inc() }
