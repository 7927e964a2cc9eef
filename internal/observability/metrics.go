// Package observability registers the service's prometheus metrics.
package observability

import "github.com/prometheus/client_golang/prometheus"

var (
	SpotCacheHits = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "gold_spot_cache_hits_total",
		Help: "Spot price requests served from the cache window.",
	})
	SpotCacheMisses = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "gold_spot_cache_misses_total",
		Help: "Spot price requests that missed the cache window.",
	})
	SpotOverrideHits = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "gold_spot_override_hits_total",
		Help: "Spot price requests answered by the configured override.",
	})
	SpotFetches = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "gold_spot_fetches_total",
		Help: "Successful upstream spot price fetches.",
	})
	SpotFetchErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "gold_spot_fetch_errors_total",
		Help: "Failed upstream spot price fetches.",
	})
	ProductListRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "catalog_list_requests_total",
		Help: "Product list requests received.",
	})
)

func init() {
	prometheus.MustRegister(
		SpotCacheHits,
		SpotCacheMisses,
		SpotOverrideHits,
		SpotFetches,
		SpotFetchErrors,
		ProductListRequests,
	)
}
