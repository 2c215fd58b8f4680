// Package metrics collects feed refresh and cache statistics for prometheus
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector implements feed.Recorder with prometheus metrics
type Collector struct {
	refreshSuccess prometheus.Counter
	refreshFail    prometheus.Counter
	cacheHits      prometheus.Counter
	droppedEntries prometheus.Counter
	refreshLatency prometheus.Histogram
}

// NewCollector makes a collector and registers its metrics in reg
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		refreshSuccess: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "azupdates_feed_refresh_success_total",
			Help: "Number of successful feed refreshes",
		}),
		refreshFail: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "azupdates_feed_refresh_fail_total",
			Help: "Number of failed feed refreshes",
		}),
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "azupdates_cache_hits_total",
			Help: "Number of requests served from cache",
		}),
		droppedEntries: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "azupdates_feed_dropped_entries_total",
			Help: "Number of feed entries dropped as malformed",
		}),
		refreshLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "azupdates_feed_refresh_latency_seconds",
			Help:    "Feed refresh latency in seconds",
			Buckets: prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(c.refreshSuccess, c.refreshFail, c.cacheHits, c.droppedEntries, c.refreshLatency)
	return c
}

// RecordRefresh records refresh outcome and latency
func (c *Collector) RecordRefresh(duration time.Duration, err error) {
	c.refreshLatency.Observe(duration.Seconds())
	if err != nil {
		c.refreshFail.Inc()
		return
	}
	c.refreshSuccess.Inc()
}

// RecordCacheHit records a request served from cache
func (c *Collector) RecordCacheHit() {
	c.cacheHits.Inc()
}

// RecordDroppedEntries records feed entries dropped during refresh
func (c *Collector) RecordDroppedEntries(count int) {
	c.droppedEntries.Add(float64(count))
}

// Handler returns http handler for prometheus scraping
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
