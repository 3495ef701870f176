package cache

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Strategies and outcomes recorded by [Recorder].
const (
	StrategyStaleWhileRevalidate = "stale_while_revalidate"
	StrategyCacheFirst           = "cache_first"
	StrategyPassThrough          = "pass_through"

	ResultHit      = "hit"
	ResultMiss     = "miss"
	ResultOffline  = "offline"
	ResultFallback = "fallback"
	ResultError    = "error"
)

// Recorder receives interception events. Implementations must be safe for
// concurrent use.
type Recorder interface {
	RecordRequest(strategy, result string)
	RecordRevalidation(success bool)
	RecordInstall(entries int, success bool)
	RecordEvicted(cacheName string)
	RecordWorkerEvent(kind string)
}

// Collector is the Prometheus [Recorder].
type Collector struct {
	requests      *prometheus.CounterVec
	revalidations *prometheus.CounterVec
	installs      *prometheus.CounterVec
	shellEntries  prometheus.Gauge
	evicted       *prometheus.CounterVec
	workerEvents  *prometheus.CounterVec
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "story_keeper_cache_requests_total",
			Help: "Intercepted requests by strategy and result.",
		}, []string{"strategy", "result"}),
		revalidations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "story_keeper_cache_revalidations_total",
			Help: "Background revalidations of API responses.",
		}, []string{"result"}),
		installs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "story_keeper_cache_installs_total",
			Help: "Shell cache install attempts.",
		}, []string{"result"}),
		shellEntries: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "story_keeper_cache_shell_entries",
			Help: "Entries stored by the last successful install.",
		}),
		evicted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "story_keeper_cache_evicted_total",
			Help: "Caches deleted on activation.",
		}, []string{"cache"}),
		workerEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "story_keeper_worker_events_total",
			Help: "Worker events handled by kind.",
		}, []string{"kind"}),
	}

	reg.MustRegister(
		c.requests,
		c.revalidations,
		c.installs,
		c.shellEntries,
		c.evicted,
		c.workerEvents,
	)

	return c
}

func (c *Collector) RecordRequest(strategy, result string) {
	c.requests.WithLabelValues(strategy, result).Inc()
}

func (c *Collector) RecordRevalidation(success bool) {
	c.revalidations.WithLabelValues(successLabel(success)).Inc()
}

func (c *Collector) RecordInstall(entries int, success bool) {
	c.installs.WithLabelValues(successLabel(success)).Inc()
	if success {
		c.shellEntries.Set(float64(entries))
	}
}

func (c *Collector) RecordEvicted(cacheName string) {
	c.evicted.WithLabelValues(cacheName).Inc()
}

func (c *Collector) RecordWorkerEvent(kind string) {
	c.workerEvents.WithLabelValues(kind).Inc()
}

func successLabel(success bool) string {
	if success {
		return "success"
	}
	return "failure"
}

// MetricsHandler returns the scrape handler for gatherer.
func MetricsHandler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

type nopRecorder struct{}

func (nopRecorder) RecordRequest(string, string) {}
func (nopRecorder) RecordRevalidation(bool)      {}
func (nopRecorder) RecordInstall(int, bool)      {}
func (nopRecorder) RecordEvicted(string)         {}
func (nopRecorder) RecordWorkerEvent(string)     {}
