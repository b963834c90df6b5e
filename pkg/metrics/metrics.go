package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Seed run outcomes
const (
	OutcomeCompleted = "completed"
	OutcomeFailed    = "failed"
)

// Skip reasons
const (
	ReasonParse      = "parse"
	ReasonMappingGap = "mapping_gap"
)

var (
	registry = prometheus.NewRegistry()

	entitiesGenerated = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cinema",
		Name:      "entities_generated_total",
		Help:      "Synthetic entities generated, by kind.",
	}, []string{"kind"})

	recordsSkipped = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cinema",
		Name:      "records_skipped_total",
		Help:      "Records dropped during generation or persistence, by reason.",
	}, []string{"reason"})

	seedRuns = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cinema",
		Name:      "seed_runs_total",
		Help:      "Persisted seed runs, by outcome.",
	}, []string{"outcome"})

	seedDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "cinema",
		Name:      "seed_duration_seconds",
		Help:      "Wall time of a seed run.",
		Buckets:   prometheus.ExponentialBuckets(0.05, 2, 12),
	})

	reportCache = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cinema",
		Name:      "report_cache_requests_total",
		Help:      "Report cache lookups, by result.",
	}, []string{"result"})
)

func init() {
	registry.MustRegister(
		entitiesGenerated,
		recordsSkipped,
		seedRuns,
		seedDuration,
		reportCache,
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)
}

// Registry exposes the collector registry
func Registry() *prometheus.Registry {
	return registry
}

// Handler serves the registry in the Prometheus text format
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}

// AddGenerated counts n generated entities of kind
func AddGenerated(kind string, n int) {
	if n <= 0 {
		return
	}
	entitiesGenerated.WithLabelValues(kind).Add(float64(n))
}

// AddSkipped counts n records dropped for reason
func AddSkipped(reason string, n int) {
	if n <= 0 {
		return
	}
	recordsSkipped.WithLabelValues(reason).Add(float64(n))
}

// ObserveSeedRun records the outcome and duration of a seed run
func ObserveSeedRun(outcome string, elapsed time.Duration) {
	seedRuns.WithLabelValues(outcome).Inc()
	seedDuration.Observe(elapsed.Seconds())
}

// CacheHit counts a report cache lookup
func CacheHit(hit bool) {
	if hit {
		reportCache.WithLabelValues("hit").Inc()
		return
	}
	reportCache.WithLabelValues("miss").Inc()
}
