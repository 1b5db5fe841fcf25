// Package metrics provides Prometheus metrics for viralscope.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// feed sources reported by FeedServed
const (
	SourceCache     = "cache"
	SourceGenerated = "generated"
	SourceFallback  = "fallback"
)

var (
	// FeedServed counts served feeds by language and source.
	FeedServed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "viralscope",
			Name:      "feed_served_total",
			Help:      "Total number of feeds served",
		},
		[]string{"language", "source"},
	)

	// ModelCalls counts generative model calls by operation and status.
	ModelCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "viralscope",
			Name:      "model_calls_total",
			Help:      "Total number of generative model calls",
		},
		[]string{"operation", "status"},
	)

	// ModelDuration measures generative model call duration.
	ModelDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "viralscope",
			Name:      "model_duration_seconds",
			Help:      "Duration of generative model calls in seconds",
			Buckets:   []float64{1, 2.5, 5, 10, 20, 40, 60, 120},
		},
		[]string{"operation"},
	)

	// ProviderArticles counts articles received from news providers.
	ProviderArticles = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "viralscope",
			Name:      "provider_articles_total",
			Help:      "Total number of articles received from news providers",
		},
		[]string{"provider"},
	)

	// ProviderErrors counts failed news provider requests.
	ProviderErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "viralscope",
			Name:      "provider_errors_total",
			Help:      "Total number of failed news provider requests",
		},
		[]string{"provider"},
	)
)

// RecordFeed records a served feed.
func RecordFeed(language, source string) {
	FeedServed.WithLabelValues(language, source).Inc()
}

// RecordModelCall records a generative model call.
func RecordModelCall(operation string, err error, duration time.Duration) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	ModelCalls.WithLabelValues(operation, status).Inc()
	ModelDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordProvider records the outcome of a news provider request.
func RecordProvider(provider string, articles int, err error) {
	if err != nil {
		ProviderErrors.WithLabelValues(provider).Inc()
		return
	}
	ProviderArticles.WithLabelValues(provider).Add(float64(articles))
}
