// Package metrics holds the Prometheus collectors for the analysis pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ArticlesProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "mashaer_articles_processed_total",
			Help: "Articles analyzed and persisted successfully.",
		},
	)
	ArticlesFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mashaer_articles_failed_total",
			Help: "Articles that failed analysis, labeled by pipeline stage.",
		},
		[]string{"stage"},
	)
	InferenceDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mashaer_inference_duration_seconds",
			Help:    "Duration of sentiment inference calls in seconds.",
			Buckets: prometheus.DefBuckets,
		},
	)
	BatchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mashaer_batch_duration_seconds",
			Help:    "Duration of whole batch invocations in seconds.",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120},
		},
	)
	BatchSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "mashaer_batch_size",
			Help: "Number of articles targeted by the last batch.",
		},
	)
)

func init() {
	prometheus.MustRegister(ArticlesProcessed)
	prometheus.MustRegister(ArticlesFailed)
	prometheus.MustRegister(InferenceDuration)
	prometheus.MustRegister(BatchDuration)
	prometheus.MustRegister(BatchSize)
}
