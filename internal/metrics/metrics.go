// Package metrics exposes Prometheus counters for scoring activity and an
// in-process tally used for end-of-run summaries.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AnalysesTotal counts scored texts by resulting category.
	AnalysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sentimeter_analyses_total",
			Help: "Total number of texts scored, by sentiment category",
		},
		[]string{"category"},
	)

	// AnalysisDuration measures a single Score call.
	AnalysisDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sentimeter_analysis_duration_seconds",
			Help:    "Duration of a single sentiment analysis in seconds",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		},
	)

	// AnalysisErrors counts failed Score calls.
	AnalysisErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sentimeter_analysis_errors_total",
			Help: "Total number of failed sentiment analyses",
		},
	)

	// SampleLoads counts completed sample loads.
	SampleLoads = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sentimeter_sample_loads_total",
			Help: "Total number of completed sample loads",
		},
	)

	// FeedMessages counts messages read from watched feeds, by feed format.
	FeedMessages = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sentimeter_feed_messages_total",
			Help: "Total number of messages read from feeds",
		},
		[]string{"format"},
	)
)
