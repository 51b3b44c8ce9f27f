package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EvaluationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "interview_evaluations_total",
			Help: "Total number of answer evaluations by result code",
		},
		[]string{"code"},
	)

	EvaluationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "interview_evaluation_duration_seconds",
			Help:    "Duration of answer evaluations in seconds",
			Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30},
		},
	)

	GenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "llm_generation_duration_seconds",
			Help:    "Duration of text generation calls in seconds",
			Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30},
		},
		[]string{"provider"},
	)

	XPAwarded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "interview_xp_awarded_total",
			Help: "Total XP awarded across successful evaluations",
		},
	)
)
