// Package observability holds the Prometheus collectors exported on /metrics.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	SourceText = "text"
	SourceForm = "form"

	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// CheckinsTotal counts submissions by source (text|form) and outcome.
var CheckinsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "kanso",
	Name:      "checkins_total",
	Help:      "Daily check-in submissions by source and outcome.",
}, []string{"source", "outcome"})

// ReportRejections counts parser failures by violated constraint.
var ReportRejections = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "kanso",
	Name:      "report_rejections_total",
	Help:      "Rejected text reports by violated constraint.",
}, []string{"reason"})

var TotalScores = promauto.NewHistogram(prometheus.HistogramOpts{
	Namespace: "kanso",
	Name:      "total_score",
	Help:      "Distribution of accepted daily total scores.",
	Buckets:   []float64{0, 1, 2, 3, 4, 5, 6, 7, 25, 50, 75, 100},
})

// DriftDetections counts the biggest drift area each time drift is evaluated.
var DriftDetections = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "kanso",
	Name:      "drift_detections_total",
	Help:      "Biggest drift area per evaluation.",
}, []string{"area"})

var ReviewQueueDropped = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "kanso",
	Name:      "review_queue_dropped_total",
	Help:      "Weekly review refresh jobs dropped because the queue was full.",
})

var ReviewsGenerated = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "kanso",
	Name:      "weekly_reviews_generated_total",
	Help:      "Weekly reviews computed and stored.",
})
