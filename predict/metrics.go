package predict

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result labels for predictTotal.
const (
	resultMatched     = "matched"
	resultIncomplete  = "incomplete"
	resultUnmatchable = "unmatchable"
	resultError       = "error"
)

var (
	// predictTotal counts stream predictions by result
	predictTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tempers_predict_total",
		Help: "Total stream predictions by result",
	}, []string{"result"})

	// predictTrials tracks how many phases were tried per prediction
	predictTrials = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "tempers_predict_trials",
		Help:    "Number of phases tried per stream prediction",
		Buckets: []float64{1, 2, 8, 32, 128, 624},
	})

	// predictDuration tracks prediction latency
	predictDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "tempers_predict_duration_seconds",
		Help:    "Stream prediction duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10us to ~2.6s
	})
)
