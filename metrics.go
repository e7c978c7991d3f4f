package gridpath

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// runsTotal counts runs by outcome: a Status name or "invalid".
	runsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gridpath_runs_total",
		Help: "Total search runs by outcome",
	}, []string{"outcome"})

	expansionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gridpath_expansions_total",
		Help: "Total cells expanded across all runs",
	})

	runDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "gridpath_run_duration_seconds",
		Help:    "Search run duration in seconds, including step callbacks",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 16), // 0.1ms to ~3s
	})

	pathLength = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "gridpath_path_length",
		Help:    "Number of edges on successful paths",
		Buckets: []float64{1, 2, 5, 10, 20, 50, 100, 200, 500, 1000},
	})
)

const outcomeInvalid = "invalid"

func recordRun(result Result, elapsed time.Duration) {
	runsTotal.WithLabelValues(result.Status.String()).Inc()
	expansionsTotal.Add(float64(result.Expanded))
	runDuration.Observe(elapsed.Seconds())
	if result.Status == StatusSucceeded && len(result.Path) > 0 {
		pathLength.Observe(float64(len(result.Path) - 1))
	}
}

func recordInvalidRun() {
	runsTotal.WithLabelValues(outcomeInvalid).Inc()
}
