// Package metrics holds the Prometheus collectors for résumé analyses.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder observes finished analyses. A nil *Analysis is a valid no-op
// recorder.
type Recorder interface {
	Observe(status, method string, d time.Duration)
}

// Analysis counts analyses by outcome and extraction method and tracks how long
// they take end to end.
type Analysis struct {
	total    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

var _ Recorder = (*Analysis)(nil)

// NewAnalysis registers the analysis collectors on reg.
func NewAnalysis(reg prometheus.Registerer) (*Analysis, error) {
	a := &Analysis{
		total: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "resume_analyses_total",
				Help: "Total number of résumé analyses by status and extraction method.",
			},
			[]string{"status", "method"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "resume_analysis_duration_seconds",
				Help:    "Time spent analysing a résumé, from upload to persisted record.",
				Buckets: []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
			},
			[]string{"status"},
		),
	}

	for _, c := range []prometheus.Collector{a.total, a.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// Observe records one analysis. An empty method is reported as "none".
func (a *Analysis) Observe(status, method string, d time.Duration) {
	if a == nil {
		return
	}
	if method == "" {
		method = "none"
	}
	a.total.WithLabelValues(status, method).Inc()
	a.duration.WithLabelValues(status).Observe(d.Seconds())
}
