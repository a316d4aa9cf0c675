// Package observability holds the Prometheus collectors of the aquarium.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"aquarium/internal/domain"
)

const outcomeOK = "ok"

var (
	fetchCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "aquarium",
		Subsystem: "mastodon",
		Name:      "fetch_total",
		Help:      "Number of activity fetches grouped by outcome (ok or error kind).",
	}, []string{"outcome"})

	fetchDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "aquarium",
		Subsystem: "mastodon",
		Name:      "fetch_duration_seconds",
		Help:      "Latency of the upstream activity request.",
		Buckets:   prometheus.DefBuckets,
	})

	schoolSizeGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "aquarium",
		Subsystem: "school",
		Name:      "fish",
		Help:      "Number of fish in the most recently rendered school.",
	})
)

func init() {
	prometheus.MustRegister(fetchCounter, fetchDuration, schoolSizeGauge)
}

// RecordFetch counts one fetch outcome and its latency.
func RecordFetch(started time.Time, err error) {
	fetchDuration.Observe(time.Since(started).Seconds())
	fetchCounter.WithLabelValues(Outcome(err)).Inc()
}

// RecordSchool updates the school size gauge.
func RecordSchool(size int) {
	schoolSizeGauge.Set(float64(size))
}

// Outcome maps an error to its metric label.
func Outcome(err error) string {
	if err == nil {
		return outcomeOK
	}
	return domain.Classify("", err).Kind.String()
}
