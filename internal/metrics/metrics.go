package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors exported by the itinerary pipeline.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	FetchFailures     *prometheus.CounterVec
	DateParseFailures prometheus.Counter
	PipelineDuration  *prometheus.HistogramVec
	Events            *prometheus.GaugeVec
	VotesCast         *prometheus.CounterVec
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		FetchFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "itinerary",
			Name:      "fetch_failures_total",
			Help:      "Per-entity reads that failed and were treated as empty",
		}, []string{"entity"}),
		DateParseFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "itinerary",
			Name:      "date_parse_failures_total",
			Help:      "Date strings that matched none of the accepted formats",
		}),
		PipelineDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "itinerary",
			Name:      "pipeline_duration_seconds",
			Help:      "Time spent fetching and transforming one category",
			Buckets:   prometheus.DefBuckets,
		}, []string{"category"}),
		Events: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "itinerary",
			Name:      "events",
			Help:      "Number of normalized events produced by the last pipeline run",
		}, []string{"event_type"}),
		VotesCast: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "itinerary",
			Name:      "votes_total",
			Help:      "Votes applied to suggested activities by outcome",
		}, []string{"outcome"}),
	}

	if reg != nil {
		reg.MustRegister(m.FetchFailures, m.DateParseFailures, m.PipelineDuration, m.Events, m.VotesCast)
	}
	return m
}

func (m *Metrics) FetchFailed(entity string) {
	if m == nil {
		return
	}
	m.FetchFailures.WithLabelValues(entity).Inc()
}

func (m *Metrics) DateParseFailed() {
	if m == nil {
		return
	}
	m.DateParseFailures.Inc()
}

// ObservePipeline records how long a category took.
func (m *Metrics) ObservePipeline(category string, started time.Time) {
	if m == nil {
		return
	}
	if category == "" {
		category = "all"
	}
	m.PipelineDuration.WithLabelValues(category).Observe(time.Since(started).Seconds())
}

// SetEventCounts replaces the per-type event gauge values.
func (m *Metrics) SetEventCounts(counts map[string]int) {
	if m == nil {
		return
	}
	for typ, n := range counts {
		m.Events.WithLabelValues(typ).Set(float64(n))
	}
}

func (m *Metrics) VoteApplied(outcome string) {
	if m == nil {
		return
	}
	m.VotesCast.WithLabelValues(outcome).Inc()
}
