package metrics

import "github.com/prometheus/client_golang/prometheus"

// ContactMetrics exposes counters for the lead-submission pipeline.
type ContactMetrics struct {
	submissionsTotal *prometheus.CounterVec
	sinkTotal        *prometheus.CounterVec
}

func NewContactMetrics(reg prometheus.Registerer) *ContactMetrics {
	m := &ContactMetrics{
		submissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "kitchensite",
			Subsystem: "contact",
			Name:      "submissions_total",
			Help:      "Contact form submissions by terminal outcome",
		}, []string{"outcome"}),
		sinkTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "kitchensite",
			Subsystem: "contact",
			Name:      "sink_results_total",
			Help:      "Integration sink invocations by sink and result",
		}, []string{"sink", "result"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.submissionsTotal, m.sinkTotal)
	return m
}

// ObserveSubmission records one terminal pipeline outcome
// (invalid, succeeded, partial, failed).
func (m *ContactMetrics) ObserveSubmission(outcome string) {
	if m == nil {
		return
	}
	m.submissionsTotal.WithLabelValues(outcome).Inc()
}

// ObserveSink records one sink invocation result (ok, error).
func (m *ContactMetrics) ObserveSink(sink, result string) {
	if m == nil {
		return
	}
	m.sinkTotal.WithLabelValues(sink, result).Inc()
}
