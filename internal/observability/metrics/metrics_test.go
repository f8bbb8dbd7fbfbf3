package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestContactMetricsCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewContactMetrics(reg)

	m.ObserveSubmission("succeeded")
	m.ObserveSubmission("succeeded")
	m.ObserveSubmission("partial")
	m.ObserveSink("crm", "error")
	m.ObserveSink("chat", "ok")

	if got := testutil.ToFloat64(m.submissionsTotal.WithLabelValues("succeeded")); got != 2 {
		t.Errorf("expected 2 succeeded submissions, got %v", got)
	}
	if got := testutil.ToFloat64(m.submissionsTotal.WithLabelValues("partial")); got != 1 {
		t.Errorf("expected 1 partial submission, got %v", got)
	}
	if got := testutil.ToFloat64(m.sinkTotal.WithLabelValues("crm", "error")); got != 1 {
		t.Errorf("expected 1 crm error, got %v", got)
	}
}

func TestContactMetricsNilSafe(t *testing.T) {
	var m *ContactMetrics
	// Must not panic when metrics are not wired.
	m.ObserveSubmission("failed")
	m.ObserveSink("webhook", "ok")
}
