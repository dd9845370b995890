package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_ObserveDecision(t *testing.T) {
	m := NewWithRegisterer("reservely", prometheus.NewRegistry())

	m.ObserveDecision(true, "")
	m.ObserveDecision(false, "NoTableAvailable")
	m.ObserveDecision(false, "NoTableAvailable")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ReservationDecisions.WithLabelValues("accepted", "none")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ReservationDecisions.WithLabelValues("rejected", "NoTableAvailable")))
}

func TestMetrics_ObserveHTTPRequest(t *testing.T) {
	m := NewWithRegisterer("reservely", prometheus.NewRegistry())

	m.ObserveHTTPRequest("GET", "/api/v1/end-time", 200, 10*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/api/v1/end-time", "200")))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveDecision(true, "")
		m.ObserveRetry()
		m.ObserveHTTPRequest("GET", "/", 200, time.Second)
	})
}
