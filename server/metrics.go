package server

import "github.com/prometheus/client_golang/prometheus"

type relayMetrics struct {
	requestsTotal    *prometheus.CounterVec
	requestsInflight prometheus.Gauge
}

func newRelayMetrics(reg prometheus.Registerer) *relayMetrics {
	m := &relayMetrics{
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "relay_requests_total",
				Help: "Total relay requests by route and outcome",
			},
			[]string{"route", "outcome"},
		),
		requestsInflight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "relay_requests_inflight",
				Help: "Number of relay requests currently being served",
			},
		),
	}
	reg.MustRegister(m.requestsTotal, m.requestsInflight)
	return m
}

// outcomeForStatus buckets a response status for the requests counter.
func outcomeForStatus(status int) string {
	switch {
	case status >= 500:
		return "failed"
	case status >= 400:
		return "rejected"
	default:
		return "ok"
	}
}
