package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the valuation Estimate HTTP handler
	ValuationLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "valuation_estimate_latency_seconds",
		Help:    "Latency of the valuation estimate handler",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of valuation requests served
	ValuationRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "valuation_estimate_requests_total",
		Help: "Total number of valuation estimate requests",
	})
)

func Init() {
	prometheus.MustRegister(
		ValuationLatency,
		ValuationRequests,
	)
}
