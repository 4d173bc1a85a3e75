package pricing

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ValuationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pricing_valuations_total",
			Help: "Count of valuation requests by outcome.",
		},
		[]string{"outcome"},
	)

	ValuationCacheHits = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "pricing_valuation_cache_hits_total",
			Help: "Valuations served from the response cache.",
		},
	)
)

func init() {
	prometheus.MustRegister(ValuationsTotal, ValuationCacheHits)
}
