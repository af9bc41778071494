package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// RatingLookupsTotal counts enrichment rating lookups by outcome:
	// success, error, missing_id.
	RatingLookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shopchat",
			Name:      "rating_lookups_total",
			Help:      "Rating enrichment lookups by outcome",
		},
		[]string{"outcome"},
	)

	// DispatchTotal counts orchestrator dispatches by method and outcome.
	DispatchTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shopchat",
			Name:      "dispatch_total",
			Help:      "Orchestrator dispatches by method and outcome",
		},
		[]string{"method", "outcome"},
	)
)

// RegisterDomainMetrics registers gateway pipeline metrics. Called
// explicitly from the composition root (no init side effects beyond
// the shared HTTP metrics above).
func RegisterDomainMetrics() {
	prometheus.MustRegister(RatingLookupsTotal)
	prometheus.MustRegister(DispatchTotal)
}
