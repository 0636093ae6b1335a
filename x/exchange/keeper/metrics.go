package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for the exchange module
type Metrics struct {
	SwapsTotal            *prometheus.CounterVec
	LiquidityAddsTotal    prometheus.Counter
	LiquidityRemovesTotal prometheus.Counter
	ExchangesTotal        prometheus.Counter
	OperationDuration     *prometheus.HistogramVec
}

var (
	metricsOnce sync.Once
	metrics     *Metrics
)

// GetMetrics returns the singleton exchange metrics instance,
// registering it on first use.
func GetMetrics() *Metrics {
	metricsOnce.Do(func() {
		metrics = &Metrics{
			SwapsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "kestrel",
					Subsystem: "exchange",
					Name:      "swaps_total",
					Help:      "Total number of swaps executed",
				},
				[]string{"direction"},
			),
			LiquidityAddsTotal: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "kestrel",
					Subsystem: "exchange",
					Name:      "liquidity_adds_total",
					Help:      "Total number of liquidity deposits",
				},
			),
			LiquidityRemovesTotal: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "kestrel",
					Subsystem: "exchange",
					Name:      "liquidity_removes_total",
					Help:      "Total number of liquidity withdrawals",
				},
			),
			ExchangesTotal: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "kestrel",
					Subsystem: "exchange",
					Name:      "exchanges_created_total",
					Help:      "Total number of exchanges created",
				},
			),
			OperationDuration: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Namespace: "kestrel",
					Subsystem: "exchange",
					Name:      "operation_duration_seconds",
					Help:      "Execution latency of exchange operations",
					Buckets:   prometheus.DefBuckets,
				},
				[]string{"operation"},
			),
		}
	})
	return metrics
}
