package keeper

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/strait-labs/strait/x/swaprouter/types"
)

// RouterMetrics holds all Prometheus metrics for the swaprouter module
type RouterMetrics struct {
	// Route metrics
	RoutesTotal   *prometheus.CounterVec
	RouteSteps    prometheus.Histogram
	RouteLatency  prometheus.Histogram
	RouteVolume   *prometheus.CounterVec
	FeesCollected *prometheus.CounterVec

	// Adapter metrics
	AdapterCalls    *prometheus.CounterVec
	AdapterFailures *prometheus.CounterVec

	// Limit order metrics
	OrdersCreated   prometheus.Counter
	OrdersTerminal  *prometheus.CounterVec
	TriggerChecks   *prometheus.CounterVec
	AggregatorCalls *prometheus.CounterVec
}

var (
	routerMetricsOnce sync.Once
	routerMetrics     *RouterMetrics
)

// NewRouterMetrics creates and registers router metrics (singleton pattern)
func NewRouterMetrics() *RouterMetrics {
	routerMetricsOnce.Do(func() {
		routerMetrics = &RouterMetrics{
			RoutesTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "strait",
					Subsystem: "swaprouter",
					Name:      "routes_total",
					Help:      "Total number of route executions",
				},
				[]string{"status"},
			),
			RouteSteps: promauto.NewHistogram(
				prometheus.HistogramOpts{
					Namespace: "strait",
					Subsystem: "swaprouter",
					Name:      "route_steps",
					Help:      "Number of steps per executed route",
					Buckets:   []float64{1, 2, 3, 4, 6, 8},
				},
			),
			RouteLatency: promauto.NewHistogram(
				prometheus.HistogramOpts{
					Namespace: "strait",
					Subsystem: "swaprouter",
					Name:      "route_latency_seconds",
					Help:      "Route execution latency in seconds",
					Buckets:   prometheus.DefBuckets,
				},
			),
			RouteVolume: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "strait",
					Subsystem: "swaprouter",
					Name:      "route_volume_total",
					Help:      "Total routed volume in base units",
				},
				[]string{"mint"},
			),
			FeesCollected: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "strait",
					Subsystem: "swaprouter",
					Name:      "fees_collected_total",
					Help:      "Platform fees collected in base units",
				},
				[]string{"mint"},
			),
			AdapterCalls: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "strait",
					Subsystem: "swaprouter",
					Name:      "adapter_calls_total",
					Help:      "Venue adapter invocations",
				},
				[]string{"venue"},
			),
			AdapterFailures: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "strait",
					Subsystem: "swaprouter",
					Name:      "adapter_failures_total",
					Help:      "Venue adapter failures",
				},
				[]string{"venue"},
			),
			OrdersCreated: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "strait",
					Subsystem: "swaprouter",
					Name:      "orders_created_total",
					Help:      "Limit orders created",
				},
			),
			OrdersTerminal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "strait",
					Subsystem: "swaprouter",
					Name:      "orders_terminal_total",
					Help:      "Limit orders reaching a terminal status",
				},
				[]string{"status"},
			),
			TriggerChecks: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "strait",
					Subsystem: "swaprouter",
					Name:      "trigger_checks_total",
					Help:      "Trigger evaluations by outcome",
				},
				[]string{"trigger_type", "fired"},
			),
			AggregatorCalls: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "strait",
					Subsystem: "swaprouter",
					Name:      "aggregator_calls_total",
					Help:      "Delegated aggregator invocations",
				},
				[]string{"status"},
			),
		}
	})
	return routerMetrics
}

// GetRouterMetrics returns the singleton router metrics instance
func GetRouterMetrics() *RouterMetrics {
	if routerMetrics == nil {
		return NewRouterMetrics()
	}
	return routerMetrics
}

// ObserveTriggerCheck counts one trigger evaluation by type and outcome.
func (m *RouterMetrics) ObserveTriggerCheck(triggerType types.TriggerType, fired bool) {
	m.TriggerChecks.WithLabelValues(triggerType.String(), strconv.FormatBool(fired)).Inc()
}
