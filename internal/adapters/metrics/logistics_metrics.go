package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/andrescamacho/settlement-go/internal/domain/logistics"
)

// LogisticsMetricsCollector handles buffer, registry and collector metrics
type LogisticsMetricsCollector struct {
	bufferAdds      *prometheus.CounterVec
	bufferAmount    *prometheus.GaugeVec
	bufferFill      *prometheus.GaugeVec
	collectedTotal  *prometheus.CounterVec
	collectionsDone *prometheus.CounterVec
	registrySize    prometheus.Gauge
	nearestQueries  *prometheus.CounterVec
}

// NewLogisticsMetricsCollector creates a new logistics metrics collector
func NewLogisticsMetricsCollector() *LogisticsMetricsCollector {
	return &LogisticsMetricsCollector{
		bufferAdds: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "buffer_adds_total",
				Help:      "Producer add attempts by resource kind and result",
			},
			[]string{"resource", "result"},
		),

		bufferAmount: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "buffer_amount",
				Help:      "Current buffered amount per site",
			},
			[]string{"node", "resource"},
		),

		bufferFill: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "buffer_fill_ratio",
				Help:      "Current buffered amount divided by capacity per site",
			},
			[]string{"node", "resource"},
		),

		collectedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "collected_amount_total",
				Help:      "Total resource amount picked up by collectors",
			},
			[]string{"resource"},
		),

		collectionsDone: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "collections_total",
				Help:      "Number of pickups by resource kind",
			},
			[]string{"resource"},
		),

		registrySize: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "registry_nodes",
				Help:      "Number of warehouse nodes currently registered",
			},
		),

		nearestQueries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "nearest_node_queries_total",
				Help:      "Nearest-node lookups by outcome",
			},
			[]string{"outcome"},
		),
	}
}

// Register registers all logistics metrics with the Prometheus registry
func (c *LogisticsMetricsCollector) Register() error {
	return registerAll(
		c.bufferAdds,
		c.bufferAmount,
		c.bufferFill,
		c.collectedTotal,
		c.collectionsDone,
		c.registrySize,
		c.nearestQueries,
	)
}

// RecordBufferAdd implements LogisticsMetricsRecorder
func (c *LogisticsMetricsCollector) RecordBufferAdd(kind logistics.ResourceKind, accepted bool) {
	result := "accepted"
	if !accepted {
		result = "rejected"
	}
	c.bufferAdds.WithLabelValues(string(kind), result).Inc()
}

// RecordBufferLevel implements LogisticsMetricsRecorder
func (c *LogisticsMetricsCollector) RecordBufferLevel(node string, kind logistics.ResourceKind, amount, capacity float64) {
	c.bufferAmount.WithLabelValues(node, string(kind)).Set(amount)
	if capacity > 0 {
		c.bufferFill.WithLabelValues(node, string(kind)).Set(amount / capacity)
	}
}

// RecordCollection implements LogisticsMetricsRecorder
func (c *LogisticsMetricsCollector) RecordCollection(kind logistics.ResourceKind, amount float64) {
	c.collectedTotal.WithLabelValues(string(kind)).Add(amount)
	c.collectionsDone.WithLabelValues(string(kind)).Inc()
}

// RecordRegistrySize implements LogisticsMetricsRecorder
func (c *LogisticsMetricsCollector) RecordRegistrySize(size int) {
	c.registrySize.Set(float64(size))
}

// RecordNearestNodeQuery implements LogisticsMetricsRecorder
func (c *LogisticsMetricsCollector) RecordNearestNodeQuery(found bool) {
	outcome := "hit"
	if !found {
		outcome = "miss"
	}
	c.nearestQueries.WithLabelValues(outcome).Inc()
}

// RegistrySize exposes the registry gauge for inspection
func (c *LogisticsMetricsCollector) RegistrySize() prometheus.Gauge {
	return c.registrySize
}
