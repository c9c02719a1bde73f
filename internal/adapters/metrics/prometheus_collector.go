package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/andrescamacho/settlement-go/internal/domain/construction"
	"github.com/andrescamacho/settlement-go/internal/domain/logistics"
)

const (
	// Namespace for all metrics
	namespace = "settlement"
	// Subsystem for simulation metrics
	subsystem = "sim"
)

var (
	// Registry is the global Prometheus registry for all metrics
	Registry *prometheus.Registry

	// globalConstructionCollector is set by SetGlobalConstructionCollector() when metrics are enabled
	globalConstructionCollector ConstructionMetricsRecorder

	// globalLogisticsCollector is set by SetGlobalLogisticsCollector() when metrics are enabled
	globalLogisticsCollector LogisticsMetricsRecorder
)

// ConstructionMetricsRecorder records mode coordination events
type ConstructionMetricsRecorder interface {
	RecordModeTransition(from, to construction.BuildMode, showGrid bool)
	RecordCancellationPass()
	RecordCancellationSkipped()
	RecordCancellationStepFailure(step string)
	RecordProductionToggle(paused bool)
}

// LogisticsMetricsRecorder records buffer, registry and collector events
type LogisticsMetricsRecorder interface {
	RecordBufferAdd(kind logistics.ResourceKind, accepted bool)
	RecordBufferLevel(node string, kind logistics.ResourceKind, amount, capacity float64)
	RecordCollection(kind logistics.ResourceKind, amount float64)
	RecordRegistrySize(size int)
	RecordNearestNodeQuery(found bool)
}

// InitRegistry initializes the Prometheus registry
// Should be called once at application startup if metrics are enabled
func InitRegistry() {
	Registry = prometheus.NewRegistry()
}

// GetRegistry returns the global Prometheus registry
// Returns nil if metrics are not initialized
func GetRegistry() *prometheus.Registry {
	return Registry
}

// IsEnabled returns true if metrics collection is enabled
func IsEnabled() bool {
	return Registry != nil
}

// SetGlobalConstructionCollector sets the global construction metrics collector
func SetGlobalConstructionCollector(collector ConstructionMetricsRecorder) {
	globalConstructionCollector = collector
}

// SetGlobalLogisticsCollector sets the global logistics metrics collector
func SetGlobalLogisticsCollector(collector LogisticsMetricsRecorder) {
	globalLogisticsCollector = collector
}

// RecordModeTransition records a mode change globally
func RecordModeTransition(from, to construction.BuildMode, showGrid bool) {
	if globalConstructionCollector != nil {
		globalConstructionCollector.RecordModeTransition(from, to, showGrid)
	}
}

// RecordCancellationPass records a completed cancellation protocol run
func RecordCancellationPass() {
	if globalConstructionCollector != nil {
		globalConstructionCollector.RecordCancellationPass()
	}
}

// RecordCancellationSkipped records a re-entrant cancellation that was dropped
func RecordCancellationSkipped() {
	if globalConstructionCollector != nil {
		globalConstructionCollector.RecordCancellationSkipped()
	}
}

// RecordCancellationStepFailure records a collaborator that panicked during cancellation
func RecordCancellationStepFailure(step string) {
	if globalConstructionCollector != nil {
		globalConstructionCollector.RecordCancellationStepFailure(step)
	}
}

// RecordProductionToggle records a pause or resume of a producer
func RecordProductionToggle(paused bool) {
	if globalConstructionCollector != nil {
		globalConstructionCollector.RecordProductionToggle(paused)
	}
}

// RecordBufferAdd records a producer add attempt globally
func RecordBufferAdd(kind logistics.ResourceKind, accepted bool) {
	if globalLogisticsCollector != nil {
		globalLogisticsCollector.RecordBufferAdd(kind, accepted)
	}
}

// RecordBufferLevel records the current fill of a site's buffer
func RecordBufferLevel(node string, kind logistics.ResourceKind, amount, capacity float64) {
	if globalLogisticsCollector != nil {
		globalLogisticsCollector.RecordBufferLevel(node, kind, amount, capacity)
	}
}

// RecordCollection records a pickup globally
func RecordCollection(kind logistics.ResourceKind, amount float64) {
	if globalLogisticsCollector != nil {
		globalLogisticsCollector.RecordCollection(kind, amount)
	}
}

// RecordRegistrySize records the number of live warehouse nodes
func RecordRegistrySize(size int) {
	if globalLogisticsCollector != nil {
		globalLogisticsCollector.RecordRegistrySize(size)
	}
}

// RecordNearestNodeQuery records a nearest-node lookup and whether it found a target
func RecordNearestNodeQuery(found bool) {
	if globalLogisticsCollector != nil {
		globalLogisticsCollector.RecordNearestNodeQuery(found)
	}
}

// registerAll registers collectors with the global registry, a no-op when metrics are disabled
func registerAll(collectors ...prometheus.Collector) error {
	if Registry == nil {
		return nil // Metrics not enabled
	}

	for _, c := range collectors {
		if err := Registry.Register(c); err != nil {
			return err
		}
	}
	return nil
}
