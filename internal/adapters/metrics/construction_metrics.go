package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/andrescamacho/settlement-go/internal/domain/construction"
)

// ConstructionMetricsCollector handles mode coordination metrics
type ConstructionMetricsCollector struct {
	modeTransitions   *prometheus.CounterVec
	cancelPasses      prometheus.Counter
	cancelSkipped     prometheus.Counter
	cancelStepFailure *prometheus.CounterVec
	productionToggles *prometheus.CounterVec
	gridVisible       prometheus.Gauge
}

// NewConstructionMetricsCollector creates a new construction metrics collector
func NewConstructionMetricsCollector() *ConstructionMetricsCollector {
	return &ConstructionMetricsCollector{
		modeTransitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "mode_transitions_total",
				Help:      "Total number of build mode transitions by source and target mode",
			},
			[]string{"from", "to"},
		),

		cancelPasses: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "cancel_passes_total",
				Help:      "Total number of full cancellation protocol runs",
			},
		),

		cancelSkipped: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "cancel_reentry_skipped_total",
				Help:      "Re-entrant cancellation calls dropped by the guard",
			},
		),

		cancelStepFailure: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "cancel_step_failures_total",
				Help:      "Cancellation collaborators that panicked, by step",
			},
			[]string{"step"},
		),

		productionToggles: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "production_toggles_total",
				Help:      "Producer pause and resume requests",
			},
			[]string{"action"},
		),

		gridVisible: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "grid_visible",
				Help:      "1 when the placement grid is shown, 0 otherwise",
			},
		),
	}
}

// Register registers all construction metrics with the Prometheus registry
func (c *ConstructionMetricsCollector) Register() error {
	return registerAll(
		c.modeTransitions,
		c.cancelPasses,
		c.cancelSkipped,
		c.cancelStepFailure,
		c.productionToggles,
		c.gridVisible,
	)
}

// RecordModeTransition implements ConstructionMetricsRecorder
func (c *ConstructionMetricsCollector) RecordModeTransition(from, to construction.BuildMode, showGrid bool) {
	c.modeTransitions.WithLabelValues(from.String(), to.String()).Inc()
	if showGrid {
		c.gridVisible.Set(1)
	} else {
		c.gridVisible.Set(0)
	}
}

// RecordCancellationPass implements ConstructionMetricsRecorder
func (c *ConstructionMetricsCollector) RecordCancellationPass() {
	c.cancelPasses.Inc()
}

// RecordCancellationSkipped implements ConstructionMetricsRecorder
func (c *ConstructionMetricsCollector) RecordCancellationSkipped() {
	c.cancelSkipped.Inc()
}

// RecordCancellationStepFailure implements ConstructionMetricsRecorder
func (c *ConstructionMetricsCollector) RecordCancellationStepFailure(step string) {
	c.cancelStepFailure.WithLabelValues(step).Inc()
}

// RecordProductionToggle implements ConstructionMetricsRecorder
func (c *ConstructionMetricsCollector) RecordProductionToggle(paused bool) {
	action := "resume"
	if paused {
		action = "pause"
	}
	c.productionToggles.WithLabelValues(action).Inc()
}

// ProductionToggles exposes the toggle counter for inspection
func (c *ConstructionMetricsCollector) ProductionToggles() *prometheus.CounterVec {
	return c.productionToggles
}
