package metrics_test

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/settlement-go/internal/adapters/metrics"
	"github.com/andrescamacho/settlement-go/internal/application/common"
	"github.com/andrescamacho/settlement-go/internal/domain/construction"
	"github.com/andrescamacho/settlement-go/internal/domain/logistics"
)

func withRegistry(t *testing.T) {
	t.Helper()
	metrics.InitRegistry()
	t.Cleanup(func() {
		metrics.Registry = nil
		metrics.SetGlobalConstructionCollector(nil)
		metrics.SetGlobalLogisticsCollector(nil)
	})
}

func TestGlobalRecorders_NoOpWhenUnset(t *testing.T) {
	metrics.SetGlobalConstructionCollector(nil)
	metrics.SetGlobalLogisticsCollector(nil)

	assert.NotPanics(t, func() {
		metrics.RecordModeTransition(construction.BuildModeIdle, construction.BuildModePlacing, true)
		metrics.RecordCancellationPass()
		metrics.RecordCancellationSkipped()
		metrics.RecordBufferAdd(logistics.ResourceWood, true)
		metrics.RecordCollection(logistics.ResourceWood, 3)
		metrics.RecordNearestNodeQuery(false)
	})
}

func TestConstructionMetricsCollector(t *testing.T) {
	withRegistry(t)
	c := metrics.NewConstructionMetricsCollector()
	require.NoError(t, c.Register())
	metrics.SetGlobalConstructionCollector(c)

	metrics.RecordModeTransition(construction.BuildModeIdle, construction.BuildModeRoadBuilding, true)
	metrics.RecordModeTransition(construction.BuildModeRoadBuilding, construction.BuildModeIdle, false)
	metrics.RecordCancellationPass()
	metrics.RecordCancellationPass()
	metrics.RecordCancellationSkipped()

	count, err := testutil.GatherAndCount(metrics.Registry, "settlement_sim_mode_transitions_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	assert.Equal(t, 0, testutil.CollectAndCount(c.ProductionToggles()))
}

func TestLogisticsMetricsCollector(t *testing.T) {
	withRegistry(t)
	c := metrics.NewLogisticsMetricsCollector()
	require.NoError(t, c.Register())
	metrics.SetGlobalLogisticsCollector(c)

	metrics.RecordBufferAdd(logistics.ResourceStone, true)
	metrics.RecordBufferAdd(logistics.ResourceStone, false)
	metrics.RecordCollection(logistics.ResourceStone, 4.5)
	metrics.RecordRegistrySize(3)

	count, err := testutil.GatherAndCount(metrics.Registry, "settlement_sim_buffer_adds_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	assert.Equal(t, 3.0, testutil.ToFloat64(c.RegistrySize()))
}

func TestPrometheusMiddleware(t *testing.T) {
	withRegistry(t)
	collector := metrics.NewCommandMetricsCollector()
	require.NoError(t, collector.Register())

	mw := metrics.PrometheusMiddleware(collector)
	ok := func(ctx context.Context, req common.Request) (common.Response, error) { return "ok", nil }
	fail := func(ctx context.Context, req common.Request) (common.Response, error) { return nil, errors.New("x") }

	resp, err := mw(context.Background(), struct{}{}, ok)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)

	_, err = mw(context.Background(), struct{}{}, fail)
	assert.Error(t, err)

	count, err := testutil.GatherAndCount(metrics.Registry, "settlement_sim_commands_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestPrometheusMiddleware_NilCollectorPassesThrough(t *testing.T) {
	mw := metrics.PrometheusMiddleware(nil)
	resp, err := mw(context.Background(), struct{}{}, func(ctx context.Context, req common.Request) (common.Response, error) {
		return 7, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 7, resp)
}
