package construction_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/settlement-go/internal/application/common"
	constructionApp "github.com/andrescamacho/settlement-go/internal/application/construction"
	"github.com/andrescamacho/settlement-go/internal/domain/construction"
	"github.com/andrescamacho/settlement-go/internal/domain/logistics"
	"github.com/andrescamacho/settlement-go/internal/domain/shared"
	"github.com/andrescamacho/settlement-go/test/helpers"
)

type fixture struct {
	log         *helpers.CallLog
	grid        *helpers.MockGridVisualizer
	canceler    *helpers.MockCanceler
	logger      *helpers.MockLogger
	coordinator *constructionApp.ModeCoordinator
}

func newFixture() *fixture {
	log := &helpers.CallLog{}
	f := &fixture{
		log:      log,
		grid:     &helpers.MockGridVisualizer{Log: log},
		canceler: &helpers.MockCanceler{Log: log},
		logger:   &helpers.MockLogger{},
	}
	f.coordinator = constructionApp.NewModeCoordinator(constructionApp.Collaborators{
		Grid:         f.grid,
		BuildingMode: f.canceler,
		GroupOps:     f.canceler,
		MassBuild:    f.canceler,
		RoadBuild:    f.canceler,
	}, f.logger)
	return f
}

var fullProtocol = []string{"building_modes", "group_operation", "mass_build_preview", "road_preview"}

func TestModeCoordinator_StartsIdle(t *testing.T) {
	f := newFixture()

	assert.Equal(t, construction.BuildModeIdle, f.coordinator.CurrentMode())
	_, known := f.coordinator.GridVisible()
	assert.False(t, known)
}

func TestModeCoordinator_OnModeChanged_CancelsThenShowsGrid(t *testing.T) {
	f := newFixture()

	f.coordinator.OnModeChanged(construction.BuildModeRoadBuilding)

	assert.Equal(t, append(append([]string{}, fullProtocol...), "grid:show"), f.log.Calls)
	assert.True(t, f.grid.Visible)
	assert.Equal(t, construction.BuildModeRoadBuilding, f.coordinator.CurrentMode())

	visible, known := f.coordinator.GridVisible()
	assert.True(t, known)
	assert.True(t, visible)
}

func TestModeCoordinator_OnModeChanged_IdleHidesGrid(t *testing.T) {
	f := newFixture()
	f.coordinator.OnModeChanged(construction.BuildModePlacing)
	f.log.Reset()

	f.coordinator.OnModeChanged(construction.BuildModeIdle)

	assert.Equal(t, append(append([]string{}, fullProtocol...), "grid:hide"), f.log.Calls)
	assert.False(t, f.grid.Visible)
}

func TestModeCoordinator_OnModeChanged_EveryModeSetsGridVisibility(t *testing.T) {
	for _, mode := range construction.AllBuildModes() {
		t.Run(mode.String(), func(t *testing.T) {
			f := newFixture()
			f.coordinator.OnModeChanged(mode)

			assert.Equal(t, mode != construction.BuildModeIdle, f.grid.Visible)
			assert.Equal(t, 1, f.grid.Updates)
		})
	}
}

func TestModeCoordinator_SameModeTransitionStillCancels(t *testing.T) {
	f := newFixture()

	f.coordinator.OnModeChanged(construction.BuildModeIdle)
	f.coordinator.OnModeChanged(construction.BuildModeIdle)

	assert.Equal(t, 2, f.log.Count("road_preview"))
	assert.Equal(t, 2, f.log.Count("grid:hide"))
}

func TestModeCoordinator_CancelAll_ReentrantCallIsDropped(t *testing.T) {
	f := newFixture()
	reentered := 0
	f.canceler.OnCancel = func(call string) {
		if call == "group_operation" {
			reentered++
			f.coordinator.CancelAll()
		}
	}

	f.coordinator.CancelAll()

	assert.Equal(t, 1, reentered)
	assert.Equal(t, fullProtocol, f.log.Calls, "nested call must not run a second pass")
	assert.False(t, f.coordinator.Cancelling())
}

func TestModeCoordinator_NestedModeChangeDuringCancellation(t *testing.T) {
	f := newFixture()
	f.coordinator.OnModeChanged(construction.BuildModeGroupMoving)
	f.log.Reset()

	// Cancelling the group operation drops the input back to Idle, which
	// notifies the coordinator again from inside the protocol.
	f.canceler.OnCancel = func(call string) {
		if call == "group_operation" {
			f.coordinator.OnModeChanged(construction.BuildModeIdle)
		}
	}

	f.coordinator.OnModeChanged(construction.BuildModePlacing)

	assert.Equal(t, 1, f.log.Count("group_operation"))
	assert.Equal(t, 1, f.log.Count("road_preview"))
	assert.Equal(t, []string{"grid:hide", "grid:show"}, filterGrid(f.log.Calls))
	assert.Equal(t, construction.BuildModePlacing, f.coordinator.CurrentMode())
	assert.True(t, f.grid.Visible)
}

func TestModeCoordinator_CancelAll_GuardReleasedAfterPanic(t *testing.T) {
	f := newFixture()
	f.canceler.Panic = true

	assert.NotPanics(t, func() { f.coordinator.CancelAll() })
	assert.Equal(t, fullProtocol, f.log.Calls, "a failing step does not block the others")
	assert.False(t, f.coordinator.Cancelling())
	assert.True(t, f.logger.HasMessage(common.LevelWarn, "Cancellation step failed"))

	f.canceler.Panic = false
	f.log.Reset()
	f.coordinator.CancelAll()
	assert.Equal(t, fullProtocol, f.log.Calls)
}

func TestModeCoordinator_MissingCollaboratorsAreTolerated(t *testing.T) {
	coordinator := constructionApp.NewModeCoordinator(constructionApp.Collaborators{}, nil)

	assert.NotPanics(t, func() {
		coordinator.OnModeChanged(construction.BuildModeDeleting)
		coordinator.CancelAll()
		coordinator.PauseProduction(nil, true)
	})

	visible, known := coordinator.GridVisible()
	assert.True(t, known)
	assert.True(t, visible)
}

func TestModeCoordinator_PartialCollaborators(t *testing.T) {
	log := &helpers.CallLog{}
	road := &helpers.MockCanceler{Log: log}
	coordinator := constructionApp.NewModeCoordinator(constructionApp.Collaborators{RoadBuild: road}, nil)

	coordinator.OnModeChanged(construction.BuildModeCopying)

	assert.Equal(t, []string{"road_preview"}, log.Calls)
}

func TestModeCoordinator_AutoWireKeepsInjected(t *testing.T) {
	log := &helpers.CallLog{}
	injected := &helpers.MockGridVisualizer{Log: log}
	discoveredGrid := &helpers.MockGridVisualizer{Log: log}
	discoveredRoad := &helpers.MockCanceler{Log: log}

	coordinator := constructionApp.NewModeCoordinator(constructionApp.Collaborators{Grid: injected}, nil)
	coordinator.AutoWire(&helpers.MockDiscovery{Grid: discoveredGrid, RoadBuild: discoveredRoad})
	coordinator.AutoWire(nil)

	coordinator.OnModeChanged(construction.BuildModeMoving)

	assert.Equal(t, 1, injected.Updates)
	assert.Equal(t, 0, discoveredGrid.Updates)
	assert.Equal(t, []string{"road_preview", "grid:show"}, log.Calls)
}

func TestModeCoordinator_PauseProduction(t *testing.T) {
	f := newFixture()

	t.Run("toggles producer", func(t *testing.T) {
		toggle := &helpers.MockProductionToggle{Enabled: true}
		site := &helpers.MockProductionSite{Toggle: toggle}

		f.coordinator.PauseProduction(site, true)
		assert.False(t, toggle.Enabled)

		f.coordinator.PauseProduction(site, false)
		assert.True(t, toggle.Enabled)
		assert.Equal(t, 2, toggle.Calls)
	})

	t.Run("site without producer", func(t *testing.T) {
		assert.NotPanics(t, func() {
			f.coordinator.PauseProduction(&helpers.MockProductionSite{}, true)
		})
	})

	t.Run("typed nil site", func(t *testing.T) {
		var site *logistics.ProductionSite
		assert.NotPanics(t, func() { f.coordinator.PauseProduction(site, true) })
	})

	t.Run("keeps buffered output", func(t *testing.T) {
		site, err := logistics.NewProductionSite("farm", shared.Position{}, logistics.ResourceFood, 10, 4)
		require.NoError(t, err)
		site.ResourceProducer().Produce(1)

		f.coordinator.PauseProduction(site, true)

		assert.False(t, site.ResourceProducer().Enabled())
		assert.Equal(t, 4.0, site.Buffer().Amount())
		assert.False(t, site.ResourceProducer().Produce(1))
	})
}

func filterGrid(calls []string) []string {
	var out []string
	for _, c := range calls {
		if c == "grid:show" || c == "grid:hide" {
			out = append(out, c)
		}
	}
	return out
}
