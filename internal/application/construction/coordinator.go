package construction

import (
	"fmt"

	"github.com/andrescamacho/settlement-go/internal/adapters/metrics"
	"github.com/andrescamacho/settlement-go/internal/application/common"
	"github.com/andrescamacho/settlement-go/internal/domain/construction"
	"github.com/andrescamacho/settlement-go/internal/domain/shared"
)

// Collaborators are the optional subsystems the coordinator drives.
// Any field may be nil; a nil collaborator has nothing to cancel.
type Collaborators struct {
	Grid         construction.GridVisualizer
	BuildingMode construction.BuildingModeCanceler
	GroupOps     construction.GroupOperationCanceler
	MassBuild    construction.MassBuildPreviewClearer
	RoadBuild    construction.RoadPreviewClearer
}

// ModeCoordinator is the single owner of the current build mode.
//
// Every transition runs the cancellation protocol before updating grid
// visibility, so no ghost, group selection or preview from the previous
// mode survives. It is created once at startup and lives for the whole
// process; share the same instance with every consumer.
//
// Not safe for concurrent use: all calls come from the simulation thread.
// The reentry guard only protects against cancellation callbacks that call
// back into the coordinator on the same stack.
type ModeCoordinator struct {
	collaborators Collaborators
	logger        common.Logger

	mode        construction.BuildMode
	gridVisible bool
	gridKnown   bool
	guard       shared.ReentryGuard
}

// NewModeCoordinator creates a coordinator in Idle mode
func NewModeCoordinator(collaborators Collaborators, logger common.Logger) *ModeCoordinator {
	if logger == nil {
		logger = common.NoOpLogger()
	}

	return &ModeCoordinator{
		collaborators: collaborators,
		logger:        logger,
		mode:          construction.BuildModeIdle,
	}
}

// AutoWire fills collaborators that were not injected, using what the host
// can find. Explicitly injected collaborators are never replaced.
func (c *ModeCoordinator) AutoWire(discovery construction.CollaboratorDiscovery) {
	if discovery == nil {
		return
	}

	if c.collaborators.Grid == nil {
		if found, ok := discovery.FindGridVisualizer(); ok {
			c.collaborators.Grid = found
		}
	}
	if c.collaborators.BuildingMode == nil {
		if found, ok := discovery.FindBuildingModeCanceler(); ok {
			c.collaborators.BuildingMode = found
		}
	}
	if c.collaborators.GroupOps == nil {
		if found, ok := discovery.FindGroupOperationCanceler(); ok {
			c.collaborators.GroupOps = found
		}
	}
	if c.collaborators.MassBuild == nil {
		if found, ok := discovery.FindMassBuildPreviewClearer(); ok {
			c.collaborators.MassBuild = found
		}
	}
	if c.collaborators.RoadBuild == nil {
		if found, ok := discovery.FindRoadPreviewClearer(); ok {
			c.collaborators.RoadBuild = found
		}
	}
}

// CurrentMode returns the last mode passed to OnModeChanged
func (c *ModeCoordinator) CurrentMode() construction.BuildMode {
	return c.mode
}

// GridVisible returns the last visibility sent to the grid.
// known is false until the first transition.
func (c *ModeCoordinator) GridVisible() (visible bool, known bool) {
	return c.gridVisible, c.gridKnown
}

// Cancelling reports whether the cancellation protocol is running
func (c *ModeCoordinator) Cancelling() bool {
	return c.guard.Active()
}

// OnModeChanged must be called on every user-driven transition, including
// Idle to Idle. It cancels all transient state, then updates the grid.
func (c *ModeCoordinator) OnModeChanged(newMode construction.BuildMode) {
	previous := c.mode

	c.CancelAll()

	// Assigned after cancellation so that a nested transition fired by a
	// collaborator cannot override the mode the user asked for.
	c.mode = newMode

	showGrid := newMode.ShowsGrid()
	c.gridVisible = showGrid
	c.gridKnown = true
	if c.collaborators.Grid != nil {
		c.collaborators.Grid.SetGridVisible(showGrid)
	}

	metrics.RecordModeTransition(previous, newMode, showGrid)
	c.logger.Log(common.LevelDebug, "Build mode changed", map[string]interface{}{
		"from":      previous.String(),
		"to":        newMode.String(),
		"show_grid": showGrid,
	})
}

// CancelAll clears every transient construction state. A call made while the
// protocol is already running (a collaborator triggering a mode change) is
// dropped silently.
func (c *ModeCoordinator) CancelAll() {
	release, ok := c.guard.TryEnter()
	if !ok {
		metrics.RecordCancellationSkipped()
		return
	}
	defer release()

	for _, step := range c.cancellationSteps() {
		c.runStep(step.name, step.run)
	}

	metrics.RecordCancellationPass()
}

type cancellationStep struct {
	name string
	run  func()
}

// cancellationSteps lists the protocol in its fixed order, skipping absent collaborators
func (c *ModeCoordinator) cancellationSteps() []cancellationStep {
	steps := make([]cancellationStep, 0, 4)

	if c.collaborators.BuildingMode != nil {
		steps = append(steps, cancellationStep{"building_modes", c.collaborators.BuildingMode.CancelAllModes})
	}
	if c.collaborators.GroupOps != nil {
		steps = append(steps, cancellationStep{"group_operation", c.collaborators.GroupOps.CancelGroupOperation})
	}
	if c.collaborators.MassBuild != nil {
		steps = append(steps, cancellationStep{"mass_build_preview", c.collaborators.MassBuild.ClearMassBuildPreview})
	}
	if c.collaborators.RoadBuild != nil {
		steps = append(steps, cancellationStep{"road_preview", c.collaborators.RoadBuild.ClearRoadPreview})
	}

	return steps
}

// runStep isolates one collaborator so a panic cannot skip the remaining steps
func (c *ModeCoordinator) runStep(name string, run func()) {
	defer func() {
		if r := recover(); r != nil {
			metrics.RecordCancellationStepFailure(name)
			c.logger.Log(common.LevelWarn, "Cancellation step failed", map[string]interface{}{
				"step":  name,
				"error": fmt.Sprint(r),
			})
		}
	}()
	run()
}

// PauseProduction suspends or resumes a site's producer. Buffered output is
// left as is. A nil site, or a site without a producer, is ignored.
func (c *ModeCoordinator) PauseProduction(site construction.ProductionSite, pause bool) {
	if site == nil {
		return
	}
	producer := site.Producer()
	if producer == nil {
		return
	}

	producer.SetProductionEnabled(!pause)
	metrics.RecordProductionToggle(pause)
}
