package steps

import (
	"context"
	"fmt"
	"strings"

	"github.com/cucumber/godog"

	constructionApp "github.com/andrescamacho/settlement-go/internal/application/construction"
	"github.com/andrescamacho/settlement-go/internal/domain/construction"
	"github.com/andrescamacho/settlement-go/test/helpers"
)

type modeCoordinatorContext struct {
	coordinator *constructionApp.ModeCoordinator
	log         *helpers.CallLog
	grid        *helpers.MockGridVisualizer
	canceler    *helpers.MockCanceler
	groupOps    *helpers.MockCanceler
}

func (mc *modeCoordinatorContext) reset() {
	mc.log = &helpers.CallLog{}
	mc.grid = &helpers.MockGridVisualizer{Log: mc.log}
	mc.canceler = &helpers.MockCanceler{Log: mc.log}
	mc.groupOps = &helpers.MockCanceler{Log: mc.log}
	mc.coordinator = nil
}

func (mc *modeCoordinatorContext) build() {
	mc.coordinator = constructionApp.NewModeCoordinator(constructionApp.Collaborators{
		Grid:         mc.grid,
		BuildingMode: mc.canceler,
		GroupOps:     mc.groupOps,
		MassBuild:    mc.canceler,
		RoadBuild:    mc.canceler,
	}, nil)
}

// Given steps

func (mc *modeCoordinatorContext) aModeCoordinatorWithAllCollaborators() error {
	mc.build()
	return nil
}

func (mc *modeCoordinatorContext) aModeCoordinatorWhoseGroupCancelerSwitchesTo(mode string) error {
	target, err := construction.ParseBuildMode(mode)
	if err != nil {
		return err
	}
	mc.build()
	mc.groupOps.OnCancel = func(string) {
		mc.coordinator.OnModeChanged(target)
	}
	return nil
}

func (mc *modeCoordinatorContext) aModeCoordinatorWhoseBuildingModeCancelerFails() error {
	failing := &helpers.MockCanceler{Log: mc.log, Panic: true}
	mc.coordinator = constructionApp.NewModeCoordinator(constructionApp.Collaborators{
		Grid:         mc.grid,
		BuildingMode: failing,
		GroupOps:     mc.groupOps,
		MassBuild:    mc.canceler,
		RoadBuild:    mc.canceler,
	}, nil)
	return nil
}

func (mc *modeCoordinatorContext) theCallLogIsCleared() error {
	mc.log.Reset()
	return nil
}

// When steps

func (mc *modeCoordinatorContext) theModeChangesTo(mode string) error {
	parsed, err := construction.ParseBuildMode(mode)
	if err != nil {
		return err
	}
	mc.coordinator.OnModeChanged(parsed)
	return nil
}

func (mc *modeCoordinatorContext) allConstructionStateIsCancelled() error {
	mc.coordinator.CancelAll()
	return nil
}

// Then steps

func (mc *modeCoordinatorContext) theCollaboratorCallsShouldBe(table *godog.Table) error {
	var expected []string
	for _, row := range table.Rows[1:] {
		expected = append(expected, getCellValueFromTable(table, row, "call"))
	}

	if strings.Join(expected, ",") != strings.Join(mc.log.Calls, ",") {
		return fmt.Errorf("expected calls %v, got %v", expected, mc.log.Calls)
	}
	return nil
}

func (mc *modeCoordinatorContext) theCurrentModeShouldBe(mode string) error {
	if got := mc.coordinator.CurrentMode().String(); got != mode {
		return fmt.Errorf("expected mode %s, got %s", mode, got)
	}
	return nil
}

func (mc *modeCoordinatorContext) theGridShouldBe(state string) error {
	want := state == "visible"
	if mc.grid.Visible != want {
		return fmt.Errorf("expected grid %s, visible=%t", state, mc.grid.Visible)
	}
	return nil
}

func (mc *modeCoordinatorContext) stepShouldHaveBeenCalledTimes(call string, expected int) error {
	if got := mc.log.Count(call); got != expected {
		return fmt.Errorf("expected %s to be called %d times, got %d", call, expected, got)
	}
	return nil
}

func (mc *modeCoordinatorContext) cancellationShouldNotBeRunning() error {
	if mc.coordinator.Cancelling() {
		return fmt.Errorf("expected cancellation to be finished")
	}
	return nil
}

func InitializeModeCoordinatorScenario(ctx *godog.ScenarioContext) {
	mc := &modeCoordinatorContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		mc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^a mode coordinator with all collaborators$`, mc.aModeCoordinatorWithAllCollaborators)
	ctx.Step(`^a mode coordinator whose group operation canceler switches to "([^"]*)"$`, mc.aModeCoordinatorWhoseGroupCancelerSwitchesTo)
	ctx.Step(`^a mode coordinator whose building mode canceler fails$`, mc.aModeCoordinatorWhoseBuildingModeCancelerFails)
	ctx.Step(`^the call log is cleared$`, mc.theCallLogIsCleared)

	// When steps
	ctx.Step(`^the mode changes to "([^"]*)"$`, mc.theModeChangesTo)
	ctx.Step(`^all construction state is cancelled$`, mc.allConstructionStateIsCancelled)

	// Then steps
	ctx.Step(`^the collaborator calls should be:$`, mc.theCollaboratorCallsShouldBe)
	ctx.Step(`^the current mode should be "([^"]*)"$`, mc.theCurrentModeShouldBe)
	ctx.Step(`^the grid should be (visible|hidden)$`, mc.theGridShouldBe)
	ctx.Step(`^"([^"]*)" should have been called (\d+) times?$`, mc.stepShouldHaveBeenCalledTimes)
	ctx.Step(`^cancellation should not be running$`, mc.cancellationShouldNotBeRunning)
}
