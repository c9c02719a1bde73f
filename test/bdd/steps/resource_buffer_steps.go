package steps

import (
	"context"
	"fmt"
	"math"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/settlement-go/internal/domain/logistics"
)

type resourceBufferContext struct {
	buffer   *logistics.ResourceBuffer
	accepted bool
	taken    float64
	err      error
}

func (rc *resourceBufferContext) reset() {
	rc.buffer = nil
	rc.accepted = false
	rc.taken = 0
	rc.err = nil
}

// Given steps

func (rc *resourceBufferContext) aBufferWithCapacity(kind string, capacity float64) error {
	resourceKind, err := logistics.ParseResourceKind(kind)
	if err != nil {
		return err
	}
	buffer, err := logistics.NewResourceBuffer(resourceKind, capacity)
	if err != nil {
		return err
	}
	rc.buffer = buffer
	return nil
}

func (rc *resourceBufferContext) iCreateABufferWithCapacity(kind string, capacity float64) error {
	rc.buffer, rc.err = logistics.NewResourceBuffer(logistics.ResourceKind(kind), capacity)
	return nil
}

// When steps

func (rc *resourceBufferContext) iAddUnits(amount float64) error {
	if rc.buffer == nil {
		return fmt.Errorf("no buffer available")
	}
	rc.accepted = rc.buffer.Add(amount)
	return nil
}

func (rc *resourceBufferContext) iTakeAll() error {
	if rc.buffer == nil {
		return fmt.Errorf("no buffer available")
	}
	rc.taken = rc.buffer.TakeAll()
	return nil
}

// Then steps

func (rc *resourceBufferContext) theAddShouldBeAccepted() error {
	if !rc.accepted {
		return fmt.Errorf("expected add to be accepted, but it was rejected")
	}
	return nil
}

func (rc *resourceBufferContext) theAddShouldBeRejected() error {
	if rc.accepted {
		return fmt.Errorf("expected add to be rejected, but it was accepted")
	}
	return nil
}

func (rc *resourceBufferContext) theBufferShouldHold(expected float64) error {
	if math.Abs(rc.buffer.Amount()-expected) > 1e-9 {
		return fmt.Errorf("expected buffer to hold %v, got %v", expected, rc.buffer.Amount())
	}
	return nil
}

func (rc *resourceBufferContext) unitsShouldBeTaken(expected float64) error {
	if math.Abs(rc.taken-expected) > 1e-9 {
		return fmt.Errorf("expected %v units taken, got %v", expected, rc.taken)
	}
	return nil
}

func (rc *resourceBufferContext) theBufferShouldBeFull() error {
	if !rc.buffer.IsFull() {
		return fmt.Errorf("expected buffer to be full, it holds %v of %v", rc.buffer.Amount(), rc.buffer.Capacity())
	}
	return nil
}

func (rc *resourceBufferContext) theBufferShouldHaveAFullUnit() error {
	if !rc.buffer.HasAtLeastOneUnit() {
		return fmt.Errorf("expected at least one unit, buffer holds %v", rc.buffer.Amount())
	}
	return nil
}

func (rc *resourceBufferContext) theBufferShouldNotHaveAFullUnit() error {
	if rc.buffer.HasAtLeastOneUnit() {
		return fmt.Errorf("expected less than one unit, buffer holds %v", rc.buffer.Amount())
	}
	return nil
}

func (rc *resourceBufferContext) bufferCreationShouldFail() error {
	if rc.err == nil {
		return fmt.Errorf("expected buffer creation to fail, but it succeeded")
	}
	return nil
}

func InitializeResourceBufferScenario(ctx *godog.ScenarioContext) {
	rc := &resourceBufferContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		rc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^an? ([A-Z]+) buffer with capacity (-?[0-9.]+)$`, rc.aBufferWithCapacity)
	ctx.Step(`^I create an? ([A-Z]+) buffer with capacity (-?[0-9.]+)$`, rc.iCreateABufferWithCapacity)

	// When steps
	ctx.Step(`^I add (-?[0-9.]+) units?$`, rc.iAddUnits)
	ctx.Step(`^I take all$`, rc.iTakeAll)

	// Then steps
	ctx.Step(`^the add should be accepted$`, rc.theAddShouldBeAccepted)
	ctx.Step(`^the add should be rejected$`, rc.theAddShouldBeRejected)
	ctx.Step(`^the buffer should hold ([0-9.]+) units?$`, rc.theBufferShouldHold)
	ctx.Step(`^([0-9.]+) units? should be taken$`, rc.unitsShouldBeTaken)
	ctx.Step(`^the buffer should be full$`, rc.theBufferShouldBeFull)
	ctx.Step(`^the buffer should have a full unit$`, rc.theBufferShouldHaveAFullUnit)
	ctx.Step(`^the buffer should not have a full unit$`, rc.theBufferShouldNotHaveAFullUnit)
	ctx.Step(`^buffer creation should fail$`, rc.bufferCreationShouldFail)
}
