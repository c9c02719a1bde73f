package steps

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"

	logisticsApp "github.com/andrescamacho/settlement-go/internal/application/logistics"
	"github.com/andrescamacho/settlement-go/internal/domain/logistics"
	"github.com/andrescamacho/settlement-go/internal/domain/shared"
)

type warehouseRegistryContext struct {
	registry *logisticsApp.InMemoryWarehouseRegistry
	nodes    map[string]*logistics.WarehouseNode
	nearest  *logistics.WarehouseNode
	found    bool
}

func (wc *warehouseRegistryContext) reset() {
	wc.registry = logisticsApp.NewInMemoryWarehouseRegistry()
	wc.nodes = make(map[string]*logistics.WarehouseNode)
	wc.nearest = nil
	wc.found = false
}

// Given steps

func (wc *warehouseRegistryContext) theFollowingWarehouseNodesAreRegistered(table *godog.Table) error {
	for _, row := range table.Rows[1:] {
		name := getCellValueFromTable(table, row, "name")

		var coords [3]float64
		for i, column := range []string{"x", "y", "z"} {
			value, err := getFloatFromTable(table, row, column)
			if err != nil {
				return err
			}
			coords[i] = value
		}

		stock := 0.0
		if raw := getCellValueFromTable(table, row, "stock"); raw != "" {
			value, err := getFloatFromTable(table, row, "stock")
			if err != nil {
				return err
			}
			stock = value
		}

		buffer, err := logistics.NewResourceBuffer(logistics.ResourceWood, 10)
		if err != nil {
			return err
		}
		buffer.Add(stock)

		node, err := logistics.NewWarehouseNode(logistics.NewNodeID(), name, shared.NewPosition(coords[0], coords[1], coords[2]), buffer)
		if err != nil {
			return err
		}
		wc.nodes[name] = node
		wc.registry.Register(node)
	}
	return nil
}

func (wc *warehouseRegistryContext) anEmptyRegistry() error {
	wc.reset()
	return nil
}

// When steps

func (wc *warehouseRegistryContext) nodeIsUnregistered(name string) error {
	node, ok := wc.nodes[name]
	if !ok {
		return fmt.Errorf("unknown node %s", name)
	}
	wc.registry.Unregister(node)
	return nil
}

func (wc *warehouseRegistryContext) nodeIsRegisteredAgain(name string) error {
	node, ok := wc.nodes[name]
	if !ok {
		return fmt.Errorf("unknown node %s", name)
	}
	wc.registry.Register(node)
	return nil
}

func (wc *warehouseRegistryContext) iQueryTheNearestNodeTo(x, y, z float64) error {
	wc.nearest, wc.found = wc.registry.NearestNode(shared.NewPosition(x, y, z))
	return nil
}

func (wc *warehouseRegistryContext) iQueryTheNearestStockedNodeTo(x, y, z float64) error {
	wc.nearest, wc.found = wc.registry.NearestNodeWhere(shared.NewPosition(x, y, z), func(node *logistics.WarehouseNode) bool {
		return node.Buffer().HasAtLeastOneUnit()
	})
	return nil
}

// Then steps

func (wc *warehouseRegistryContext) theNearestNodeShouldBe(name string) error {
	if !wc.found {
		return fmt.Errorf("expected nearest node %s, but no node was found", name)
	}
	if wc.nearest.Name() != name {
		return fmt.Errorf("expected nearest node %s, got %s", name, wc.nearest.Name())
	}
	return nil
}

func (wc *warehouseRegistryContext) thereShouldBeNoTarget() error {
	if wc.found {
		return fmt.Errorf("expected no target, got %s", wc.nearest.Name())
	}
	return nil
}

func (wc *warehouseRegistryContext) theRegistryShouldContainNodes(expected int) error {
	if wc.registry.Len() != expected {
		return fmt.Errorf("expected %d registered nodes, got %d", expected, wc.registry.Len())
	}
	return nil
}

func InitializeWarehouseRegistryScenario(ctx *godog.ScenarioContext) {
	wc := &warehouseRegistryContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		wc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^the following warehouse nodes are registered:$`, wc.theFollowingWarehouseNodesAreRegistered)
	ctx.Step(`^an empty warehouse registry$`, wc.anEmptyRegistry)

	// When steps
	ctx.Step(`^node "([^"]*)" is unregistered$`, wc.nodeIsUnregistered)
	ctx.Step(`^node "([^"]*)" is registered again$`, wc.nodeIsRegisteredAgain)
	ctx.Step(`^I query the nearest node to \((-?[0-9.]+), (-?[0-9.]+), (-?[0-9.]+)\)$`, wc.iQueryTheNearestNodeTo)
	ctx.Step(`^I query the nearest stocked node to \((-?[0-9.]+), (-?[0-9.]+), (-?[0-9.]+)\)$`, wc.iQueryTheNearestStockedNodeTo)

	// Then steps
	ctx.Step(`^the nearest node should be "([^"]*)"$`, wc.theNearestNodeShouldBe)
	ctx.Step(`^there should be no target$`, wc.thereShouldBeNoTarget)
	ctx.Step(`^the registry should contain (\d+) nodes?$`, wc.theRegistryShouldContainNodes)
}
