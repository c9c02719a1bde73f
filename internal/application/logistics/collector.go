package logistics

import (
	"context"
	"fmt"

	"github.com/andrescamacho/settlement-go/internal/adapters/metrics"
	"github.com/andrescamacho/settlement-go/internal/application/common"
	"github.com/andrescamacho/settlement-go/internal/domain/logistics"
	"github.com/andrescamacho/settlement-go/internal/domain/shared"
)

// Collector is a hauling agent that drains warehouse buffers into its cargo.
//
// Pickup threshold is one unit: buffers holding less are ignored so a
// collector never walks to a site for a fractional amount.
type Collector struct {
	id       string
	position shared.Position
	cargo    map[logistics.ResourceKind]float64

	repo  logistics.CollectionRepository
	clock shared.Clock
}

// NewCollector creates a collector at position. repo may be nil, in which
// case pickups are not recorded. A nil clock falls back to the real clock.
func NewCollector(
	id string,
	position shared.Position,
	repo logistics.CollectionRepository,
	clock shared.Clock,
) (*Collector, error) {
	if id == "" {
		return nil, shared.NewValidationError("collector_id", "cannot be empty")
	}
	if !position.IsFinite() {
		return nil, shared.NewValidationError("position", "must be finite")
	}
	if clock == nil {
		clock = shared.NewRealClock()
	}

	return &Collector{
		id:       id,
		position: position,
		cargo:    make(map[logistics.ResourceKind]float64),
		repo:     repo,
		clock:    clock,
	}, nil
}

func (c *Collector) ID() string                { return c.id }
func (c *Collector) Position() shared.Position { return c.position }

// MoveTo relocates the collector
func (c *Collector) MoveTo(position shared.Position) {
	c.position = position
}

// Cargo returns a copy of the carried amounts per kind
func (c *Collector) Cargo() map[logistics.ResourceKind]float64 {
	cargo := make(map[logistics.ResourceKind]float64, len(c.cargo))
	for kind, amount := range c.cargo {
		cargo[kind] = amount
	}
	return cargo
}

// Unload empties the cargo and returns what was carried
func (c *Collector) Unload() map[logistics.ResourceKind]float64 {
	cargo := c.cargo
	c.cargo = make(map[logistics.ResourceKind]float64)
	return cargo
}

// ChooseDestination returns the nearest node worth a trip, or (nil, false)
func (c *Collector) ChooseDestination(registry logistics.WarehouseRegistry) (*logistics.WarehouseNode, bool) {
	if registry == nil {
		return nil, false
	}
	return registry.NearestNodeWhere(c.position, func(node *logistics.WarehouseNode) bool {
		return node.Buffer().HasAtLeastOneUnit()
	})
}

// Collect drains node's buffer into the cargo and returns the amount taken.
//
// The drained amount stays in the cargo even when recording the collection
// fails; the returned error only reports the lost history entry.
func (c *Collector) Collect(ctx context.Context, node *logistics.WarehouseNode) (float64, error) {
	if node == nil {
		return 0, nil
	}

	buffer := node.Buffer()
	amount := buffer.TakeAll()
	if amount == 0 {
		return 0, nil
	}

	c.cargo[buffer.Kind()] += amount
	metrics.RecordCollection(buffer.Kind(), amount)

	logger := common.LoggerFromContext(ctx)
	logger.Log(common.LevelDebug, "Collected resources", map[string]interface{}{
		"collector": c.id,
		"node":      node.Name(),
		"kind":      buffer.Kind().String(),
		"amount":    amount,
	})

	if c.repo == nil {
		return amount, nil
	}

	collection, err := logistics.NewCollection(node, amount, c.id, c.clock.Now())
	if err != nil {
		return amount, fmt.Errorf("failed to build collection record: %w", err)
	}
	if err := c.repo.Create(ctx, collection); err != nil {
		return amount, fmt.Errorf("failed to record collection at %s: %w", node.Name(), err)
	}

	return amount, nil
}
