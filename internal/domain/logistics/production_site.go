package logistics

import (
	"fmt"

	"github.com/andrescamacho/settlement-go/internal/domain/construction"
	"github.com/andrescamacho/settlement-go/internal/domain/shared"
)

// ProductionSite is a building that periodically generates one resource kind.
// It owns exactly one buffer and one producer, and exposes a warehouse node
// for collectors while active.
type ProductionSite struct {
	name     string
	buffer   *ResourceBuffer
	producer *Producer
	node     *WarehouseNode
}

// NewProductionSite builds a site with a fresh buffer and an enabled producer
func NewProductionSite(
	name string,
	position shared.Position,
	kind ResourceKind,
	capacity float64,
	ratePerStep float64,
) (*ProductionSite, error) {
	if name == "" {
		return nil, shared.NewValidationError("name", "cannot be empty")
	}

	buffer, err := NewResourceBuffer(kind, capacity)
	if err != nil {
		return nil, fmt.Errorf("site %s: %w", name, err)
	}

	producer, err := NewProducer(ratePerStep, buffer)
	if err != nil {
		return nil, fmt.Errorf("site %s: %w", name, err)
	}

	node, err := NewWarehouseNode(NewNodeID(), name, position, buffer)
	if err != nil {
		return nil, fmt.Errorf("site %s: %w", name, err)
	}

	return &ProductionSite{
		name:     name,
		buffer:   buffer,
		producer: producer,
		node:     node,
	}, nil
}

func (s *ProductionSite) Name() string            { return s.name }
func (s *ProductionSite) ID() NodeID              { return s.node.ID() }
func (s *ProductionSite) Buffer() *ResourceBuffer { return s.buffer }
func (s *ProductionSite) Node() *WarehouseNode    { return s.node }

// Producer implements construction.ProductionSite
func (s *ProductionSite) Producer() construction.ProductionToggle {
	if s == nil || s.producer == nil {
		return nil
	}
	return s.producer
}

// ResourceProducer returns the concrete producer component
func (s *ProductionSite) ResourceProducer() *Producer {
	return s.producer
}

var _ construction.ProductionSite = (*ProductionSite)(nil)
