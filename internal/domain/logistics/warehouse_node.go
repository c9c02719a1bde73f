package logistics

import (
	"fmt"

	"github.com/andrescamacho/settlement-go/internal/domain/shared"
)

// WarehouseNode is the registry entry for one buffer-bearing site.
// It is created when the site activates and discarded when it deactivates.
type WarehouseNode struct {
	id       NodeID
	name     string
	position shared.Position
	buffer   *ResourceBuffer
}

// NewWarehouseNode wraps a site's buffer with an identity and a position
func NewWarehouseNode(id NodeID, name string, position shared.Position, buffer *ResourceBuffer) (*WarehouseNode, error) {
	if id.IsZero() {
		return nil, shared.NewValidationError("id", "cannot be empty")
	}
	if buffer == nil {
		return nil, shared.NewValidationError("buffer", "cannot be nil")
	}
	if !position.IsFinite() {
		return nil, shared.NewValidationError("position", "must be finite")
	}

	return &WarehouseNode{
		id:       id,
		name:     name,
		position: position,
		buffer:   buffer,
	}, nil
}

func (n *WarehouseNode) ID() NodeID                { return n.id }
func (n *WarehouseNode) Name() string              { return n.name }
func (n *WarehouseNode) Position() shared.Position { return n.position }
func (n *WarehouseNode) Buffer() *ResourceBuffer   { return n.buffer }

func (n *WarehouseNode) String() string {
	return fmt.Sprintf("WarehouseNode[%s %s at %s]", n.name, n.buffer.Kind(), n.position)
}
