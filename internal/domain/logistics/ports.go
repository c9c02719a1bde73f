package logistics

import (
	"context"

	"github.com/andrescamacho/settlement-go/internal/domain/shared"
)

// WarehouseRegistry is the process-wide catalog of active buffer-bearing sites.
//
// Membership is a set: registering a present node and unregistering an absent
// one are both no-ops. Queries never fail; an empty registry yields no target.
type WarehouseRegistry interface {
	Register(node *WarehouseNode)
	Unregister(node *WarehouseNode)

	// NearestNode returns the node closest to position, or (nil, false) when empty.
	// Ties go to the node registered first.
	NearestNode(position shared.Position) (*WarehouseNode, bool)

	// NearestNodeWhere is NearestNode restricted to nodes accepted by match
	NearestNodeWhere(position shared.Position, match func(*WarehouseNode) bool) (*WarehouseNode, bool)

	// Nodes returns a snapshot of the live set in registration order
	Nodes() []*WarehouseNode
	Len() int
}

// CollectionRepository persists the pickup history
type CollectionRepository interface {
	Create(ctx context.Context, collection *Collection) error
	FindByID(ctx context.Context, id string) (*Collection, error)
	FindByNode(ctx context.Context, nodeID NodeID) ([]*Collection, error)

	// TotalsByKind sums collected amounts per resource kind
	TotalsByKind(ctx context.Context) (map[ResourceKind]float64, error)
}
