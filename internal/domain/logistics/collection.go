package logistics

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Collection records one pickup of buffered resource by a collector.
// Collections form an append-only history; they are never used to
// restore buffer contents.
type Collection struct {
	id          string
	nodeID      NodeID
	nodeName    string
	kind        ResourceKind
	amount      float64
	collectorID string
	collectedAt time.Time
}

// NewCollection creates a collection record with a generated ID
func NewCollection(
	node *WarehouseNode,
	amount float64,
	collectorID string,
	collectedAt time.Time,
) (*Collection, error) {
	if node == nil {
		return nil, fmt.Errorf("collection requires a node")
	}
	if amount < 0 {
		return nil, fmt.Errorf("collected amount cannot be negative")
	}
	if collectorID == "" {
		return nil, fmt.Errorf("collector ID cannot be empty")
	}

	return &Collection{
		id:          uuid.New().String(),
		nodeID:      node.ID(),
		nodeName:    node.Name(),
		kind:        node.Buffer().Kind(),
		amount:      amount,
		collectorID: collectorID,
		collectedAt: collectedAt,
	}, nil
}

func (c *Collection) ID() string             { return c.id }
func (c *Collection) NodeID() NodeID         { return c.nodeID }
func (c *Collection) NodeName() string       { return c.nodeName }
func (c *Collection) Kind() ResourceKind     { return c.kind }
func (c *Collection) Amount() float64        { return c.amount }
func (c *Collection) CollectorID() string    { return c.collectorID }
func (c *Collection) CollectedAt() time.Time { return c.collectedAt }

// CollectionData is the DTO for persisting collections
type CollectionData struct {
	ID          string
	NodeID      string
	NodeName    string
	Kind        string
	Amount      float64
	CollectorID string
	CollectedAt time.Time
}

// ToData converts the entity to a DTO for persistence
func (c *Collection) ToData() *CollectionData {
	return &CollectionData{
		ID:          c.id,
		NodeID:      c.nodeID.String(),
		NodeName:    c.nodeName,
		Kind:        string(c.kind),
		Amount:      c.amount,
		CollectorID: c.collectorID,
		CollectedAt: c.collectedAt,
	}
}

// CollectionFromData reconstructs a Collection from a DTO
func CollectionFromData(data *CollectionData) (*Collection, error) {
	nodeID, err := ParseNodeID(data.NodeID)
	if err != nil {
		return nil, err
	}
	kind, err := ParseResourceKind(data.Kind)
	if err != nil {
		return nil, err
	}

	return &Collection{
		id:          data.ID,
		nodeID:      nodeID,
		nodeName:    data.NodeName,
		kind:        kind,
		amount:      data.Amount,
		collectorID: data.CollectorID,
		collectedAt: data.CollectedAt,
	}, nil
}
