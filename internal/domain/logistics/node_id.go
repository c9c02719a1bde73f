package logistics

import (
	"fmt"

	"github.com/google/uuid"
)

// NodeID identifies a warehouse node for its whole lifetime
type NodeID struct {
	value string
}

// NewNodeID generates a fresh identifier
func NewNodeID() NodeID {
	return NodeID{value: uuid.New().String()}
}

// ParseNodeID validates and wraps an existing identifier
func ParseNodeID(id string) (NodeID, error) {
	if id == "" {
		return NodeID{}, fmt.Errorf("node_id cannot be empty")
	}
	if _, err := uuid.Parse(id); err != nil {
		return NodeID{}, fmt.Errorf("invalid node_id format: %w", err)
	}
	return NodeID{value: id}, nil
}

func (n NodeID) String() string { return n.value }

// IsZero checks if the NodeID is uninitialized
func (n NodeID) IsZero() bool { return n.value == "" }
