package logistics

import (
	"sync"

	"github.com/andrescamacho/settlement-go/internal/adapters/metrics"
	"github.com/andrescamacho/settlement-go/internal/domain/logistics"
	"github.com/andrescamacho/settlement-go/internal/domain/shared"
)

// InMemoryWarehouseRegistry implements WarehouseRegistry with in-memory state.
//
// Membership is keyed by NodeID. Registration order is kept so that
// iteration, and tie-breaking in nearest-node queries, is deterministic.
// Create one per world and pass it to every site and collector.
type InMemoryWarehouseRegistry struct {
	mu sync.RWMutex

	// nodes maps NodeID -> node
	nodes map[logistics.NodeID]*logistics.WarehouseNode

	// order holds node IDs in registration order
	order []logistics.NodeID
}

// NewInMemoryWarehouseRegistry creates an empty registry
func NewInMemoryWarehouseRegistry() *InMemoryWarehouseRegistry {
	return &InMemoryWarehouseRegistry{
		nodes: make(map[logistics.NodeID]*logistics.WarehouseNode),
	}
}

// Register adds node to the live set. Nil and already present nodes are ignored.
func (r *InMemoryWarehouseRegistry) Register(node *logistics.WarehouseNode) {
	if node == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.nodes[node.ID()]; exists {
		return
	}

	r.nodes[node.ID()] = node
	r.order = append(r.order, node.ID())
	metrics.RecordRegistrySize(len(r.nodes))
}

// Unregister removes node from the live set. Absent nodes are ignored.
func (r *InMemoryWarehouseRegistry) Unregister(node *logistics.WarehouseNode) {
	if node == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.nodes[node.ID()]; !exists {
		return
	}

	delete(r.nodes, node.ID())
	for i, id := range r.order {
		if id == node.ID() {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	metrics.RecordRegistrySize(len(r.nodes))
}

// NearestNode returns the registered node closest to position
func (r *InMemoryWarehouseRegistry) NearestNode(position shared.Position) (*logistics.WarehouseNode, bool) {
	return r.NearestNodeWhere(position, nil)
}

// NearestNodeWhere returns the closest node accepted by match. A nil match accepts every node.
// A position with a NaN or infinite coordinate has no nearest node.
func (r *InMemoryWarehouseRegistry) NearestNodeWhere(
	position shared.Position,
	match func(*logistics.WarehouseNode) bool,
) (*logistics.WarehouseNode, bool) {
	if !position.IsFinite() {
		metrics.RecordNearestNodeQuery(false)
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	candidates := make([]*logistics.WarehouseNode, 0, len(r.order))
	positions := make([]shared.Position, 0, len(r.order))
	for _, id := range r.order {
		node := r.nodes[id]
		if match != nil && !match(node) {
			continue
		}
		candidates = append(candidates, node)
		positions = append(positions, node.Position())
	}

	idx, _ := shared.FindNearestPosition(position, positions)
	if idx < 0 {
		metrics.RecordNearestNodeQuery(false)
		return nil, false
	}

	metrics.RecordNearestNodeQuery(true)
	return candidates[idx], true
}

// Nodes returns a snapshot of the live set in registration order
func (r *InMemoryWarehouseRegistry) Nodes() []*logistics.WarehouseNode {
	r.mu.RLock()
	defer r.mu.RUnlock()

	nodes := make([]*logistics.WarehouseNode, 0, len(r.order))
	for _, id := range r.order {
		nodes = append(nodes, r.nodes[id])
	}
	return nodes
}

// Len returns the number of live nodes
func (r *InMemoryWarehouseRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.nodes)
}

var _ logistics.WarehouseRegistry = (*InMemoryWarehouseRegistry)(nil)
