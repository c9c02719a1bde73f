package helpers

import (
	"context"
	"sync"

	"github.com/andrescamacho/settlement-go/internal/domain/logistics"
)

// MockCollectionRepository is an in-memory CollectionRepository.
// Set Err to make every Create fail.
type MockCollectionRepository struct {
	mu          sync.Mutex
	collections []*logistics.Collection
	Err         error
}

// NewMockCollectionRepository creates an empty repository
func NewMockCollectionRepository() *MockCollectionRepository {
	return &MockCollectionRepository{}
}

func (r *MockCollectionRepository) Create(ctx context.Context, collection *logistics.Collection) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return r.Err
	}
	r.collections = append(r.collections, collection)
	return nil
}

func (r *MockCollectionRepository) FindByID(ctx context.Context, id string) (*logistics.Collection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.collections {
		if c.ID() == id {
			return c, nil
		}
	}
	return nil, &logistics.ErrCollectionNotFound{ID: id}
}

func (r *MockCollectionRepository) FindByNode(ctx context.Context, nodeID logistics.NodeID) ([]*logistics.Collection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var found []*logistics.Collection
	for _, c := range r.collections {
		if c.NodeID() == nodeID {
			found = append(found, c)
		}
	}
	return found, nil
}

func (r *MockCollectionRepository) TotalsByKind(ctx context.Context) (map[logistics.ResourceKind]float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	totals := make(map[logistics.ResourceKind]float64)
	for _, c := range r.collections {
		totals[c.Kind()] += c.Amount()
	}
	return totals, nil
}

// All returns every stored collection in insertion order
func (r *MockCollectionRepository) All() []*logistics.Collection {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*logistics.Collection(nil), r.collections...)
}

var _ logistics.CollectionRepository = (*MockCollectionRepository)(nil)
