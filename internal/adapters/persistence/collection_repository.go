package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/andrescamacho/settlement-go/internal/domain/logistics"
)

// GormCollectionRepository implements CollectionRepository using GORM
type GormCollectionRepository struct {
	db *gorm.DB
}

// NewGormCollectionRepository creates a new GORM collection repository
func NewGormCollectionRepository(db *gorm.DB) *GormCollectionRepository {
	return &GormCollectionRepository{db: db}
}

// Create persists a new collection record
func (r *GormCollectionRepository) Create(ctx context.Context, collection *logistics.Collection) error {
	model := collectionToModel(collection)

	result := r.db.WithContext(ctx).Create(model)
	if result.Error != nil {
		return fmt.Errorf("failed to create collection: %w", result.Error)
	}

	return nil
}

// FindByID retrieves a collection by its ID
func (r *GormCollectionRepository) FindByID(ctx context.Context, id string) (*logistics.Collection, error) {
	var model CollectionModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&model)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, &logistics.ErrCollectionNotFound{ID: id}
		}
		return nil, fmt.Errorf("failed to find collection: %w", result.Error)
	}

	return modelToCollection(&model)
}

// FindByNode retrieves every pickup made at a node, oldest first
func (r *GormCollectionRepository) FindByNode(ctx context.Context, nodeID logistics.NodeID) ([]*logistics.Collection, error) {
	var models []CollectionModel
	result := r.db.WithContext(ctx).
		Where("node_id = ?", nodeID.String()).
		Order("collected_at ASC").
		Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find collections: %w", result.Error)
	}

	collections := make([]*logistics.Collection, len(models))
	for i := range models {
		collection, err := modelToCollection(&models[i])
		if err != nil {
			return nil, fmt.Errorf("failed to convert collection model: %w", err)
		}
		collections[i] = collection
	}

	return collections, nil
}

type kindTotal struct {
	Kind  string
	Total float64
}

// TotalsByKind sums collected amounts per resource kind
func (r *GormCollectionRepository) TotalsByKind(ctx context.Context) (map[logistics.ResourceKind]float64, error) {
	var rows []kindTotal
	result := r.db.WithContext(ctx).
		Model(&CollectionModel{}).
		Select("kind, SUM(amount) AS total").
		Group("kind").
		Scan(&rows)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to sum collections: %w", result.Error)
	}

	totals := make(map[logistics.ResourceKind]float64, len(rows))
	for _, row := range rows {
		kind, err := logistics.ParseResourceKind(row.Kind)
		if err != nil {
			return nil, fmt.Errorf("invalid kind in database: %w", err)
		}
		totals[kind] = row.Total
	}

	return totals, nil
}

func collectionToModel(collection *logistics.Collection) *CollectionModel {
	data := collection.ToData()
	return &CollectionModel{
		ID:          data.ID,
		NodeID:      data.NodeID,
		NodeName:    data.NodeName,
		Kind:        data.Kind,
		Amount:      data.Amount,
		CollectorID: data.CollectorID,
		CollectedAt: data.CollectedAt,
	}
}

func modelToCollection(model *CollectionModel) (*logistics.Collection, error) {
	return logistics.CollectionFromData(&logistics.CollectionData{
		ID:          model.ID,
		NodeID:      model.NodeID,
		NodeName:    model.NodeName,
		Kind:        model.Kind,
		Amount:      model.Amount,
		CollectorID: model.CollectorID,
		CollectedAt: model.CollectedAt,
	})
}

var _ logistics.CollectionRepository = (*GormCollectionRepository)(nil)
