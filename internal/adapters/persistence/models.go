package persistence

import (
	"time"
)

// CollectionModel represents the collections table.
// Rows are append-only pickup history, never a snapshot of buffer contents.
type CollectionModel struct {
	ID          string    `gorm:"column:id;primaryKey"`
	NodeID      string    `gorm:"column:node_id;not null;index:idx_collections_node"`
	NodeName    string    `gorm:"column:node_name;not null"`
	Kind        string    `gorm:"column:kind;not null;index:idx_collections_kind"`
	Amount      float64   `gorm:"column:amount;not null"`
	CollectorID string    `gorm:"column:collector_id;not null"`
	CollectedAt time.Time `gorm:"column:collected_at;not null"`
}

func (CollectionModel) TableName() string {
	return "collections"
}
