package persistence_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/settlement-go/internal/adapters/persistence"
	"github.com/andrescamacho/settlement-go/internal/domain/logistics"
	"github.com/andrescamacho/settlement-go/internal/domain/shared"
	"github.com/andrescamacho/settlement-go/test/helpers"
)

func newNode(t *testing.T, name string, kind logistics.ResourceKind) *logistics.WarehouseNode {
	t.Helper()
	buffer, err := logistics.NewResourceBuffer(kind, 10)
	require.NoError(t, err)
	node, err := logistics.NewWarehouseNode(logistics.NewNodeID(), name, shared.NewPosition(0, 0, 0), buffer)
	require.NoError(t, err)
	return node
}

func TestCollectionRepository_CreateAndFind(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormCollectionRepository(db)
	node := newNode(t, "lumber", logistics.ResourceWood)
	collectedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	collection, err := logistics.NewCollection(node, 7, "hauler-1", collectedAt)
	require.NoError(t, err)

	// Act
	err = repo.Create(context.Background(), collection)
	require.NoError(t, err)

	found, err := repo.FindByID(context.Background(), collection.ID())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, node.ID(), found.NodeID())
	assert.Equal(t, "lumber", found.NodeName())
	assert.Equal(t, logistics.ResourceWood, found.Kind())
	assert.Equal(t, 7.0, found.Amount())
	assert.Equal(t, "hauler-1", found.CollectorID())
	assert.True(t, collectedAt.Equal(found.CollectedAt()))
}

func TestCollectionRepository_NotFound(t *testing.T) {
	repo := helpers.NewTestLedger(t)

	_, err := repo.FindByID(context.Background(), "missing")

	var notFound *logistics.ErrCollectionNotFound
	assert.ErrorAs(t, err, &notFound)
}

func TestCollectionRepository_FindByNode(t *testing.T) {
	repo := helpers.NewTestLedger(t)
	lumber := newNode(t, "lumber", logistics.ResourceWood)
	quarry := newNode(t, "quarry", logistics.ResourceStone)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for i, node := range []*logistics.WarehouseNode{lumber, quarry, lumber} {
		collection, err := logistics.NewCollection(node, float64(i+1), "hauler-1", base.Add(time.Duration(i)*time.Minute))
		require.NoError(t, err)
		require.NoError(t, repo.Create(context.Background(), collection))
	}

	found, err := repo.FindByNode(context.Background(), lumber.ID())

	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, 1.0, found[0].Amount())
	assert.Equal(t, 3.0, found[1].Amount())
}

func TestCollectionRepository_TotalsByKind(t *testing.T) {
	repo := helpers.NewTestLedger(t)
	lumber := newNode(t, "lumber", logistics.ResourceWood)
	quarry := newNode(t, "quarry", logistics.ResourceStone)
	now := time.Now().UTC()

	for _, pickup := range []struct {
		node   *logistics.WarehouseNode
		amount float64
	}{
		{lumber, 2.5},
		{lumber, 4},
		{quarry, 1},
	} {
		collection, err := logistics.NewCollection(pickup.node, pickup.amount, "hauler-1", now)
		require.NoError(t, err)
		require.NoError(t, repo.Create(context.Background(), collection))
	}

	totals, err := repo.TotalsByKind(context.Background())

	require.NoError(t, err)
	assert.Equal(t, map[logistics.ResourceKind]float64{
		logistics.ResourceWood:  6.5,
		logistics.ResourceStone: 1,
	}, totals)
}
