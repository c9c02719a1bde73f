package helpers

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/andrescamacho/settlement-go/internal/adapters/persistence"
	"github.com/andrescamacho/settlement-go/internal/infrastructure/database"
)

// NewTestDB opens a migrated in-memory ledger database closed when the test ends
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.NewTestConnection()
	require.NoError(t, err, "open test ledger database")
	t.Cleanup(func() { _ = database.Close(db) })

	return db
}

// NewTestLedger returns a collection repository backed by NewTestDB
func NewTestLedger(t *testing.T) *persistence.GormCollectionRepository {
	t.Helper()
	return persistence.NewGormCollectionRepository(NewTestDB(t))
}
