package repository

import (
	"testing"

	"socialpod/internal/database"
	"socialpod/internal/observability"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestStore returns a Store on a fresh in-memory sqlite database.
func setupTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := database.Open(sqlite.Open(":memory:"))
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { _ = sqlDB.Close() })
	return NewGormStore(db)
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

var testMetrics = observability.NewStoreMetrics("test")
