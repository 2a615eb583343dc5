package database

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"socialpod/internal/config"
	"socialpod/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestConnect_SQLiteMigrates(t *testing.T) {
	cfg := &config.Config{
		Env:         "test",
		StoreDriver: config.StoreSQLite,
		SQLitePath:  filepath.Join(t.TempDir(), "test.db"),
	}

	db, err := Connect(cfg)
	require.NoError(t, err)

	for _, table := range []any{&models.User{}, &models.Post{}, &models.Comment{}, &models.Tag{}, &models.Announcement{}} {
		assert.True(t, db.Migrator().HasTable(table))
	}
}

func TestConnect_RejectsDocumentDriver(t *testing.T) {
	_, err := Connect(&config.Config{StoreDriver: config.StoreMongo})
	assert.Error(t, err)
}

func TestOpen_TranslatesDuplicateKey(t *testing.T) {
	db, err := Open(sqlite.Open(":memory:"))
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, Migrate(db))

	require.NoError(t, db.Create(&models.User{ID: models.NewID(), Email: "a@x.io"}).Error)
	err = db.Create(&models.User{ID: models.NewID(), Email: "a@x.io"}).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestCustomGormLogger_Trace(t *testing.T) {
	var buf bytes.Buffer
	l := NewGormLogger(slog.New(slog.NewJSONHandler(&buf, nil)))
	fc := func() (string, int64) { return "SELECT 1", 1 }

	l.Trace(context.Background(), time.Now(), fc, errors.New("boom"))
	assert.Contains(t, buf.String(), "GORM query error")

	buf.Reset()
	l.Trace(context.Background(), time.Now(), fc, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String())

	buf.Reset()
	l.Trace(context.Background(), time.Now().Add(-time.Second), fc, nil)
	assert.Contains(t, buf.String(), "GORM slow query")

	buf.Reset()
	l.LogMode(logger.Silent).Trace(context.Background(), time.Now(), fc, errors.New("boom"))
	assert.Empty(t, buf.String())
}
