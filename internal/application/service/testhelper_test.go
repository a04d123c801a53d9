package service

import (
	"testing"

	"github.com/pharmacore/pms-api/internal/domain/entity"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory sqlite database. A single connection
// keeps the memory database alive and serializes concurrent test
// transactions the way a real deployment's row locks would.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Category{},
		&entity.Generic{},
		&entity.Company{},
		&entity.Medicine{},
		&entity.StockItem{},
		&entity.InvoiceItem{},
		&entity.IdempotencyKey{},
	))

	return db
}
