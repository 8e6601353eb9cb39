package services

import (
	"context"
	"fmt"
	"net/url"
	"testing"

	"siteforge/internal/models"
	"siteforge/internal/store"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	// Each test gets its own isolated database, named after the test so
	// every pooled connection shares the same schema (a bare ":memory:"
	// DSN gives each connection its own empty database)
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", url.PathEscape(t.Name()))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		// Disable prepared statement cache to avoid concurrency issues
		PrepareStmt: false,
	})
	require.NoError(t, err)

	// Pin one connection for the test's duration so the shared in-memory
	// database is not dropped when the pool goes idle
	sqlDB, err := db.DB()
	require.NoError(t, err)
	conn, err := sqlDB.Conn(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() {
		conn.Close()
		sqlDB.Close()
	})

	err = db.AutoMigrate(
		&models.Business{},
		&models.SiteConfigRow{},
		&models.SiteConfigHistory{},
	)
	require.NoError(t, err)

	return db
}

// setupConfigService creates a ConfigService backed by in-memory storage
func setupConfigService(t *testing.T) (*ConfigService, *gorm.DB, store.Store) {
	db := setupTestDB(t)
	memStore := store.NewMemoryStore()
	t.Cleanup(func() { memStore.Close() })
	return NewConfigService(db, memStore), db, memStore
}

// createTestBusiness inserts and returns a business record
func createTestBusiness(t *testing.T, db *gorm.DB, slug string) *models.Business {
	business := &models.Business{
		ID:          uuid.NewString(),
		Slug:        slug,
		Name:        "acme plumbing",
		City:        "springfield",
		State:       "IL",
		Phone:       "(217) 555-0199",
		Industry:    "plumbing",
		Rating:      4.7,
		ReviewCount: 52,
	}
	require.NoError(t, db.Create(business).Error)
	return business
}
