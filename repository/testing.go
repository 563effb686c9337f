package repository

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Habib786340/CustomerLeadApplication/models"
)

// SetupTestDB opens an in-memory SQLite database migrated with the
// application schema. Intended for tests only.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	// Each new connection to :memory: is a fresh database; keep one.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.Profile{}, &models.ProfileImage{}, &models.AuditEntry{}); err != nil {
		t.Fatalf("failed to migrate test schema: %v", err)
	}

	return db
}
