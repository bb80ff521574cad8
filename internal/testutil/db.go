// Package testutil opens throwaway databases for package tests.
package testutil

import (
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/totegamma/storykeep/internal/infra/database"
)

// NewDB returns a migrated SQLite database living in t.TempDir().
// SQLite allows one writer, so the pool is pinned to a single connection.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db") + "?_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(path), database.Config())
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}
