package testdb

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"loanflow/internal/infrastructure/db"
	"loanflow/pkg/id"
)

// Open returns a private in-memory SQLite database with every workflow table
// migrated. One connection keeps transactions and plain reads on the same DB.
func Open(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + id.NewID32() + "?mode=memory&cache=shared"
	gdb, err := db.OpenGormWithDialector(sqlite.Open(dsn))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("sql handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(gdb); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return gdb
}
