package testutils

import (
	"path/filepath"
	"testing"

	"chatdb/internal/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenSQLite opens a throwaway SQLite database file under t.TempDir.
// The pool is limited to one connection so concurrent tests never see
// "database is locked".
func OpenSQLite(t *testing.T, path string) *gorm.DB {
	t.Helper()
	return OpenWith(t, sqlite.Open(path))
}

// OpenWith opens a database through any dialector with the same pool
// settings as OpenSQLite.
func OpenWith(t *testing.T, dialector gorm.Dialector) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to open test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

// NewMessageDB returns a migrated SQLite database and its file path.
func NewMessageDB(t *testing.T) (*gorm.DB, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "chat.sqlite")
	db := OpenSQLite(t, path)
	require.NoError(t, repository.InitSchema(db))
	return db, path
}

// CountMessages counts every row of the message table.
func CountMessages(t *testing.T, db *gorm.DB) int64 {
	t.Helper()

	var n int64
	require.NoError(t, db.Table(repository.DefaultTable).Count(&n).Error)
	return n
}
