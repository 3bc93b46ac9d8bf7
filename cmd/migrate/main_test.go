package main

import (
	"path/filepath"
	"testing"

	"chatdb/config"
	"chatdb/internal/repository"
	"chatdb/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSchemaCommand(t *testing.T) {
	db, err := database.Connect(&config.Config{
		DBDriver: database.DriverSQLite,
		DBPath:   filepath.Join(t.TempDir(), "chat.sqlite"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	require.NoError(t, runSchemaCommand("up", db, "archive_messages"))
	assert.True(t, db.Migrator().HasTable("archive_messages"))
	assert.False(t, db.Migrator().HasTable(repository.DefaultTable))

	require.NoError(t, runSchemaCommand("status", db, "archive_messages"))

	require.NoError(t, runSchemaCommand("down", db, "archive_messages"))
	assert.False(t, db.Migrator().HasTable("archive_messages"))
}

func TestRunSchemaCommand_ReturnsErrorsToCaller(t *testing.T) {
	db, err := database.Connect(&config.Config{
		DBDriver: database.DriverSQLite,
		DBPath:   filepath.Join(t.TempDir(), "chat.sqlite"),
	})
	require.NoError(t, err)
	require.NoError(t, database.Close(db))

	assert.Error(t, runSchemaCommand("status", db, repository.DefaultTable))
	assert.Error(t, runSchemaCommand("up", db, repository.DefaultTable))
}
