package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDB_AppliesSchema(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	for _, table := range []string{"orders", "sheet_meta"} {
		var name string
		err := database.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	require.NoError(t, Migrate(database))
	require.NoError(t, Migrate(database))
}

func TestMigrate_SeedsEditCapability(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	var value string
	err = database.QueryRow(`SELECT value FROM sheet_meta WHERE key = 'can_edit'`).Scan(&value)
	require.NoError(t, err)
	assert.Equal(t, "1", value)

	// Re-running migrations must not clobber an operator-set value.
	_, err = database.Exec(`UPDATE sheet_meta SET value = '0' WHERE key = 'can_edit'`)
	require.NoError(t, err)
	require.NoError(t, Migrate(database))
	err = database.QueryRow(`SELECT value FROM sheet_meta WHERE key = 'can_edit'`).Scan(&value)
	require.NoError(t, err)
	assert.Equal(t, "0", value)
}
