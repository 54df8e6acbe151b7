package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTableColumns(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	err = db.Exec("CREATE TABLE stock (root_id INTEGER NOT NULL, item_id INTEGER NOT NULL, quantity INTEGER, note TEXT, PRIMARY KEY (root_id, item_id))").Error
	require.NoError(t, err)

	columns, err := GetTableColumns(db, "stock")
	require.NoError(t, err)
	assert.Len(t, columns, 4)

	byName := make(map[string]ColumnInfo)
	for _, col := range columns {
		byName[col.Field] = col
	}

	assert.Equal(t, "integer", byName["root_id"].Type)
	assert.Equal(t, "PRI", byName["root_id"].Key)
	assert.Equal(t, "NO", byName["item_id"].Null)
	assert.Equal(t, "YES", byName["quantity"].Null)
	assert.Equal(t, "text", byName["note"].Type)

	t.Run("Missing table", func(t *testing.T) {
		cols, err := GetTableColumns(db, "non_existent")
		assert.NoError(t, err)
		assert.Empty(t, cols)
	})

	t.Run("Rejects quoted names", func(t *testing.T) {
		_, err := GetTableColumns(db, "stock'; DROP TABLE stock")
		assert.Error(t, err)
	})

	t.Run("Nil connection", func(t *testing.T) {
		_, err := GetTableColumns(nil, "stock")
		assert.Error(t, err)
	})
}
