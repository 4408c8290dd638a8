package loader

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tabprof/internal/dataset"
)

func writeTestDatabase(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "permits.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE permits (id INTEGER, kind TEXT, fee REAL)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO permits VALUES
		(1, 'electrical', 10.5),
		(2, NULL, 20.25),
		(3, 'plumbing', NULL)`)
	require.NoError(t, err)
	return path
}

func TestSQLiteLoader(t *testing.T) {
	path := writeTestDatabase(t)

	ds, err := NewSQLiteLoader(path, "permits").Load()
	require.NoError(t, err)
	require.Equal(t, 3, ds.Cols())
	require.Equal(t, 3, ds.Rows())

	id, _ := ds.ColumnByName("id")
	assert.Equal(t, dataset.KindInt, id.Kind())

	kind, _ := ds.ColumnByName("kind")
	assert.True(t, kind.IsNull(1))
	assert.Equal(t, "plumbing", kind.Value(2))

	fee, _ := ds.ColumnByName("fee")
	assert.Equal(t, dataset.KindFloat, fee.Kind())
	assert.True(t, fee.IsNull(2))
	assert.Equal(t, 10.5, fee.Value(0))
}

func TestSQLiteLoaderRequiresTable(t *testing.T) {
	path := writeTestDatabase(t)
	_, err := NewSQLiteLoader(path, "").Load()
	assert.Error(t, err)
}

func TestSQLiteLoaderUnknownTable(t *testing.T) {
	path := writeTestDatabase(t)
	_, err := NewSQLiteLoader(path, "nope").Load()
	assert.Error(t, err)
}
