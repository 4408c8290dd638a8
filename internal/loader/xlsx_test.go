package loader

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"tabprof/internal/dataset"
)

func writeTestWorkbook(t *testing.T, rows [][]any) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cellRef, &row))
	}

	path := filepath.Join(t.TempDir(), "test.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestXLSXLoader(t *testing.T) {
	path := writeTestWorkbook(t, [][]any{
		{"id", "kind", "fee"},
		{1, "electrical", 10.5},
		{2, "plumbing", 20.25},
		{3, "electrical", 7.5},
	})

	ds, err := NewXLSXLoader(path, XLSXOptions{}).Load()
	require.NoError(t, err)
	require.Equal(t, 3, ds.Cols())
	require.Equal(t, 3, ds.Rows())

	id, _ := ds.ColumnByName("id")
	assert.Equal(t, dataset.KindInt, id.Kind())
	kind, _ := ds.ColumnByName("kind")
	assert.Equal(t, dataset.KindString, kind.Kind())
	assert.Equal(t, "plumbing", kind.Value(1))
}

func TestXLSXLoaderShortRowsPadWithMissing(t *testing.T) {
	path := writeTestWorkbook(t, [][]any{
		{"a", "b"},
		{"x", "y"},
		{"z"},
	})

	ds, err := NewXLSXLoader(path, XLSXOptions{}).Load()
	require.NoError(t, err)

	b, _ := ds.ColumnByName("b")
	assert.False(t, b.IsNull(0))
	assert.True(t, b.IsNull(1))
}

func TestXLSXLoaderNamedSheet(t *testing.T) {
	f := excelize.NewFile()
	_, err := f.NewSheet("Permits")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("Permits", "A1", &[]any{"id"}))
	require.NoError(t, f.SetSheetRow("Permits", "A2", &[]any{9}))

	path := filepath.Join(t.TempDir(), "sheets.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	ds, err := NewXLSXLoader(path, XLSXOptions{Sheet: "Permits"}).Load()
	require.NoError(t, err)
	require.Equal(t, 1, ds.Rows())

	id, _ := ds.ColumnByName("id")
	assert.Equal(t, int64(9), id.Value(0))
}

func TestXLSXLoaderMissingFile(t *testing.T) {
	_, err := NewXLSXLoader(filepath.Join(t.TempDir(), "nope.xlsx"), XLSXOptions{}).Load()
	assert.Error(t, err)
}
