package connectors

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestDiscoverFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.csv"), "x\n1\n")
	writeFile(t, filepath.Join(root, "b.CSV"), "x\n1\n")
	writeFile(t, filepath.Join(root, "c.xlsx"), "not really")
	writeFile(t, filepath.Join(root, "skip.json"), "{}")
	writeFile(t, filepath.Join(root, "nested", "d.csv"), "x\n1\n")

	files, err := DiscoverFiles(root, []string{"csv", "xlsx"}, DiscoveryOptions{})
	require.NoError(t, err)

	names := fileNames(files)
	assert.Equal(t, []string{"a.csv", "b.CSV", "c.xlsx"}, names)
}

func TestDiscoverFilesRecursive(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.csv"), "x\n1\n")
	writeFile(t, filepath.Join(root, "nested", "d.csv"), "x\n1\n")

	files, err := DiscoverFiles(root, []string{"csv"}, DiscoveryOptions{Recursive: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.csv", "d.csv"}, fileNames(files))
}

func TestDiscoverFilesSizeFilter(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "small.csv"), "x")
	writeFile(t, filepath.Join(root, "big.csv"), "xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx")

	files, err := DiscoverFiles(root, []string{"csv"}, DiscoveryOptions{MinSize: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{"big.csv"}, fileNames(files))
}

func TestDiscoverFilesBadRoot(t *testing.T) {
	_, err := DiscoverFiles("", []string{"csv"}, DiscoveryOptions{})
	assert.Error(t, err)

	_, err = DiscoverFiles(filepath.Join(t.TempDir(), "nope"), []string{"csv"}, DiscoveryOptions{})
	assert.Error(t, err)
}

func TestFileMetaSizeHuman(t *testing.T) {
	m := FileMeta{Size: 2048}
	assert.Equal(t, "2.0 kB", m.SizeHuman())
}

func fileNames(files []FileMeta) []string {
	names := make([]string, len(files))
	for i, f := range files {
		names[i] = filepath.Base(f.Path)
	}
	sort.Strings(names)
	return names
}
